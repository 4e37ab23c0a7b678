// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"trace", LevelTrace},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultsCmd(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"defaults"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"net:", "tau_pre: 16.8", "pre_input:", "kind: UniformRandom"} {
		if !strings.Contains(out.String(), key) {
			t.Errorf("defaults output missing %q:\n%s", key, out.String())
		}
	}
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "run.yaml")
	src := `
net:
  dt: 1
duration: 50
pre_input:
  levels: [0, 30, 0]
  durations: [5, 15, 30]
post_input:
  levels: [0, 30, 0]
  durations: [10, 15, 25]
`
	if err := os.WriteFile(cfg, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	csv := filepath.Join(dir, "log.csv")
	var errOut bytes.Buffer
	root := newRootCmd()
	root.SetErr(&errOut)
	root.SetArgs([]string{"run", "--config", cfg, "--out", csv, "--seed", "7"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut.String(), "run complete") {
		t.Errorf("missing summary log:\n%s", errOut.String())
	}
	data, err := os.ReadFile(csv)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 51 {
		t.Errorf("csv has %d lines, want 51", len(lines))
	}
}

func TestRunCmdBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.yaml")
	os.WriteFile(cfg, []byte("net:\n  prjn:\n    prob: 2\n"), 0o644)
	root := newRootCmd()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--config", cfg})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected configuration error")
	}
}
