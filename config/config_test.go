// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/emer/stdp/conn"
	"github.com/emer/stdp/errs"
	"github.com/emer/stdp/stdp"
)

func TestDefaultsRoundTrip(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	var b bytes.Buffer
	if err := cf.Write(&b); err != nil {
		t.Fatal(err)
	}
	rd, err := Read(&b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cf, rd) {
		t.Errorf("round trip differs:\n%+v\n%+v", cf, rd)
	}
	if !math.IsInf(rd.Net.Prjn.STDP.WMax, 1) {
		t.Errorf("WMax: %v", rd.Net.Prjn.STDP.WMax)
	}
}

func TestReadOverrides(t *testing.T) {
	src := `
net:
  dt: 1
  pre_n: 3
  prjn:
    prob: 0.5
    wt_init:
      kind: Constant
      value: 0.2
    stdp:
      order: PotentiateFirst
duration: 10
pre_input:
  levels: [0, 30]
  durations: [5, 5]
post_input:
  levels: [1]
  durations: [10]
`
	cf, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if cf.Net.Dt != 1 || cf.Net.PreN != 3 || cf.Net.Prjn.Prob != 0.5 {
		t.Errorf("overrides not applied: %+v", cf.Net)
	}
	if cf.Net.Prjn.WtInit.Kind != conn.Constant || cf.Net.Prjn.STDP.Order != stdp.PotentiateFirst {
		t.Errorf("enums not applied: %v %v", cf.Net.Prjn.WtInit.Kind, cf.Net.Prjn.STDP.Order)
	}
	if cf.Net.Prjn.STDP.A1 != 0.96 {
		t.Errorf("default A1 lost: %v", cf.Net.Prjn.STDP.A1)
	}
	axis, iPre, iPost, err := cf.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	if len(axis) != 10 || len(iPre) != 10 || len(iPre[0]) != 3 || iPre[7][2] != 30 || iPost[0][0] != 1 {
		t.Errorf("bad inputs: %v %v %v", axis, iPre, iPost)
	}
}

func TestInputErrors(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	cf.Duration = 200
	if _, _, _, err := cf.Inputs(); !errors.Is(err, errs.ErrShape) {
		t.Errorf("expected shape error for waveform length, got %v", err)
	}
	if _, err := Read(strings.NewReader("bogus_field: 1\n")); err == nil {
		t.Error("expected error for unknown field")
	}
}
