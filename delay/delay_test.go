// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delay

import (
	"errors"
	"testing"

	"github.com/emer/stdp/errs"
)

func TestDelayExact(t *testing.T) {
	for _, steps := range []int{1, 2, 5} {
		dl, err := NewLine(steps, 2)
		if err != nil {
			t.Fatal(err)
		}
		inject := 3
		for st := 0; st < 20; st++ {
			rd := dl.Read()
			want := st == inject+steps
			if rd[0] != want {
				t.Errorf("delay %d, step %d: read %v, want %v", steps, st, rd[0], want)
			}
			if rd[1] {
				t.Errorf("delay %d, step %d: unit 1 never spiked", steps, st)
			}
			dl.Push([]bool{st == inject, false})
		}
	}
}

func TestDelayInitiallyEmpty(t *testing.T) {
	dl, _ := NewLine(3, 4)
	for st := 0; st < 3; st++ {
		for i, s := range dl.Read() {
			if s {
				t.Errorf("step %d unit %d: spike before buffer filled", st, i)
			}
		}
		dl.Push([]bool{true, true, true, true})
	}
	if !dl.Read()[0] {
		t.Error("expected first pushed vector after 3 pushes")
	}
	dl.Reset()
	if dl.Read()[0] {
		t.Error("Reset did not clear buffer")
	}
}

func TestDelayErrors(t *testing.T) {
	if _, err := NewLine(0, 1); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("expected configuration error, got %v", err)
	}
	dl, _ := NewLine(1, 2)
	if err := dl.Push([]bool{true}); !errors.Is(err, errs.ErrShape) {
		t.Errorf("expected shape error, got %v", err)
	}
	if _, err := StepsFmTime(0.04, 0.1); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("expected configuration error for sub-step delay, got %v", err)
	}
	if n, err := StepsFmTime(1, 0.1); err != nil || n != 10 {
		t.Errorf("StepsFmTime(1, .1) = %v, %v", n, err)
	}
}
