// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"errors"
	"testing"

	"github.com/emer/stdp/errs"
)

func TestSection(t *testing.T) {
	ser, err := Section([]float64{0, 30, 0}, []float64{5, 15, 280}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ser) != 300 {
		t.Fatalf("length %d, want 300", len(ser))
	}
	for i, v := range ser {
		want := 0.0
		if i >= 5 && i < 20 {
			want = 30
		}
		if v != want {
			t.Errorf("step %d: %v, want %v", i, v, want)
		}
	}
	ser, _ = Section([]float64{1, 2}, []float64{1, 0.5}, 0.1)
	if len(ser) != 15 {
		t.Errorf("dt .1: length %d, want 15", len(ser))
	}
	// boundaries at 2.5, 5, 7.5, 10 steps: total stays at 10
	ser, _ = Section([]float64{1, 0, 1, 0}, []float64{.25, .25, .25, .25}, 0.1)
	if len(ser) != 10 {
		t.Errorf("quarter sections: length %d, want 10", len(ser))
	}
	if ser[0] != 1 || ser[4] != 0 || ser[9] != 0 {
		t.Errorf("quarter sections: %v", ser)
	}
	if _, err := Section([]float64{1}, []float64{1, 2}, 1); !errors.Is(err, errs.ErrShape) {
		t.Errorf("expected shape error, got %v", err)
	}
	if _, err := Section([]float64{1}, []float64{-1}, 1); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestPulsesBroadcast(t *testing.T) {
	ser := Pulses(10, 2, [2]int{1, 3}, [2]int{8, 20})
	cor := []float64{0, 2, 2, 0, 0, 0, 0, 0, 2, 2}
	for i := range cor {
		if ser[i] != cor[i] {
			t.Errorf("pulse %d: %v, want %v", i, ser[i], cor[i])
		}
	}
	bc := Broadcast(ser, 3)
	if len(bc) != 10 || len(bc[1]) != 3 || bc[1][2] != 2 {
		t.Errorf("bad broadcast: %v", bc)
	}
}
