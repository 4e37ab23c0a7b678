// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"errors"
	"testing"

	"github.com/emer/stdp/errs"
)

func TestCOBACurrent(t *testing.T) {
	cb := COBA{}
	cb.Defaults()
	cb.E = 10
	g := []float64{0, 0.5, 2}
	vm := []float64{5, 5, 12}
	cor := []float64{0, 2.5, -4}
	cur := make([]float64, 3)
	if err := cb.CurrentFmG(g, vm, cur); err != nil {
		t.Fatal(err)
	}
	for i := range cor {
		if cur[i] != cor[i] {
			t.Errorf("current err: idx: %v, cur: %v, cor: %v", i, cur[i], cor[i])
		}
	}
	if err := cb.CurrentFmG(g, vm[:2], cur); !errors.Is(err, errs.ErrShape) {
		t.Errorf("expected shape error, got %v", err)
	}
}
