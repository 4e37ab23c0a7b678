// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"errors"
	"math"
	"testing"

	"github.com/emer/stdp/errs"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func defPop(t *testing.T, n int) *Pop {
	t.Helper()
	pars := Params{}
	pars.Defaults()
	pp, err := NewPop(n, pars)
	if err != nil {
		t.Fatal(err)
	}
	return pp
}

func TestIntegrateSubThreshold(t *testing.T) {
	pp := defPop(t, 1)
	in := []float64{10}
	// V_n = 10 * (1 - 0.9^n) for dt = 1, Tau = 10
	for n := 1; n <= 20; n++ {
		spk, err := pp.Integrate(in, 1)
		if err != nil {
			t.Fatal(err)
		}
		if spk[0] {
			t.Fatalf("unexpected spike at step %d", n)
		}
		cor := 10 * (1 - math.Pow(0.9, float64(n)))
		if dif := math.Abs(pp.V[0] - cor); dif > difTol {
			t.Errorf("V err: step: %v, V: %v, cor: %v, dif: %v", n, pp.V[0], cor, dif)
		}
	}
}

func TestIntegrateSpikeReset(t *testing.T) {
	pp := defPop(t, 2)
	in := []float64{30, 0}
	// V_n = 30 * (1 - 0.9^n) crosses 20 at n = 11
	nspk := 0
	for n := 1; n <= 11; n++ {
		spk, err := pp.Integrate(in, 1)
		if err != nil {
			t.Fatal(err)
		}
		if spk[1] {
			t.Errorf("unit without input spiked at step %d", n)
		}
		if spk[0] {
			nspk++
			if n != 11 {
				t.Errorf("spike at step %d, expected 11", n)
			}
			if pp.V[0] != pp.VReset {
				t.Errorf("V not reset after spike: %v", pp.V[0])
			}
		}
	}
	if nspk != 1 {
		t.Errorf("expected exactly 1 spike, got %d", nspk)
	}
}

func TestRefractory(t *testing.T) {
	pars := Params{}
	pars.Defaults()
	pars.TRef = 3
	pp, err := NewPop(1, pars)
	if err != nil {
		t.Fatal(err)
	}
	pp.V[0] = pp.VTh - 0.1
	spk, _ := pp.Integrate([]float64{100}, 1)
	if !spk[0] {
		t.Fatal("expected spike")
	}
	for n := 0; n < 3; n++ {
		if !pp.InRefractory(0) {
			t.Errorf("not refractory before step %d", n)
		}
		spk, _ = pp.Integrate([]float64{1000}, 1)
		if spk[0] {
			t.Errorf("spike during refractory step %d", n)
		}
		if pp.V[0] != pp.VReset {
			t.Errorf("V changed during refractory step %d: %v", n, pp.V[0])
		}
	}
	if pp.InRefractory(0) {
		t.Error("still refractory after 3 steps")
	}
	spk, _ = pp.Integrate([]float64{1000}, 1)
	if !spk[0] {
		t.Error("expected spike after refractory period elapsed")
	}
	if pp.NSpikes() != 1 || !pp.InRefractory(0) {
		t.Errorf("after spike: NSpikes %d, refractory %v", pp.NSpikes(), pp.InRefractory(0))
	}
	pp.Init()
	if pp.NSpikes() != 0 || pp.InRefractory(0) || pp.V[0] != pp.VInit {
		t.Errorf("Init did not reset: NSpikes %d, refractory %v, V %v", pp.NSpikes(), pp.InRefractory(0), pp.V[0])
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		set  func(p *Params)
	}{
		{"zero tau", func(p *Params) { p.Tau = 0 }},
		{"negative tau", func(p *Params) { p.Tau = -1 }},
		{"negative refractory", func(p *Params) { p.TRef = -0.5 }},
		{"reset above threshold", func(p *Params) { p.VReset = 25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pars := Params{}
			pars.Defaults()
			tt.set(&pars)
			_, err := NewPop(3, pars)
			if !errors.Is(err, errs.ErrConfig) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestShapeAndInstability(t *testing.T) {
	pp := defPop(t, 3)
	v0 := append([]float64(nil), pp.V...)
	_, err := pp.Integrate([]float64{1, 2}, 1)
	if !errors.Is(err, errs.ErrShape) {
		t.Errorf("expected shape error, got %v", err)
	}
	for i := range v0 {
		if pp.V[i] != v0[i] {
			t.Error("state mutated by rejected step")
		}
	}
	_, err = pp.Integrate([]float64{0, math.NaN(), 0}, 1)
	var nerr *errs.NumericalInstabilityError
	if !errors.As(err, &nerr) || nerr.Index != 1 {
		t.Errorf("expected numerical instability at unit 1, got %v", err)
	}
}
