// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif provides a population of leaky integrate-and-fire neurons,
integrated with a fixed time step using forward Euler:

	V += dt / Tau * (-(V - VRest) + R * I)

A unit spikes when V >= VTh, is reset to VReset, and then holds V for the
refractory period TRef.  At most one spike is emitted per unit per step.
*/
package lif

import (
	"math"

	"github.com/emer/stdp/errs"
)

// Params are the membrane parameters shared by all units in a population.
// Time constants are in the same units as dt, typically msec.
type Params struct {

	// resting potential that V leaks toward
	VRest float64 `def:"0" yaml:"v_rest"`

	// spiking threshold -- a spike is emitted when V >= VTh
	VTh float64 `def:"20" yaml:"v_th"`

	// value V is reset to right after a spike
	VReset float64 `def:"-5" yaml:"v_reset"`

	// initial membrane potential set by Init
	VInit float64 `def:"0" yaml:"v_init"`

	// membrane time constant
	Tau float64 `def:"10" min:"0" yaml:"tau"`

	// membrane resistance multiplying the input current
	R float64 `def:"1" yaml:"r"`

	// refractory period after each spike, during which V is held
	// and no spikes are emitted.  Quantized to the nearest whole step.
	TRef float64 `def:"0" min:"0" yaml:"t_ref"`
}

func (lp *Params) Defaults() {
	lp.VRest = 0
	lp.VTh = 20
	lp.VReset = -5
	lp.VInit = 0
	lp.Tau = 10
	lp.R = 1
	lp.TRef = 0
}

// Validate returns a ConfigurationError for any invalid parameter
func (lp *Params) Validate() error {
	switch {
	case !(lp.Tau > 0):
		return errs.Config("Tau", lp.Tau, "membrane time constant must be > 0")
	case !(lp.TRef >= 0):
		return errs.Config("TRef", lp.TRef, "refractory period must be >= 0")
	case !(lp.VReset < lp.VTh):
		return errs.Config("VReset", lp.VReset, "reset must be below threshold")
	}
	return nil
}

// Pop is a population of LIF units.  It exclusively owns its state,
// which is mutated only by Integrate and Init.  Other components
// read V and Spike but never write them.
type Pop struct {
	Params

	// number of units
	N int

	// membrane potential per unit
	V []float64

	// spike output per unit from the last Integrate
	Spike []bool

	// remaining refractory time per unit
	Refract []float64
}

// NewPop returns a new initialized population of n units
func NewPop(n int, pars Params) (*Pop, error) {
	if n <= 0 {
		return nil, errs.Config("N", float64(n), "population size must be > 0")
	}
	if err := pars.Validate(); err != nil {
		return nil, err
	}
	pp := &Pop{Params: pars, N: n}
	pp.V = make([]float64, n)
	pp.Spike = make([]bool, n)
	pp.Refract = make([]float64, n)
	pp.Init()
	return pp, nil
}

// Init resets membrane potentials to VInit and clears
// spikes and refractory timers.
func (pp *Pop) Init() {
	for i := range pp.V {
		pp.V[i] = pp.VInit
		pp.Spike[i] = false
		pp.Refract[i] = 0
	}
}

// InRefractory returns true if unit i is currently refractory
func (pp *Pop) InRefractory(i int) bool {
	return pp.Refract[i] > 0
}

// Integrate advances all units one step of size dt given external
// input current iExt (nil = no input), and returns the Spike slice,
// which is owned by the population and overwritten on the next call.
// The input length is checked before any state is touched.
func (pp *Pop) Integrate(iExt []float64, dt float64) ([]bool, error) {
	if iExt != nil && len(iExt) != pp.N {
		return nil, errs.Shape("input current", len(iExt), pp.N)
	}
	if !(dt > 0) {
		return nil, errs.Config("dt", dt, "time step must be > 0")
	}
	vdt := dt / pp.Tau
	half := 0.5 * dt
	for i := range pp.V {
		pp.Spike[i] = false
		if pp.Refract[i] > 0 {
			if pp.Refract[i] > half {
				pp.Refract[i] -= dt
				continue
			}
			pp.Refract[i] = 0
		}
		in := 0.0
		if iExt != nil {
			in = iExt[i]
		}
		v := pp.V[i] + vdt*(-(pp.V[i]-pp.VRest)+pp.R*in)
		if v >= pp.VTh {
			pp.Spike[i] = true
			v = pp.VReset
			pp.Refract[i] = pp.TRef
		}
		pp.V[i] = v
	}
	for i, v := range pp.V {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return pp.Spike, errs.Numerical("V", i, -1)
		}
	}
	return pp.Spike, nil
}

// NSpikes returns the number of units that spiked on the last step
func (pp *Pop) NSpikes() int {
	n := 0
	for _, s := range pp.Spike {
		if s {
			n++
		}
	}
	return n
}
