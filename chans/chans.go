// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides conductance-based (COBA) synaptic channels,
computing the current injected into a neuron from the standard
equivalent RC circuit model (i.e., basic Ohms law equations):

	I = G * (E - V)

where E is the reversal potential of the channel.
*/
package chans

import "github.com/emer/stdp/errs"

// COBA is a conductance-based channel with reversal (driving) potential E.
// Excitatory channels have E above threshold, inhibitory ones below rest.
type COBA struct {

	// reversal potential -- the synaptic current pushes V toward this value
	E float64 `def:"0" yaml:"e"`
}

func (cb *COBA) Defaults() {
	cb.E = 0
}

// Current returns the current for conductance g at membrane potential vm
func (cb *COBA) Current(g, vm float64) float64 {
	return g * (cb.E - vm)
}

// CurrentFmG computes the current for each unit into cur, from
// per-unit conductance g and membrane potential vm, which must
// all be the same length.
func (cb *COBA) CurrentFmG(g, vm, cur []float64) error {
	if len(vm) != len(g) {
		return errs.Shape("membrane potential", len(vm), len(g))
	}
	if len(cur) != len(g) {
		return errs.Shape("current output", len(cur), len(g))
	}
	for i, gv := range g {
		cur[i] = cb.Current(gv, vm[i])
	}
	return nil
}
