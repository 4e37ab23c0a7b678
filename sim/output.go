// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// Output is the record of one step.  All slices are copies,
// so they remain valid after later steps.
type Output struct {

	// step index
	Step int

	// simulated time at this step = Step * Dt
	Time float64

	// pre unit spikes
	PreSpike []bool

	// post unit spikes
	PostSpike []bool

	// total synaptic conductance per post unit
	G []float64

	// STDP trace per pre unit
	PreTrace []float64

	// STDP trace per post unit
	PostTrace []float64

	// synaptic current injected into each post unit
	ISyn []float64

	// weight per edge, after this step's learning
	Wt []float64
}

// Output returns a snapshot of the current state, labeled as step i
func (nt *Network) Output(i int) Output {
	pj := nt.Prjn
	return Output{
		Step:      i,
		Time:      nt.Time.TimeAt(i),
		PreSpike:  append([]bool(nil), nt.Pre.Spike...),
		PostSpike: append([]bool(nil), nt.Post.Spike...),
		G:         append([]float64(nil), pj.Syn.GPost...),
		PreTrace:  append([]float64(nil), pj.Learn.PreTrace...),
		PostTrace: append([]float64(nil), pj.Learn.PostTrace...),
		ISyn:      append([]float64(nil), pj.ISyn...),
		Wt:        append([]float64(nil), pj.Conn.Wt...),
	}
}
