// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package syn provides exponentially decaying synaptic conductances.
Each edge holds a conductance that decays by exp(-dt/Tau) every step
and is incremented by the edge weight when a (delayed) pre-synaptic
spike arrives.  Conductances are summed per receiving unit in GPost.
*/
package syn

import (
	"math"

	"github.com/emer/stdp/conn"
	"github.com/emer/stdp/errs"
	"gonum.org/v1/gonum/floats"
)

// Params are the exponential synapse parameters
type Params struct {

	// decay time constant of the conductance
	Tau float64 `def:"5" min:"0" yaml:"tau"`

	// per-step decay factor = exp(-dt / Tau)
	Decay float64 `view:"-" json:"-" yaml:"-"`
}

func (sp *Params) Defaults() {
	sp.Tau = 5
}

// Update computes the decay factor for time step dt.
// Must be called after any changes to Tau.
func (sp *Params) Update(dt float64) error {
	if !(sp.Tau > 0) {
		return errs.Config("Syn.Tau", sp.Tau, "synaptic time constant must be > 0")
	}
	if !(dt > 0) {
		return errs.Config("dt", dt, "time step must be > 0")
	}
	sp.Decay = math.Exp(-dt / sp.Tau)
	return nil
}

// Expon holds the conductance state for every edge of a connectivity
type Expon struct {
	Params

	// connectivity supplying the edges and weights -- read only
	Conn *conn.Conn

	// conductance per edge
	G []float64

	// total conductance per receiving unit, sum of G over its incoming edges
	GPost []float64
}

// NewExpon returns conductance state for the edges of cn, for time step dt
func NewExpon(cn *conn.Conn, pars Params, dt float64) (*Expon, error) {
	if err := pars.Update(dt); err != nil {
		return nil, err
	}
	ex := &Expon{Params: pars, Conn: cn}
	ex.G = make([]float64, cn.NEdges())
	ex.GPost = make([]float64, cn.PostN)
	return ex, nil
}

// Init zeros all conductances
func (ex *Expon) Init() {
	for i := range ex.G {
		ex.G[i] = 0
	}
	for i := range ex.GPost {
		ex.GPost[i] = 0
	}
}

// DecayG multiplies every conductance by the decay factor
func (ex *Expon) DecayG() {
	floats.Scale(ex.Decay, ex.G)
}

// SendSpikes increments the conductance of every edge sent by a pre unit
// that is spiking in spikes (the delayed pre-synaptic spike vector),
// by the weight of that edge.
func (ex *Expon) SendSpikes(spikes []bool) error {
	if len(spikes) != ex.Conn.PreN {
		return errs.Shape("delayed pre spikes", len(spikes), ex.Conn.PreN)
	}
	ex.sendSpikes(spikes)
	return nil
}

// sendSpikes is SendSpikes without the length check
func (ex *Expon) sendSpikes(spikes []bool) {
	cn := ex.Conn
	for pi, s := range spikes {
		if !s {
			continue
		}
		st, ed := cn.SendEdges(pi)
		for ei := st; ei < ed; ei++ {
			ex.G[ei] += cn.Wt[ei]
		}
	}
}

// SumPost computes GPost from G
func (ex *Expon) SumPost() {
	cn := ex.Conn
	for ri := range ex.GPost {
		sum := 0.0
		for _, ei := range cn.RecvEdges(ri) {
			sum += ex.G[ei]
		}
		ex.GPost[ri] = sum
	}
}

// Update runs one full step: decay, then increments from the delayed
// spikes, then the per-receiver sums.
func (ex *Expon) Update(delayed []bool) error {
	if len(delayed) != ex.Conn.PreN {
		return errs.Shape("delayed pre spikes", len(delayed), ex.Conn.PreN)
	}
	ex.DecayG()
	ex.sendSpikes(delayed)
	ex.SumPost()
	return nil
}
