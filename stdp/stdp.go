// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp implements pair-based spike-timing-dependent plasticity
(Song, Miller & Abbott, 2000) with exponentially decaying traces.

Each pre unit has a trace incremented by A1 when it spikes, and each post
unit has a trace incremented by A2 when it spikes.  Both decay every step.
A pre spike depresses its outgoing weights by the current post trace
(post-before-pre), and a post spike potentiates its incoming weights by the
current pre trace (pre-before-post).  Weights are then clipped to
[WMin, WMax].

Within a step the order is: decay traces, pre spikes, post spikes, clip.
Pre-triggered depression thus reads the post trace before the same step's
post increment, and the post-triggered potentiation sees the same step's
pre increment.  Order = PotentiateFirst swaps the two spike phases.
*/
package stdp

import (
	"fmt"
	"math"

	"github.com/emer/stdp/conn"
	"github.com/emer/stdp/errs"
	"github.com/goki/ki/kit"
)

// Orders determine which spike phase runs first within a step,
// which only matters when pre and post units spike in the same step.
type Orders int

//go:generate stringer -type=Orders

var KiT_Orders = kit.Enums.AddEnum(OrdersN, kit.NotBitFlag, nil)

func (ev Orders) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Orders) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// MarshalText supports text-based formats such as YAML
func (ev Orders) MarshalText() ([]byte, error) { return []byte(ev.String()), nil }

// UnmarshalText supports text-based formats such as YAML
func (ev *Orders) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// FromString sets the value from its name
func (ev *Orders) FromString(s string) error {
	for i := Orders(0); i < OrdersN; i++ {
		if i.String() == s {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("String %v is not a valid option for type Orders", s)
}

const (
	// DepressFirst applies pre-spike depression before post-spike potentiation
	DepressFirst Orders = iota

	// PotentiateFirst applies post-spike potentiation before pre-spike depression
	PotentiateFirst

	OrdersN
)

// Params are the STDP learning parameters
type Params struct {

	// decay time constant of the pre-synaptic trace
	TauPre float64 `def:"16.8" min:"0" yaml:"tau_pre"`

	// decay time constant of the post-synaptic trace
	TauPost float64 `def:"33.7" min:"0" yaml:"tau_post"`

	// increment of the pre trace on each pre spike -- scales potentiation
	A1 float64 `def:"0.96" yaml:"a1"`

	// increment of the post trace on each post spike -- scales depression
	A2 float64 `def:"0.53" yaml:"a2"`

	// lower bound for weights
	WMin float64 `def:"0" min:"0" yaml:"w_min"`

	// upper bound for weights -- +Inf for no upper bound
	WMax float64 `def:"+Inf" yaml:"w_max"`

	// order of the pre and post spike phases within a step
	Order Orders `yaml:"order"`

	// per-step decay factor for the pre trace = exp(-dt / TauPre)
	PreDecay float64 `view:"-" json:"-" yaml:"-"`

	// per-step decay factor for the post trace = exp(-dt / TauPost)
	PostDecay float64 `view:"-" json:"-" yaml:"-"`
}

func (sp *Params) Defaults() {
	sp.TauPre = 16.8
	sp.TauPost = 33.7
	sp.A1 = 0.96
	sp.A2 = 0.53
	sp.WMin = 0
	sp.WMax = math.Inf(1)
	sp.Order = DepressFirst
}

// SetTau sets both trace time constants to tau
func (sp *Params) SetTau(tau float64) {
	sp.TauPre = tau
	sp.TauPost = tau
}

// Update validates the params and computes the decay factors for
// time step dt.  Must be called after any changes to the params.
func (sp *Params) Update(dt float64) error {
	switch {
	case !(sp.TauPre > 0):
		return errs.Config("STDP.TauPre", sp.TauPre, "trace time constant must be > 0")
	case !(sp.TauPost > 0):
		return errs.Config("STDP.TauPost", sp.TauPost, "trace time constant must be > 0")
	case !(sp.WMin >= 0):
		return errs.Config("STDP.WMin", sp.WMin, "weight floor must be >= 0")
	case !(sp.WMax >= sp.WMin):
		return errs.Config("STDP.WMax", sp.WMax, "weight ceiling must be >= WMin")
	case sp.Order < 0 || sp.Order >= OrdersN:
		return errs.Config("STDP.Order", float64(sp.Order), "unknown order")
	case !(dt > 0):
		return errs.Config("dt", dt, "time step must be > 0")
	}
	sp.PreDecay = math.Exp(-dt / sp.TauPre)
	sp.PostDecay = math.Exp(-dt / sp.TauPost)
	return nil
}

// ClipWt returns w clipped to [WMin, WMax]
func (sp *Params) ClipWt(w float64) float64 {
	switch {
	case w < sp.WMin:
		return sp.WMin
	case w > sp.WMax:
		return sp.WMax
	}
	return w
}

// Learner holds the trace state and updates the weights of a connectivity.
// It is the only writer of the weights and traces.
type Learner struct {
	Params

	// connectivity whose Wt values are learned
	Conn *conn.Conn

	// trace per pre unit
	PreTrace []float64

	// trace per post unit
	PostTrace []float64
}

// NewLearner returns a learner for the weights of cn with time step dt
func NewLearner(cn *conn.Conn, pars Params, dt float64) (*Learner, error) {
	if err := pars.Update(dt); err != nil {
		return nil, err
	}
	ln := &Learner{Params: pars, Conn: cn}
	ln.PreTrace = make([]float64, cn.PreN)
	ln.PostTrace = make([]float64, cn.PostN)
	return ln, nil
}

// Init zeros the traces
func (ln *Learner) Init() {
	for i := range ln.PreTrace {
		ln.PreTrace[i] = 0
	}
	for i := range ln.PostTrace {
		ln.PostTrace[i] = 0
	}
}

// DecayTraces decays both traces by one step
func (ln *Learner) DecayTraces() {
	for i := range ln.PreTrace {
		ln.PreTrace[i] *= ln.PreDecay
	}
	for i := range ln.PostTrace {
		ln.PostTrace[i] *= ln.PostDecay
	}
}

// PreSpikes increments the pre trace of spiking pre units and depresses
// their outgoing weights by the post trace of the receiving unit.
func (ln *Learner) PreSpikes(spikes []bool) {
	cn := ln.Conn
	for pi, s := range spikes {
		if !s {
			continue
		}
		ln.PreTrace[pi] += ln.A1
		st, ed := cn.SendEdges(pi)
		for ei := st; ei < ed; ei++ {
			cn.Wt[ei] -= ln.PostTrace[cn.Post[ei]]
		}
	}
}

// PostSpikes increments the post trace of spiking post units and potentiates
// their incoming weights by the pre trace of the sending unit.
func (ln *Learner) PostSpikes(spikes []bool) {
	cn := ln.Conn
	for ri, s := range spikes {
		if !s {
			continue
		}
		ln.PostTrace[ri] += ln.A2
		for _, ei := range cn.RecvEdges(ri) {
			cn.Wt[ei] += ln.PreTrace[cn.Pre[ei]]
		}
	}
}

// ClipWts clips all weights to [WMin, WMax]
func (ln *Learner) ClipWts() {
	wt := ln.Conn.Wt
	for i, w := range wt {
		wt[i] = ln.ClipWt(w)
	}
}

// Update runs one learning step from this step's pre and post spikes
func (ln *Learner) Update(pre, post []bool) error {
	if len(pre) != ln.Conn.PreN {
		return errs.Shape("pre spikes", len(pre), ln.Conn.PreN)
	}
	if len(post) != ln.Conn.PostN {
		return errs.Shape("post spikes", len(post), ln.Conn.PostN)
	}
	ln.DecayTraces()
	if ln.Order == PotentiateFirst {
		ln.PostSpikes(post)
		ln.PreSpikes(pre)
	} else {
		ln.PreSpikes(pre)
		ln.PostSpikes(post)
	}
	ln.ClipWts()
	return nil
}
