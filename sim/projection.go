// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"github.com/emer/stdp/chans"
	"github.com/emer/stdp/conn"
	"github.com/emer/stdp/delay"
	"github.com/emer/stdp/errs"
	"github.com/emer/stdp/lif"
	"github.com/emer/stdp/stdp"
	"github.com/emer/stdp/syn"
	"golang.org/x/exp/rand"
)

// PrjnParams are all the parameters of a plastic, delayed,
// conductance-based projection.
type PrjnParams struct {

	// transmission delay of pre spikes, in time units -- rounded to whole steps, >= 1 step
	Delay float64 `def:"1" yaml:"delay"`

	// probability of each pre x post connection
	Prob float64 `def:"1" min:"0" max:"1" yaml:"prob"`

	// initial weight values
	WtInit conn.WtInit `view:"inline" yaml:"wt_init"`

	// exponential synapse conductance
	Syn syn.Params `view:"inline" yaml:"syn"`

	// synaptic current from conductance
	COBA chans.COBA `view:"inline" yaml:"coba"`

	// spike-timing-dependent plasticity
	STDP stdp.Params `view:"inline" yaml:"stdp"`
}

func (pp *PrjnParams) Defaults() {
	pp.Delay = 1
	pp.Prob = 1
	pp.WtInit.Defaults()
	pp.Syn.Defaults()
	pp.COBA.Defaults()
	pp.STDP.Defaults()
}

// Projection is the set of plastic synapses from a Pre to a Post population.
// It owns the delay line, conductance and trace state, and the weights.
type Projection struct {

	// parameters used to build the projection
	Params PrjnParams

	// sending population
	Pre *lif.Pop

	// receiving population
	Post *lif.Pop

	// connectivity and weights
	Conn *conn.Conn

	// delay line for pre spikes
	Delay *delay.Line

	// synaptic conductances
	Syn *syn.Expon

	// weight learning
	Learn *stdp.Learner

	// current injected into each post unit on the last step
	ISyn []float64

	// time step the decay factors were computed for
	Dt float64
}

// NewProjection builds a projection from pre to post for time step dt,
// sampling connectivity and then initial weights from src.
func NewProjection(pre, post *lif.Pop, pars PrjnParams, dt float64, src rand.Source) (*Projection, error) {
	if pre == nil || post == nil {
		return nil, errs.Config("Pop", 0, "pre and post populations must not be nil")
	}
	cn, err := conn.FixedProb(pre.N, post.N, pars.Prob, src)
	if err != nil {
		return nil, err
	}
	if err := cn.InitWeights(&pars.WtInit, src); err != nil {
		return nil, err
	}
	return NewProjectionConn(pre, post, cn, pars, dt)
}

// NewProjectionConn builds a projection using existing connectivity cn,
// whose weights must already be initialized.  Its sizes must match the
// populations.  Prob and WtInit in pars are not used.
func NewProjectionConn(pre, post *lif.Pop, cn *conn.Conn, pars PrjnParams, dt float64) (*Projection, error) {
	if pre == nil || post == nil {
		return nil, errs.Config("Pop", 0, "pre and post populations must not be nil")
	}
	if cn == nil {
		return nil, errs.Config("Conn", 0, "connectivity must not be nil")
	}
	if cn.PreN != pre.N {
		return nil, errs.Config("Conn.PreN", float64(cn.PreN), fmt.Sprintf("does not match pre population size %d", pre.N))
	}
	if cn.PostN != post.N {
		return nil, errs.Config("Conn.PostN", float64(cn.PostN), fmt.Sprintf("does not match post population size %d", post.N))
	}
	steps, err := delay.StepsFmTime(pars.Delay, dt)
	if err != nil {
		return nil, err
	}
	pj := &Projection{Params: pars, Pre: pre, Post: post, Conn: cn, Dt: dt}
	if pj.Delay, err = delay.NewLine(steps, pre.N); err != nil {
		return nil, err
	}
	if pj.Syn, err = syn.NewExpon(cn, pars.Syn, dt); err != nil {
		return nil, err
	}
	if pj.Learn, err = stdp.NewLearner(cn, pars.STDP, dt); err != nil {
		return nil, err
	}
	pj.ISyn = make([]float64, post.N)
	return pj, nil
}

// Init clears the delay line, conductances, traces and current.
// Weights are kept.
func (pj *Projection) Init() {
	pj.Delay.Reset()
	pj.Syn.Init()
	pj.Learn.Init()
	for i := range pj.ISyn {
		pj.ISyn[i] = 0
	}
}

// SendSyn reads the delayed pre spikes, updates the conductances and
// computes the synaptic current into each post unit from the post
// population's current (not yet updated) membrane potential.
func (pj *Projection) SendSyn() error {
	if err := pj.Syn.Update(pj.Delay.Read()); err != nil {
		return err
	}
	return pj.Params.COBA.CurrentFmG(pj.Syn.GPost, pj.Post.V, pj.ISyn)
}

// LearnSpikes records this step's pre spikes in the delay line and updates the
// traces and weights from this step's pre and post spikes.
func (pj *Projection) LearnSpikes(pre, post []bool) error {
	if err := pj.Delay.Push(pre); err != nil {
		return err
	}
	return pj.Learn.Update(pre, post)
}

// CheckFinite returns a NumericalInstabilityError for the first non-finite
// conductance, trace or weight.
func (pj *Projection) CheckFinite() error {
	if err := checkFinite("G", pj.Syn.GPost); err != nil {
		return err
	}
	if err := checkFinite("ISyn", pj.ISyn); err != nil {
		return err
	}
	if err := checkFinite("PreTrace", pj.Learn.PreTrace); err != nil {
		return err
	}
	if err := checkFinite("PostTrace", pj.Learn.PostTrace); err != nil {
		return err
	}
	return checkFinite("Wt", pj.Conn.Wt)
}
