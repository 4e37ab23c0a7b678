// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/stdp/errs"
	"github.com/emer/stdp/lif"
	"golang.org/x/exp/rand"
)

// Params are all the parameters needed to build a Network
type Params struct {

	// simulation time step, in the same units as all time constants (msec)
	Dt float64 `def:"1" min:"0" yaml:"dt"`

	// random seed for connectivity and weight initialization
	Seed uint64 `yaml:"seed"`

	// number of pre (sending) units
	PreN int `def:"1" min:"1" yaml:"pre_n"`

	// number of post (receiving) units
	PostN int `def:"1" min:"1" yaml:"post_n"`

	// pre population membrane parameters
	Pre lif.Params `view:"inline" yaml:"pre"`

	// post population membrane parameters
	Post lif.Params `view:"inline" yaml:"post"`

	// projection from pre to post
	Prjn PrjnParams `view:"inline" yaml:"prjn"`
}

func (ps *Params) Defaults() {
	ps.Dt = 1
	ps.Seed = 1
	ps.PreN = 1
	ps.PostN = 1
	ps.Pre.Defaults()
	ps.Post.Defaults()
	ps.Prjn.Defaults()
}

// Network is a pre population driving a post population through a single
// plastic projection.  It bundles all mutable simulation state and has
// a single owner: it is not safe for concurrent use.  Steps are strictly
// sequential, and a Network cannot be rewound -- build a new one to
// restart.
type Network struct {

	// timing state
	Time Time

	// sending population
	Pre *lif.Pop

	// receiving population
	Post *lif.Pop

	// projection from Pre to Post
	Prjn *Projection

	// total input current to Post on the last step: external + synaptic
	PostIn []float64

	// error that halted the network, if any
	halt error

	released bool
}

// NewNetwork returns a network running the given projection, whose
// populations become owned by the network.  dt must be the time step
// the projection was built with.
func NewNetwork(prj *Projection, dt float64) (*Network, error) {
	if !(dt > 0) {
		return nil, errs.Config("Dt", dt, "time step must be > 0")
	}
	if prj == nil {
		return nil, errs.Config("Prjn", 0, "projection must not be nil")
	}
	if dt != prj.Dt {
		return nil, errs.Config("Dt", dt, fmt.Sprintf("does not match projection time step %g", prj.Dt))
	}
	nt := &Network{Pre: prj.Pre, Post: prj.Post, Prjn: prj}
	nt.Time.Dt = dt
	nt.PostIn = make([]float64, prj.Post.N)
	return nt, nil
}

// Build constructs populations, projection and network from ps
func Build(ps *Params) (*Network, error) {
	if !(ps.Dt > 0) {
		return nil, errs.Config("Dt", ps.Dt, "time step must be > 0")
	}
	pre, err := lif.NewPop(ps.PreN, ps.Pre)
	if err != nil {
		return nil, fmt.Errorf("pre population: %w", err)
	}
	post, err := lif.NewPop(ps.PostN, ps.Post)
	if err != nil {
		return nil, fmt.Errorf("post population: %w", err)
	}
	src := rand.NewSource(ps.Seed)
	prj, err := NewProjection(pre, post, ps.Prjn, ps.Dt, src)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	return NewNetwork(prj, ps.Dt)
}

// WithNetwork builds a network from ps, calls fn with it, and releases it
// on every exit path.
func WithNetwork(ps *Params, fn func(nt *Network) error) error {
	nt, err := Build(ps)
	if err != nil {
		return err
	}
	defer nt.Release()
	return fn(nt)
}

// Init resets the network to its state before the first step: membrane
// potentials, delay line, conductances, traces and time counters.
// Learned weights are kept.  A halted network stays halted.
func (nt *Network) Init() error {
	if nt.released {
		return ErrReleased
	}
	nt.Pre.Init()
	nt.Post.Init()
	nt.Prjn.Init()
	for i := range nt.PostIn {
		nt.PostIn[i] = 0
	}
	nt.Time.Reset()
	return nil
}

// Released returns true once Release has been called
func (nt *Network) Released() bool {
	return nt.released
}

// Release drops all state buffers.  The network cannot be used afterward.
// It is safe to call more than once.
func (nt *Network) Release() {
	if nt.released {
		return
	}
	nt.released = true
	nt.Pre = nil
	nt.Post = nil
	nt.Prjn = nil
	nt.PostIn = nil
}

// Step runs time step i, which must be the next step (Time.Cycle),
// with external input currents iPre and iPost (nil = no input),
// in this fixed order:
//
//  1. read the delayed pre spikes, update conductances and compute the
//     synaptic current from the post units' current membrane potential
//  2. integrate the pre and post populations
//  3. push this step's pre spikes into the delay line and update traces
//     and weights from this step's pre and post spikes
//
// The step index and input lengths are checked before any state changes.  A numerical
// instability halts the network: every later Step returns the same error.
func (nt *Network) Step(i int, iPre, iPost []float64) (Output, error) {
	if nt.released {
		return Output{}, ErrReleased
	}
	if nt.halt != nil {
		return Output{}, nt.halt
	}
	if i != nt.Time.Cycle {
		return Output{}, errs.Config("step", float64(i), fmt.Sprintf("steps must be run in order, next step is %d", nt.Time.Cycle))
	}
	if iPre != nil && len(iPre) != nt.Pre.N {
		return Output{}, errs.Shape("pre input current", len(iPre), nt.Pre.N)
	}
	if iPost != nil && len(iPost) != nt.Post.N {
		return Output{}, errs.Shape("post input current", len(iPost), nt.Post.N)
	}
	if err := nt.step(iPre, iPost); err != nil {
		nt.halt = atStep(err, i)
		return Output{}, nt.halt
	}
	nt.Time.CycleInc()
	return nt.Output(i), nil
}

func (nt *Network) step(iPre, iPost []float64) error {
	pj := nt.Prjn
	dt := nt.Time.Dt
	if err := pj.SendSyn(); err != nil {
		return err
	}
	for ri, is := range pj.ISyn {
		nt.PostIn[ri] = is
		if iPost != nil {
			nt.PostIn[ri] += iPost[ri]
		}
	}
	preSpk, err := nt.Pre.Integrate(iPre, dt)
	if err != nil {
		return err
	}
	postSpk, err := nt.Post.Integrate(nt.PostIn, dt)
	if err != nil {
		return err
	}
	if err := pj.LearnSpikes(preSpk, postSpk); err != nil {
		return err
	}
	return pj.CheckFinite()
}

// SizeReport returns a string reporting the size of each population and
// of the projection, and the total memory footprint of the state buffers.
func (nt *Network) SizeReport() string {
	if nt.released {
		return "released\n"
	}
	var b strings.Builder
	f64 := int(unsafe.Sizeof(float64(0)))
	popMem := func(pp *lif.Pop) int {
		return pp.N * (2*f64 + int(unsafe.Sizeof(false)))
	}
	pj := nt.Prjn
	fmt.Fprintf(&b, "%8s:\t Neurons: %d\t NeurMem: %v\n", "Pre", nt.Pre.N, (datasize.ByteSize)(popMem(nt.Pre)).HumanReadable())
	fmt.Fprintf(&b, "%8s:\t Neurons: %d\t NeurMem: %v\n", "Post", nt.Post.N, (datasize.ByteSize)(popMem(nt.Post)).HumanReadable())
	b.WriteString(pj.Conn.SizeReport())
	dmem := pj.Delay.Steps * pj.Delay.N * int(unsafe.Sizeof(false))
	smem := (len(pj.Syn.G) + len(pj.Syn.GPost) + len(pj.Learn.PreTrace) + len(pj.Learn.PostTrace) + len(pj.ISyn)) * f64
	fmt.Fprintf(&b, "Delay: %d steps\t DelayMem: %v\t SynMem: %v\n", pj.Delay.Steps,
		(datasize.ByteSize)(dmem).HumanReadable(), (datasize.ByteSize)(smem).HumanReadable())
	return b.String()
}

func checkFinite(what string, vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.Numerical(what, i, -1)
		}
	}
	return nil
}
