// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"math"

	"github.com/emer/stdp/errs"
)

// axisTol is the tolerance, relative to Dt, for time axis spacing
const axisTol = 1.0e-6

// Runner lazily steps a network through a time axis, one Next per step:
//
//	rn, err := nt.Run(axis, iPre, iPost)
//	for rn.Next() {
//		out := rn.Output()
//	}
//	if err := rn.Err(); err != nil {
//
// Outputs are not retained.  A Runner cannot be restarted: call
// Network.Init and Run again.
type Runner struct {
	nt    *Network
	axis  []float64
	iPre  [][]float64
	iPost [][]float64
	idx   int
	out   Output
	err   error
}

// Run validates the time axis and input series and returns a Runner for
// them.  timeAxis must start at 0 with spacing Dt.  iPre and iPost hold
// one input vector per time point, each of the population size, or are
// nil for no input.  The network must be at step 0 (new or after Init).  Nothing is run until Next is called.
func (nt *Network) Run(timeAxis []float64, iPre, iPost [][]float64) (*Runner, error) {
	if nt.released {
		return nil, ErrReleased
	}
	if err := nt.checkAxis(timeAxis); err != nil {
		return nil, err
	}
	if err := checkSeries("pre", iPre, len(timeAxis), nt.Pre.N); err != nil {
		return nil, err
	}
	if err := checkSeries("post", iPost, len(timeAxis), nt.Post.N); err != nil {
		return nil, err
	}
	if nt.Time.Cycle != 0 {
		return nil, errs.Config("Time.Cycle", float64(nt.Time.Cycle), "network has already run, call Init before Run")
	}
	rn := &Runner{nt: nt, axis: timeAxis, iPre: iPre, iPost: iPost}
	return rn, nil
}

func (nt *Network) checkAxis(axis []float64) error {
	dt := nt.Time.Dt
	for i, t := range axis {
		if math.Abs(t-float64(i)*dt) > axisTol*dt*math.Max(1, float64(i)) {
			return errs.Config(fmt.Sprintf("timeAxis[%d]", i), t, fmt.Sprintf("time axis must start at 0 with spacing dt = %g", dt))
		}
	}
	return nil
}

func checkSeries(nm string, ser [][]float64, nt, n int) error {
	if ser == nil {
		return nil
	}
	if len(ser) != nt {
		return errs.Shape(nm+" input series", len(ser), nt)
	}
	for i, v := range ser {
		if v != nil && len(v) != n {
			return errs.Shape(fmt.Sprintf("%s input series[%d]", nm, i), len(v), n)
		}
	}
	return nil
}

// Next runs the next step, returning false when the time axis is
// exhausted or a step failed (see Err).
func (rn *Runner) Next() bool {
	if rn.err != nil || rn.idx >= len(rn.axis) {
		return false
	}
	var ip, io []float64
	if rn.iPre != nil {
		ip = rn.iPre[rn.idx]
	}
	if rn.iPost != nil {
		io = rn.iPost[rn.idx]
	}
	out, err := rn.nt.Step(rn.idx, ip, io)
	if err != nil {
		rn.err = err
		return false
	}
	rn.out = out
	rn.idx++
	return true
}

// Output returns the output of the step run by the last Next
func (rn *Runner) Output() Output {
	return rn.out
}

// Index returns the number of steps run so far
func (rn *Runner) Index() int {
	return rn.idx
}

// Err returns the error that stopped the run, if any
func (rn *Runner) Err() error {
	return rn.err
}

// Collect runs all remaining steps and returns their outputs
func (rn *Runner) Collect() ([]Output, error) {
	var outs []Output
	for rn.Next() {
		outs = append(outs, rn.Output())
	}
	return outs, rn.Err()
}

// TimeAxis returns n evenly spaced time points starting at 0 with step dt
func TimeAxis(n int, dt float64) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * dt
	}
	return axis
}
