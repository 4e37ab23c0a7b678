// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package delay provides a fixed-length spike delay line: a ring buffer
// holding the Steps most recent spike vectors of a population.
package delay

import (
	"math"

	"github.com/emer/stdp/errs"
)

// Line delays spike vectors by a fixed number of steps.
// Read returns the vector that was Pushed exactly Steps pushes ago,
// or all false until that many pushes have happened.
type Line struct {

	// number of steps of delay, >= 1
	Steps int

	// number of units in each spike vector
	N int

	// ring buffer of Steps spike vectors
	Buf [][]bool

	// index of the oldest entry in Buf, which is the next one to be overwritten
	Head int
}

// NewLine returns a new delay line of given number of steps, for n units
func NewLine(steps, n int) (*Line, error) {
	if steps < 1 {
		return nil, errs.Config("Delay.Steps", float64(steps), "delay must be >= 1 step")
	}
	if n <= 0 {
		return nil, errs.Config("Delay.N", float64(n), "must be > 0")
	}
	dl := &Line{Steps: steps, N: n}
	dl.Buf = make([][]bool, steps)
	for i := range dl.Buf {
		dl.Buf[i] = make([]bool, n)
	}
	return dl, nil
}

// StepsFmTime returns the number of steps for a delay given in time units,
// rounded to the nearest step.  A delay that rounds below 1 step is an error.
func StepsFmTime(delay, dt float64) (int, error) {
	if !(dt > 0) {
		return 0, errs.Config("dt", dt, "time step must be > 0")
	}
	steps := math.Round(delay / dt)
	if !(steps >= 1) {
		return 0, errs.Config("Delay", delay, "delay must be at least one time step")
	}
	return int(steps), nil
}

// Reset clears all buffered spikes
func (dl *Line) Reset() {
	for _, b := range dl.Buf {
		for i := range b {
			b[i] = false
		}
	}
	dl.Head = 0
}

// Push inserts the current spike vector, evicting the oldest one.
// The values are copied.
func (dl *Line) Push(spikes []bool) error {
	if len(spikes) != dl.N {
		return errs.Shape("delay input spikes", len(spikes), dl.N)
	}
	copy(dl.Buf[dl.Head], spikes)
	dl.Head = (dl.Head + 1) % dl.Steps
	return nil
}

// Read returns the spike vector pushed exactly Steps pushes ago.
// The returned slice is owned by the line and is only valid until
// the next Push.
func (dl *Line) Read() []bool {
	return dl.Buf[dl.Head]
}
