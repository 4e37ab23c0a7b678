// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// sim.Time contains the timing state and parameters for running a network
type Time struct {

	// amount of simulated time per step, typically in msec
	Dt float64 `def:"1" min:"0"`

	// step counter: number of steps run since the network was built
	Cycle int

	// accumulated amount of simulated time = Cycle * Dt
	Time float64
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Cycle = 0
	tm.Time = 0
}

// CycleInc increments at the step level.  Time is recomputed from the
// counter rather than accumulated, so it has no rounding drift.
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time = float64(tm.Cycle) * tm.Dt
}

// TimeAt returns the simulated time at step index i
func (tm *Time) TimeAt(i int) float64 {
	return float64(i) * tm.Dt
}
