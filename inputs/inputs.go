// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inputs generates input current waveforms as plain series
// suitable for Network.Run.
package inputs

import (
	"math"

	"github.com/emer/stdp/errs"
)

// Section returns a piecewise constant waveform: levels[i] held for
// durations[i] time units, at time step dt.  Section boundaries are
// rounded to the nearest step from their cumulative time, so the total
// length is round(sum(durations) / dt).
func Section(levels, durations []float64, dt float64) ([]float64, error) {
	if len(levels) != len(durations) {
		return nil, errs.Shape("durations", len(durations), len(levels))
	}
	if !(dt > 0) {
		return nil, errs.Config("dt", dt, "time step must be > 0")
	}
	var ser []float64
	end := 0.0
	for i, lv := range levels {
		dur := durations[i]
		if !(dur >= 0) {
			return nil, errs.Config("duration", dur, "must be >= 0")
		}
		end += dur
		for n := int(math.Round(end / dt)); len(ser) < n; {
			ser = append(ser, lv)
		}
	}
	return ser, nil
}

// Broadcast expands a scalar series into one vector of n equal values
// per time point
func Broadcast(ser []float64, n int) [][]float64 {
	out := make([][]float64, len(ser))
	for i, v := range ser {
		vec := make([]float64, n)
		for j := range vec {
			vec[j] = v
		}
		out[i] = vec
	}
	return out
}

// Pulses returns a series of nsteps values that is amp within each
// [start, end) step range given in pairs, and 0 elsewhere
func Pulses(nsteps int, amp float64, ranges ...[2]int) []float64 {
	ser := make([]float64, nsteps)
	for _, rg := range ranges {
		for i := max(rg[0], 0); i < min(rg[1], nsteps); i++ {
			ser[i] = amp
		}
	}
	return ser
}
