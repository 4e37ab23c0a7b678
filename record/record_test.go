// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emer/stdp/inputs"
	"github.com/emer/stdp/sim"
)

func TestRecordRun(t *testing.T) {
	ps := &sim.Params{}
	ps.Defaults()
	ps.PreN = 2
	ps.PostN = 3
	err := sim.WithNetwork(ps, func(nt *sim.Network) error {
		lg := NewLog(nt)
		ser := inputs.Pulses(50, 30, [2]int{5, 30})
		rn, err := nt.Run(sim.TimeAxis(50, ps.Dt), inputs.Broadcast(ser, 2), nil)
		if err != nil {
			return err
		}
		nspk := 0
		for rn.Next() {
			o := rn.Output()
			lg.Record(o)
			if o.PreSpike[1] {
				nspk++
			}
		}
		if err := rn.Err(); err != nil {
			return err
		}
		if lg.Table.Rows != 50 {
			t.Errorf("log has %d rows, want 50", lg.Table.Rows)
		}
		if tm := lg.Table.CellFloat("Time", 10); tm != 10 {
			t.Errorf("time at row 10: %v", tm)
		}
		if wt := lg.Value("Wt", 49, 0); wt < 0 {
			t.Errorf("negative logged weight %v", wt)
		}
		rate := lg.Mean("PreSpike")
		if len(rate) != 2 || rate[1] != float64(nspk)/50 {
			t.Errorf("pre spike rate %v, want %v", rate, float64(nspk)/50)
		}
		var b bytes.Buffer
		if err := lg.WriteCSV(&b); err != nil {
			return err
		}
		lines := strings.Split(strings.TrimSpace(b.String()), "\n")
		if len(lines) != 51 {
			t.Errorf("csv has %d lines, want 51", len(lines))
		}
		if !strings.Contains(lines[0], "Step") {
			t.Errorf("csv header missing Step: %s", lines[0])
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
