// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record collects the per-step outputs of a network run
// into an etable.Table, one row per step.
package record

import (
	"io"
	"strconv"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/stdp/sim"
)

// LogPrec is the precision for saving float values in logs
const LogPrec = 6

// Log is a table of step outputs.  Per-unit and per-edge values are
// stored as 1D tensor cells.
type Log struct {

	// the log table
	Table *etable.Table

	// number of pre units
	PreN int

	// number of post units
	PostN int

	// number of edges
	NEdges int
}

// NewLog returns a new empty log sized for network nt
func NewLog(nt *sim.Network) *Log {
	lg := &Log{PreN: nt.Pre.N, PostN: nt.Post.N, NEdges: nt.Prjn.Conn.NEdges()}
	lg.Table = &etable.Table{}
	lg.ConfigLog(lg.Table)
	return lg
}

// ConfigLog configures the columns of dt
func (lg *Log) ConfigLog(dt *etable.Table) {
	dt.SetMetaData("name", "StepLog")
	dt.SetMetaData("desc", "Record of network state per time step")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	pre := []int{lg.PreN}
	post := []int{lg.PostN}
	unit := []string{"Unit"}
	sch := etable.Schema{
		{"Step", etensor.INT64, nil, nil},
		{"Time", etensor.FLOAT64, nil, nil},
		{"PreSpike", etensor.FLOAT64, pre, unit},
		{"PostSpike", etensor.FLOAT64, post, unit},
		{"G", etensor.FLOAT64, post, unit},
		{"PreTrace", etensor.FLOAT64, pre, unit},
		{"PostTrace", etensor.FLOAT64, post, unit},
		{"ISyn", etensor.FLOAT64, post, unit},
	}
	if lg.NEdges > 0 {
		sch = append(sch, etable.Column{"Wt", etensor.FLOAT64, []int{lg.NEdges}, []string{"Edge"}})
	}
	dt.SetFromSchema(sch, 0)
}

// Record adds a row for the step output o
func (lg *Log) Record(o sim.Output) {
	dt := lg.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Step", row, float64(o.Step))
	dt.SetCellFloat("Time", row, o.Time)
	setBools(dt, "PreSpike", row, o.PreSpike)
	setBools(dt, "PostSpike", row, o.PostSpike)
	setFloats(dt, "G", row, o.G)
	setFloats(dt, "PreTrace", row, o.PreTrace)
	setFloats(dt, "PostTrace", row, o.PostTrace)
	setFloats(dt, "ISyn", row, o.ISyn)
	if lg.NEdges > 0 {
		setFloats(dt, "Wt", row, o.Wt)
	}
}

func setFloats(dt *etable.Table, col string, row int, vals []float64) {
	for i, v := range vals {
		dt.SetCellTensorFloat1D(col, row, i, v)
	}
}

func setBools(dt *etable.Table, col string, row int, vals []bool) {
	for i, v := range vals {
		fv := 0.0
		if v {
			fv = 1
		}
		dt.SetCellTensorFloat1D(col, row, i, fv)
	}
}

// Value returns the value of element idx of column col at row
func (lg *Log) Value(col string, row, idx int) float64 {
	return lg.Table.CellTensorFloat1D(col, row, idx)
}

// Mean returns the mean over all rows of each element of column col,
// e.g., the firing rate per unit for a spike column.
func (lg *Log) Mean(col string) []float64 {
	ix := etable.NewIdxView(lg.Table)
	return agg.Mean(ix, col)
}

// WriteCSV writes the whole log to w as comma separated values with headers
func (lg *Log) WriteCSV(w io.Writer) error {
	return lg.Table.WriteCSV(w, etable.Comma, etable.Headers)
}
