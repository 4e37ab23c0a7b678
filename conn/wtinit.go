// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import (
	"fmt"

	"github.com/emer/stdp/errs"
	"github.com/goki/ki/kit"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// WtInitKinds are the ways of initializing the weight of each edge
type WtInitKinds int

//go:generate stringer -type=WtInitKinds

var KiT_WtInitKinds = kit.Enums.AddEnum(WtInitKindsN, kit.NotBitFlag, nil)

func (ev WtInitKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *WtInitKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// MarshalText supports text-based formats such as YAML
func (ev WtInitKinds) MarshalText() ([]byte, error) { return []byte(ev.String()), nil }

// UnmarshalText supports text-based formats such as YAML
func (ev *WtInitKinds) UnmarshalText(b []byte) error { return ev.FromString(string(b)) }

// FromString sets the value from its name
func (ev *WtInitKinds) FromString(s string) error {
	for i := WtInitKinds(0); i < WtInitKindsN; i++ {
		if i.String() == s {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("String %v is not a valid option for type WtInitKinds", s)
}

// The weight initialization kinds
const (
	// UniformRandom draws each weight uniformly from [Min, Max)
	UniformRandom WtInitKinds = iota

	// Constant sets every weight to Value
	Constant

	// Custom calls Fn for each edge
	Custom

	WtInitKindsN
)

// WtInit specifies how weights are initialized.  It is resolved into
// the concrete weight array once, at construction time.
type WtInit struct {

	// which kind of initialization to use
	Kind WtInitKinds `yaml:"kind"`

	// minimum for UniformRandom
	Min float64 `viewif:"Kind=UniformRandom" yaml:"min"`

	// maximum (exclusive) for UniformRandom
	Max float64 `viewif:"Kind=UniformRandom" def:"0.1" yaml:"max"`

	// weight for Constant
	Value float64 `viewif:"Kind=Constant" yaml:"value"`

	// function for Custom, given the edge index and its pre and post unit indexes
	Fn func(edge, pre, post int) float64 `view:"-" json:"-" yaml:"-"`
}

func (wi *WtInit) Defaults() {
	wi.Kind = UniformRandom
	wi.Min = 0
	wi.Max = 0.1
	wi.Value = 0.05
}

// Validate returns a ConfigurationError for an unusable specification
func (wi *WtInit) Validate() error {
	switch wi.Kind {
	case UniformRandom:
		if !(wi.Min >= 0) {
			return errs.Config("WtInit.Min", wi.Min, "weights must be >= 0")
		}
		if !(wi.Max >= wi.Min) {
			return errs.Config("WtInit.Max", wi.Max, "must be >= Min")
		}
	case Constant:
		if !(wi.Value >= 0) {
			return errs.Config("WtInit.Value", wi.Value, "weights must be >= 0")
		}
	case Custom:
		if wi.Fn == nil {
			return errs.Config("WtInit.Fn", 0, "Custom weight init requires a function")
		}
	default:
		return errs.Config("WtInit.Kind", float64(wi.Kind), "unknown weight init kind")
	}
	return nil
}

// InitWeights assigns every edge a weight according to wi,
// drawing random values from src in edge order.
func (cn *Conn) InitWeights(wi *WtInit, src rand.Source) error {
	if err := wi.Validate(); err != nil {
		return err
	}
	switch wi.Kind {
	case UniformRandom:
		un := distuv.Uniform{Min: wi.Min, Max: wi.Max, Src: src}
		for i := range cn.Wt {
			cn.Wt[i] = un.Rand()
		}
	case Constant:
		for i := range cn.Wt {
			cn.Wt[i] = wi.Value
		}
	case Custom:
		for i := range cn.Wt {
			w := wi.Fn(i, int(cn.Pre[i]), int(cn.Post[i]))
			if !(w >= 0) {
				return errs.Config("Wt", w, fmt.Sprintf("custom weight for edge %d must be >= 0", i))
			}
			cn.Wt[i] = w
		}
	}
	return nil
}
