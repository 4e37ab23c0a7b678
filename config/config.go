// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package config has the YAML configuration of a simulation run:
network parameters, the input current waveforms, and the run settings.
Defaults reproduce the two neuron STDP pairing experiment: a 300 msec run
at dt = 0.1 with repeated 15 msec current pulses into each neuron, the
post pulses starting 5 msec after the pre pulses in the first block
and 5 msec before them in the second block.
*/
package config

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/emer/stdp/errs"
	"github.com/emer/stdp/inputs"
	"github.com/emer/stdp/sim"
	"gopkg.in/yaml.v3"
)

// Waveform is a piecewise constant input current: Levels[i] held for Durations[i]
type Waveform struct {

	// current level of each section
	Levels []float64 `yaml:"levels"`

	// duration of each section, in time units
	Durations []float64 `yaml:"durations"`
}

// Series returns the waveform sampled at time step dt
func (wf *Waveform) Series(dt float64) ([]float64, error) {
	return inputs.Section(wf.Levels, wf.Durations, dt)
}

// Config has the overall run configuration
type Config struct {

	// network parameters
	Net sim.Params `yaml:"net"`

	// total duration of the run, in time units
	Duration float64 `def:"300" yaml:"duration"`

	// input current into every pre unit
	PreInput Waveform `yaml:"pre_input"`

	// input current into every post unit
	PostInput Waveform `yaml:"post_input"`

	// file to save the step log to as CSV -- empty for none
	Out string `yaml:"out"`

	// log level: info, debug or trace
	LogLevel string `def:"info" yaml:"log_level"`
}

func (cf *Config) Defaults() {
	cf.Net.Defaults()
	cf.Net.Dt = 0.1
	cf.Net.Seed = 1
	cf.Duration = 300
	cf.PreInput = Waveform{
		Levels:    []float64{0, 30, 0, 30, 0, 30, 0, 30, 0, 30, 0, 30, 0},
		Durations: []float64{5, 15, 15, 15, 15, 15, 100, 15, 15, 15, 15, 15, 45},
	}
	cf.PostInput = Waveform{
		Levels:    []float64{0, 30, 0, 30, 0, 30, 0, 30, 0, 30, 0, 30, 0},
		Durations: []float64{10, 15, 15, 15, 15, 15, 90, 15, 15, 15, 15, 15, 50},
	}
	cf.LogLevel = "info"
}

// Steps returns the number of time steps in the run
func (cf *Config) Steps() int {
	return int(math.Round(cf.Duration / cf.Net.Dt))
}

// Validate checks the run settings.  Network parameters are
// checked when the network is built.
func (cf *Config) Validate() error {
	if !(cf.Net.Dt > 0) {
		return errs.Config("net.dt", cf.Net.Dt, "time step must be > 0")
	}
	if !(cf.Duration >= 0) {
		return errs.Config("duration", cf.Duration, "must be >= 0")
	}
	return nil
}

// Inputs returns the time axis and the per-unit pre and post input series
func (cf *Config) Inputs() (axis []float64, iPre, iPost [][]float64, err error) {
	if err := cf.Validate(); err != nil {
		return nil, nil, nil, err
	}
	n := cf.Steps()
	pre, err := fit("pre_input", &cf.PreInput, cf.Net.Dt, n)
	if err != nil {
		return nil, nil, nil, err
	}
	post, err := fit("post_input", &cf.PostInput, cf.Net.Dt, n)
	if err != nil {
		return nil, nil, nil, err
	}
	return sim.TimeAxis(n, cf.Net.Dt), inputs.Broadcast(pre, cf.Net.PreN), inputs.Broadcast(post, cf.Net.PostN), nil
}

// fit samples the waveform, which must cover exactly n steps
func fit(nm string, wf *Waveform, dt float64, n int) ([]float64, error) {
	ser, err := wf.Series(dt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nm, err)
	}
	if len(ser) != n {
		return nil, errs.Shape(nm+" waveform steps", len(ser), n)
	}
	return ser, nil
}

// Load returns the defaults overridden by the YAML file at path
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read returns the defaults overridden by the YAML read from r
func Read(r io.Reader) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cf, nil
}

// Write writes cf to w as YAML
func (cf *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cf); err != nil {
		return err
	}
	return enc.Close()
}
