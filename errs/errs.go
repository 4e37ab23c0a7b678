// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package errs defines the error taxonomy shared by all simulation packages:
configuration errors detected at construction, shape mismatches detected at
step entry, and numerical instability detected after integration.
Use errors.Is with ErrConfig, ErrShape or ErrNumerical to classify, or
errors.As with the typed errors to get the details.
*/
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigurationError
	ErrConfig = errors.New("configuration error")

	// ErrShape is matched by every *ShapeMismatchError
	ErrShape = errors.New("shape mismatch")

	// ErrNumerical is matched by every *NumericalInstabilityError
	ErrNumerical = errors.New("numerical instability")
)

// ConfigurationError reports an invalid parameter value.
type ConfigurationError struct {
	// Param is the name of the offending parameter, e.g., "Tau"
	Param string

	// Value is the rejected value
	Value float64

	// Reason says what the value must satisfy
	Reason string
}

// Config returns a new *ConfigurationError
func Config(param string, val float64, reason string) error {
	return &ConfigurationError{Param: param, Value: val, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s = %g: %s", ErrConfig, e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfig }

// ShapeMismatchError reports a slice whose length does not match
// the size it is applied to.
type ShapeMismatchError struct {
	// What names the mismatched input
	What string

	Got  int
	Want int
}

// Shape returns a new *ShapeMismatchError
func Shape(what string, got, want int) error {
	return &ShapeMismatchError{What: what, Got: got, Want: want}
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: %s has length %d, want %d", ErrShape, e.What, e.Got, e.Want)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShape }

// NumericalInstabilityError reports a non-finite state value,
// typically from a dt that is too large relative to the time constants.
type NumericalInstabilityError struct {
	// What names the state variable, e.g., "V"
	What string

	// Index of the first non-finite element
	Index int

	// Step is the time step at which it was detected, -1 if unknown
	Step int
}

// Numerical returns a new *NumericalInstabilityError
func Numerical(what string, idx, step int) error {
	return &NumericalInstabilityError{What: what, Index: idx, Step: step}
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("%v: %s[%d] is not finite at step %d", ErrNumerical, e.What, e.Index, e.Step)
}

func (e *NumericalInstabilityError) Is(target error) bool { return target == ErrNumerical }
