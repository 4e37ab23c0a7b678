// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"

	"github.com/emer/stdp/errs"
)

// The error types returned by construction, Step and Run.
// See package errs for details.
type (
	ConfigurationError        = errs.ConfigurationError
	ShapeMismatchError        = errs.ShapeMismatchError
	NumericalInstabilityError = errs.NumericalInstabilityError
)

var (
	ErrConfig    = errs.ErrConfig
	ErrShape     = errs.ErrShape
	ErrNumerical = errs.ErrNumerical

	// ErrReleased is returned by Step and Run after Release
	ErrReleased = errors.New("network has been released")
)

// atStep records the step index in a numerical instability error
func atStep(err error, step int) error {
	var nerr *errs.NumericalInstabilityError
	if errors.As(err, &nerr) {
		nerr.Step = step
	}
	return err
}
