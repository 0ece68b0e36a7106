// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE chromaticity and standard illuminant
// values from which the spacegen color space matrices are derived.
package cie

import (
	"errors"
	"fmt"

	"cogentcore.org/spacegen/mat3"
)

// ErrInvalidChromaticity is returned by [Chromaticity.Validate] for
// coordinates outside the valid chromaticity domain.
var ErrInvalidChromaticity = errors.New("cie: invalid chromaticity")

// Chromaticity is a point (x, y) in the CIE 1931 chromaticity diagram:
// the normalized 2D projection of a color's tristimulus values,
// independent of luminance. Valid coordinates have y > 0, x >= 0,
// and x + y <= 1.
type Chromaticity struct {
	X float64
	Y float64
}

// C returns a new [Chromaticity] with the given x and y coordinates.
func C(x, y float64) Chromaticity {
	return Chromaticity{x, y}
}

// Validate returns an error wrapping [ErrInvalidChromaticity] if the
// coordinates are outside the valid chromaticity domain. A y of 0 in
// particular would make the tristimulus projection divide by zero.
func (c Chromaticity) Validate() error {
	if c.Y <= 0 {
		return fmt.Errorf("%w: (%g, %g): y must be > 0", ErrInvalidChromaticity, c.X, c.Y)
	}
	if c.X < 0 {
		return fmt.Errorf("%w: (%g, %g): x must be >= 0", ErrInvalidChromaticity, c.X, c.Y)
	}
	if c.X+c.Y > 1 {
		return fmt.Errorf("%w: (%g, %g): x + y must be <= 1", ErrInvalidChromaticity, c.X, c.Y)
	}
	return nil
}

// XYZ returns the tristimulus values of this chromaticity at luminance
// Y = 1: X = x/y, Y = 1, Z = (1-x-y)/y. The chromaticity must be valid
// (see [Chromaticity.Validate]); XYZ on a chromaticity with y = 0 is
// a divide by zero.
func (c Chromaticity) XYZ() mat3.Vector3 {
	return mat3.V3(c.X/c.Y, 1, (1-c.X-c.Y)/c.Y)
}
