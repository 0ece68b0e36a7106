// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space derives the linear RGB to XYZ transformation matrix
// pair of an RGB color space from the chromaticities of its three
// primaries and its reference white point, using the standard scaled
// primaries method of colorimetry.
package space

import (
	"errors"
	"fmt"

	"cogentcore.org/spacegen/cie"
	"cogentcore.org/spacegen/mat3"
)

// ErrSingularPrimaries is returned by [Derive] when the three primary
// chromaticities are collinear or otherwise degenerate, making the
// primary matrix singular.
var ErrSingularPrimaries = errors.New("space: singular primary matrix")

// SRGBTransfer is the name of the standard sRGB nonlinear encoding,
// the default transfer function of a [Spec] that does not name one.
const SRGBTransfer = "Srgb"

// Primaries are the chromaticities of the three base colors whose
// linear combinations span an RGB color space.
type Primaries struct {
	Red   cie.Chromaticity
	Green cie.Chromaticity
	Blue  cie.Chromaticity
}

// Validate returns the first invalid primary chromaticity error, if any.
func (p Primaries) Validate() error {
	if err := p.Red.Validate(); err != nil {
		return fmt.Errorf("red: %w", err)
	}
	if err := p.Green.Validate(); err != nil {
		return fmt.Errorf("green: %w", err)
	}
	if err := p.Blue.Validate(); err != nil {
		return fmt.Errorf("blue: %w", err)
	}
	return nil
}

// Spec specifies an RGB color space to derive: a name, the reference
// white point, the three primary chromaticities, and the name of the
// nonlinear transfer encoding (referenced only, never computed here).
type Spec struct {

	// Name is the identifier of the color space in emitted code.
	Name string

	// White is the name of the reference white point.
	White cie.WhitePoint

	// Primaries are the red, green and blue primary chromaticities.
	Primaries Primaries

	// Transfer is the name of the transfer function; [SRGBTransfer]
	// if empty.
	Transfer string
}

// TransferOrDefault returns the transfer function name,
// or [SRGBTransfer] if none is set.
func (s *Spec) TransferOrDefault() string {
	if s.Transfer == "" {
		return SRGBTransfer
	}
	return s.Transfer
}

// Space is a fully derived color space definition: the input [Spec]
// plus the white point tristimulus values, the per-primary luminance
// coefficients, and the RGB to XYZ matrix pair. It is constructed once
// by [Derive] and never mutated.
type Space struct {
	Spec

	// WhiteXYZ is the reference white tristimulus vector (Y = 1).
	WhiteXYZ mat3.Vector3

	// LumaR, LumaG, LumaB are the per-primary luminance coefficients:
	// the Y row of [Space.RGBToXYZ], quantifying the contribution of
	// each primary to overall luminance.
	LumaR, LumaG, LumaB float64

	// RGBToXYZ maps linear RGB tristimulus values to CIE XYZ.
	// Applied to (1, 1, 1) it yields WhiteXYZ.
	RGBToXYZ mat3.Matrix3

	// XYZToRGB is the inverse of RGBToXYZ.
	XYZToRGB mat3.Matrix3
}

// Derive derives the full color space definition from the given spec.
// The unnormalized primary matrix has the XYZ of each primary at Y = 1
// as its columns; solving it against the white point vector gives the
// per-primary scale factors that make the space map RGB (1, 1, 1) to
// the reference white.
//
// It returns an error wrapping [cie.ErrInvalidChromaticity],
// [cie.ErrUnknownWhitePoint], or [ErrSingularPrimaries] for invalid
// input; every error names the offending color space.
func Derive(s Spec) (*Space, error) {
	if err := s.Primaries.Validate(); err != nil {
		return nil, fmt.Errorf("space %q: %w", s.Name, err)
	}
	wp, err := s.White.XYZ()
	if err != nil {
		return nil, fmt.Errorf("space %q: %w", s.Name, err)
	}

	prim := mat3.FromCols(s.Primaries.Red.XYZ(), s.Primaries.Green.XYZ(), s.Primaries.Blue.XYZ())
	inv, err := prim.Inverse()
	if err != nil {
		return nil, fmt.Errorf("space %q: %w: %w", s.Name, ErrSingularPrimaries, err)
	}
	scale := inv.MulVector3(wp)

	rgb2xyz := prim.MulCols(scale)
	xyz2rgb, err := rgb2xyz.Inverse()
	if err != nil {
		return nil, fmt.Errorf("space %q: %w: %w", s.Name, ErrSingularPrimaries, err)
	}

	luma := rgb2xyz.Row(1)
	sp := &Space{
		Spec:     s,
		WhiteXYZ: wp,
		LumaR:    luma.X,
		LumaG:    luma.Y,
		LumaB:    luma.Z,
		RGBToXYZ: rgb2xyz,
		XYZToRGB: xyz2rgb,
	}
	sp.Transfer = sp.TransferOrDefault()
	return sp, nil
}
