// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"

	"cogentcore.org/spacegen/mat3"
)

// ErrUnknownWhitePoint is returned when a white point name is not in
// the standard illuminant table.
var ErrUnknownWhitePoint = errors.New("cie: unknown white point")

// WhitePoint is the name of a standard illuminant, used as the
// reference white of an RGB color space. The set of recognized names
// is fixed; see [WhitePoint.XYZ].
type WhitePoint string

// Standard illuminants. The D series are daylight illuminants at the
// indicated correlated color temperature; E is the equal-energy
// illuminant; DCI is the theatrical projection white of DCI-P3.
const (
	D50 WhitePoint = "D50"
	D55 WhitePoint = "D55"
	D65 WhitePoint = "D65"
	D75 WhitePoint = "D75"
	E   WhitePoint = "E"
	DCI WhitePoint = "DCI"
)

// whitePoints has the CIE 1931 2° observer chromaticity coordinates
// of each standard illuminant. D65 is the 4-digit value standardized
// for sRGB in IEC 61966-2-1, which the published conversion matrices
// derive from.
var whitePoints = map[WhitePoint]Chromaticity{
	D50: C(0.3457, 0.3585),
	D55: C(0.33242, 0.34743),
	D65: C(0.3127, 0.3290),
	D75: C(0.29902, 0.31485),
	E:   C(1.0/3.0, 1.0/3.0),
	DCI: C(0.314, 0.351),
}

// Chromaticity returns the chromaticity coordinates of this white point.
// It returns an error wrapping [ErrUnknownWhitePoint] if the name is not
// in the standard illuminant table.
func (w WhitePoint) Chromaticity() (Chromaticity, error) {
	c, ok := whitePoints[w]
	if !ok {
		return Chromaticity{}, fmt.Errorf("%w: %q", ErrUnknownWhitePoint, string(w))
	}
	return c, nil
}

// XYZ returns the tristimulus values of this white point, normalized
// so that Y = 1. It returns an error wrapping [ErrUnknownWhitePoint]
// if the name is not in the standard illuminant table.
func (w WhitePoint) XYZ() (mat3.Vector3, error) {
	c, err := w.Chromaticity()
	if err != nil {
		return mat3.Vector3{}, err
	}
	return c.XYZ(), nil
}
