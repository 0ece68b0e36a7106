// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import "cogentcore.org/spacegen/cie"

// Builtin returns the table of standard RGB color space specifications
// that spacegen generates by default. Chromaticities are the published
// values of each standard.
func Builtin() []Spec {
	return []Spec{
		{
			Name:  "Srgb",
			White: cie.D65,
			Primaries: Primaries{
				Red:   cie.C(0.640, 0.330),
				Green: cie.C(0.300, 0.600),
				Blue:  cie.C(0.150, 0.060),
			},
		},
		{
			Name:  "DisplayP3",
			White: cie.D65,
			Primaries: Primaries{
				Red:   cie.C(0.680, 0.320),
				Green: cie.C(0.265, 0.690),
				Blue:  cie.C(0.150, 0.060),
			},
		},
		{
			Name:  "Adobe98",
			White: cie.D65,
			Primaries: Primaries{
				Red:   cie.C(0.640, 0.330),
				Green: cie.C(0.210, 0.710),
				Blue:  cie.C(0.150, 0.060),
			},
			Transfer: "GammaFn<Adobe98Gamma>",
		},
		{
			Name:  "ProPhoto",
			White: cie.D50,
			Primaries: Primaries{
				Red:   cie.C(0.734699, 0.265301),
				Green: cie.C(0.159597, 0.840403),
				Blue:  cie.C(0.036598, 0.000105),
			},
			Transfer: "ProPhoto",
		},
		{
			Name:  "Rec2020",
			White: cie.D65,
			Primaries: Primaries{
				Red:   cie.C(0.708, 0.292),
				Green: cie.C(0.170, 0.797),
				Blue:  cie.C(0.131, 0.046),
			},
			Transfer: "Rec2020",
		},
	}
}
