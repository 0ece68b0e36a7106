// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"io"
	"text/template"

	"cogentcore.org/spacegen/space"
)

// Rust emits each color space as a zero-size marker struct with
// Primaries, RgbSpace and RgbStandard impl blocks, the declaration
// form consumed by palette-style Rust color management code.
type Rust struct{}

// RustSpaceTmpl is the template for one color space declaration block
// in the Rust output. All emit templates take a [space.Space] as
// their data.
var RustSpaceTmpl = template.Must(template.New("RustSpace").
	Funcs(template.FuncMap{
		"float":  Float,
		"matrix": Matrix,
	}).Parse(`
pub struct {{.Name}};

impl<T: Real> Primaries<T> for {{.Name}} {
    fn red() -> Yxy<Any, T> { Yxy::new(T::from_f64({{float .Primaries.Red.X}}), T::from_f64({{float .Primaries.Red.Y}}), T::from_f64({{float .LumaR}})) }
    fn green() -> Yxy<Any, T> { Yxy::new(T::from_f64({{float .Primaries.Green.X}}), T::from_f64({{float .Primaries.Green.Y}}), T::from_f64({{float .LumaG}})) }
    fn blue() -> Yxy<Any, T> { Yxy::new(T::from_f64({{float .Primaries.Blue.X}}), T::from_f64({{float .Primaries.Blue.Y}}), T::from_f64({{float .LumaB}})) }
}

impl RgbSpace for {{.Name}} {
    type Primaries = {{.Name}};
    type WhitePoint = {{.White}};

    fn rgb_to_xyz_matrix() -> Option<Mat3<f64>> {
        Some([{{matrix .RGBToXYZ}}])
    }
    fn xyz_to_rgb_matrix() -> Option<Mat3<f64>> {
        Some([{{matrix .XYZToRGB}}])
    }
}

impl RgbStandard for {{.Name}} {
    type Space = {{.Name}};
    type TransferFn = {{.Transfer}};
}
`))

func (r *Rust) Emit(w io.Writer, spaces []*space.Space) error {
	if _, err := io.WriteString(w, "// Code generated by \"spacegen\"; DO NOT EDIT.\n"); err != nil {
		return err
	}
	for _, sp := range spaces {
		if err := RustSpaceTmpl.Execute(w, sp); err != nil {
			return err
		}
	}
	return nil
}
