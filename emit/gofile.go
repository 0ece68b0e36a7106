// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"cogentcore.org/spacegen/space"
)

// Go emits each color space as a zero-size marker type with methods
// returning the primaries, matrices, and white point and transfer
// function references, as a self-contained generated Go file.
type Go struct {

	// Package is the package name of the generated file;
	// "colorspace" if empty.
	Package string
}

// GoHeaderTmpl is the template for the prologue of the Go output:
// the generated-code comment, package clause, and the Yxy type
// shared by all emitted spaces.
var GoHeaderTmpl = template.Must(template.New("GoHeader").Parse(
	`// Code generated by "spacegen"; DO NOT EDIT.

package {{.}}

// Yxy is a CIE (x, y) chromaticity pair plus the luminance
// contribution Y of the primary within its color space.
type Yxy struct {
	X, Y, Luma float64
}
`))

// GoSpaceTmpl is the template for one color space declaration block
// in the Go output.
var GoSpaceTmpl = template.Must(template.New("GoSpace").
	Funcs(template.FuncMap{
		"float":  Float,
		"matrix": Matrix,
	}).Parse(`
// {{.Name}} is the {{.Name}} RGB color space.
type {{.Name}} struct{}

// WhitePoint returns the name of the reference white point.
func ({{.Name}}) WhitePoint() string { return "{{.White}}" }

// TransferFunction returns the name of the nonlinear transfer encoding.
func ({{.Name}}) TransferFunction() string { return "{{.Transfer}}" }

// Red returns the red primary chromaticity and luminance contribution.
func ({{.Name}}) Red() Yxy { return Yxy{ {{float .Primaries.Red.X}}, {{float .Primaries.Red.Y}}, {{float .LumaR}} } }

// Green returns the green primary chromaticity and luminance contribution.
func ({{.Name}}) Green() Yxy { return Yxy{ {{float .Primaries.Green.X}}, {{float .Primaries.Green.Y}}, {{float .LumaG}} } }

// Blue returns the blue primary chromaticity and luminance contribution.
func ({{.Name}}) Blue() Yxy { return Yxy{ {{float .Primaries.Blue.X}}, {{float .Primaries.Blue.Y}}, {{float .LumaB}} } }

// RGBToXYZ returns the linear RGB to CIE XYZ matrix, row-major.
func ({{.Name}}) RGBToXYZ() [9]float64 {
	return [9]float64{ {{matrix .RGBToXYZ}} }
}

// XYZToRGB returns the CIE XYZ to linear RGB matrix, row-major.
func ({{.Name}}) XYZToRGB() [9]float64 {
	return [9]float64{ {{matrix .XYZToRGB}} }
}
`))

func (g *Go) Emit(w io.Writer, spaces []*space.Space) error {
	pkg := g.Package
	if pkg == "" {
		pkg = "colorspace"
	}
	b := &bytes.Buffer{}
	if err := GoHeaderTmpl.Execute(b, pkg); err != nil {
		return err
	}
	for _, sp := range spaces {
		if err := GoSpaceTmpl.Execute(b, sp); err != nil {
			return err
		}
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("emit: formatting generated Go source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
