// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"io"

	"cogentcore.org/spacegen/space"
	"gopkg.in/yaml.v3"
)

// YAML emits the color space definitions as a machine-readable YAML
// document, for consumers that want the matrix data without any
// source language syntax.
type YAML struct{}

type yamlPrimary struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Luma float64 `yaml:"luma"`
}

type yamlSpace struct {
	Name     string      `yaml:"name"`
	White    string      `yaml:"white"`
	Transfer string      `yaml:"transfer"`
	Red      yamlPrimary `yaml:"red"`
	Green    yamlPrimary `yaml:"green"`
	Blue     yamlPrimary `yaml:"blue"`
	RGBToXYZ []float64   `yaml:"rgb_to_xyz,flow"`
	XYZToRGB []float64   `yaml:"xyz_to_rgb,flow"`
}

func (y *YAML) Emit(w io.Writer, spaces []*space.Space) error {
	doc := make([]yamlSpace, 0, len(spaces))
	for _, sp := range spaces {
		r2x := sp.RGBToXYZ.RowMajor()
		x2r := sp.XYZToRGB.RowMajor()
		doc = append(doc, yamlSpace{
			Name:     sp.Name,
			White:    string(sp.White),
			Transfer: sp.Transfer,
			Red:      yamlPrimary{sp.Primaries.Red.X, sp.Primaries.Red.Y, sp.LumaR},
			Green:    yamlPrimary{sp.Primaries.Green.X, sp.Primaries.Green.Y, sp.LumaG},
			Blue:     yamlPrimary{sp.Primaries.Blue.X, sp.Primaries.Blue.Y, sp.LumaB},
			RGBToXYZ: r2x[:],
			XYZToRGB: x2r[:],
		})
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
