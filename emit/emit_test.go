// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"bytes"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"cogentcore.org/spacegen/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func deriveAll(t *testing.T) []*space.Space {
	t.Helper()
	var spaces []*space.Space
	for _, s := range space.Builtin() {
		sp, err := space.Derive(s)
		require.NoError(t, err, s.Name)
		spaces = append(spaces, sp)
	}
	return spaces
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1.0 / 3.0, 0.31272 / 0.32903, 1e-17, 123456.789}
	for _, sp := range deriveAll(t) {
		rm := sp.RGBToXYZ.RowMajor()
		values = append(values, rm[:]...)
	}
	for _, v := range values {
		s := Float(v)
		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		assert.Equal(t, v, back, s)
	}
}

func TestFloatLiteralForm(t *testing.T) {
	assert.Equal(t, "1.0", Float(1))
	assert.Equal(t, "0.0", Float(0))
	assert.Equal(t, "-2.0", Float(-2))
	assert.Equal(t, "0.5", Float(0.5))
	assert.Equal(t, "1e-17", Float(1e-17))
}

func TestNew(t *testing.T) {
	for _, f := range []string{"rust", "go", "yaml"} {
		e, err := New(f)
		require.NoError(t, err, f)
		require.NotNil(t, e, f)
	}
	_, err := New("toml")
	assert.ErrorContains(t, err, "toml")
}

func TestRustEmit(t *testing.T) {
	spaces := deriveAll(t)
	b := &bytes.Buffer{}
	require.NoError(t, (&Rust{}).Emit(b, spaces))
	out := b.String()

	assert.Contains(t, out, `// Code generated by "spacegen"; DO NOT EDIT.`)
	assert.Contains(t, out, "pub struct Srgb;")
	assert.Contains(t, out, "pub struct ProPhoto;")
	assert.Contains(t, out, "impl RgbSpace for Rec2020 {")
	assert.Contains(t, out, "type WhitePoint = D65;")
	assert.Contains(t, out, "type TransferFn = GammaFn<Adobe98Gamma>;")
	// ProPhoto is the only D50 space
	assert.Contains(t, out, "type WhitePoint = D50;")
	// 9-element row-major matrix literals
	assert.Contains(t, out, "fn rgb_to_xyz_matrix() -> Option<Mat3<f64>> {")
	first := spaces[0].RGBToXYZ.RowMajor()
	assert.Contains(t, out, "Some(["+Float(first[0])+", "+Float(first[1]))
}

func TestGoEmit(t *testing.T) {
	spaces := deriveAll(t)
	b := &bytes.Buffer{}
	require.NoError(t, (&Go{}).Emit(b, spaces))
	out := b.String()

	assert.Contains(t, out, "package colorspace")
	assert.Contains(t, out, "type Srgb struct{}")
	assert.Contains(t, out, `func (Srgb) WhitePoint() string { return "D65" }`)
	assert.Contains(t, out, "func (Rec2020) RGBToXYZ() [9]float64 {")

	// the emitted file must stand alone as valid Go
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "colorspace.go", out, 0)
	assert.NoError(t, err)
}

func TestGoEmitPackage(t *testing.T) {
	spaces := deriveAll(t)
	b := &bytes.Buffer{}
	require.NoError(t, (&Go{Package: "chroma"}).Emit(b, spaces))
	assert.True(t, strings.Contains(b.String(), "package chroma"))
}

func TestYAMLEmitRoundTrip(t *testing.T) {
	spaces := deriveAll(t)
	b := &bytes.Buffer{}
	require.NoError(t, (&YAML{}).Emit(b, spaces))

	var doc []yamlSpace
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &doc))
	require.Len(t, doc, len(spaces))
	for i, sp := range spaces {
		assert.Equal(t, sp.Name, doc[i].Name)
		assert.Equal(t, string(sp.White), doc[i].White)
		assert.Equal(t, sp.Transfer, doc[i].Transfer)
		r2x := sp.RGBToXYZ.RowMajor()
		require.Len(t, doc[i].RGBToXYZ, 9)
		for j := range r2x {
			// bit-exact through the YAML encoding
			assert.Equal(t, r2x[j], doc[i].RGBToXYZ[j], "%s element %d", sp.Name, j)
		}
		assert.Equal(t, sp.LumaG, doc[i].Green.Luma, sp.Name)
	}
}
