// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spacegen generates the linear RGB to XYZ transformation
// matrix pair for standard RGB color spaces, emitting them as constant
// declarations consumed by color management code. It is a build time
// tool: it runs once per color space table and its output is persisted
// as generated source.
package spacegen

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/spacegen/emit"
	"cogentcore.org/spacegen/space"
)

// Config is the configuration information for spacegen.
type Config struct {

	// Output is the file to write the generated declarations to.
	// If it is unset, they are written to standard output.
	Output string `flag:"o,output"`

	// Format is the output format: rust, go, or yaml.
	Format string `default:"rust"`

	// Package is the package name of the generated file,
	// used only by the go output format.
	Package string `default:"colorspace"`

	// Spaces restricts generation to the named color spaces.
	// If it is empty, every color space in the table is generated.
	Spaces []string

	// Custom are additional color space specifications to derive
	// beyond the builtin table, typically given in spacegen.toml.
	Custom []space.Spec
}

// Generate derives the matrices for every selected color space and
// emits them in the configured format. Any invalid specification
// aborts the whole run with no output written: a partially generated
// color space table would silently corrupt downstream consumers.
func Generate(c *Config) error { //cli:cmd -root
	em, err := emit.New(c.Format)
	if err != nil {
		return err
	}
	if g, ok := em.(*emit.Go); ok {
		g.Package = c.Package
	}

	specs, err := selectSpecs(append(space.Builtin(), c.Custom...), c.Spaces)
	if err != nil {
		return err
	}

	spaces := make([]*space.Space, len(specs))
	for i, s := range specs {
		sp, err := space.Derive(s)
		if err != nil {
			return err
		}
		logx.PrintlnDebug("spacegen: derived", sp.Name, "white:", sp.White, "luma:",
			sp.LumaR, sp.LumaG, sp.LumaB)
		spaces[i] = sp
	}

	b := &bytes.Buffer{}
	if err := em.Emit(b, spaces); err != nil {
		return err
	}

	if c.Output == "" {
		_, err = os.Stdout.Write(b.Bytes())
		return err
	}
	return os.WriteFile(c.Output, b.Bytes(), 0666)
}

// selectSpecs returns the specs with the given names, in table order,
// or all of them if names is empty. A name matching no spec is an
// error, not an empty selection.
func selectSpecs(specs []space.Spec, names []string) ([]space.Spec, error) {
	if len(names) == 0 {
		return specs, nil
	}
	for _, n := range names {
		if !slices.ContainsFunc(specs, func(s space.Spec) bool { return s.Name == n }) {
			return nil, fmt.Errorf("spacegen: no color space named %q", n)
		}
	}
	sel := make([]space.Spec, 0, len(names))
	for _, s := range specs {
		if slices.Contains(names, s.Name) {
			sel = append(sel, s)
		}
	}
	return sel, nil
}
