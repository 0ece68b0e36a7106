// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit renders derived color space definitions as constant
// declarations in a target format. The derivation in [space] is purely
// numeric; everything syntax-specific lives here, so supporting another
// output format never touches the numerical core.
package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/spacegen/mat3"
	"cogentcore.org/spacegen/space"
)

// Emitter renders a set of fully derived color space definitions
// to the given writer in one target format.
type Emitter interface {
	Emit(w io.Writer, spaces []*space.Space) error
}

// New returns the [Emitter] for the given format name:
// "rust", "go", or "yaml".
func New(format string) (Emitter, error) {
	switch format {
	case "rust":
		return &Rust{}, nil
	case "go":
		return &Go{}, nil
	case "yaml":
		return &YAML{}, nil
	}
	return nil, fmt.Errorf("emit: unknown output format %q", format)
}

// Float formats a float64 with the minimum number of digits that
// parse back to exactly the same value, so that emitted constants
// never lose precision between generation runs. The result always
// contains a decimal point or exponent, making it a valid floating
// point literal in the target languages.
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}

// Matrix formats a matrix as its 9 row-major elements separated by
// ", ", each formatted with [Float].
func Matrix(m mat3.Matrix3) string {
	rm := m.RowMajor()
	elems := make([]string, len(rm))
	for i, v := range rm {
		elems[i] = Float(v)
	}
	return strings.Join(elems, ", ")
}
