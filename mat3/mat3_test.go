// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = 1.0e-12

func assertEqualMatrix(t *testing.T, want, have Matrix3, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], have[i], tol, "element %d", i)
	}
}

func TestSetRowMajor(t *testing.T) {
	m := Matrix3{}
	m.Set(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	assert.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.RowMajor())
	assert.Equal(t, V3(1, 2, 3), m.Row(0))
	assert.Equal(t, V3(4, 5, 6), m.Row(1))
	assert.Equal(t, V3(7, 8, 9), m.Row(2))
}

func TestFromCols(t *testing.T) {
	m := FromCols(V3(1, 4, 7), V3(2, 5, 8), V3(3, 6, 9))
	assert.Equal(t, [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.RowMajor())

	// transposing turns the columns into rows
	tr := m.Transpose()
	assert.Equal(t, V3(1, 4, 7), tr.Row(0))
	assert.Equal(t, V3(2, 5, 8), tr.Row(1))
	assert.Equal(t, V3(3, 6, 9), tr.Row(2))
	assert.Equal(t, m, tr.Transpose())
}

func TestMulVector3(t *testing.T) {
	assert.Equal(t, V3(1, 2, 3), Identity3().MulVector3(V3(1, 2, 3)))

	m := Matrix3{}
	m.Set(
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	)
	assert.Equal(t, V3(2, 6, 12), m.MulVector3(V3(1, 2, 3)))
}

func TestMul(t *testing.T) {
	a := Matrix3{}
	a.Set(
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	assert.Equal(t, a, Identity3().Mul(a))
	assert.Equal(t, a, a.Mul(Identity3()))

	b := Matrix3{}
	b.Set(
		1, 0, 1,
		0, 2, 0,
		1, 0, 0,
	)
	want := Matrix3{}
	want.Set(
		4, 4, 1,
		10, 10, 4,
		17, 16, 7,
	)
	assert.Equal(t, want, a.Mul(b))
}

func TestMulCols(t *testing.T) {
	m := Matrix3{}
	m.Set(
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	)
	want := Matrix3{}
	want.Set(
		2, 3, 4,
		2, 3, 4,
		2, 3, 4,
	)
	assert.Equal(t, want, m.MulCols(V3(2, 3, 4)))
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, Identity3().Determinant())

	m := Matrix3{}
	m.Set(
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	assert.InDelta(t, -3, m.Determinant(), standardTol)

	// linearly dependent rows
	m.Set(
		1, 2, 3,
		2, 4, 6,
		7, 8, 10,
	)
	assert.InDelta(t, 0, m.Determinant(), standardTol)
}

func TestInverse(t *testing.T) {
	m := Matrix3{}
	m.Set(
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	)
	inv, err := m.Inverse()
	require.NoError(t, err)
	assertEqualMatrix(t, Identity3(), m.Mul(inv), 1.0e-12)
	assertEqualMatrix(t, Identity3(), inv.Mul(m), 1.0e-12)

	want := Matrix3{}
	want.Set(
		-2.0/3, -4.0/3, 1,
		-2.0/3, 11.0/3, -2,
		1, -2, 1,
	)
	assertEqualMatrix(t, want, inv, 1.0e-12)
}

func TestInverseSingular(t *testing.T) {
	m := Matrix3{} // zero matrix
	_, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)

	// repeated columns
	m = FromCols(V3(1, 1, 1), V3(1, 1, 1), V3(2, 3, 4))
	_, err = m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestVector3(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, V3(3, 5, 7), v.Add(V3(2, 3, 4)))
	assert.Equal(t, V3(-1, -1, -1), v.Sub(V3(2, 3, 4)))
	assert.Equal(t, V3(2, 4, 6), v.MulScalar(2))
	assert.Equal(t, V3(0.5, 1, 1.5), v.DivScalar(2))
}
