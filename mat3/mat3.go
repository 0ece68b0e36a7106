// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat3 provides float64 3-vector and 3x3 matrix math for
// colorimetric computations, where the float32 precision of math32
// is not sufficient for the full double-precision constants that
// spacegen emits.
package mat3

import (
	"errors"
	"math"
)

// SingularEpsilon is the absolute determinant threshold below which
// a 3x3 matrix is treated as singular and cannot be inverted.
const SingularEpsilon = 1e-12

// ErrSingular is returned by [Matrix3.Inverse] when the absolute value
// of the determinant is below [SingularEpsilon].
var ErrSingular = errors.New("mat3: cannot invert singular matrix")

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// V3 returns a new [Vector3] with the given x, y and z components.
func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector3) Add(o Vector3) Vector3 {
	return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector3) Sub(o Vector3) Vector3 {
	return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector3) MulScalar(s float64) Vector3 {
	return V3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result.
func (v Vector3) DivScalar(s float64) Vector3 {
	return V3(v.X/s, v.Y/s, v.Z/s)
}

// Matrix3 is a 3x3 matrix stored in column-major order,
// following the layout of the math32 matrix types:
//
//	| m[0] m[3] m[6] |
//	| m[1] m[4] m[7] |
//	| m[2] m[5] m[8] |
type Matrix3 [9]float64

// Identity3 returns a new 3x3 identity matrix.
func Identity3() Matrix3 {
	m := Matrix3{}
	m.SetIdentity()
	return m
}

// FromCols returns a new [Matrix3] with the given column vectors.
func FromCols(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Set sets all the elements of this matrix row by row starting at row 1,
// column 1 through row 3, column 3 (i.e., in standard printed order).
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float64) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix3) SetIdentity() {
	m.Set(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// RowMajor returns the elements of this matrix in row-major order,
// as they are conventionally printed and emitted.
func (m Matrix3) RowMajor() [9]float64 {
	return [9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Row returns the given row (0-2) of this matrix as a [Vector3].
func (m Matrix3) Row(i int) Vector3 {
	return V3(m[i], m[i+3], m[i+6])
}

// MulVector3 multiplies this matrix by the given column vector,
// returning the resulting vector.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return V3(
		m[0]*v.X+m[3]*v.Y+m[6]*v.Z,
		m[1]*v.X+m[4]*v.Y+m[7]*v.Z,
		m[2]*v.X+m[5]*v.Y+m[8]*v.Z,
	)
}

// Mul returns this matrix times the other given matrix (m * o).
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	a11, a12, a13 := m[0], m[3], m[6]
	a21, a22, a23 := m[1], m[4], m[7]
	a31, a32, a33 := m[2], m[5], m[8]

	b11, b12, b13 := o[0], o[3], o[6]
	b21, b22, b23 := o[1], o[4], o[7]
	b31, b32, b33 := o[2], o[5], o[8]

	n := Matrix3{}
	n.Set(
		a11*b11+a12*b21+a13*b31, a11*b12+a12*b22+a13*b32, a11*b13+a12*b23+a13*b33,
		a21*b11+a22*b21+a23*b31, a21*b12+a22*b22+a23*b32, a21*b13+a22*b23+a23*b33,
		a31*b11+a32*b21+a33*b31, a31*b12+a32*b22+a33*b32, a31*b13+a32*b23+a33*b33,
	)
	return n
}

// MulCols multiplies each column i of this matrix by component i of the
// given vector (column-wise scaling) and returns the result.
func (m Matrix3) MulCols(s Vector3) Matrix3 {
	return Matrix3{
		m[0] * s.X, m[1] * s.X, m[2] * s.X,
		m[3] * s.Y, m[4] * s.Y, m[5] * s.Y,
		m[6] * s.Z, m[7] * s.Z, m[8] * s.Z,
	}
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of this matrix.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of this matrix, computed with the analytic
// cofactor method. It returns [ErrSingular] (and the zero matrix) if the
// absolute value of the determinant is below [SingularEpsilon].
func (m Matrix3) Inverse() (Matrix3, error) {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if math.Abs(det) < SingularEpsilon {
		return Matrix3{}, ErrSingular
	}
	d := 1 / det

	return Matrix3{
		t11 * d,
		(n31*n23 - n33*n21) * d,
		(n32*n21 - n31*n22) * d,
		t12 * d,
		(n33*n11 - n31*n13) * d,
		(n31*n12 - n32*n11) * d,
		t13 * d,
		(n21*n13 - n23*n11) * d,
		(n22*n11 - n21*n12) * d,
	}, nil
}
