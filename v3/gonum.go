/*
 * gonum.go, part of godssp.
 *
 * Copyright 2020 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Within the package it is understood that a "vector" is a row vector, i.e.
//the cartesian coordinates of a point in 3D space. The names of several
//functions in the package reflect this.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space. The underlying implementation
// is a gonum Dense matrix with 3 columns.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps a 3-column gonum Dense matrix into a Matrix.
// It panics if the matrix given does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the
// other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the ith vector of the matrix. Changes in the
// view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F starting from i,j and spanning r rows and
// c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

// Add puts in the receiver the sum A+B. Panics on shape mismatch.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

// Sub puts in the receiver the difference A-B. Panics on shape mismatch.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Scale multiplies the elements of A by v, putting the result in the
// receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

// Copy copies A into the receiver.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

// Dot returns the dot product between the 1x3 receiver and the 1x3
// matrix given. Panics if either matrix is not a single vector.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrNotEnoughElements)
	}
	var d float64
	for i := 0; i < 3; i++ {
		d += F.At(0, i) * B.At(0, i)
	}
	return d
}

// Cross puts in the 1x3 receiver the cross product of the 1x3 vectors
// a and b. Panics if any of the three matrices is not a single vector.
func (F *Matrix) Cross(a, b *Matrix) {
	if F.NVecs() != 1 || a.NVecs() != 1 || b.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

// Norm returns the Euclidean norm of the receiver, which must be a
// single vector.
func (F *Matrix) Norm() float64 {
	if F.NVecs() != 1 {
		panic(ErrNotEnoughElements)
	}
	var n float64
	for i := 0; i < 3; i++ {
		n += F.At(0, i) * F.At(0, i)
	}
	return math.Sqrt(n)
}

// Unit puts in the receiver the unit vector in the direction of A.
// If the norm of A is zero, the receiver is zeroed instead.
func (F *Matrix) Unit(A *Matrix) {
	n := A.Norm()
	if n <= appzero {
		F.Scale(0, A)
		return
	}
	F.Scale(1.0/n, A)
}

// SubVec subtracts the 1x3 vector vec from each vector of A, putting the
// result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		f.Sub(j, vec)
	}
}

// AddVec adds the 1x3 vector vec to each vector of A, putting the result
// in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, _ := A.Dims()
	for i := 0; i < ar; i++ {
		j := A.VecView(i)
		f := F.VecView(i)
		f.Add(j, vec)
	}
}

// SetMatrix puts the matrix A in the receiver starting from the ith row
// and jth col of the receiver.
func (F *Matrix) SetMatrix(i, j int, A *Matrix) {
	b := F.RawMatrix()
	ar, ac := A.Dims()
	fc := 3
	if ar+i > F.NVecs() || ac+j > fc {
		panic(ErrShape)
	}
	r := make([]float64, ac)
	for k := 0; k < ar; k++ {
		mat.Row(r, k, A.Dense)
		startpoint := fc*(k+i) + j
		copy(b.Data[startpoint:startpoint+ac], r)
	}
}

// Dist returns the Euclidean distance between the 1x3 vectors a and b.
func Dist(a, b *Matrix) float64 {
	var d, t float64
	for i := 0; i < 3; i++ {
		t = a.At(0, i) - b.At(0, i)
		d += t * t
	}
	return math.Sqrt(d)
}

// Cross returns the cross product of the 1x3 vectors a and b as a new
// Matrix.
func Cross(a, b *Matrix) *Matrix {
	c := Zeros(1)
	c.Cross(a, b)
	return c
}

//Errors

// PanicMsg is a message used for panics, even though it does satisfy the
// error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// Error messages for the panics thrown by the fundamental functions of
// the package. If something goes wrong here the program is way-most
// likely wrong and should crash.
const (
	ErrNotXx3Matrix      = PanicMsg("godssp/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("godssp/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("godssp/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("godssp/v3: Matrices have inconsistent shapes")
)

// Error is the error type for the non-panicking functions of the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate adds the given string to the decoration slice of the error,
// and returns the resulting slice. If given an empty string, it just
// returns the current slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical.
func (err Error) Critical() bool { return err.critical }
