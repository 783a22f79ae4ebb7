/*
 * gonum.go, part of qecfg.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//gonum.go contains what is needed for handling the gonum mat types.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian (or fractional) coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix returns a Matrix with len(data)/3 vectors, filled with data, which
//is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), "NewMatrix"}
	}
	r := l / cols
	return &Matrix{mat.NewDense(r, cols, data)}, nil
}

//VecView returns view of the ith vector.
func (F *Matrix) VecView(i int) *Matrix {
	r, c := F.Dims()
	if i >= r {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, c).(*mat.Dense)}
}

//Mul puts the product of A and B in the receiver.
//Wrapper for the gonum function, so A and B can be *Matrix.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if A, ok := A.(*Matrix); ok {
		if B, ok := B.(*Matrix); ok {
			F.Dense.Mul(A.Dense, B.Dense)
			return
		}
		F.Dense.Mul(A.Dense, B)
		return
	}
	if B, ok := B.(*Matrix); ok {
		F.Dense.Mul(A, B.Dense)
		return
	}
	F.Dense.Mul(A, B)
}

//Error is returned by the functions of the package that can fail with
//a given input.
type Error struct {
	message string
	caller  string
}

func (err Error) Error() string {
	return "v3." + err.caller + ": " + err.message
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("qecfg/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("qecfg/v3: index out of range")
)
