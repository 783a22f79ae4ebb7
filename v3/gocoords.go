/*
 * gocoords.go, part of qecfg.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs return the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//FromRows returns a new Matrix containing a copy of the given vectors.
func FromRows(rows [][3]float64) (*Matrix, error) {
	data := make([]float64, 0, 3*len(rows))
	for _, v := range rows {
		data = append(data, v[0], v[1], v[2])
	}
	return NewMatrix(data)
}

//Frac2Cart returns the cartesian coordinates for the fractional (crystal) coordinates
//frac in the cell given by the lattice vectors in the rows of cell. Each row of
//the result is the corresponding row of frac times the cell matrix.
func Frac2Cart(frac, cell *Matrix) (*Matrix, error) {
	if cr := cell.NVecs(); cr != 3 {
		return nil, Error{fmt.Sprintf("Cell matrix has %d vectors, 3 expected", cr), "Frac2Cart"}
	}
	ret := Zeros(frac.NVecs())
	ret.Mul(frac, cell)
	return ret, nil
}
