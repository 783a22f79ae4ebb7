/*
 * v3_test.go, part of qecfg.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
}

func TestMulIdentity(Te *testing.T) {
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6})
	require.NoError(Te, err)
	T := Zeros(2)
	T.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(A, T))
}

func TestFrac2Cart(Te *testing.T) {
	cell, err := FromRows([][3]float64{{3.1, 0, 0}, {0.2, 3.3, 0}, {0.1, 0.4, 3.5}})
	require.NoError(Te, err)
	frac, err := FromRows([][3]float64{{0, 0, 0}, {0.5, 0.25, 0.75}})
	require.NoError(Te, err)
	cart, err := Frac2Cart(frac, cell)
	require.NoError(Te, err)
	require.Equal(Te, 2, cart.NVecs())
	assert.Equal(Te, [3]float64{0, 0, 0}, cart.Vec(0))
	u, v, w := 0.5, 0.25, 0.75
	want := [3]float64{
		u*3.1 + v*0.2 + w*0.1,
		u*0 + v*3.3 + w*0.4,
		u*0 + v*0 + w*3.5,
	}
	got := cart.Vec(1)
	for i := range want {
		assert.InDelta(Te, want[i], got[i], 1e-12)
	}
}

func TestFrac2CartBadCell(Te *testing.T) {
	cell, err := FromRows([][3]float64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(Te, err)
	frac, err := FromRows([][3]float64{{0.5, 0.5, 0.5}})
	require.NoError(Te, err)
	_, err = Frac2Cart(frac, cell)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "v3.Frac2Cart")
}
