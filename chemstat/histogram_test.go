/*
 * histogram_test.go, part of qecfg.
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

package chemstat

import (
	"math"
	"testing"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(Te *testing.T) {
	H := NewHistogram([]float64{0, 1, 2, 3}, []float64{2.5, 0.5, 1, 0.2, 7})
	assert.Equal(Te, []float64{2, 1, 1}, H.Counts())
	assert.Equal(Te, 5, H.Total())
	H.Normalize()
	assert.InDeltaSlice(Te, []float64{0.4, 0.2, 0.2}, H.Counts(), 1e-12)
	H.AddData(2.9)
	assert.InDeltaSlice(Te, []float64{2.0 / 6, 1.0 / 6, 2.0 / 6}, H.Counts(), 1e-12)
	H.UnNormalize()
	assert.InDeltaSlice(Te, []float64{2, 1, 2}, H.Counts(), 1e-12)
	assert.Contains(Te, H.String(), "0.00-1.00")
}

func TestForceHistogram(Te *testing.T) {
	res, err := qecfg.ReadFile("../test/fe2_md.out", qecfg.Options{})
	require.NoError(Te, err)
	ds := table.Assemble(res.Records, nil)
	mags := ForceMagnitudes(ds)
	require.Len(Te, mags, 4)
	assert.InDelta(Te, math.Sqrt(0.14)*51.421, mags[0], 1e-9)
	assert.InDelta(Te, math.Sqrt(0.05)*51.421, mags[2], 1e-9)

	H := ForceHistogram(ds, 2)
	require.NotNil(Te, H)
	assert.Equal(Te, []float64{0, 4}, H.Counts())
	assert.Equal(Te, 4, H.Total())
	assert.Nil(Te, ForceHistogram(&table.Dataset{}, 2))
}
