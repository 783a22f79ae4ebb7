/*
 * energy_test.go, part of qecfg.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func md(Te *testing.T) *table.Dataset {
	res, err := qecfg.ReadFile("../test/fe2_md.out", qecfg.Options{})
	require.NoError(Te, err)
	return table.Assemble(res.Records, nil)
}

func TestEnergyPoints(Te *testing.T) {
	pts := EnergyPoints(md(Te))
	require.Len(Te, pts, 2)
	assert.InDelta(Te, 0.001, pts[0].X, 1e-12)
	assert.InDelta(Te, -136.0, pts[0].Y, 1e-9)
	assert.InDelta(Te, -142.8, pts[1].Y, 1e-9)
}

func TestEnergyPlot(Te *testing.T) {
	ds := md(Te)
	dir := Te.TempDir()
	for _, name := range []string{"energy.png", "energy.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, EnergyPlot(ds, "Fe2 MD", path))
		st, err := os.Stat(path)
		require.NoError(Te, err)
		assert.Greater(Te, st.Size(), int64(0))
	}
	assert.Error(Te, EnergyPlot(ds, "bad", filepath.Join(dir, "energy.xyz")))
	assert.Error(Te, EnergyPlot(&table.Dataset{}, "empty", filepath.Join(dir, "empty.png")))
}
