/*
 * zio_test.go, part of qecfg.
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

package zio

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(Te *testing.T) {
	assert.Equal(Te, Zstd, FormatOf("run.csv.zst"))
	assert.Equal(Te, Gzip, FormatOf("run.CSV.GZ"))
	assert.Equal(Te, LZ4, FormatOf("run.cfg.lz4"))
	assert.Equal(Te, Plain, FormatOf("run.cfg"))
	assert.Equal(Te, "run.csv", Trim("run.csv.zst"))
	assert.Equal(Te, "run.csv", Trim("run.csv"))
}

func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"a.txt", "a.txt.zst", "a.txt.gz"} {
		path := filepath.Join(dir, name)
		w, err := Create(path)
		require.NoError(Te, err, name)
		_, err = io.WriteString(w, "BEGIN_CFG\n")
		require.NoError(Te, err, name)
		require.NoError(Te, w.Close(), name)

		w, err = Append(path)
		require.NoError(Te, err, name)
		_, err = io.WriteString(w, "END_CFG\n")
		require.NoError(Te, err, name)
		require.NoError(Te, w.Close(), name)

		b, err := ReadAll(path)
		require.NoError(Te, err, name)
		assert.Equal(Te, "BEGIN_CFG\nEND_CFG\n", string(b), name)
	}
}

func TestLZ4(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "b.cfg.lz4")
	w, err := Create(path)
	require.NoError(Te, err)
	_, err = io.WriteString(w, "BEGIN_CFG\n Size\n  2\n")
	require.NoError(Te, err)
	require.NoError(Te, w.Close())
	b, err := ReadAll(path)
	require.NoError(Te, err)
	assert.Equal(Te, "BEGIN_CFG\n Size\n  2\n", string(b))
}

func TestOpenMissing(Te *testing.T) {
	_, err := Open(filepath.Join(Te.TempDir(), "nothere.zst"))
	assert.Error(Te, err)
}
