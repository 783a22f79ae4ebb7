/*
 * schema.go, part of qecfg.
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

//Package table projects qecfg records onto a tabular dataset with one row per
//iteration, and reads and writes that dataset as CSV.
package table

import (
	"fmt"
	"strings"
)

//SchemaVersion is the version of the column layout produced by Schema.Columns.
const SchemaVersion = 1

//Column names. Per-atom columns are the prefix followed by the 0-based atom index.
const (
	ColIteration   = "iteration"
	ColNAtoms      = "number_of_atoms"
	ColTime        = "time"
	ColTotalEnergy = "total_energy"
	ColEkin        = "Ekin"
	ColEtot        = "Etot"
	PrefixForce    = "force_"
	PrefixPosition = "atom_pos_"
	PrefixCart     = "cart_pos_"
)

//StressCols and CellCols hold one row vector of the corresponding tensor each.
var (
	StressCols = [3]string{"stress_xx", "stress_yy", "stress_zz"}
	CellCols   = [3]string{"cell_a", "cell_b", "cell_c"}
)

//optionalCols never make a row incomplete.
var optionalCols = map[string]bool{ColEkin: true, ColEtot: true}

//Schema is the column layout of a dataset. Width is the number of per-atom
//columns of each kind, i.e. the largest number of atoms in the run.
type Schema struct {
	Version int
	Width   int
}

//NewSchema returns a schema of the current version with the given width.
func NewSchema(width int) Schema {
	return Schema{Version: SchemaVersion, Width: width}
}

//Columns returns the column names, in order.
func (S Schema) Columns() []string {
	cols := []string{ColIteration, ColNAtoms, ColTime, ColTotalEnergy, ColEkin, ColEtot}
	cols = append(cols, indexed(PrefixForce, S.Width)...)
	cols = append(cols, StressCols[:]...)
	cols = append(cols, CellCols[:]...)
	cols = append(cols, indexed(PrefixPosition, S.Width)...)
	cols = append(cols, indexed(PrefixCart, S.Width)...)
	return cols
}

//Optional returns true if a null in the column col does not make a row incomplete.
func Optional(col string) bool {
	return optionalCols[col]
}

func indexed(prefix string, n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return ret
}

//schemaFromHeader obtains the schema of a dataset from its header, and checks that
//the header contains every column of that schema.
func schemaFromHeader(header []string) (Schema, map[string]int, error) {
	index := make(map[string]int, len(header))
	width := 0
	for i, h := range header {
		h = strings.TrimSpace(h)
		index[h] = i
		if strings.HasPrefix(h, PrefixForce) {
			width++
		}
	}
	S := NewSchema(width)
	for _, c := range S.Columns() {
		if _, ok := index[c]; !ok && !Optional(c) {
			return S, nil, fmt.Errorf("%w: column %q missing", ErrSchema, c)
		}
	}
	return S, index, nil
}
