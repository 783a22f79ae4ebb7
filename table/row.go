/*
 * row.go, part of qecfg.
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

package table

import "github.com/rmera/qecfg"

//FlatRow is the tabular form of one qecfg.IterationRecord. Per-atom slices have
//exactly Schema.Width slots; a nil slot (or nil pointer in general) is a null cell.
type FlatRow struct {
	Iteration   int
	NAtoms      *int
	Time        float64
	TotalEnergy *float64
	Ekin        *float64
	Etot        *float64
	Forces      []*qecfg.AtomForce
	Stress      [3]*[3]float64 //rows of the stress tensor, kbar
	Cell        [3]*[3]float64 //lattice vectors, angstrom
	Positions   []*qecfg.AtomPosition
	Cartesian   []*qecfg.AtomPosition
}

//Project returns the row for rec in the given schema. The schema width must not be
//smaller than rec.Width().
func Project(rec *qecfg.IterationRecord, S Schema) FlatRow {
	row := FlatRow{
		Iteration:   rec.Index,
		NAtoms:      rec.NAtoms,
		Time:        rec.Time,
		TotalEnergy: rec.TotalEnergy,
		Ekin:        rec.Ekin,
		Etot:        rec.Etot,
		Forces:      make([]*qecfg.AtomForce, S.Width),
		Positions:   make([]*qecfg.AtomPosition, S.Width),
		Cartesian:   make([]*qecfg.AtomPosition, S.Width),
	}
	for i := range rec.Forces {
		row.Forces[i] = &rec.Forces[i]
	}
	for i := range rec.Fractional {
		row.Positions[i] = &rec.Fractional[i]
	}
	for i := range rec.Cartesian {
		row.Cartesian[i] = &rec.Cartesian[i]
	}
	if rec.Stress != nil {
		for i := range rec.Stress {
			row.Stress[i] = &rec.Stress[i]
		}
	}
	if rec.Cell != nil {
		for i := range rec.Cell {
			row.Cell[i] = &rec.Cell[i]
		}
	}
	return row
}

//Complete returns true if no required cell of the row is null.
func (R *FlatRow) Complete() bool {
	if R.NAtoms == nil || R.TotalEnergy == nil {
		return false
	}
	for i := 0; i < 3; i++ {
		if R.Stress[i] == nil || R.Cell[i] == nil {
			return false
		}
	}
	if len(R.Forces) != len(R.Positions) || len(R.Forces) != len(R.Cartesian) {
		return false
	}
	for i := range R.Forces {
		if R.Forces[i] == nil || R.Positions[i] == nil || R.Cartesian[i] == nil {
			return false
		}
	}
	return true
}

//Tensor returns the three row vectors in t as a qecfg.Tensor. ok is false if
//any of them is null.
func Tensor(t [3]*[3]float64) (ret qecfg.Tensor, ok bool) {
	for i, v := range t {
		if v == nil {
			return ret, false
		}
		ret[i] = *v
	}
	return ret, true
}
