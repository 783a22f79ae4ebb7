/*
 * record.go, part of qecfg.
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

package qecfg

import "fmt"

//Tensor is a 3x3 matrix. For stresses, rows correspond to cartesian axes (kbar).
//For cells, rows are the lattice vectors a1, a2 and a3 (angstrom).
type Tensor [3][3]float64

//AtomForce is the force on one atom, as printed by pw.x (Ry/bohr).
type AtomForce struct {
	Type string //the atom type index, as printed in the forces section.
	F    [3]float64
}

//AtomPosition is the position of one atom, either in crystal or in cartesian coordinates.
type AtomPosition struct {
	Species string
	X       [3]float64
}

//IterationRecord contains the data for one simulation step.
//Nil pointers and nil slices mean the corresponding section was not found.
type IterationRecord struct {
	Index       int  //1-based, in simulation order.
	NAtoms      *int //declared in the preamble, the same for all the records of a run.
	Time        float64
	TotalEnergy *float64 //Ry
	Ekin        *float64 //Ry
	Etot        *float64
	Forces      []AtomForce
	Stress      *Tensor
	Cell        *Tensor
	Fractional  []AtomPosition
	Cartesian   []AtomPosition //only when Cell and Fractional are both present.
}

//Width returns the largest per-atom length of the record, considering the
//declared number of atoms and the length of every per-atom list.
func (R *IterationRecord) Width() int {
	w := 0
	if R.NAtoms != nil {
		w = *R.NAtoms
	}
	for _, l := range []int{len(R.Forces), len(R.Fractional), len(R.Cartesian)} {
		if l > w {
			w = l
		}
	}
	return w
}

//Consistent returns an error if the per-atom lists present in the record do not match
//the declared number of atoms.
func (R *IterationRecord) Consistent() error {
	if R.NAtoms == nil {
		return fmt.Errorf("iteration %d: number of atoms not available", R.Index)
	}
	n := *R.NAtoms
	lists := []struct {
		name string
		l    int
	}{{"forces", len(R.Forces)}, {"fractional", len(R.Fractional)}, {"cartesian", len(R.Cartesian)}}
	for _, v := range lists {
		if v.l != 0 && v.l != n {
			return fmt.Errorf("iteration %d: %d %s entries, %d atoms declared", R.Index, v.l, v.name, n)
		}
	}
	return nil
}
