/*
 * block.go, part of qecfg.
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

package cfg

import (
	"fmt"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/table"
)

//Atom is one line of the AtomData section.
type Atom struct {
	ID   int //1-based
	Type string
	X    [3]float64 //cartesian, angstrom
	F    [3]float64 //eV/A
}

//Block is one configuration (frame) of a .cfg file.
type Block struct {
	Size       int
	Supercell  qecfg.Tensor //angstrom
	Atoms      []Atom
	Energy     float64    //eV
	PlusStress [6]float64 //xx, yy, zz, yz, xz, xy, in eV (stress times cell volume)
}

//Volume returns the cell volume used for the stresses. Only the diagonal of the supercell
//is considered, which is exact for orthogonal cells, and is what the existing .cfg
//files were produced with.
func Volume(cell qecfg.Tensor) float64 {
	return cell[0][0] * cell[1][1] * cell[2][2]
}

//FromRow builds the block for a complete dataset row. The type of each atom is taken
//from its force entry, and the position from the cartesian coordinates.
func FromRow(row *table.FlatRow) (Block, error) {
	var b Block
	if !row.Complete() {
		return b, fmt.Errorf("iteration %d: incomplete row", row.Iteration)
	}
	n := *row.NAtoms
	if n > len(row.Forces) {
		return b, fmt.Errorf("iteration %d: %d atoms declared, %d available", row.Iteration, n, len(row.Forces))
	}
	cell, _ := table.Tensor(row.Cell)
	stress, _ := table.Tensor(row.Stress)
	b.Size = n
	b.Supercell = cell
	b.Atoms = make([]Atom, n)
	for i := 0; i < n; i++ {
		f := row.Forces[i]
		b.Atoms[i] = Atom{
			ID:   i + 1,
			Type: f.Type,
			X:    row.Cartesian[i].X,
			F:    [3]float64{f.F[0] * qecfg.Force2EVA, f.F[1] * qecfg.Force2EVA, f.F[2] * qecfg.Force2EVA},
		}
	}
	b.Energy = *row.TotalEnergy * qecfg.Ry2EV
	vs := Volume(cell) * qecfg.Kbar2EVA3
	b.PlusStress = [6]float64{
		vs * stress[0][0], //xx
		vs * stress[1][1], //yy
		vs * stress[2][2], //zz
		vs * stress[1][2], //yz
		vs * stress[0][2], //xz
		vs * stress[0][1], //xy
	}
	return b, nil
}
