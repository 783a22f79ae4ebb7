/*
 * doc.go, part of qecfg.
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

/*Package qecfg extracts per-iteration data from Quantum ESPRESSO (pw.x) molecular dynamics
output and prepares it for the training of machine-learning interatomic potentials.

	**qecfg Capabilities**

    Splits a pw.x transcript into the preamble and one block per self-consistent
	calculation, and reads the number of atoms declared in the preamble.

    Extracts, for each block, the time, the total energy, the kinetic energy,
	the forces on each atom, the stress tensor, the cell vectors and the atomic
	positions in crystal coordinates. Missing sections give nil values, never errors.

    Obtains cartesian positions from the crystal coordinates and the cell (package v3).

    Flattens the records into a tabular dataset with a fixed, versioned schema, and
	reads/writes it as CSV, optionally compressed (packages table and zio).

    Writes the dataset as MLIP .cfg frames, with energies, forces and stresses
	converted to eV-based units (package cfg).

    Computes summary statistics of a run and plots its energy trace (packages
	chemstat and chemplot).

The pipeline is strictly sequential: Segmenter -> Extractor -> table.Assemble -> cfg.WriteFile.
*/
package qecfg
