/*
 * conversion.go, part of qecfg.
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

package qecfg

//This provides the conversion factors used to write .cfg files.
//The values are the ones used by the legacy tools, and must not be refined, or
//the output would no longer match theirs.

//Conversions
const (
	Force2EVA = 51.421      //Force as printed by pw.x to eV/A
	Ry2EV     = 13.6        //Rydberg to eV
	Kbar2EVA3 = 0.006241509 //kbar to eV/A^3
)
