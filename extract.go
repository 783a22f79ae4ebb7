/*
 * extract.go, part of qecfg.
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

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	v3 "github.com/rmera/qecfg/v3"
)

//StressScope selects the text where the stress tensor of a step is searched for.
type StressScope int

const (
	//StressPerBlock searches the stress in the iteration block itself.
	StressPerBlock StressScope = iota
	//StressGlobal searches the whole transcript, so every record gets the first
	//tensor printed in the run. This reproduces the output of the legacy tools.
	StressGlobal
)

func (S StressScope) String() string {
	if S == StressGlobal {
		return "global"
	}
	return "block"
}

//ParseStressScope returns the StressScope named by s, "block" or "global".
func ParseStressScope(s string) (StressScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "block":
		return StressPerBlock, nil
	case "global":
		return StressGlobal, nil
	}
	return StressPerBlock, fmt.Errorf("unknown stress scope %q", s)
}

//Section headers and markers of the pw.x output.
const (
	forcesHeader    = "Forces acting on atoms"
	cellHeader      = "CELL_PARAMETERS (angstrom)"
	positionsHeader = "ATOMIC_POSITIONS (crystal)"
)

//The forces section ends at whichever of these comes first.
var forcesDelimiters = []string{"The non-local contrib", "Total force"}

var (
	timeRe   = regexp.MustCompile(`time\s*=\s+([\d.]+)\s+pico-seconds`)
	energyRe = regexp.MustCompile(`!\s+total energy\s+=\s+([-\d.]+)\s+Ry`)
	ekinRe   = regexp.MustCompile(`Ekin\)?\s+=\s+([\d.]+)\s+Ry`)
	etotRe   = regexp.MustCompile(`Etot\s+=\s+([-\d.]+)`)
	stressRe = regexp.MustCompile(`total\s+stress\s+\(Ry/bohr\*\*3\)\s+\(kbar\)\s+P=\s*[-\d.]+[^\n]*\n([^\n]*)\n([^\n]*)\n([^\n]*)\n`)
)

//Extractor builds IterationRecords from the iteration blocks of one transcript.
type Extractor struct {
	transcript string
	scope      StressScope
	global     *Tensor
	globalDone bool
}

//NewExtractor returns an Extractor for blocks of transcript. The whole transcript is
//only used when the stress scope is StressGlobal.
func NewExtractor(transcript string, scope StressScope) *Extractor {
	return &Extractor{transcript: transcript, scope: scope}
}

//Extract returns the record for the iteration block with the given 1-based index. Each
//field is searched independently; fields not found are left nil (the time defaults to 0).
//It never fails.
func (E *Extractor) Extract(index int, natoms *int, block string) IterationRecord {
	rec := IterationRecord{Index: index, NAtoms: natoms}
	if t, ok := firstFloat(timeRe, block); ok {
		rec.Time = t
	}
	rec.TotalEnergy = floatPtr(firstFloat(energyRe, block))
	rec.Ekin = floatPtr(firstFloat(ekinRe, block))
	rec.Etot = floatPtr(firstFloat(etotRe, block))
	rec.Forces = forces(block)
	if E.scope == StressGlobal {
		if !E.globalDone {
			E.global = stress(E.transcript)
			E.globalDone = true
		}
		if E.global != nil {
			t := *E.global
			rec.Stress = &t
		}
	} else {
		rec.Stress = stress(block)
	}
	rec.Cell = cell(block)
	rec.Fractional = positions(block)
	if rec.Cell != nil && rec.Fractional != nil {
		rec.Cartesian = cartesian(rec.Fractional, rec.Cell)
	}
	return rec
}

func floatPtr(f float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &f
}

//parseFinite parses s as a float. NaN and infinite values, which pw.x prints
//when a run diverges, are rejected like any other unparseable token.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

//firstFloat returns the first submatch of the first match of re in text, as a float.
func firstFloat(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return parseFinite(m[1])
}

//floats3 parses the 3 strings in f.
func floats3(f []string) ([3]float64, bool) {
	var ret [3]float64
	var ok bool
	for i := range ret {
		if ret[i], ok = parseFinite(f[i]); !ok {
			return ret, false
		}
	}
	return ret, true
}

//section returns the lines following the line containing the first occurrence of header,
//up to the first blank line or the end of text. ok is false if header is not in text.
func section(text, header string) (lines []string, ok bool) {
	i := strings.Index(text, header)
	if i < 0 {
		return nil, false
	}
	all := strings.Split(text[i+len(header):], "\n")
	for _, l := range all[1:] {
		if strings.TrimSpace(l) == "" {
			break
		}
		lines = append(lines, l)
	}
	return lines, true
}

//forces reads the lines of the forces section of block, which look like
//"atom    1 type  1   force =    -0.00012345    0.00000000    0.00054321".
func forces(block string) []AtomForce {
	i := strings.Index(block, forcesHeader)
	if i < 0 {
		return nil
	}
	body := block[i:]
	end := -1
	for _, d := range forcesDelimiters {
		if j := strings.Index(body, d); j >= 0 && (end < 0 || j < end) {
			end = j
		}
	}
	if end < 0 {
		return nil
	}
	var ret []AtomForce
	for _, line := range strings.Split(body[:end], "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "atom") {
			continue
		}
		lhs, rhs, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		left := strings.Fields(lhs)
		right := strings.Fields(rhs)
		if len(left) < 4 || len(right) < 3 {
			continue
		}
		f, ok := floats3(right)
		if !ok {
			continue
		}
		ret = append(ret, AtomForce{Type: left[3], F: f})
	}
	return ret
}

//stress returns the tensor, in kbar, printed after the first stress header in text.
//Each of the 3 following lines contain the tensor row in Ry/bohr**3 and then in kbar,
//so the last 3 numbers are taken.
func stress(text string) *Tensor {
	m := stressRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var t Tensor
	for i, line := range m[1:4] {
		f := strings.Fields(line)
		if len(f) < 3 {
			return nil
		}
		row, ok := floats3(f[len(f)-3:])
		if !ok {
			return nil
		}
		t[i] = row
	}
	return &t
}

//cell returns the lattice vectors in the CELL_PARAMETERS section of block, or nil if
//the section is absent or does not contain exactly 3 vectors.
func cell(block string) *Tensor {
	lines, ok := section(block, cellHeader)
	if !ok {
		return nil
	}
	var t Tensor
	n := 0
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) < 3 {
			continue
		}
		row, ok := floats3(f)
		if !ok {
			continue
		}
		if n >= 3 {
			return nil
		}
		t[n] = row
		n++
	}
	if n != 3 {
		return nil
	}
	return &t
}

//positions reads the lines "species u v w" (possibly followed by fixed-coordinate flags)
//of the ATOMIC_POSITIONS section of block.
func positions(block string) []AtomPosition {
	lines, ok := section(block, positionsHeader)
	if !ok {
		return nil
	}
	var ret []AtomPosition
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) < 4 {
			continue
		}
		x, ok := floats3(f[1:4])
		if !ok {
			continue
		}
		ret = append(ret, AtomPosition{Species: f[0], X: x})
	}
	return ret
}

//cartesian transforms the crystal coordinates in frac to cartesian coordinates, using
//the lattice vectors in c. Returns nil if the transformation is not possible.
func cartesian(frac []AtomPosition, c *Tensor) []AtomPosition {
	rows := make([][3]float64, len(frac))
	for i, v := range frac {
		rows[i] = v.X
	}
	fm, err := v3.FromRows(rows)
	if err != nil {
		return nil
	}
	cm, err := v3.FromRows(c[:])
	if err != nil {
		return nil
	}
	cart, err := v3.Frac2Cart(fm, cm)
	if err != nil {
		return nil
	}
	ret := make([]AtomPosition, len(frac))
	for i, v := range frac {
		ret[i] = AtomPosition{Species: v.Species, X: cart.Vec(i)}
	}
	return ret
}
