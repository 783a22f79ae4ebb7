/*
 * segment.go, part of qecfg.
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

import (
	"regexp"
	"strconv"
	"strings"
)

//IterationMarker separates the preamble of a pw.x transcript from the first step, and
//each step from the next.
const IterationMarker = "Self-consistent Calculation"

var natomsRe = regexp.MustCompile(`number of atoms/cell\s+=\s+(\d+)`)

//Segmenter splits a transcript into its preamble and a sequence of iteration blocks.
//The blocks are obtained, in the original order, by successive calls to Next. A Segmenter
//can only be traversed once.
type Segmenter struct {
	preamble string
	blocks   []string
	current  int
}

//NewSegmenter returns a Segmenter for the transcript text.
func NewSegmenter(text string) *Segmenter {
	parts := strings.Split(text, IterationMarker)
	return &Segmenter{preamble: parts[0], blocks: parts[1:]}
}

//Preamble returns the text before the first iteration marker.
func (S *Segmenter) Preamble() string {
	return S.preamble
}

//NAtoms returns the number of atoms declared in the preamble, or nil
//if the declaration is not there.
func (S *Segmenter) NAtoms() *int {
	m := natomsRe.FindStringSubmatch(S.preamble)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

//Len returns the total number of iteration blocks in the transcript.
func (S *Segmenter) Len() int {
	return len(S.blocks)
}

//Next returns the next iteration block. ok is false once all the blocks have been
//returned.
func (S *Segmenter) Next() (block string, ok bool) {
	if S.current >= len(S.blocks) {
		return "", false
	}
	block = S.blocks[S.current]
	S.blocks[S.current] = "" //we won't go back.
	S.current++
	return block, true
}
