/*
 * mode.go, part of qecfg.
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

//Package cfg writes MLIP configuration (.cfg) files from qecfg datasets.
package cfg

import (
	"errors"
	"fmt"
	"strings"
)

//ErrMalformedMode is returned for write modes other than overwrite and append.
var ErrMalformedMode = errors.New("write mode must be \"w\" (overwrite) or \"a\" (append)")

//WriteMode determines what happens with an existing output file.
type WriteMode int

const (
	Overwrite WriteMode = iota //truncate the file and write.
	Append                     //add the new blocks at the end of the file.
)

//ParseWriteMode accepts "w"/"overwrite" and "a"/"append".
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "overwrite":
		return Overwrite, nil
	case "a", "append":
		return Append, nil
	}
	return Overwrite, fmt.Errorf("%w: %q", ErrMalformedMode, s)
}

func (m WriteMode) String() string {
	switch m {
	case Overwrite:
		return "w"
	case Append:
		return "a"
	}
	return fmt.Sprintf("WriteMode(%d)", int(m))
}

//Valid returns ErrMalformedMode if m is not a defined mode.
func (m WriteMode) Valid() error {
	if m != Overwrite && m != Append {
		return fmt.Errorf("%w: %v", ErrMalformedMode, m)
	}
	return nil
}
