/*
 * writer.go, part of qecfg.
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

package cfg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/qecfg/table"
	"github.com/rmera/qecfg/zio"
	"go.uber.org/zap"
)

const (
	atomDataHeader   = " AtomData:  id type     cartes_x       cartes_y        cartes_z            fx          fy          fz\n"
	plusStressHeader = " PlusStress:  xx          yy          zz          yz          xz          xy\n"
)

//Writer writes blocks in the .cfg format to an underlying io.Writer.
type Writer struct {
	w *bufio.Writer
}

//NewWriter returns a Writer on w. Flush must be called after the last block.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

//WriteBlock writes b, followed by a blank line.
func (W *Writer) WriteBlock(b *Block) error {
	var s strings.Builder
	s.WriteString("BEGIN_CFG\n")
	s.WriteString(" Size\n")
	fmt.Fprintf(&s, "  %d\n", b.Size)
	s.WriteString(" Supercell\n")
	for _, v := range b.Supercell {
		fmt.Fprintf(&s, "  %s  %s  %s\n", pyFloat(v[0]), pyFloat(v[1]), pyFloat(v[2]))
	}
	s.WriteString(atomDataHeader)
	for _, a := range b.Atoms {
		fmt.Fprintf(&s, "  %d    %s       %s      %s      %s    %s    %s    %s\n", a.ID, a.Type,
			pyFloat(a.X[0]), pyFloat(a.X[1]), pyFloat(a.X[2]),
			pyFloat(a.F[0]), pyFloat(a.F[1]), pyFloat(a.F[2]))
	}
	fmt.Fprintf(&s, " Energy\n  %s\n", pyFloat(b.Energy))
	s.WriteString(plusStressHeader)
	p := b.PlusStress
	fmt.Fprintf(&s, "  %s    %s    %s    %s    %s    %s\n", pyFloat(p[0]), pyFloat(p[1]), pyFloat(p[2]),
		pyFloat(p[3]), pyFloat(p[4]), pyFloat(p[5]))
	s.WriteString("END_CFG\n\n")
	_, err := W.w.WriteString(s.String())
	return err
}

//Flush writes any buffered data to the underlying io.Writer.
func (W *Writer) Flush() error {
	return W.w.Flush()
}

//WriteFile writes one block per row of ds to the file path, truncating it or appending
//to it according to mode. The file is opened once, and closed before returning.
//It returns the number of blocks written. log can be nil.
func WriteFile(path string, ds *table.Dataset, mode WriteMode, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := mode.Valid(); err != nil {
		return 0, err
	}
	open := zio.Create
	if mode == Append {
		open = zio.Append
	}
	f, err := open(path)
	if err != nil {
		return 0, err
	}
	n, err := write(f, ds)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info("Data saved", zap.String("path", path), zap.Stringer("mode", mode), zap.Int("blocks", n))
	return n, nil
}

func write(w io.Writer, ds *table.Dataset) (int, error) {
	W := NewWriter(w)
	n := 0
	for i := range ds.Rows {
		b, err := FromRow(&ds.Rows[i])
		if err != nil {
			return n, err
		}
		if err := W.WriteBlock(&b); err != nil {
			return n, err
		}
		n++
	}
	return n, W.Flush()
}

//pyFloat formats f the way Python's repr does: the shortest representation that
//reads back to f, always with a decimal point or an exponent, and in scientific
//notation only for exponents below -4 or from 16 on.
func pyFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
