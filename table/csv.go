/*
 * csv.go, part of qecfg.
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

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/zio"
)

//WriteCSV writes the header and the rows of ds to w.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	cols := ds.Schema.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(cols))
	for i := range ds.Rows {
		if err := rowCells(&ds.Rows[i], ds.Schema, record); err != nil {
			return fmt.Errorf("iteration %d: %w", ds.Rows[i].Iteration, err)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteFile writes ds to the file path, compressed if the name says so (see package zio).
//The whole dataset is encoded before path is created, so an encoding error leaves
//any previous file untouched.
func WriteFile(path string, ds *Dataset) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, ds); err != nil {
		return err
	}
	w, err := zio.Create(path)
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	if err2 := w.Close(); err == nil {
		err = err2
	}
	return err
}

//ReadCSV reads a dataset from r. The width of the schema is obtained from the
//header. Incomplete rows are discarded and counted in Dropped.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty dataset", ErrSchema)
	}
	if err != nil {
		return nil, err
	}
	S, index, err := schemaFromHeader(header)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Schema: S}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row, err := parseRow(record, index, S)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !row.Complete() {
			ds.Dropped++
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

//ReadFile reads the dataset in the file path, which can be compressed.
func ReadFile(path string) (*Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", qecfg.ErrMissingInput, path)
	}
	r, err := zio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadCSV(r)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func optFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

//rowCells fills record with the cells of row, in the order of S.Columns().
func rowCells(row *FlatRow, S Schema, record []string) error {
	var err error
	record[0] = strconv.Itoa(row.Iteration)
	record[1] = ""
	if row.NAtoms != nil {
		record[1] = strconv.Itoa(*row.NAtoms)
	}
	record[2] = formatFloat(row.Time)
	record[3] = optFloat(row.TotalEnergy)
	record[4] = optFloat(row.Ekin)
	record[5] = optFloat(row.Etot)
	k := 6
	for i := 0; i < S.Width; i++ {
		record[k] = ""
		if i < len(row.Forces) && row.Forces[i] != nil {
			if record[k], err = encodeForce(row.Forces[i]); err != nil {
				return err
			}
		}
		k++
	}
	for _, t := range [][3]*[3]float64{row.Stress, row.Cell} {
		for _, v := range t {
			record[k] = ""
			if v != nil {
				if record[k], err = encodeVec(*v); err != nil {
					return err
				}
			}
			k++
		}
	}
	for _, l := range [][]*qecfg.AtomPosition{row.Positions, row.Cartesian} {
		for i := 0; i < S.Width; i++ {
			record[k] = ""
			if i < len(l) && l[i] != nil {
				if record[k], err = encodePosition(l[i]); err != nil {
					return err
				}
			}
			k++
		}
	}
	return nil
}

//parseRow builds a row from the cells in record. Empty cells are nulls.
func parseRow(record []string, index map[string]int, S Schema) (FlatRow, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	row := FlatRow{
		Forces:    make([]*qecfg.AtomForce, S.Width),
		Positions: make([]*qecfg.AtomPosition, S.Width),
		Cartesian: make([]*qecfg.AtomPosition, S.Width),
	}
	var err error
	if row.Iteration, err = parseInt(cell(ColIteration)); err != nil {
		return row, err
	}
	if c := cell(ColNAtoms); c != "" {
		n, err := parseInt(c)
		if err != nil {
			return row, err
		}
		row.NAtoms = &n
	}
	if c := cell(ColTime); c != "" {
		if row.Time, err = strconv.ParseFloat(c, 64); err != nil {
			return row, err
		}
	}
	for _, v := range []struct {
		col string
		dst **float64
	}{{ColTotalEnergy, &row.TotalEnergy}, {ColEkin, &row.Ekin}, {ColEtot, &row.Etot}} {
		c := cell(v.col)
		if c == "" {
			continue
		}
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return row, fmt.Errorf("column %s: %w", v.col, err)
		}
		*v.dst = &f
	}
	for i := 0; i < 3; i++ {
		if c := cell(StressCols[i]); c != "" {
			if row.Stress[i], err = decodeVec(c); err != nil {
				return row, err
			}
		}
		if c := cell(CellCols[i]); c != "" {
			if row.Cell[i], err = decodeVec(c); err != nil {
				return row, err
			}
		}
	}
	for i := 0; i < S.Width; i++ {
		if c := cell(fmt.Sprintf("%s%d", PrefixForce, i)); c != "" {
			if row.Forces[i], err = decodeForce(c); err != nil {
				return row, err
			}
		}
		if c := cell(fmt.Sprintf("%s%d", PrefixPosition, i)); c != "" {
			if row.Positions[i], err = decodePosition(c); err != nil {
				return row, err
			}
		}
		if c := cell(fmt.Sprintf("%s%d", PrefixCart, i)); c != "" {
			if row.Cartesian[i], err = decodePosition(c); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

//parseInt also accepts integral floats ("2.0"), which is how pandas writes integer
//columns that contain nulls.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != float64(int(f)) {
		return 0, err
	}
	return int(f), nil
}
