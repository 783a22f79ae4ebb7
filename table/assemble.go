/*
 * assemble.go, part of qecfg.
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
	"errors"

	"github.com/rmera/qecfg"
	"go.uber.org/zap"
)

//ErrSchema is returned when a dataset does not have the columns expected.
var ErrSchema = errors.New("dataset does not follow the expected schema")

//Dataset is a set of rows sharing one schema.
type Dataset struct {
	Schema  Schema
	Rows    []FlatRow
	Dropped int //rows discarded because they were incomplete.
}

//WidthOf returns the number of per-atom columns needed for records, that is, the
//largest Width among them.
func WidthOf(records []qecfg.IterationRecord) int {
	w := 0
	for i := range records {
		if rw := records[i].Width(); rw > w {
			w = rw
		}
	}
	return w
}

//Assemble projects records onto rows. The width of the schema is obtained from all
//the records before any row is built. Rows with a null in any required column are
//discarded, and counted in the Dropped field of the returned Dataset.
//log can be nil.
func Assemble(records []qecfg.IterationRecord, log *zap.Logger) *Dataset {
	if log == nil {
		log = zap.NewNop()
	}
	ds := &Dataset{Schema: NewSchema(WidthOf(records))}
	ds.Rows = make([]FlatRow, 0, len(records))
	for i := range records {
		row := Project(&records[i], ds.Schema)
		if !row.Complete() {
			ds.Dropped++
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}
	log.Info("Assembled dataset", zap.Int("columns", len(ds.Schema.Columns())),
		zap.Int("rows", len(ds.Rows)), zap.Int("dropped", ds.Dropped))
	return ds
}
