/*
 * parse.go, part of qecfg.
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
	"errors"
	"io/fs"
	"os"

	"github.com/rmera/qecfg/zio"
	"go.uber.org/zap"
)

//Options control the extraction of records from a transcript.
type Options struct {
	StressScope StressScope
	Logger      *zap.Logger //nil means no logging.
}

func (O Options) logger() *zap.Logger {
	if O.Logger == nil {
		return zap.NewNop()
	}
	return O.Logger
}

//Result contains the records extracted from one transcript.
type Result struct {
	NAtoms  *int //as declared in the preamble, nil if not found.
	Records []IterationRecord
}

//Iterations returns the number of iteration blocks found.
func (R *Result) Iterations() int {
	return len(R.Records)
}

//Parse extracts one record per iteration block of the transcript text. A transcript
//without iteration markers gives an empty Result.
func Parse(text string, opts Options) *Result {
	log := opts.logger()
	seg := NewSegmenter(text)
	ext := NewExtractor(text, opts.StressScope)
	res := &Result{NAtoms: seg.NAtoms(), Records: make([]IterationRecord, 0, seg.Len())}
	log.Info("The number of iterations in the simulation", zap.Int("iterations", seg.Len()))
	if res.NAtoms == nil {
		log.Warn("number of atoms/cell not found in the preamble, all the records will be incomplete")
	}
	missing := make(map[string]int)
	for i := 1; ; i++ {
		block, ok := seg.Next()
		if !ok {
			break
		}
		rec := ext.Extract(i, res.NAtoms, block)
		countMissing(&rec, missing)
		if err := rec.Consistent(); err != nil && res.NAtoms != nil {
			log.Debug("inconsistent record", zap.Error(err))
		}
		res.Records = append(res.Records, rec)
	}
	for k, v := range missing {
		log.Info("field missing in some iterations", zap.String("field", k), zap.Int("iterations", v))
	}
	return res
}

//ReadFile reads the whole transcript in the file path (which can be compressed, see
//package zio) and parses it.
func ReadFile(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Error{"input file does not exist", path, []string{"ReadFile"}, true, ErrMissingInput}
		}
		return nil, Error{err.Error(), path, []string{"ReadFile"}, true, err}
	}
	b, err := zio.ReadAll(path)
	if err != nil {
		return nil, Error{"can't read transcript: " + err.Error(), path, []string{"ReadFile"}, true, err}
	}
	opts.logger().Info("Processing input file", zap.String("path", path))
	return Parse(string(b), opts), nil
}

func countMissing(rec *IterationRecord, missing map[string]int) {
	if rec.TotalEnergy == nil {
		missing["total_energy"]++
	}
	if rec.Forces == nil {
		missing["forces"]++
	}
	if rec.Stress == nil {
		missing["stress"]++
	}
	if rec.Cell == nil {
		missing["cell"]++
	}
	if rec.Fractional == nil {
		missing["atomic_positions"]++
	}
}
