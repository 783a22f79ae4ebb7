/*
 * histogram.go, part of qecfg.
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

package chemstat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Histogram counts values in the bins defined by a set of dividers. Bin i
//holds the values v with dividers[i] <= v < dividers[i+1].
type Histogram struct {
	dividers   []float64
	histo      []float64
	total      int
	normalized bool
}

//NewHistogram returns a histogram with the given dividers, which must be sorted
//and at least 2, filled with rawdata. rawdata can be nil.
func NewHistogram(dividers []float64, rawdata []float64) *Histogram {
	H := &Histogram{dividers: make([]float64, len(dividers))}
	copy(H.dividers, dividers)
	H.histo = make([]float64, len(dividers)-1)
	H.AddData(rawdata...)
	return H
}

//AddData adds the given values to the histogram. Values outside the
//dividers are counted in the total only.
func (H *Histogram) AddData(point ...float64) {
	if len(point) == 0 {
		return
	}
	norma := H.normalized
	if norma {
		H.UnNormalize()
	}
	lo, hi := H.dividers[0], H.dividers[len(H.dividers)-1]
	in := make([]float64, 0, len(point))
	for _, v := range point {
		if v >= lo && v < hi {
			in = append(in, v)
		}
	}
	sort.Float64s(in)
	if len(in) > 0 {
		floats.Add(H.histo, stat.Histogram(nil, H.dividers, in, nil))
	}
	H.total += len(point)
	if norma {
		H.Normalize()
	}
}

//Total returns the number of values added, including those out of range.
func (H *Histogram) Total() int { return H.total }

//Counts returns a copy of the bin values.
func (H *Histogram) Counts() []float64 {
	return append([]float64(nil), H.histo...)
}

//Normalize divides each bin by the total number of values.
func (H *Histogram) Normalize() { H.normaunnorma(true) }

//UnNormalize reverts Normalize.
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / n
	}
	H.normalized = normalize
	floats.Scale(n, H.histo)
}

//String returns the bins in one line and their values in the next.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Normalized: %v, TotalData: %d\n%s\n%s", H.normalized, H.total, strings.Join(d, " "), strings.Join(h, " "))
}

//ForceMagnitudes returns the norm, in eV/A, of the force on each declared atom
//of each row of ds.
func ForceMagnitudes(ds *table.Dataset) []float64 {
	var ret []float64
	for _, r := range ds.Rows {
		n := len(r.Forces)
		if r.NAtoms != nil && *r.NAtoms < n {
			n = *r.NAtoms
		}
		for _, f := range r.Forces[:n] {
			if f == nil {
				continue
			}
			ret = append(ret, floats.Norm(f.F[:], 2)*qecfg.Force2EVA)
		}
	}
	return ret
}

//ForceHistogram returns a histogram of the force magnitudes in ds, with bins
//equally spaced between 0 and the largest magnitude. It returns nil if ds
//has no forces or bins < 1.
func ForceHistogram(ds *table.Dataset, bins int) *Histogram {
	mags := ForceMagnitudes(ds)
	if len(mags) == 0 || bins < 1 {
		return nil
	}
	hi := math.Nextafter(floats.Max(mags), math.Inf(1))
	return NewHistogram(floats.Span(make([]float64, bins+1), 0, hi), mags)
}
