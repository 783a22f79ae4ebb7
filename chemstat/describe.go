/*
 * describe.go, part of qecfg.
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

//Package chemstat computes descriptive statistics for the scalar columns of a dataset.
package chemstat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rmera/qecfg/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary holds the statistics of one column. Null cells are not counted.
//All the float fields are NaN when Count is 0, and Std is NaN when Count is 1.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 //sample standard deviation
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

//String returns the summary in one line.
func (S Summary) String() string {
	return fmt.Sprintf("%-13s count %d mean %g std %g min %g 25%% %g 50%% %g 75%% %g max %g",
		S.Column, S.Count, S.Mean, S.Std, S.Min, S.Q25, S.Median, S.Q75, S.Max)
}

type getter func(r *table.FlatRow) *float64

var described = []struct {
	col string
	get getter
}{
	{table.ColTime, func(r *table.FlatRow) *float64 { return &r.Time }},
	{table.ColTotalEnergy, func(r *table.FlatRow) *float64 { return r.TotalEnergy }},
	{table.ColEkin, func(r *table.FlatRow) *float64 { return r.Ekin }},
	{table.ColEtot, func(r *table.FlatRow) *float64 { return r.Etot }},
}

//Describe returns a Summary for each of the time, total_energy, Ekin and Etot
//columns of ds, in that order.
func Describe(ds *table.Dataset) []Summary {
	ret := make([]Summary, 0, len(described))
	for _, d := range described {
		ret = append(ret, Column(d.col, values(ds, d.get)))
	}
	return ret
}

func values(ds *table.Dataset, get getter) []float64 {
	ret := make([]float64, 0, len(ds.Rows))
	for i := range ds.Rows {
		if v := get(&ds.Rows[i]); v != nil {
			ret = append(ret, *v)
		}
	}
	return ret
}

//Column returns the summary of the values x for the column name. x is not modified.
func Column(name string, x []float64) Summary {
	nan := math.NaN()
	S := Summary{Column: name, Count: len(x), Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	if len(x) == 0 {
		return S
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	S.Mean = stat.Mean(sorted, nil)
	if len(x) > 1 {
		S.Std = stat.StdDev(sorted, nil)
	}
	S.Min = floats.Min(sorted)
	S.Max = floats.Max(sorted)
	S.Q25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	S.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	S.Q75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return S
}

//Report joins the String form of each summary, one per line.
func Report(sums []Summary) string {
	lines := make([]string, len(sums))
	for i, s := range sums {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
