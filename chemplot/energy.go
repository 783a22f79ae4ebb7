/*
 * energy.go, part of qecfg.
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

//Package chemplot produces plots of assembled datasets.
package chemplot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

var formats = map[string]bool{".png": true, ".svg": true, ".pdf": true, ".eps": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true}

//EnergyPoints returns the total energy, in eV, against the simulation time, in ps,
//for each row of ds.
func EnergyPoints(ds *table.Dataset) plotter.XYs {
	pts := make(plotter.XYs, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		if r.TotalEnergy == nil {
			continue
		}
		pts = append(pts, plotter.XY{X: r.Time, Y: *r.TotalEnergy * qecfg.Ry2EV})
	}
	return pts
}

//EnergyPlot plots the total energy of each row of ds against time, and saves the
//plot to path. The image format is taken from the suffix of path.
func EnergyPlot(ds *table.Dataset, title, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !formats[ext] {
		return fmt.Errorf("chemplot: unsupported plot format %q", ext)
	}
	pts := EnergyPoints(ds)
	if len(pts) == 0 {
		return fmt.Errorf("chemplot: no data to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Time (ps)"
	p.Y.Label.Text = "Total energy (eV)"
	p.Add(plotter.NewGrid())
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{B: 200, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(l, s)
	return p.Save(Width, Height, path)
}
