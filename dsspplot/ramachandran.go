/*
 * ramachandran.go, part of godssp.
 *
 * Copyright 2020 Raul Mera <rmera{at}usachDOTcl>
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

// Package dsspplot renders a Ramachandran plot of a DSSP result, with the
// points coloured by their summary secondary-structure label.
package dsspplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/godssp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicRamaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Phi"
	p.Y.Label.Text = "Psi"
	//Constant axes
	p.X.Min = -180
	p.X.Max = 180
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

// ssColor returns the colour used for each summary label.
func ssColor(ss dssp.SS) color.RGBA {
	switch ss {
	case dssp.AlphaHelix:
		return color.RGBA{R: 255, A: 255}
	case dssp.Strand, dssp.BetaBridge:
		return color.RGBA{B: 255, A: 255}
	case dssp.Helix3:
		return color.RGBA{R: 255, G: 165, A: 255}
	case dssp.Helix5:
		return color.RGBA{R: 128, A: 255}
	case dssp.HelixPPII:
		return color.RGBA{G: 180, A: 255}
	case dssp.Turn:
		return color.RGBA{R: 180, G: 0, B: 180, A: 255}
	case dssp.Bend:
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
	return color.RGBA{R: 190, G: 190, B: 190, A: 255}
}

// RamaPlot produces a png Ramachandran plot of the phi/psi dihedrals of
// the result, one colour per secondary-structure class. Residues with
// undefined dihedrals are omitted. The .png extension is appended to
// plotname.
func RamaPlot(d *dssp.DSSP, title, plotname string) error {
	if d == nil {
		panic("Given nil data")
	}
	p := basicRamaPlot(title)
	points := make(map[dssp.SS]plotter.XYs)
	for _, r := range d.Residues() {
		if r.Phi() == dssp.UndefinedAngle || r.Psi() == dssp.UndefinedAngle {
			continue
		}
		points[r.SS()] = append(points[r.SS()], plotter.XY{X: r.Phi(), Y: r.Psi()})
	}
	for _, ss := range []dssp.SS{dssp.Loop, dssp.Bend, dssp.Turn, dssp.HelixPPII,
		dssp.Helix5, dssp.Helix3, dssp.Strand, dssp.BetaBridge, dssp.AlphaHelix} {
		pts, ok := points[ss]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = ssColor(ss)
		p.Add(s)
		name := string(rune(ss))
		if ss == dssp.Loop {
			name = "loop"
		}
		p.Legend.Add(name, s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
