/*
 * geometry.go, part of godssp.
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

package dssp

import (
	"math"

	"github.com/rmera/godssp/mol"
	v3 "github.com/rmera/godssp/v3"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// Angle takes 2 vectors and calculates the angle in radians between them.
// It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// Dihedral calculates the dihedral between the points a, b, c, d, in
// radians, where the first plane is defined by abc and the second by bcd.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(v3.PanicMsg("godssp: Vector " + string(rune('0'+number)) + " in dihedral is nil"))
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(), bma)
	first := bmascaled.Dot(v3.Cross(cmb, dmc))
	v1 := v3.Cross(bma, cmb)
	v2 := v3.Cross(cmb, dmc)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

// cosinusAngle returns the cosine of the angle between the vectors a-b
// and c-d, or 0 when either is degenerate.
func cosinusAngle(a, b, c, d *v3.Matrix) float64 {
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(a, b)
	v2.Sub(c, d)
	n := v1.Norm() * v2.Norm()
	if n <= appzero {
		return 0
	}
	return v1.Dot(v2) / n
}

// calcGeometry fills the per-residue dihedrals and virtual angles:
// phi, psi, omega, tco, kappa and alpha, plus the bend flag and the
// chirality character. Residues lacking the needed atoms or neighbours
// keep the UndefinedAngle sentinel (0 for tco).
func calcGeometry(m *mol.Molecule, residues []*Residue, prev, next []int) {
	pos := func(i int) *v3.Matrix { return m.Coord(i) }
	for i, r := range residues {
		p := prev[i]
		nx := next[i]
		if p >= 0 {
			pr := residues[p]
			if pr.c >= 0 && r.n >= 0 && r.ca >= 0 && r.c >= 0 {
				r.phi = Rad2Deg(Dihedral(pos(pr.c), pos(r.n), pos(r.ca), pos(r.c)))
			}
			if pr.ca >= 0 && pr.c >= 0 && r.n >= 0 && r.ca >= 0 {
				r.omega = Rad2Deg(Dihedral(pos(pr.ca), pos(pr.c), pos(r.n), pos(r.ca)))
			}
			if pr.c >= 0 && pr.o >= 0 && r.c >= 0 && r.o >= 0 {
				r.tco = cosinusAngle(pos(r.c), pos(r.o), pos(pr.c), pos(pr.o))
			}
		}
		if nx >= 0 {
			nr := residues[nx]
			if r.n >= 0 && r.ca >= 0 && r.c >= 0 && nr.n >= 0 {
				r.psi = Rad2Deg(Dihedral(pos(r.n), pos(r.ca), pos(r.c), pos(nr.n)))
			}
		}
		//kappa needs the in-chain second neighbours on both sides
		pp, nn := -1, -1
		if p >= 0 {
			pp = prev[p]
		}
		if nx >= 0 {
			nn = next[nx]
		}
		if pp >= 0 && nn >= 0 {
			ppr, nnr := residues[pp], residues[nn]
			if ppr.ca >= 0 && r.ca >= 0 && nnr.ca >= 0 {
				ckap := cosinusAngle(pos(r.ca), pos(ppr.ca), pos(nnr.ca), pos(r.ca))
				skap := math.Sqrt(1 - ckap*ckap)
				r.kappa = Rad2Deg(math.Atan2(skap, ckap))
				r.bend = r.kappa > 70
			}
		}
		if p >= 0 && nx >= 0 && nn >= 0 {
			pr, nr, nnr := residues[p], residues[nx], residues[nn]
			if pr.ca >= 0 && r.ca >= 0 && nr.ca >= 0 && nnr.ca >= 0 {
				r.alpha = Rad2Deg(Dihedral(pos(pr.ca), pos(r.ca), pos(nr.ca), pos(nnr.ca)))
				if r.alpha < 0 {
					r.chirality = '-'
				} else {
					r.chirality = '+'
				}
			}
		}
	}
}
