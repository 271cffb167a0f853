/*
 * hbond.go, part of godssp.
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

// Constants of the Kabsch-Sander electrostatic model.
const (
	couplingConstant float64 = -27.888 //kcal/mol, f*q1*q2 in the 1983 paper
	minHBondEnergy   float64 = -9.9
	maxHBondEnergy   float64 = -0.5 //acceptance threshold
	minimalDistance  float64 = 0.5
	minimalCADist    float64 = 9.0 //coarse CA-CA cutoff for the pair search
)

// calcHBondEnergy computes the Kabsch-Sander energy for the bond donated
// by don's N-H to acc's C=O and, if it is acceptable, stores it in the
// slots of both residues. don and acc are indices into residues.
func calcHBondEnergy(m *mol.Molecule, residues []*Residue, don, acc int) {
	d := residues[don]
	a := residues[acc]
	if d.proline || d.n < 0 || d.h == nil {
		return
	}
	if a.c < 0 || a.o < 0 {
		return
	}
	nPos := m.Coord(d.n)
	cPos := m.Coord(a.c)
	oPos := m.Coord(a.o)
	distHO := v3.Dist(d.h, oPos)
	distHC := v3.Dist(d.h, cPos)
	distNC := v3.Dist(nPos, cPos)
	distNO := v3.Dist(nPos, oPos)
	var energy float64
	if distHO < minimalDistance || distHC < minimalDistance || distNC < minimalDistance || distNO < minimalDistance {
		energy = minHBondEnergy
	} else {
		energy = couplingConstant * (1/distHO - 1/distHC + 1/distNC - 1/distNO)
		energy = math.Round(energy*1000) / 1000
		if energy < minHBondEnergy {
			energy = minHBondEnergy
		}
	}
	if energy > maxHBondEnergy {
		return
	}
	insertHBond(&d.acceptor, HBond{acc, energy})
	insertHBond(&a.donor, HBond{don, energy})
}

// insertHBond places the bond in the two-slot array, keeping the slots
// sorted by ascending energy.
func insertHBond(slots *[2]HBond, b HBond) {
	if slots[0].Partner < 0 || b.Energy < slots[0].Energy {
		slots[1] = slots[0]
		slots[0] = b
	} else if slots[1].Partner < 0 || b.Energy < slots[1].Energy {
		slots[1] = b
	}
}

// calcHBonds runs the pairwise H-bond search. Pairs whose CA atoms lie
// further apart than the coarse cutoff are skipped, as are bonds donated
// to the immediate chain predecessor.
func calcHBonds(m *mol.Molecule, residues []*Residue, prev []int) {
	for i := 0; i < len(residues); i++ {
		ri := residues[i]
		if ri.ca < 0 {
			continue
		}
		cai := m.Coord(ri.ca)
		for j := i + 1; j < len(residues); j++ {
			rj := residues[j]
			if rj.ca < 0 {
				continue
			}
			if v3.Dist(cai, m.Coord(rj.ca)) >= minimalCADist {
				continue
			}
			calcHBondEnergy(m, residues, i, j)
			//the N-H of a residue cannot reach back to the O of the
			//residue it is peptide-bonded to
			if j != i+1 || prev[j] != i {
				calcHBondEnergy(m, residues, j, i)
			}
		}
	}
}

// testBond tells whether an accepted H-bond donated by don's N-H to acc's
// O is in the slots. Both are indices into residues; negative indices
// test false.
func testBond(residues []*Residue, don, acc int) bool {
	if don < 0 || acc < 0 {
		return false
	}
	d := residues[don]
	return (d.acceptor[0].Partner == acc && d.acceptor[0].Energy <= maxHBondEnergy) ||
		(d.acceptor[1].Partner == acc && d.acceptor[1].Energy <= maxHBondEnergy)
}
