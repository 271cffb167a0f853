/*
 * residue.go, part of godssp.
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
	"fmt"
	"os"

	"github.com/rmera/godssp/mol"
	v3 "github.com/rmera/godssp/v3"
)

// UndefinedAngle is the sentinel for dihedrals and angles that cannot be
// computed. Comparisons against it must be exact.
const UndefinedAngle float64 = 360

// maxPeptideBondLength is the maximal C-N distance for two consecutive
// residues to be considered bonded.
const maxPeptideBondLength float64 = 2.5

// maxSSBridgeLength is the maximal SG-SG distance for two cysteines to be
// considered disulphide-bonded.
const maxSSBridgeLength float64 = 2.5

// ChainBreak classifies a residue relative to the previous one in the
// sequence.
type ChainBreak int

const (
	BreakNone ChainBreak = iota
	BreakGap             //same chain, but a numbering gap or no peptide bond to the previous residue
	BreakNewChain
)

// SS is a summary secondary-structure label, with the classic DSSP
// one-character values.
type SS byte

const (
	Loop       SS = ' '
	AlphaHelix SS = 'H'
	BetaBridge SS = 'B'
	Strand     SS = 'E'
	Helix3     SS = 'G'
	Helix5     SS = 'I'
	HelixPPII  SS = 'P'
	Turn       SS = 'T'
	Bend       SS = 'S'
)

// HelixType indexes the helix stride families tracked per residue.
type HelixType int

const (
	Stride3 HelixType = iota
	Stride4
	Stride5
	StridePP
	nHelixTypes
)

// HelixPosition is the role of a residue within helices of one stride.
type HelixPosition int

const (
	HelixNone HelixPosition = iota
	HelixStart
	HelixEnd
	HelixStartAndEnd
	HelixMiddle
)

// HBond is one hydrogen-bond slot: the index (into the engine's residue
// slice) of the partner, or -1, and the bond energy in kcal/mol.
type HBond struct {
	Partner int
	Energy  float64
}

// BridgePartner is one beta-bridge slot: the partner residue index or -1,
// the 0-based ladder the bridge belongs to, and the bridge type.
type BridgePartner struct {
	Partner  int
	Ladder   int
	Parallel bool
}

// Residue is one protein monomer with everything the engine derived for it.
// Residues are built by the engine and are immutable once it returns.
type Residue struct {
	num        int //sequential index, 1-based, contiguous over the whole model
	compound   string
	code       byte
	chain      string
	labelChain string
	seqNum     int //author residue number
	labelSeq   int
	insCode    string
	chainBreak ChainBreak

	//atom indices into the source molecule, -1 when the atom is absent
	n, ca, c, o, sg, hatom int
	h                      *v3.Matrix //amide H position, possibly reconstructed
	proline                bool
	complete               bool //has the four backbone heavy atoms

	phi, psi, omega, tco, kappa, alpha float64
	chirality                          byte
	accessibility                      float64
	ssBridge                           int //1-based disulphide number, 0 if none

	donor, acceptor [2]HBond
	helixFlags      [nHelixTypes]HelixPosition
	bend            bool
	ss              SS
	bp              [2]BridgePartner
	sheet           int //1-based, 0 if none
}

// Num returns the 1-based sequential index the engine assigned.
func (R *Residue) Num() int { return R.num }

// Compound returns the 3-letter compound code.
func (R *Residue) Compound() string { return R.compound }

// Code returns the single-letter amino-acid code, or 'X'.
func (R *Residue) Code() byte { return R.code }

// Chain returns the author chain ID.
func (R *Residue) Chain() string { return R.chain }

// LabelChain returns the label (mmCIF) chain ID.
func (R *Residue) LabelChain() string { return R.labelChain }

// SeqNum returns the author residue number.
func (R *Residue) SeqNum() int { return R.seqNum }

// LabelSeq returns the label (mmCIF) residue number.
func (R *Residue) LabelSeq() int { return R.labelSeq }

// InsCode returns the insertion code, or "".
func (R *Residue) InsCode() string { return R.insCode }

// ChainBreak returns the break classification relative to the previous
// residue in the sequence.
func (R *Residue) ChainBreak() ChainBreak { return R.chainBreak }

// SS returns the summary secondary-structure label.
func (R *Residue) SS() SS { return R.ss }

// Helix returns the role of the residue in helices of the given type.
func (R *Residue) Helix(t HelixType) HelixPosition { return R.helixFlags[t] }

// Bend returns whether the backbone bends by more than 70 degrees here.
func (R *Residue) Bend() bool { return R.bend }

// Chirality returns '+', '-' or ' ' according to the alpha dihedral.
func (R *Residue) Chirality() byte { return R.chirality }

// BridgePartner returns the ith (0 or 1) beta-bridge slot.
func (R *Residue) BridgePartner(i int) BridgePartner { return R.bp[i] }

// Sheet returns the 1-based sheet ID, or 0.
func (R *Residue) Sheet() int { return R.sheet }

// Donor returns the ith (0 or 1) slot for bonds where the partner's N-H
// donates to this residue's O.
func (R *Residue) Donor(i int) HBond { return R.donor[i] }

// Acceptor returns the ith (0 or 1) slot for bonds where this residue's
// N-H donates to the partner's O.
func (R *Residue) Acceptor(i int) HBond { return R.acceptor[i] }

// Accessibility returns the solvent-accessible surface in A^2, as supplied
// by the caller in Options.Accessibility, or 0.
func (R *Residue) Accessibility() float64 { return R.accessibility }

// SSBridge returns the 1-based disulphide-bridge number, or 0.
func (R *Residue) SSBridge() int { return R.ssBridge }

// Phi returns the phi dihedral in degrees, or UndefinedAngle.
func (R *Residue) Phi() float64 { return R.phi }

// Psi returns the psi dihedral in degrees, or UndefinedAngle.
func (R *Residue) Psi() float64 { return R.psi }

// Omega returns the omega dihedral in degrees, or UndefinedAngle.
func (R *Residue) Omega() float64 { return R.omega }

// TCO returns the cosine of the angle between the C=O vectors of this and
// the previous residue, or 0.
func (R *Residue) TCO() float64 { return R.tco }

// Kappa returns the virtual bend angle in degrees, or UndefinedAngle.
func (R *Residue) Kappa() float64 { return R.kappa }

// Alpha returns the virtual torsion in degrees, or UndefinedAngle.
func (R *Residue) Alpha() float64 { return R.alpha }

// buildResidues walks the atoms of the molecule in file order and groups
// the protein ones into residues, collecting the backbone atom indices.
// A residue is identified by its chain, author number and insertion code.
func buildResidues(m *mol.Molecule) []*Residue {
	residues := make([]*Residue, 0, m.Len()/8)
	var cur *Residue
	sameResidue := func(at *mol.Atom, r *Residue) bool {
		return r != nil && at.Chain == r.chain && at.MolID == r.seqNum && at.InsCode == r.insCode
	}
	for i := 0; i < m.Len(); i++ {
		at := m.Atom(i)
		if !mol.IsProtein(at.MolName) {
			continue
		}
		if !sameResidue(at, cur) {
			cur = &Residue{
				compound:   at.MolName,
				code:       at.MolName1,
				chain:      at.Chain,
				labelChain: at.LabelChain,
				seqNum:     at.MolID,
				labelSeq:   at.LabelSeq,
				insCode:    at.InsCode,
				n:          -1, ca: -1, c: -1, o: -1, sg: -1, hatom: -1,
				phi: UndefinedAngle, psi: UndefinedAngle, omega: UndefinedAngle,
				kappa: UndefinedAngle, alpha: UndefinedAngle,
				chirality: ' ', ss: Loop,
			}
			cur.proline = cur.compound == "PRO"
			cur.donor[0].Partner, cur.donor[1].Partner = -1, -1
			cur.acceptor[0].Partner, cur.acceptor[1].Partner = -1, -1
			cur.bp[0].Partner, cur.bp[1].Partner = -1, -1
			cur.bp[0].Ladder, cur.bp[1].Ladder = -1, -1
			residues = append(residues, cur)
		}
		switch at.Name {
		case "N":
			cur.n = i
		case "CA":
			cur.ca = i
		case "C":
			cur.c = i
		case "O", "O1", "OT1":
			if cur.o < 0 {
				cur.o = i
			}
		case "SG":
			cur.sg = i
		case "H", "HN":
			if cur.hatom < 0 {
				cur.hatom = i
			}
		}
	}
	for k, r := range residues {
		r.num = k + 1
		r.complete = r.n >= 0 && r.ca >= 0 && r.c >= 0 && r.o >= 0
	}
	return residues
}

// linkResidues classifies the chain break of every residue and returns,
// for each one, the index of its peptide-bonded predecessor, or -1.
// Two consecutive residues are bonded when they are in the same chain,
// their author numbering is contiguous (an insertion-code step counts as
// contiguous) and, when both atoms are present, their C-N distance is
// below maxPeptideBondLength.
func linkResidues(m *mol.Molecule, residues []*Residue) []int {
	prev := make([]int, len(residues))
	for i := range residues {
		prev[i] = -1
		if i == 0 {
			continue
		}
		p, r := residues[i-1], residues[i]
		if p.chain != r.chain {
			r.chainBreak = BreakNewChain
			continue
		}
		bonded := p.seqNum+1 == r.seqNum || (p.seqNum == r.seqNum && p.insCode != r.insCode)
		if bonded && p.c >= 0 && r.n >= 0 {
			bonded = v3.Dist(m.Coord(p.c), m.Coord(r.n)) <= maxPeptideBondLength
		}
		if !bonded {
			r.chainBreak = BreakGap
			continue
		}
		prev[i] = i - 1
	}
	return prev
}

// reconstructH fills the amide hydrogen position of every residue: the
// position of an explicit backbone H when the file has one, otherwise at
// unit distance from N opposite to the previous C=O. Prolines have no
// amide hydrogen and get none.
func reconstructH(m *mol.Molecule, residues []*Residue, prev []int) {
	for i, r := range residues {
		if r.proline || r.n < 0 {
			continue
		}
		if r.hatom >= 0 {
			r.h = v3.Zeros(1)
			r.h.Copy(m.Coord(r.hatom))
			continue
		}
		r.h = v3.Zeros(1)
		r.h.Copy(m.Coord(r.n))
		p := prev[i]
		if p < 0 {
			continue
		}
		pr := residues[p]
		if pr.c < 0 || pr.o < 0 {
			continue
		}
		co := v3.Zeros(1)
		co.Sub(m.Coord(pr.c), m.Coord(pr.o))
		co.Unit(co)
		r.h.Add(r.h, co)
	}
}

// assignSSBridges pairs disulphide-bonded cysteines by their SG-SG
// distance and numbers the pairs densely from 1, in order of the first
// residue of each pair.
func assignSSBridges(m *mol.Molecule, residues []*Residue) int {
	n := 0
	for i, r := range residues {
		if r.compound != "CYS" || r.sg < 0 || r.ssBridge != 0 {
			continue
		}
		for j := i + 1; j < len(residues); j++ {
			o := residues[j]
			if o.compound != "CYS" || o.sg < 0 || o.ssBridge != 0 {
				continue
			}
			if v3.Dist(m.Coord(r.sg), m.Coord(o.sg)) <= maxSSBridgeLength {
				n++
				r.ssBridge = n
				o.ssBridge = n
				break
			}
		}
	}
	return n
}

// reportIncomplete prints, under Verbose, the residues that will be
// skipped for H-bonding because of missing backbone atoms.
func reportIncomplete(residues []*Residue) {
	if !Verbose {
		return
	}
	for _, r := range residues {
		if !r.complete {
			fmt.Fprintf(os.Stderr, "godssp: residue %s%d%s (%s) lacks backbone atoms, skipped for H-bonding\n",
				r.chain, r.seqNum, r.insCode, r.compound)
		}
	}
}
