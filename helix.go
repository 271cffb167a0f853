/*
 * helix.go, part of godssp.
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

import "math"

// The polyproline-II window.
const (
	ppPhi      float64 = -75
	ppPsi      float64 = 145
	ppDelta    float64 = 29
	ppStretchD int     = 3 //default minimal stretch
)

// helixStride maps the HelixType of an H-bonded helix family to its
// stride in residues.
func helixStride(t HelixType) int {
	return 3 + int(t)
}

func isHelixStart(r *Residue, t HelixType) bool {
	f := r.helixFlags[t]
	return f == HelixStart || f == HelixStartAndEnd
}

// noChainBreak tells whether residues a..b form an unbroken chain run.
func noChainBreak(prev []int, a, b int) bool {
	for k := a + 1; k <= b; k++ {
		if prev[k] != k-1 {
			return false
		}
	}
	return true
}

// calcHelixFlags marks, for every stride, the Start/Middle/End (or
// StartAndEnd) role of each residue from the i -> i+stride turn bonds.
func calcHelixFlags(residues []*Residue, prev []int) {
	for t := Stride3; t <= Stride5; t++ {
		stride := helixStride(t)
		for i := 0; i+stride < len(residues); i++ {
			if !noChainBreak(prev, i, i+stride) {
				continue
			}
			if !testBond(residues, i+stride, i) { //O(i) -> H-N(i+stride)
				continue
			}
			residues[i+stride].helixFlags[t] = HelixEnd
			for j := i + 1; j < i+stride; j++ {
				if residues[j].helixFlags[t] == HelixNone {
					residues[j].helixFlags[t] = HelixMiddle
				}
			}
			if residues[i].helixFlags[t] == HelixEnd {
				residues[i].helixFlags[t] = HelixStartAndEnd
			} else {
				residues[i].helixFlags[t] = HelixStart
			}
		}
	}
}

// calcHelices reduces the helix flags, the PPII window and the bend flag
// into the summary labels, after the beta labels have been set. The
// precedence is H > E/B > G > I > P > T > S.
func calcHelices(residues []*Residue, prev []int, minPP int) {
	//alpha helices overwrite whatever the beta pass left
	for i := 1; i+3 < len(residues); i++ {
		if isHelixStart(residues[i], Stride4) && isHelixStart(residues[i-1], Stride4) {
			for j := i; j <= i+3; j++ {
				residues[j].ss = AlphaHelix
			}
		}
	}
	//3-10 helices only claim loop residues
	for i := 1; i+2 < len(residues); i++ {
		if !isHelixStart(residues[i], Stride3) || !isHelixStart(residues[i-1], Stride3) {
			continue
		}
		empty := true
		for j := i; j <= i+2; j++ {
			if residues[j].ss != Loop && residues[j].ss != Helix3 {
				empty = false
				break
			}
		}
		if empty {
			for j := i; j <= i+2; j++ {
				residues[j].ss = Helix3
			}
		}
	}
	//pi helices likewise
	for i := 1; i+4 < len(residues); i++ {
		if !isHelixStart(residues[i], Stride5) || !isHelixStart(residues[i-1], Stride5) {
			continue
		}
		empty := true
		for j := i; j <= i+4; j++ {
			if residues[j].ss != Loop && residues[j].ss != Helix5 {
				empty = false
				break
			}
		}
		if empty {
			for j := i; j <= i+4; j++ {
				residues[j].ss = Helix5
			}
		}
	}
	calcPPII(residues, prev, minPP)
	//turns and bends
	for i := 1; i+1 < len(residues); i++ {
		if residues[i].ss != Loop {
			continue
		}
		isTurn := false
		for t := Stride3; t <= Stride5 && !isTurn; t++ {
			stride := helixStride(t)
			for k := 1; k < stride && !isTurn; k++ {
				isTurn = i >= k && isHelixStart(residues[i-k], t)
			}
		}
		if isTurn {
			residues[i].ss = Turn
		} else if residues[i].bend && residues[i].n >= 0 && residues[i].c >= 0 {
			//a residue without its backbone keeps the blank label
			residues[i].ss = Bend
		}
	}
}

// ppEligible tells whether the residue's phi/psi pair falls in the
// polyproline-II window. The sentinel dihedrals always fail.
func ppEligible(r *Residue) bool {
	if r.phi == UndefinedAngle || r.psi == UndefinedAngle {
		return false
	}
	return math.Abs(r.phi-ppPhi) <= ppDelta && math.Abs(r.psi-ppPsi) <= ppDelta
}

// calcPPII marks runs of at least minPP consecutive eligible residues as
// polyproline-II helices, filling the StridePP flags and claiming the
// loop residues of the run for the P label.
func calcPPII(residues []*Residue, prev []int, minPP int) {
	if minPP < 1 {
		minPP = 1
	}
	start := -1
	flush := func(end int) { //end is one past the last residue of the run
		if start < 0 || end-start < minPP {
			start = -1
			return
		}
		for j := start; j < end; j++ {
			switch {
			case j == start && j == end-1:
				residues[j].helixFlags[StridePP] = HelixStartAndEnd
			case j == start:
				residues[j].helixFlags[StridePP] = HelixStart
			case j == end-1:
				residues[j].helixFlags[StridePP] = HelixEnd
			default:
				residues[j].helixFlags[StridePP] = HelixMiddle
			}
			if residues[j].ss == Loop {
				residues[j].ss = HelixPPII
			}
		}
		start = -1
	}
	for i := range residues {
		if !ppEligible(residues[i]) {
			flush(i)
			continue
		}
		if start >= 0 && prev[i] != i-1 { //a chain break ends the run
			flush(i)
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(residues))
}
