/*
 * bridge.go, part of godssp.
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

type bridgeType int

const (
	btNone bridgeType = iota
	btParallel
	btAntiparallel
)

// ladder is a maximal co-linear run of beta bridges of one type. The two
// legs pair positionally: i[k] bridges j[k]. For antiparallel ladders the
// j leg is stored in descending order.
type ladder struct {
	t     bridgeType
	i, j  []int
	sheet int //1-based, assigned after the components are known
}

// bondPair is one O -> H-N bond, as (donor, acceptor) residue indices.
type bondPair struct {
	don, acc int
}

// betaResult carries everything the bridge pass derived, for the later
// statistics.
type betaResult struct {
	ladders  []*ladder
	nSheets  int
	parBonds map[bondPair]bool //trigger bonds of parallel bridges
	antiBond map[bondPair]bool //trigger bonds of antiparallel bridges
}

// testBridge checks residues a and b for a beta bridge. On success it
// also reports the two trigger bonds of the first pattern that holds.
// Both residues need their in-chain neighbours on both sides.
func testBridge(residues []*Residue, prev, next []int, a, b int) (bridgeType, [2]bondPair) {
	var bonds [2]bondPair
	pa, na := prev[a], next[a]
	pb, nb := prev[b], next[b]
	if pa < 0 || na < 0 || pb < 0 || nb < 0 {
		return btNone, bonds
	}
	tb := func(don, acc int) bool { return testBond(residues, don, acc) }
	switch {
	case tb(na, b) && tb(b, pa):
		bonds = [2]bondPair{{na, b}, {b, pa}}
		return btParallel, bonds
	case tb(nb, a) && tb(a, pb):
		bonds = [2]bondPair{{nb, a}, {a, pb}}
		return btParallel, bonds
	case tb(na, pb) && tb(nb, pa):
		bonds = [2]bondPair{{na, pb}, {nb, pa}}
		return btAntiparallel, bonds
	case tb(b, a) && tb(a, b):
		bonds = [2]bondPair{{b, a}, {a, b}}
		return btAntiparallel, bonds
	}
	return btNone, bonds
}

// calcBetaSheets enumerates the bridges, merges them into ladders, the
// ladders into sheets, and sets the per-residue bridge partners, sheet
// IDs and the E/B labels. Ladder and sheet IDs follow first appearance.
func calcBetaSheets(residues []*Residue, prev, next []int) *betaResult {
	res := &betaResult{
		parBonds: make(map[bondPair]bool),
		antiBond: make(map[bondPair]bool),
	}
	//enumerate bridges, extending a ladder as soon as possible
	for i := 1; i+1 < len(residues); i++ {
		for j := i + 3; j+1 < len(residues); j++ {
			t, bonds := testBridge(residues, prev, next, i, j)
			if t == btNone {
				continue
			}
			for _, b := range bonds {
				if t == btParallel {
					res.parBonds[b] = true
				} else {
					res.antiBond[b] = true
				}
			}
			//a bridge can match both patterns of its type; the bonds of the
			//second pattern are part of the bridge as well
			if t == btParallel && testBond(residues, next[j], i) && testBond(residues, i, prev[j]) {
				res.parBonds[bondPair{next[j], i}] = true
				res.parBonds[bondPair{i, prev[j]}] = true
			}
			if t == btAntiparallel && testBond(residues, j, i) && testBond(residues, i, j) {
				res.antiBond[bondPair{j, i}] = true
				res.antiBond[bondPair{i, j}] = true
			}
			found := false
			for _, ld := range res.ladders {
				li := ld.i[len(ld.i)-1]
				lj := ld.j[len(ld.j)-1]
				if ld.t != t || i != li+1 || prev[i] != li {
					continue
				}
				if t == btParallel && lj+1 == j && prev[j] == lj {
					ld.i = append(ld.i, i)
					ld.j = append(ld.j, j)
					found = true
				} else if t == btAntiparallel && lj-1 == j && next[j] == lj {
					ld.i = append(ld.i, i)
					ld.j = append(ld.j, j)
					found = true
				}
				if found {
					break
				}
			}
			if !found {
				res.ladders = append(res.ladders, &ladder{t: t, i: []int{i}, j: []int{j}})
			}
		}
	}
	//sheets: connected components of ladders sharing residues
	uf := newUnionFind(len(res.ladders))
	inLadder := make(map[int][]int) //residue -> ladders containing it
	for li, ld := range res.ladders {
		for _, r := range append(append([]int{}, ld.i...), ld.j...) {
			inLadder[r] = append(inLadder[r], li)
		}
	}
	for _, ls := range inLadder {
		for k := 1; k < len(ls); k++ {
			uf.union(ls[0], ls[k])
		}
	}
	sheetOf := make(map[int]int) //component root -> 1-based sheet ID
	for li, ld := range res.ladders {
		root := uf.find(li)
		if _, ok := sheetOf[root]; !ok {
			res.nSheets++
			sheetOf[root] = res.nSheets
		}
		ld.sheet = sheetOf[root]
	}
	//labels, partners and sheet IDs
	for li, ld := range res.ladders {
		label := Strand
		if len(ld.i) == 1 {
			label = BetaBridge
		}
		for k := range ld.i {
			a, b := ld.i[k], ld.j[k]
			setBridgePartner(residues[a], b, li, ld.t == btParallel)
			setBridgePartner(residues[b], a, li, ld.t == btParallel)
			for _, r := range []int{a, b} {
				if residues[r].ss == Loop || label == Strand {
					residues[r].ss = label
				}
				residues[r].sheet = ld.sheet
			}
		}
	}
	return res
}

// setBridgePartner stores the partnership in the first free of the two
// bridge slots of the residue. A residue is in at most two ladders, so a
// third slot is never needed.
func setBridgePartner(r *Residue, partner, ladderID int, parallel bool) {
	for k := range r.bp {
		if r.bp[k].Partner < 0 {
			r.bp[k] = BridgePartner{Partner: partner, Ladder: ladderID, Parallel: parallel}
			return
		}
	}
}

// A small union-find over ladder indices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{p}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		if rj < ri { //keep the smallest index as root, for stable IDs
			ri, rj = rj, ri
		}
		u.parent[rj] = ri
	}
}
