package dssp

import "testing"

// makeChain builds n bare linked residues, for driving the bridge and
// helix passes with hand-placed H-bonds.
func makeChain(n int) ([]*Residue, []int, []int) {
	residues := make([]*Residue, n)
	prev := make([]int, n)
	next := make([]int, n)
	for i := range residues {
		r := &Residue{
			num: i + 1, compound: "ALA", code: 'A', chain: "A",
			seqNum: i + 1, labelSeq: i + 1, labelChain: "A",
			ss: Loop, chirality: ' ',
			phi: UndefinedAngle, psi: UndefinedAngle, omega: UndefinedAngle,
			kappa: UndefinedAngle, alpha: UndefinedAngle,
		}
		r.donor[0].Partner, r.donor[1].Partner = -1, -1
		r.acceptor[0].Partner, r.acceptor[1].Partner = -1, -1
		r.bp[0].Partner, r.bp[1].Partner = -1, -1
		r.bp[0].Ladder, r.bp[1].Ladder = -1, -1
		residues[i] = r
		prev[i] = i - 1
		next[i] = i + 1
	}
	next[n-1] = -1
	return residues, prev, next
}

// addBond places an accepted bond donated by don's N-H to acc's O.
func addBond(residues []*Residue, don, acc int) {
	insertHBond(&residues[don].acceptor, HBond{acc, -2.0})
	insertHBond(&residues[acc].donor, HBond{don, -2.0})
}

// TestAntiparallelLadder reproduces a two-strand antiparallel hairpin:
// residues 2..6 pair 13..9, one ladder, one sheet, symmetric partners.
func TestAntiparallelLadder(Te *testing.T) {
	residues, prev, next := makeChain(16)
	for k := 0; k < 5; k++ {
		i, j := 2+k, 13-k
		addBond(residues, i, j)
		addBond(residues, j, i)
	}
	beta := calcBetaSheets(residues, prev, next)
	if len(beta.ladders) != 1 {
		Te.Fatalf("Expected 1 ladder, got %d", len(beta.ladders))
	}
	ld := beta.ladders[0]
	if ld.t != btAntiparallel {
		Te.Error("Ladder should be antiparallel")
	}
	if len(ld.i) != 5 {
		Te.Errorf("Ladder length %d, wanted 5", len(ld.i))
	}
	if beta.nSheets != 1 {
		Te.Errorf("Expected 1 sheet, got %d", beta.nSheets)
	}
	for k := 0; k < 5; k++ {
		i, j := 2+k, 13-k
		if residues[i].ss != Strand || residues[j].ss != Strand {
			Te.Errorf("Pair %d/%d not labelled E", i+1, j+1)
		}
		if residues[i].bp[0].Partner != j || residues[j].bp[0].Partner != i {
			Te.Errorf("Pair %d/%d: partners not symmetric", i+1, j+1)
		}
		if residues[i].bp[0].Parallel || residues[j].bp[0].Parallel {
			Te.Error("Antiparallel bridge marked parallel")
		}
		if residues[i].sheet != 1 || residues[j].sheet != 1 {
			Te.Error("Sheet ID should be 1")
		}
	}
	if len(beta.antiBond) != 10 {
		Te.Errorf("Expected 10 antiparallel bridge bonds, got %d", len(beta.antiBond))
	}
	if len(beta.parBonds) != 0 {
		Te.Errorf("Expected no parallel bridge bonds, got %d", len(beta.parBonds))
	}
}

// TestParallelLadder reproduces two short parallel strands separated by a
// long loop: one parallel ladder of 3 bridges, one sheet.
func TestParallelLadder(Te *testing.T) {
	residues, prev, next := makeChain(32)
	//the classic parallel pattern around pairs (3,26), (4,27), (5,28)
	for k := 0; k < 3; k++ {
		i, j := 3+k, 26+k
		addBond(residues, i+1, j)
		addBond(residues, j, i-1)
	}
	beta := calcBetaSheets(residues, prev, next)
	if len(beta.ladders) != 1 {
		Te.Fatalf("Expected 1 ladder, got %d", len(beta.ladders))
	}
	ld := beta.ladders[0]
	if ld.t != btParallel {
		Te.Error("Ladder should be parallel")
	}
	if len(ld.i) != 3 {
		Te.Errorf("Ladder length %d, wanted 3", len(ld.i))
	}
	if beta.nSheets != 1 {
		Te.Errorf("Expected 1 sheet, got %d", beta.nSheets)
	}
	for k := 0; k < 3; k++ {
		i, j := 3+k, 26+k
		if residues[i].ss != Strand || residues[j].ss != Strand {
			Te.Errorf("Pair %d/%d not labelled E", i+1, j+1)
		}
		if !residues[i].bp[0].Parallel {
			Te.Error("Parallel bridge not marked parallel")
		}
	}
	if len(beta.parBonds) != 6 {
		Te.Errorf("Expected 6 parallel bridge bonds, got %d", len(beta.parBonds))
	}
}

// TestIsolatedBridge: a single bridge not extendable to a ladder gets B,
// not E.
func TestIsolatedBridge(Te *testing.T) {
	residues, prev, next := makeChain(12)
	addBond(residues, 3, 8)
	addBond(residues, 8, 3)
	beta := calcBetaSheets(residues, prev, next)
	if len(beta.ladders) != 1 || len(beta.ladders[0].i) != 1 {
		Te.Fatal("Expected a single one-bridge ladder")
	}
	if residues[3].ss != BetaBridge || residues[8].ss != BetaBridge {
		Te.Errorf("Isolated bridge labelled %c/%c, wanted B/B", residues[3].ss, residues[8].ss)
	}
	if residues[3].bp[0].Partner != 8 || residues[8].bp[0].Partner != 3 {
		Te.Error("Bridge partners wrong")
	}
	if residues[3].sheet != 1 {
		Te.Error("Isolated bridge still forms a sheet")
	}
}

// TestTwoSheets: two ladders sharing no residue are different sheets,
// with IDs in order of appearance.
func TestTwoSheets(Te *testing.T) {
	residues, prev, next := makeChain(40)
	addBond(residues, 2, 10)
	addBond(residues, 10, 2)
	addBond(residues, 3, 9)
	addBond(residues, 9, 3)
	addBond(residues, 20, 30)
	addBond(residues, 30, 20)
	beta := calcBetaSheets(residues, prev, next)
	if len(beta.ladders) != 2 {
		Te.Fatalf("Expected 2 ladders, got %d", len(beta.ladders))
	}
	if beta.nSheets != 2 {
		Te.Fatalf("Expected 2 sheets, got %d", beta.nSheets)
	}
	if residues[2].sheet != 1 || residues[20].sheet != 2 {
		Te.Errorf("Sheet IDs %d/%d, wanted 1/2", residues[2].sheet, residues[20].sheet)
	}
}

// TestHelixFlagsFromBonds drives the helix classifier with hand-placed
// turn bonds: two consecutive stride-4 turns make an alpha helix.
func TestHelixFlagsFromBonds(Te *testing.T) {
	residues, prev, _ := makeChain(12)
	//turns at 2, 3 and 4: bonds O(i) -> H-N(i+4)
	for _, i := range []int{2, 3, 4} {
		addBond(residues, i+4, i)
	}
	calcHelixFlags(residues, prev)
	if !isHelixStart(residues[2], Stride4) {
		Te.Error("Residue 3 should start a stride-4 turn")
	}
	if residues[8].helixFlags[Stride4] != HelixEnd {
		Te.Error("Residue 9 should end the stride-4 turns")
	}
	calcHelices(residues, prev, 3)
	for i := 3; i <= 7; i++ {
		if residues[i].ss != AlphaHelix {
			Te.Errorf("Residue %d: label %c, wanted H", i+1, residues[i].ss)
		}
	}
	//the acceptor of the first turn is not part of the helix itself
	if residues[2].ss != Loop {
		Te.Errorf("Residue 3: label %c, wanted blank", residues[2].ss)
	}
}

// TestTurnLabel: a single stride-4 turn, not extendable to a helix,
// leaves T marks on the residues it spans.
func TestTurnLabel(Te *testing.T) {
	residues, prev, _ := makeChain(10)
	addBond(residues, 6, 2) //O(3) -> H-N(7)
	calcHelixFlags(residues, prev)
	calcHelices(residues, prev, 3)
	for i := 3; i <= 5; i++ {
		if residues[i].ss != Turn {
			Te.Errorf("Residue %d: label %c, wanted T", i+1, residues[i].ss)
		}
	}
	if residues[2].ss != Loop || residues[6].ss != Loop {
		Te.Error("Turn ends should stay loops")
	}
}
