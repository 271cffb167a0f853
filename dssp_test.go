package dssp

import (
	"testing"

	"github.com/rmera/godssp/mol"
	v3 "github.com/rmera/godssp/v3"
)

func labels(d *DSSP) string {
	out := make([]byte, 0, len(d.Residues()))
	for _, r := range d.Residues() {
		out = append(out, byte(r.SS()))
	}
	return string(out)
}

// TestIdealAlphaHelix builds a 14-residue chain with the canonical
// alpha-helix dihedrals and checks the helix labelling.
func TestIdealAlphaHelix(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(14, -57, -47)), "A", 1, nil)
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	res := d.Residues()
	ss := labels(d)
	Te.Logf("Helix labels: %q", ss)
	//the helix core must be uninterrupted H
	for i := 3; i <= 10; i++ {
		if res[i].SS() != AlphaHelix {
			Te.Errorf("Residue %d: label %c, wanted H", i+1, res[i].SS())
		}
	}
	//the chain ends can never be part of the helix
	if res[0].SS() == AlphaHelix || res[13].SS() == AlphaHelix {
		Te.Error("Terminal residues labelled H")
	}
	//one maximal H run
	runs := 0
	inRun := false
	for _, r := range res {
		if r.SS() == AlphaHelix && !inRun {
			runs++
		}
		inRun = r.SS() == AlphaHelix
	}
	if runs != 1 {
		Te.Errorf("Expected a single H run, got %d", runs)
	}
	sum := 0
	for _, n := range d.Statistics().ResiduesPerAlphaHelix {
		sum += n
	}
	if sum != 1 {
		Te.Errorf("Alpha-helix histogram counts %d runs, wanted 1", sum)
	}
	//an ideal helix has i -> i+4 turns, so stride-4 middle flags
	mid := 0
	for _, r := range res {
		if r.Helix(Stride4) == HelixMiddle {
			mid++
		}
	}
	if mid == 0 {
		Te.Error("No stride-4 middle residues in an ideal helix")
	}
	if d.Empty() {
		Te.Error("Result should not be empty")
	}
}

// TestHBondInvariants checks, on the helix, the slot invariants: donor
// and acceptor slots mirror each other, are sorted by ascending energy,
// and never bind a residue to itself or its predecessor.
func TestHBondInvariants(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(14, -57, -47)), "A", 1, nil)
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	res := d.Residues()
	for i, r := range res {
		for k := 0; k < 2; k++ {
			a := r.Acceptor(k)
			if a.Partner < 0 {
				continue
			}
			if a.Partner == i || a.Partner == i-1 {
				Te.Errorf("Residue %d donates to itself or its predecessor (%d)", i+1, a.Partner+1)
			}
			//the partner must list this bond in a donor slot with the
			//same energy
			p := res[a.Partner]
			if p.Donor(0).Partner != i && p.Donor(1).Partner != i {
				Te.Errorf("Bond %d -> %d not mirrored", i+1, a.Partner+1)
			} else {
				for kk := 0; kk < 2; kk++ {
					if p.Donor(kk).Partner == i && p.Donor(kk).Energy != a.Energy {
						Te.Errorf("Bond %d -> %d has mismatched energies", i+1, a.Partner+1)
					}
				}
			}
			if a.Energy > maxHBondEnergy {
				Te.Errorf("Accepted bond with energy %f above the threshold", a.Energy)
			}
		}
		if r.Acceptor(0).Partner >= 0 && r.Acceptor(1).Partner >= 0 {
			if r.Acceptor(0).Energy > r.Acceptor(1).Energy {
				Te.Errorf("Residue %d: acceptor slots not sorted", i+1)
			}
			if r.Acceptor(0).Partner == r.Acceptor(1).Partner {
				Te.Errorf("Residue %d: duplicate acceptor partner", i+1)
			}
		}
		if r.Donor(0).Partner >= 0 && r.Donor(1).Partner >= 0 && r.Donor(0).Energy > r.Donor(1).Energy {
			Te.Errorf("Residue %d: donor slots not sorted", i+1)
		}
	}
}

// TestDeterminism runs the engine twice on the same molecule and wants
// identical labels, bridge data and statistics.
func TestDeterminism(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(14, -57, -47)), "A", 1, nil)
	d1, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	d2, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if labels(d1) != labels(d2) {
		Te.Error("Labels differ between runs")
	}
	if *d1.Statistics() != *d2.Statistics() {
		Te.Error("Statistics differ between runs")
	}
	for i := range d1.Residues() {
		r1, r2 := d1.Residues()[i], d2.Residues()[i]
		if r1.BridgePartner(0) != r2.BridgePartner(0) || r1.Sheet() != r2.Sheet() {
			Te.Errorf("Residue %d: bridge data differs between runs", i+1)
		}
	}
}

// TestPPII builds a 7-residue polyproline-II stretch: the 5 interior
// residues have defined dihedrals in the window, so they read PPPPP.
func TestPPII(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(7, -75, 145)), "A", 1, nil)
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	ss := labels(d)
	if ss[0] != ' ' || ss[6] != ' ' {
		Te.Errorf("Terminal residues should be loops: %q", ss)
	}
	for i := 1; i <= 5; i++ {
		if ss[i] != 'P' {
			Te.Errorf("Residue %d: label %c, wanted P (%q)", i+1, ss[i], ss)
		}
	}
	//with a longer minimal stretch the same chain has no PPII at all
	d6, err := New(m, &Options{MinPPStretch: 6})
	if err != nil {
		Te.Fatal(err)
	}
	for i, r := range d6.Residues() {
		if r.SS() == HelixPPII {
			Te.Errorf("Residue %d labelled P with min-pp-stretch 6", i+1)
		}
	}
}

// TestCAOnly strips four consecutive residues of an ideal helix down to
// their CA atoms: they get sentinel dihedrals, no bonds and blank labels.
func TestCAOnly(Te *testing.T) {
	caOnly := map[int]bool{6: true, 7: true, 8: true, 9: true}
	m := buildMolecule(buildBackbone(uniformDihedrals(16, -57, -47)), "A", 1, caOnly)
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	res := d.Residues()
	if len(res) != 16 {
		Te.Fatalf("Expected 16 residues, got %d", len(res))
	}
	for i := 6; i <= 9; i++ {
		r := res[i]
		if r.Phi() != UndefinedAngle || r.Psi() != UndefinedAngle {
			Te.Errorf("Residue %d: dihedrals %f/%f, wanted sentinels", i+1, r.Phi(), r.Psi())
		}
		if r.Acceptor(0).Partner >= 0 || r.Donor(0).Partner >= 0 {
			Te.Errorf("Residue %d has H-bonds without a backbone", i+1)
		}
		if r.BridgePartner(0).Partner >= 0 {
			Te.Errorf("Residue %d has a bridge partner without a backbone", i+1)
		}
		if r.SS() != Loop {
			Te.Errorf("Residue %d: label %c, wanted blank", i+1, r.SS())
		}
	}
	//the intact N-terminal part still forms its short helix
	if res[2].SS() != AlphaHelix && res[3].SS() != AlphaHelix {
		Te.Error("Helix before the gap was lost")
	}
}

// TestDisulphide pairs two distant cysteines through their SG atoms.
func TestDisulphide(Te *testing.T) {
	m := new(mol.Molecule)
	coords := []float64{}
	add := func(name string, molid int, x, y, z float64) {
		m.Atoms = append(m.Atoms, &mol.Atom{
			Name: name, ID: len(m.Atoms) + 1, MolName: "CYS", MolName1: 'C',
			MolID: molid, LabelSeq: molid, Chain: "A", LabelChain: "A", Symbol: name[:1],
		})
		coords = append(coords, x, y, z)
	}
	//two far-apart cysteines whose sidechains meet in the middle
	add("N", 17, 0, 0, 0)
	add("CA", 17, 1.5, 0, 0)
	add("C", 17, 2.2, 1.3, 0)
	add("O", 17, 3.4, 1.4, 0)
	add("SG", 17, 20, 0, 0)
	add("N", 63, 40, 0, 0)
	add("CA", 63, 41.5, 0, 0)
	add("C", 63, 42.2, 1.3, 0)
	add("O", 63, 43.4, 1.4, 0)
	add("SG", 63, 22.05, 0, 0)
	m.Coords, _ = v3.NewMatrix(coords)
	m.Bfactors = make([]float64, len(m.Atoms))
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	res := d.Residues()
	if res[0].SSBridge() != 1 || res[1].SSBridge() != 1 {
		Te.Errorf("SS-bridge numbers %d/%d, wanted 1/1", res[0].SSBridge(), res[1].SSBridge())
	}
	stats := d.Statistics()
	if stats.SSBridges != 1 || stats.IntraChainSSBridges != 1 || stats.InterChainSSBridges != 0 {
		Te.Errorf("SS-bridge statistics %d/%d/%d, wanted 1/1/0",
			stats.SSBridges, stats.IntraChainSSBridges, stats.InterChainSSBridges)
	}
	//the one-letter code in the classic table becomes a lowercase letter
	pnr := printedNumbers(res)
	line, err := residueToDSSPLine(d, 0, pnr)
	if err != nil {
		Te.Fatal(err)
	}
	if line[13] != 'a' {
		Te.Errorf("Expected lowercase disulphide code 'a' in %q", line[:20])
	}
}

// TestAccessibility checks that supplied accessibilities reach the
// residues and the statistics.
func TestAccessibility(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(4, -57, -47)), "A", 1, nil)
	d, err := New(m, &Options{Accessibility: []float64{1.5, 2, 2, 4.5}})
	if err != nil {
		Te.Fatal(err)
	}
	if got := d.Statistics().AccessibleSurface; got != 10 {
		Te.Errorf("Accessible surface %f, wanted 10", got)
	}
	if d.Residues()[3].Accessibility() != 4.5 {
		Te.Error("Per-residue accessibility not taken")
	}
}
