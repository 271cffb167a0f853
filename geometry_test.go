package dssp

import (
	"math"
	"testing"

	"github.com/rmera/godssp/mol"
	v3 "github.com/rmera/godssp/v3"
)

// placeAtom returns the position at bond distance from c, with the given
// b-c-new angle and a-b-c-new dihedral (both in degrees). It is the
// standard internal-coordinate construction used to build the synthetic
// backbones of these tests.
func placeAtom(a, b, c *v3.Matrix, bond, theta, chi float64) *v3.Matrix {
	b1 := v3.Zeros(1)
	b2 := v3.Zeros(1)
	b1.Sub(b, a)
	b1.Unit(b1)
	b2.Sub(c, b)
	b2.Unit(b2)
	n := v3.Cross(b1, b2)
	n.Unit(n)
	m := v3.Cross(n, b2)
	th := Deg2Rad(theta)
	ch := Deg2Rad(chi)
	d := v3.Zeros(1)
	t := v3.Zeros(1)
	t.Scale(-bond*math.Cos(th), b2)
	d.Add(d, t)
	t.Scale(bond*math.Sin(th)*math.Cos(ch), m)
	d.Add(d, t)
	t.Scale(bond*math.Sin(th)*math.Sin(ch), n)
	d.Add(d, t)
	d.Add(d, c)
	return d
}

// backboneDihedrals is the per-residue input of the synthetic builder.
type backboneDihedrals struct {
	phi, psi, omega float64
}

// uniformDihedrals repeats one phi/psi pair over n residues, with a
// trans peptide bond.
func uniformDihedrals(n int, phi, psi float64) []backboneDihedrals {
	d := make([]backboneDihedrals, n)
	for i := range d {
		d[i] = backboneDihedrals{phi, psi, 180}
	}
	return d
}

// Standard backbone geometry used by the builder.
const (
	bondNCA = 1.458
	bondCAC = 1.525
	bondCN  = 1.329
	bondCO  = 1.231
	angNCAC = 111.0
	angCACN = 117.2
	angCNCA = 121.7
	angCACO = 120.5
)

// buildBackbone places N, CA, C and O for every residue of a chain with
// the given dihedrals. It returns one position slice per residue, in
// N, CA, C, O order.
func buildBackbone(dihedrals []backboneDihedrals) [][]*v3.Matrix {
	n := len(dihedrals)
	out := make([][]*v3.Matrix, n)
	var pn, pca, pc *v3.Matrix
	for i := 0; i < n; i++ {
		var rn, rca, rc *v3.Matrix
		if i == 0 {
			rn, _ = v3.NewMatrix([]float64{0, 0, 0})
			rca, _ = v3.NewMatrix([]float64{bondNCA, 0, 0})
			th := Deg2Rad(180 - angNCAC)
			rc, _ = v3.NewMatrix([]float64{bondNCA + bondCAC*math.Cos(th), bondCAC * math.Sin(th), 0})
		} else {
			rn = placeAtom(pn, pca, pc, bondCN, angCACN, dihedrals[i-1].psi)
			rca = placeAtom(pca, pc, rn, bondNCA, angCNCA, dihedrals[i-1].omega)
			rc = placeAtom(pc, rn, rca, bondCAC, angNCAC, dihedrals[i].phi)
		}
		ro := placeAtom(rn, rca, rc, bondCO, angCACO, dihedrals[i].psi+180)
		out[i] = []*v3.Matrix{rn, rca, rc, ro}
		pn, pca, pc = rn, rca, rc
	}
	return out
}

// buildMolecule turns the output of buildBackbone into a Molecule of
// alanines (chain inChain, first residue number first). Residues listed
// in caOnly keep only their CA atom.
func buildMolecule(backbone [][]*v3.Matrix, inChain string, first int, caOnly map[int]bool) *mol.Molecule {
	names := []string{"N", "CA", "C", "O"}
	m := new(mol.Molecule)
	coords := make([]float64, 0, len(backbone)*12)
	id := 1
	for i, res := range backbone {
		for k, pos := range res {
			if caOnly[i] && names[k] != "CA" {
				continue
			}
			m.Atoms = append(m.Atoms, &mol.Atom{
				Name: names[k], ID: id, MolName: "ALA", MolName1: 'A',
				MolID: first + i, LabelSeq: first + i,
				Chain: inChain, LabelChain: inChain, Symbol: names[k][:1],
			})
			coords = append(coords, pos.At(0, 0), pos.At(0, 1), pos.At(0, 2))
			id++
		}
	}
	m.Coords, _ = v3.NewMatrix(coords)
	m.Bfactors = make([]float64, len(m.Atoms))
	return m
}

func TestPlaceAtomDihedral(Te *testing.T) {
	a, _ := v3.NewMatrix([]float64{-1, 1, 0})
	b, _ := v3.NewMatrix([]float64{0, 0, 0})
	c, _ := v3.NewMatrix([]float64{1.5, 0, 0})
	for _, chi := range []float64{-120, -57, 0, 73, 145} {
		d := placeAtom(a, b, c, 1.3, 109.5, chi)
		got := Rad2Deg(Dihedral(a, b, c, d))
		if math.Abs(got-chi) > 0.001 {
			Te.Errorf("placed dihedral %f, wanted %f", got, chi)
		}
		ang := v3.Zeros(1)
		ang2 := v3.Zeros(1)
		ang.Sub(b, c)
		ang2.Sub(d, c)
		if got := Rad2Deg(Angle(ang, ang2)); math.Abs(got-109.5) > 0.001 {
			Te.Errorf("placed angle %f, wanted 109.5", got)
		}
	}
}

// TestBackboneDihedrals checks that the engine recovers the dihedrals the
// synthetic chain was built with.
func TestBackboneDihedrals(Te *testing.T) {
	m := buildMolecule(buildBackbone(uniformDihedrals(6, -57, -47)), "A", 1, nil)
	d, err := New(m, nil)
	if err != nil {
		Te.Fatal(err)
	}
	res := d.Residues()
	if len(res) != 6 {
		Te.Fatalf("Expected 6 residues, got %d", len(res))
	}
	for i, r := range res {
		if i > 0 && math.Abs(r.Phi()-(-57)) > 0.01 {
			Te.Errorf("Residue %d: phi %f, wanted -57", i, r.Phi())
		}
		if i < len(res)-1 && math.Abs(r.Psi()-(-47)) > 0.01 {
			Te.Errorf("Residue %d: psi %f, wanted -47", i, r.Psi())
		}
		if i > 0 && math.Abs(math.Abs(r.Omega())-180) > 0.01 {
			Te.Errorf("Residue %d: omega %f, wanted 180", i, r.Omega())
		}
	}
	if res[0].Phi() != UndefinedAngle {
		Te.Errorf("First residue should have the phi sentinel, got %f", res[0].Phi())
	}
	if res[5].Psi() != UndefinedAngle {
		Te.Errorf("Last residue should have the psi sentinel, got %f", res[5].Psi())
	}
	if res[0].TCO() != 0 {
		Te.Errorf("First residue should have tco 0, got %f", res[0].TCO())
	}
}
