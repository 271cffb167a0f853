package mol

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"
)

func pdbLine(serial int, name, resname, chain string, resseq int, x, y, z float64) string {
	return fmt.Sprintf("ATOM  %5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		serial, name, resname, chain, resseq, x, y, z, 1.0, 20.0, name[:1])
}

func TestPDBRead(Te *testing.T) {
	lines := []string{
		"HEADER    HYDROLASE                               11-JAN-94   1ABC",
		"COMPND    SOME ENZYME",
		pdbLine(1, "N", "ALA", "A", 1, 0, 0, 0),
		pdbLine(2, "CA", "ALA", "A", 1, 1.458, 0, 0),
		pdbLine(3, "C", "ALA", "A", 1, 2.0, 1.4, 0),
		pdbLine(4, "O", "ALA", "A", 1, 3.2, 1.5, 0),
		pdbLine(5, "N", "GLY", "A", 2, 2.2, 2.6, 0),
		pdbLine(6, "CA", "GLY", "A", 2, 3.0, 3.8, 0),
		"END   ",
	}
	m, err := PDBRead(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if m.Len() != 6 {
		Te.Fatalf("Expected 6 atoms, got %d", m.Len())
	}
	at := m.Atom(4)
	if at.Name != "N" || at.MolName != "GLY" || at.MolID != 2 || at.Chain != "A" {
		Te.Errorf("Bad atom: %+v", at)
	}
	if at.MolName1 != 'G' {
		Te.Errorf("One letter code %c, wanted G", at.MolName1)
	}
	if c := m.Coord(1); math.Abs(c.At(0, 0)-1.458) > 0.0001 {
		Te.Errorf("Bad coordinate %f", c.At(0, 0))
	}
	if !strings.HasPrefix(m.Header, "HYDROLASE") {
		Te.Errorf("Bad header %q", m.Header)
	}
	if m.Compnd != "SOME ENZYME" {
		Te.Errorf("Bad compnd %q", m.Compnd)
	}
	if m.Bfactors[0] != 20.0 {
		Te.Errorf("Bad bfactor %f", m.Bfactors[0])
	}
}

func TestPDBReadAltloc(Te *testing.T) {
	a := pdbLine(1, "CA", "ALA", "A", 1, 0, 0, 0)
	b := pdbLine(2, "CA", "ALA", "A", 1, 9, 9, 9)
	//flip the altloc column of the copies
	a = a[:16] + "A" + a[17:]
	b = b[:16] + "B" + b[17:]
	m, err := PDBRead(strings.NewReader(a + "\n" + b + "\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if m.Len() != 1 {
		Te.Fatalf("Expected 1 atom after altloc filtering, got %d", m.Len())
	}
	if m.Atom(0).AltID != "A" {
		Te.Errorf("Kept the wrong altloc %q", m.Atom(0).AltID)
	}
}

const cifSample = `data_TEST
#
_entry.id TEST
_struct.title 'A tiny test structure'
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_alt_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.pdbx_PDB_ins_code
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.occupancy
_atom_site.B_iso_or_equiv
_atom_site.auth_seq_id
_atom_site.auth_comp_id
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
ATOM 1 N N . ALA A 1 ? 0.000 0.000 0.000 1.00 20.00 1 ALA A 1
ATOM 2 C CA . ALA A 1 ? 1.458 0.000 0.000 1.00 20.00 1 ALA A 1
ATOM 3 C C . ALA A 1 ? 2.000 1.400 0.000 1.00 20.00 1 ALA A 1
ATOM 4 O O . ALA A 1 ? 3.200 1.500 0.000 1.00 20.00 1 ALA A 1
#
`

func TestPDBxRead(Te *testing.T) {
	m, err := PDBxRead(strings.NewReader(cifSample))
	if err != nil {
		Te.Fatal(err)
	}
	if m.Len() != 4 {
		Te.Fatalf("Expected 4 atoms, got %d", m.Len())
	}
	at := m.Atom(1)
	if at.Name != "CA" || at.MolName != "ALA" || at.Chain != "A" || at.MolID != 1 {
		Te.Errorf("Bad atom: %+v", at)
	}
	if c := m.Coord(1); math.Abs(c.At(0, 0)-1.458) > 0.0001 {
		Te.Errorf("Bad coordinate %f", c.At(0, 0))
	}
	if m.Data == nil {
		Te.Fatal("Datablock not retained")
	}
	if m.Data.Name != "TEST" {
		Te.Errorf("Datablock name %q", m.Data.Name)
	}
	if m.Compnd != "A tiny test structure" {
		Te.Errorf("Title not taken for COMPND: %q", m.Compnd)
	}
	as := m.Data.Get("atom_site")
	if as == nil || len(as.Rows) != 4 {
		Te.Fatal("atom_site category not retained")
	}
	if as.Value(1, "_atom_site.label_atom_id") != "CA" {
		Te.Error("Tag lookup broken")
	}
}

func TestDatablockWrite(Te *testing.T) {
	m, err := PDBxRead(strings.NewReader(cifSample))
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.Data.Write(&buf); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"data_TEST", "loop_", "_atom_site.id", "'A tiny test structure'", "1.458"} {
		if !strings.Contains(out, want) {
			Te.Errorf("Serialised datablock lacks %q:\n%s", want, out)
		}
	}
	//a written datablock must parse back
	db, err := DatablockRead(strings.NewReader(out))
	if err != nil {
		Te.Fatal(err)
	}
	if as := db.Get("atom_site"); as == nil || len(as.Rows) != 4 {
		Te.Error("Round-tripped datablock lost the atom_site rows")
	}
}

func TestOneLetterCode(Te *testing.T) {
	if OneLetterCode("TRP") != 'W' || OneLetterCode("XYZ") != 'X' {
		Te.Error("Wrong one-letter codes")
	}
	if !IsProtein("cys") || IsProtein("HOH") {
		Te.Error("Wrong protein detection")
	}
}

func TestErrorDecoration(Te *testing.T) {
	err := NewError("something broke", "inner")
	deco := err.Decorate("outer")
	if len(deco) != 2 || deco[0] != "inner" || deco[1] != "outer" {
		Te.Errorf("Bad decoration %v", deco)
	}
	if err.Error() != "something broke" {
		Te.Error("Message lost")
	}
}
