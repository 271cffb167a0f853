/*
 * pdb.go, part of godssp.
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

package mol

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	v3 "github.com/rmera/godssp/v3"
)

// readFullPDBLine parses a valid ATOM or HETATM line of a PDB file, and
// returns an Atom object with the info except for the coordinates and the
// b-factor, which are returned separately.
func readFullPDBLine(line string) (*Atom, []float64, float64, error) {
	err := make([]error, 6)
	coords := make([]float64, 3)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.AltID = strings.TrimSpace(line[16:17])
	//PDB says that pos. 17 is for other thing but it is
	//used for residue name in many cases.
	atom.MolName = strings.TrimSpace(line[17:21])
	atom.MolName1 = OneLetterCode(atom.MolName)
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.LabelChain = atom.Chain
	atom.MolID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	atom.LabelSeq = atom.MolID
	atom.InsCode = strings.TrimSpace(line[26:27])
	//Here we shouldn't need TrimSpace, but we keep it just in case someone
	//doesn't use all the fields when writing a PDB.
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	var bfactor float64
	if len(line) >= 66 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
		bfactor, err[5] = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	//we try to read the element only if it is there. If something is
	//missing we just omit it and guess it later from the name.
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	for i := range err {
		if err[i] != nil {
			return nil, nil, 0, CError{err[i].Error(), []string{"readFullPDBLine"}}
		}
	}
	return atom, coords, bfactor, nil
}

// PDBRead reads a molecule in PDB format from an io.Reader and returns it.
// Only the first MODEL of a multi-model file is read; of the alternate
// locations, only atoms with a blank altloc or with 'A' are kept. The
// HEADER, COMPND, SOURCE and AUTHOR records are retained in the Molecule.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	bufiopdb := bufio.NewReader(pdb)
	atoms := make([]*Atom, 0, 100)
	coords := make([]float64, 0, 300)
	bfactors := make([]float64, 0, 100)
	mol := new(Molecule)
	for {
		line, err := bufiopdb.ReadString('\n')
		if err != nil && len(line) == 0 {
			break
		}
		if len(line) < 6 {
			continue
		}
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			if len(line) < 54 {
				return nil, CError{"mol: Truncated ATOM record: " + line, []string{"PDBRead"}}
			}
			at, c, bfac, err2 := readFullPDBLine(line)
			if err2 != nil {
				return nil, errDecorate(err2, "PDBRead")
			}
			if at.AltID != "" && at.AltID != "A" {
				continue //only altloc A is kept
			}
			atoms = append(atoms, at)
			coords = append(coords, c...)
			bfactors = append(bfactors, bfac)
		case strings.HasPrefix(line, "HEADER"):
			mol.Header = pdbRecordText(line)
		case strings.HasPrefix(line, "COMPND") && mol.Compnd == "":
			mol.Compnd = pdbRecordText(line)
		case strings.HasPrefix(line, "SOURCE") && mol.Source == "":
			mol.Source = pdbRecordText(line)
		case strings.HasPrefix(line, "AUTHOR") && mol.Author == "":
			mol.Author = pdbRecordText(line)
		case strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END "):
			goto done //only the first model is wanted
		}
	}
done:
	mol.Atoms = atoms
	var err error
	mol.Coords, err = v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	mol.Bfactors = bfactors
	return mol, nil
}

// pdbRecordText returns the text of a PDB record without the record name
// and without the trailing continuation/ID columns.
func pdbRecordText(line string) string {
	line = strings.TrimRight(line, "\n\r")
	if len(line) > 72 {
		line = line[:72]
	}
	if len(line) <= 10 {
		return ""
	}
	return strings.TrimSpace(line[10:])
}

// PDBFileRead reads a molecule from the PDB file with the given name.
// Files ending in .gz are transparently decompressed.
func PDBFileRead(pdbname string) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	var r io.Reader = pdbfile
	if strings.HasSuffix(pdbname, ".gz") {
		gz, err := gzip.NewReader(pdbfile)
		if err != nil {
			return nil, errDecorate(err, "PDBFileRead "+pdbname)
		}
		defer gz.Close()
		r = gz
	}
	mol, err := PDBRead(r)
	return mol, errDecorate(err, "PDBFileRead "+pdbname)
}
