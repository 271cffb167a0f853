/*
 * atoms.go, part of godssp.
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
	"fmt"
	"strings"

	v3 "github.com/rmera/godssp/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because
 * they are "fundamental" functions. If something goes wrong here, the program
 * is way-most likely wrong and should crash.**/

// Atom contains the data for an atom read from a structure file, except for
// the coordinates and the b-factors, which are kept in the Molecule.
type Atom struct {
	Name       string
	ID         int
	AltID      string //alternate location indicator, "" when absent
	MolName    string //the residue name, 3-letter code for amino acids
	MolName1   byte   //the one letter name for residues and nucleotides
	MolID      int    //the author residue number
	LabelSeq   int    //the label (mmCIF) residue number, MolID for PDB files
	InsCode    string //insertion code, "" when absent
	Chain      string //the author chain ID
	LabelChain string //the label (mmCIF) chain ID, Chain for PDB files
	Occupancy  float64
	Symbol     string
	Het        bool //is hetatm in the pdb file?
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("mol: Attempted to copy a nil Atom")
	}
	at := new(Atom)
	*at = *A
	return at
}

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Molecule contains the atoms of a structure, their coordinates for one
// model, their b-factors, and whatever metadata was retained from the
// source file.
type Molecule struct {
	Atoms    []*Atom
	Coords   *v3.Matrix
	Bfactors []float64

	//Raw text of the bibliographic PDB records, without the record name,
	//empty for files that lack them.
	Header, Compnd, Source, Author string

	//The full datablock, only for molecules read from mmCIF files.
	Data *Datablock
}

// Atom returns the Atom corresponding to the index i of the Atom slice in
// the Molecule. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("mol: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Coord returns a view of the coordinates of the ith atom.
// Panics if out of range.
func (M *Molecule) Coord(i int) *v3.Matrix {
	if i >= M.Coords.NVecs() {
		panic(fmt.Sprintf("mol: Requested coordinate (%d) out of bounds (%d)", i, M.Coords.NVecs()))
	}
	return M.Coords.VecView(i)
}

// Corrupted checks whether the molecule is corrupted, i.e. the coordinates
// don't match the number of atoms. Missing b-factors are filled with zeroes
// instead of being reported.
func (M *Molecule) Corrupted() error {
	if M.Coords == nil || M.Len() != M.Coords.NVecs() {
		return CError{fmt.Sprintf("mol: Inconsistent coordinates/atoms: Atoms %d", M.Len()), []string{"Corrupted"}}
	}
	if len(M.Bfactors) < M.Len() {
		M.Bfactors = append(M.Bfactors, make([]float64, M.Len()-len(M.Bfactors))...)
	}
	return nil
}

// three2OneLetter maps three-letter amino-acid codes to their corresponding
// single-letter representation.
var three2OneLetter = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// OneLetterCode returns the single-letter code for a three-letter residue
// name, or 'X' if the name is not a standard amino acid.
func OneLetterCode(molname string) byte {
	if b, ok := three2OneLetter[strings.ToUpper(molname)]; ok {
		return b
	}
	return 'X'
}

// IsProtein returns whether the given residue name is a standard amino acid.
func IsProtein(molname string) bool {
	_, ok := three2OneLetter[strings.ToUpper(molname)]
	return ok
}

// symbolFromName tries to guess a chemical element symbol from a PDB atom
// name. It only deals with the common bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || (len(name) > 0 && name[0] == 'H') {
		symbol = "H"
	} else if len(name) == 0 {
		return "", fmt.Errorf("mol: Empty atom name")
	} else if name[0] == 'C' {
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default:
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "Zn"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("mol: Couldn't guess symbol from PDB name %q", name)
	}
	return symbol, nil
}

//Errors

// Error is the interface for errors that the packages in this program
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete type implementing Error. The decoration slice
// contains a list of functions in the calling stack plus, for each
// function, any relevant information, or nothing.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the given string to the decoration slice of the error and
// returns the resulting slice. If passed an empty string, it just returns
// the current slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// NewError builds a CError with the given message and one decoration.
func NewError(msg, deco string) Error {
	return CError{msg, []string{deco}}
}

// errDecorate decorates err with dec if err is a mol Error, or wraps it in
// a CError otherwise. A nil err is returned as given.
func errDecorate(err error, dec string) error {
	if err == nil {
		return nil
	}
	e, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{dec}}
	}
	e.Decorate(dec)
	return e
}
