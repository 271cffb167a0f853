/*
 * dssp.go, part of godssp.
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
	"github.com/rmera/godssp/mol"
)

// Verbose gates progress and warning prints to stderr.
var Verbose bool

// Options carries the caller configuration of the engine.
type Options struct {
	//MinPPStretch is the minimal number of consecutive residues in the
	//polyproline-II phi/psi window for a PPII helix. 0 means the
	//default of 3.
	MinPPStretch int

	//Accessibility optionally supplies the per-residue solvent
	//accessible surface, in A^2, in residue order. The engine never
	//computes it.
	Accessibility []float64
}

// DSSP is the engine result: the annotated residues plus the global
// statistics. It is immutable once New returns. The residues borrow
// their atom indices from the molecule, which must outlive the result.
type DSSP struct {
	m          *mol.Molecule
	residues   []*Residue
	prev, next []int
	beta       *betaResult
	stats      *Statistics
	minPP      int
}

// New runs the DSSP algorithm on the molecule and returns the frozen
// result. The molecule coordinates are never modified.
func New(m *mol.Molecule, opts *Options) (*DSSP, error) {
	if m == nil {
		return nil, mol.NewError("dssp: nil molecule", "New")
	}
	if err := m.Corrupted(); err != nil {
		return nil, errDecorate(err, "New")
	}
	minPP := ppStretchD
	var access []float64
	if opts != nil {
		if opts.MinPPStretch > 0 {
			minPP = opts.MinPPStretch
		}
		access = opts.Accessibility
	}
	d := &DSSP{m: m, minPP: minPP}
	d.residues = buildResidues(m)
	d.prev = linkResidues(m, d.residues)
	d.next = make([]int, len(d.residues))
	for i := range d.next {
		d.next[i] = -1
	}
	for i, p := range d.prev {
		if p >= 0 {
			d.next[p] = i
		}
	}
	reconstructH(m, d.residues, d.prev)
	assignSSBridges(m, d.residues)
	reportIncomplete(d.residues)
	for i, r := range d.residues {
		if access != nil && i < len(access) {
			r.accessibility = access[i]
		}
	}
	calcGeometry(m, d.residues, d.prev, d.next)
	calcHBonds(m, d.residues, d.prev)
	d.beta = calcBetaSheets(d.residues, d.prev, d.next)
	calcHelixFlags(d.residues, d.prev)
	calcHelices(d.residues, d.prev, minPP)
	d.stats = calcStatistics(d.residues, d.beta)
	return d, nil
}

// Empty reports whether the engine found no protein residues.
func (D *DSSP) Empty() bool {
	return len(D.residues) == 0
}

// Residues returns the final residues, ordered by their 1-based index.
// The slice and its contents must not be modified.
func (D *DSSP) Residues() []*Residue {
	return D.residues
}

// Statistics returns the aggregated results.
func (D *DSSP) Statistics() *Statistics {
	return D.stats
}

// Molecule returns the molecule the result was computed from.
func (D *DSSP) Molecule() *mol.Molecule {
	return D.m
}

// errDecorate decorates err if it is a mol.Error, or wraps it otherwise.
func errDecorate(err error, dec string) error {
	if err == nil {
		return nil
	}
	e, ok := err.(mol.Error)
	if !ok {
		return mol.NewError(err.Error(), dec)
	}
	e.Decorate(dec)
	return e
}
