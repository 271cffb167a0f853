/*
 * doc.go, part of godssp.
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

/*
Package dssp assigns secondary structure to the residues of a protein
structure with the Kabsch-Sander DSSP algorithm (Kabsch & Sander,
Biopolymers 22 (1983) 2577-2637), extended with a polyproline-II helix
detector. Given a molecule read with the mol package, it computes, for
each protein residue, backbone dihedrals, hydrogen-bond partners and
energies, beta bridge/ladder/sheet membership, helix participation for
strides 3, 4 and 5 plus PPII, bend and chirality flags, and a summary
secondary-structure label, along with global statistics. The result can
be written as a classic DSSP text file or as an annotated mmCIF datablock.
*/
package dssp
