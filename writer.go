/*
 * writer.go, part of godssp.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/rmera/godssp/mol"
)

// headerLine right-pads the content to 127 columns and terminates it
// with a dot, the way every header line of a classic DSSP file goes.
func headerLine(content string) string {
	if len(content) > 127 {
		content = content[:127]
	}
	return fmt.Sprintf("%-127s.", content)
}

// pdbRecordLine reconstructs a PDB-style bibliographic line.
func pdbRecordLine(name, text string) string {
	return headerLine(fmt.Sprintf("%-10s%s", name, text))
}

// helixChar is the explicit mapping from the per-stride helix flag to
// the character of the STRUCTURE columns.
func helixChar(t HelixType, p HelixPosition) byte {
	switch p {
	case HelixStart:
		return '>'
	case HelixEnd:
		return '<'
	case HelixStartAndEnd:
		return 'X'
	case HelixMiddle:
		if t == StridePP {
			return 'P'
		}
		return byte('3' + int(t))
	}
	return ' '
}

// printedNumbers returns, for each residue, the number it gets in the
// output table: the sequential index shifted by the chain-break
// placeholder rows inserted before it.
func printedNumbers(residues []*Residue) []int {
	pnr := make([]int, len(residues))
	breaks := 0
	for i, r := range residues {
		if i > 0 && r.chainBreak != BreakNone {
			breaks++
		}
		pnr[i] = r.num + breaks
	}
	return pnr
}

// residueToDSSPLine formats one row of the residue table.
func residueToDSSPLine(d *DSSP, i int, pnr []int) (string, error) {
	r := d.residues[i]
	if len(r.chain) > 1 {
		return "", mol.NewError("dssp: This file contains data that won't fit in the original DSSP format", "WriteDSSP")
	}
	code := r.code
	if code == 'C' && r.ssBridge > 0 {
		code = byte('a' + (r.ssBridge-1)%26)
	}
	var helix [nHelixTypes]byte
	for t := Stride3; t < nHelixTypes; t++ {
		helix[t] = helixChar(t, r.helixFlags[t])
	}
	bendChar := byte(' ')
	if r.bend {
		bendChar = 'S'
	}
	bp := [2]int{}
	bridgeLabel := [2]byte{' ', ' '}
	for k := 0; k < 2; k++ {
		p := r.bp[k]
		if p.Partner < 0 {
			continue
		}
		bp[k] = pnr[p.Partner] % 10000 //won't fit otherwise
		base := byte('A')
		if p.Parallel {
			base = 'a'
		}
		bridgeLabel[k] = base + byte(p.Ladder%26)
	}
	sheetChar := byte(' ')
	if r.sheet != 0 {
		sheetChar = byte('A' + (r.sheet-1)%26)
	}
	var nho, onh [2]string
	for k := 0; k < 2; k++ {
		nho[k], onh[k] = "0, 0.0", "0, 0.0"
		if a := r.acceptor[k]; a.Partner >= 0 {
			nho[k] = fmt.Sprintf("%d,%3.1f", pnr[a.Partner]-pnr[i], a.Energy)
		}
		if dn := r.donor[k]; dn.Partner >= 0 {
			onh[k] = fmt.Sprintf("%d,%3.1f", pnr[dn.Partner]-pnr[i], dn.Energy)
		}
	}
	ins := " "
	if r.insCode != "" {
		ins = r.insCode
	}
	chain := " "
	if r.chain != "" {
		chain = r.chain
	}
	var cax, cay, caz float64
	if r.ca >= 0 {
		ca := d.m.Coord(r.ca)
		cax, cay, caz = ca.At(0, 0), ca.At(0, 1), ca.At(0, 2)
	}
	return fmt.Sprintf("%5d%5d%1s%1s %c  %c%c%c%c%c%c%c%c%c%4d%4d%c%4d %11s%11s%11s%11s  %6.3f%6.1f%6.1f%6.1f%6.1f %6.1f %6.1f %6.1f",
		pnr[i], r.seqNum, ins, chain, code,
		byte(r.ss), helix[StridePP], helix[Stride3], helix[Stride4], helix[Stride5],
		bendChar, r.chirality, bridgeLabel[0], bridgeLabel[1],
		bp[0], bp[1], sheetChar, int(math.Floor(r.accessibility+0.5)),
		nho[0], onh[0], nho[1], onh[1],
		r.tco, r.kappa, r.alpha, r.phi, r.psi,
		cax, cay, caz), nil
}

// WriteDSSP writes the result in the classic DSSP text format. It fails
// when a chain label does not fit the single-character column of the
// original format.
func WriteDSSP(out io.Writer, d *DSSP) error {
	w := bufio.NewWriter(out)
	m := d.m
	stats := d.stats
	today := time.Now().Format("2006-01-02")
	fmt.Fprintln(w, headerLine("==== Secondary Structure Definition by the program DSSP, NKI version 3.0                           ==== DATE="+today))
	fmt.Fprintln(w, headerLine("REFERENCE W. KABSCH AND C.SANDER, BIOPOLYMERS 22 (1983) 2577-2637"))
	fmt.Fprintln(w, pdbRecordLine("HEADER", m.Header))
	fmt.Fprintln(w, pdbRecordLine("COMPND", m.Compnd))
	fmt.Fprintln(w, pdbRecordLine("SOURCE", m.Source))
	fmt.Fprintln(w, pdbRecordLine("AUTHOR", m.Author))
	fmt.Fprintln(w, headerLine(fmt.Sprintf("%5d%3d%3d%3d%3d TOTAL NUMBER OF RESIDUES, NUMBER OF CHAINS, NUMBER OF SS-BRIDGES(TOTAL,INTRACHAIN,INTERCHAIN)",
		stats.Residues, stats.Chains, stats.SSBridges, stats.IntraChainSSBridges, stats.InterChainSSBridges)))
	fmt.Fprintln(w, headerLine(fmt.Sprintf("%8.1f   ACCESSIBLE SURFACE OF PROTEIN (ANGSTROM**2)", stats.AccessibleSurface)))
	per100 := func(n int) float64 {
		if stats.Residues == 0 {
			return 0
		}
		return float64(n) * 100.0 / float64(stats.Residues)
	}
	fmt.Fprintln(w, headerLine(fmt.Sprintf("%5d%5.1f   TOTAL NUMBER OF HYDROGEN BONDS OF TYPE O(I)-->H-N(J)  , SAME NUMBER PER 100 RESIDUES",
		stats.HBonds, per100(stats.HBonds))))
	fmt.Fprintln(w, headerLine(fmt.Sprintf("%5d%5.1f   TOTAL NUMBER OF HYDROGEN BONDS IN     PARALLEL BRIDGES, SAME NUMBER PER 100 RESIDUES",
		stats.HBondsInParallel, per100(stats.HBondsInParallel))))
	fmt.Fprintln(w, headerLine(fmt.Sprintf("%5d%5.1f   TOTAL NUMBER OF HYDROGEN BONDS IN ANTIPARALLEL BRIDGES, SAME NUMBER PER 100 RESIDUES",
		stats.HBondsInAntiparallel, per100(stats.HBondsInAntiparallel))))
	for k := 0; k < 11; k++ {
		sign := byte('+')
		if k < 5 {
			sign = '-'
		}
		dist := k - 5
		if dist < 0 {
			dist = -dist
		}
		fmt.Fprintln(w, headerLine(fmt.Sprintf("%5d%5.1f   TOTAL NUMBER OF HYDROGEN BONDS OF TYPE O(I)-->H-N(I%c%1d), SAME NUMBER PER 100 RESIDUES",
			stats.HBondsPerDistance[k], per100(stats.HBondsPerDistance[k]), sign, dist)))
	}
	//histograms
	fmt.Fprintln(w, "  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 25 26 27 28 29 30     *** HISTOGRAMS OF ***           .")
	writeHisto := func(h [histogramBuckets]int, label string) {
		for _, n := range h {
			fmt.Fprintf(w, "%3d", n)
		}
		fmt.Fprintln(w, label)
	}
	writeHisto(stats.ResiduesPerAlphaHelix, "    RESIDUES PER ALPHA HELIX         .")
	writeHisto(stats.ParallelBridgesPerLadder, "    PARALLEL BRIDGES PER LADDER      .")
	writeHisto(stats.AntiparallelBridgesPerLadder, "    ANTIPARALLEL BRIDGES PER LADDER  .")
	writeHisto(stats.LaddersPerSheet, "    LADDERS PER SHEET                .")
	//the residue table
	fmt.Fprintln(w, "  #  RESIDUE AA STRUCTURE BP1 BP2  ACC     N-H-->O    O-->H-N    N-H-->O    O-->H-N    TCO  KAPPA ALPHA  PHI   PSI    X-CA   Y-CA   Z-CA")
	pnr := printedNumbers(d.residues)
	last := 0
	for i, r := range d.residues {
		//insert a break line whenever the numbering jumps, which is how
		//chain breaks surface in the table
		if pnr[i] != last+1 {
			breakType := byte(' ')
			if r.chainBreak == BreakNewChain {
				breakType = '*'
			}
			fmt.Fprintf(w, "%5d        !%c             0   0    0      0, 0.0     0, 0.0     0, 0.0     0, 0.0   0.000 360.0 360.0 360.0 360.0    0.0    0.0    0.0\n",
				last+1, breakType)
		}
		line, err := residueToDSSPLine(d, i, pnr)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
		last = pnr[i]
	}
	return w.Flush()
}
