/*
 * stats.go, part of godssp.
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
	"gonum.org/v1/gonum/floats"
)

// histogramBuckets is the number of buckets of the run-length histograms.
// Longer runs are counted in the last bucket.
const histogramBuckets = 30

// Statistics aggregates the global results of the engine.
type Statistics struct {
	Residues             int
	Chains               int
	SSBridges            int
	IntraChainSSBridges  int
	InterChainSSBridges  int
	AccessibleSurface    float64
	HBonds               int
	HBondsInParallel     int
	HBondsInAntiparallel int

	//indexed by (acceptor index - donor index) clamped to [-5,+5]
	HBondsPerDistance [11]int

	ResiduesPerAlphaHelix        [histogramBuckets]int
	ParallelBridgesPerLadder     [histogramBuckets]int
	AntiparallelBridgesPerLadder [histogramBuckets]int
	LaddersPerSheet              [histogramBuckets]int
}

func clampBucket(n int) int {
	if n > histogramBuckets {
		n = histogramBuckets
	}
	return n - 1
}

// calcStatistics aggregates everything once the passes are done.
func calcStatistics(residues []*Residue, beta *betaResult) *Statistics {
	s := new(Statistics)
	s.Residues = len(residues)
	acc := make([]float64, 0, len(residues))
	for i, r := range residues {
		if i == 0 || r.chainBreak == BreakNewChain {
			s.Chains++
		}
		acc = append(acc, r.accessibility)
		for _, b := range r.acceptor {
			if b.Partner < 0 {
				continue
			}
			s.HBonds++
			//the acceptor of the N-H is this bond's O-side residue
			k := residues[b.Partner].num - r.num
			if k < -5 {
				k = -5
			}
			if k > 5 {
				k = 5
			}
			s.HBondsPerDistance[k+5]++
		}
	}
	s.AccessibleSurface = floats.Sum(acc)
	//disulphides: the two cysteines of bridge n share the number n
	bridgeChains := make(map[int][]string)
	for _, r := range residues {
		if r.ssBridge > 0 {
			bridgeChains[r.ssBridge] = append(bridgeChains[r.ssBridge], r.chain)
		}
	}
	for _, chains := range bridgeChains {
		s.SSBridges++
		if len(chains) == 2 && chains[0] == chains[1] {
			s.IntraChainSSBridges++
		}
	}
	s.InterChainSSBridges = s.SSBridges - s.IntraChainSSBridges
	s.HBondsInParallel = len(beta.parBonds)
	s.HBondsInAntiparallel = len(beta.antiBond)
	//alpha-helix run lengths
	run := 0
	for _, r := range residues {
		if r.ss == AlphaHelix {
			run++
			continue
		}
		if run > 0 {
			s.ResiduesPerAlphaHelix[clampBucket(run)]++
			run = 0
		}
	}
	if run > 0 {
		s.ResiduesPerAlphaHelix[clampBucket(run)]++
	}
	//ladder and sheet histograms
	perSheet := make(map[int]int)
	for _, ld := range beta.ladders {
		if ld.t == btParallel {
			s.ParallelBridgesPerLadder[clampBucket(len(ld.i))]++
		} else {
			s.AntiparallelBridgesPerLadder[clampBucket(len(ld.i))]++
		}
		perSheet[ld.sheet]++
	}
	for _, n := range perSheet {
		s.LaddersPerSheet[clampBucket(n)]++
	}
	return s
}
