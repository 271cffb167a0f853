/*
 * mmcif.go, part of godssp.
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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rmera/godssp/mol"
)

// Version data written to the software record and printed by the driver.
const (
	Version     = "3.0.5"
	VersionDate = "2020-10-07"
)

// confTypeID maps a summary label to the mmCIF struct_conf type.
func confTypeID(ss SS) string {
	switch ss {
	case Helix3:
		return "HELX_RH_3T_P"
	case AlphaHelix:
		return "HELX_RH_AL_P"
	case Helix5:
		return "HELX_RH_PI_P"
	case HelixPPII:
		return "HELX_LH_PP_P"
	case Turn:
		return "TURN_TY1_P"
	case Bend:
		return "TURN_P"
	case BetaBridge, Strand:
		return "STRN"
	}
	return ""
}

var structConfTags = []string{
	"_struct_conf.conf_type_id",
	"_struct_conf.id",
	"_struct_conf.beg_label_comp_id",
	"_struct_conf.beg_label_asym_id",
	"_struct_conf.beg_label_seq_id",
	"_struct_conf.pdbx_beg_PDB_ins_code",
	"_struct_conf.end_label_comp_id",
	"_struct_conf.end_label_asym_id",
	"_struct_conf.end_label_seq_id",
	"_struct_conf.pdbx_end_PDB_ins_code",
	"_struct_conf.beg_auth_comp_id",
	"_struct_conf.beg_auth_asym_id",
	"_struct_conf.beg_auth_seq_id",
	"_struct_conf.end_auth_comp_id",
	"_struct_conf.end_auth_asym_id",
	"_struct_conf.end_auth_seq_id",
	"_struct_conf.criteria",
}

// AnnotateMMCIF replaces the struct_conf and struct_conf_type categories
// of the input datablock with the engine result, adds a software record,
// and serialises the datablock to out. Molecules read from PDB files get
// a datablock built from their atoms first.
func AnnotateMMCIF(out io.Writer, d *DSSP) error {
	db := d.m.Data
	if db == nil {
		db = d.m.AsDatablock("godssp")
	}
	if d.Empty() {
		if Verbose {
			fmt.Fprintln(os.Stderr, "godssp: No secondary structure information found")
		}
	} else {
		db.Drop("struct_conf")
		db.Drop("struct_conf_type")
		conf := &mol.Category{Name: "struct_conf", Tags: structConfTags, Loop: true}
		confType := &mol.Category{Name: "struct_conf_type", Tags: []string{"_struct_conf_type.id"}, Loop: true}
		counters := make(map[string]int)
		flushRun := func(from, to int) { //inclusive range of one ss run
			rb, re := d.residues[from], d.residues[to]
			id := confTypeID(rb.ss)
			if id == "" {
				return
			}
			if counters[id] == 0 {
				confType.Rows = append(confType.Rows, []string{id})
				counters[id] = 1
			}
			conf.Rows = append(conf.Rows, []string{
				id,
				id + strconv.Itoa(counters[id]),
				rb.compound, rb.labelChain, strconv.Itoa(rb.labelSeq), rb.insCode,
				re.compound, re.labelChain, strconv.Itoa(re.labelSeq), re.insCode,
				rb.compound, rb.chain, strconv.Itoa(rb.seqNum),
				re.compound, re.chain, strconv.Itoa(re.seqNum),
				"DSSP",
			})
			counters[id]++
		}
		start := 0
		for i := 1; i <= len(d.residues); i++ {
			if i == len(d.residues) || d.residues[i].ss != d.residues[start].ss {
				flushRun(start, i-1)
				start = i
			}
		}
		db.Append(conf)
		db.Append(confType)
	}
	addSoftware(db)
	return db.Write(out)
}

// addSoftware appends the dssp record to the software category, creating
// the category if the datablock has none.
func addSoftware(db *mol.Datablock) {
	sw := db.Get("software")
	if sw == nil {
		sw = &mol.Category{Name: "software", Tags: []string{
			"_software.pdbx_ordinal",
			"_software.name",
			"_software.classification",
			"_software.version",
			"_software.date",
		}, Loop: true}
		db.Append(sw)
	}
	row := make([]string, len(sw.Tags))
	for i, t := range sw.Tags {
		switch t {
		case "_software.pdbx_ordinal":
			row[i] = strconv.Itoa(len(sw.Rows) + 1)
		case "_software.name":
			row[i] = "dssp " + Version
		case "_software.classification":
			row[i] = "other"
		case "_software.version":
			row[i] = Version
		case "_software.date":
			row[i] = VersionDate
		}
	}
	sw.Rows = append(sw.Rows, row)
}
