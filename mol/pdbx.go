/*
 * pdbx.go, part of godssp.
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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	v3 "github.com/rmera/godssp/v3"
)

var tl func(string) string = strings.ToLower

// Category is one mmCIF category: a set of tags and one or more rows of
// values. Non-loop categories hold a single row.
type Category struct {
	Name string   //without the leading underscore, e.g. "atom_site"
	Tags []string //full tags, e.g. "_atom_site.id"
	Rows [][]string
	Loop bool
}

// TagIndex returns the column index for the given full tag, or -1 if the
// tag is not in the category. The comparison is case-insensitive.
func (C *Category) TagIndex(tag string) int {
	tag = tl(tag)
	for i, t := range C.Tags {
		if tl(t) == tag {
			return i
		}
	}
	return -1
}

// Value returns the value under the given tag for row i, or "" if either
// the tag or the row does not exist.
func (C *Category) Value(i int, tag string) string {
	k := C.TagIndex(tag)
	if k < 0 || i >= len(C.Rows) || k >= len(C.Rows[i]) {
		return ""
	}
	return C.Rows[i][k]
}

// Datablock is a parsed mmCIF datablock: the named categories in file
// order. It retains everything read, so an annotated file can be written
// back without losing categories godssp does not interpret.
type Datablock struct {
	Name       string //the name after "data_"
	Categories []*Category
}

// Get returns the category with the given name, or nil. Case-insensitive.
func (D *Datablock) Get(name string) *Category {
	name = tl(name)
	for _, c := range D.Categories {
		if tl(c.Name) == name {
			return c
		}
	}
	return nil
}

// Drop removes the category with the given name, if present.
func (D *Datablock) Drop(name string) {
	name = tl(name)
	for i, c := range D.Categories {
		if tl(c.Name) == name {
			D.Categories = append(D.Categories[:i], D.Categories[i+1:]...)
			return
		}
	}
}

// Append adds a category at the end of the datablock.
func (D *Datablock) Append(c *Category) {
	D.Categories = append(D.Categories, c)
}

// cifNeedsQuoting tells whether a value must be quoted when written.
func cifNeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, " \t'\"") {
		return true
	}
	c := s[0]
	return c == '_' || c == '#' || c == '$' || c == '[' || c == ';'
}

// cifFormat returns the value as it should appear in a written file.
// Values with newlines must be handled by the caller as semicolon blocks.
func cifFormat(s string) string {
	if s == "" {
		return "."
	}
	if !cifNeedsQuoting(s) {
		return s
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	return "\"" + s + "\""
}

// Write serialises the datablock in mmCIF format.
func (D *Datablock) Write(out io.Writer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "data_%s\n", D.Name)
	for _, c := range D.Categories {
		fmt.Fprintln(w, "#")
		if c.Loop || len(c.Rows) > 1 {
			fmt.Fprintln(w, "loop_")
			for _, t := range c.Tags {
				fmt.Fprintln(w, t)
			}
			for _, row := range c.Rows {
				writeCIFRow(w, row)
			}
		} else if len(c.Rows) == 1 {
			for i, t := range c.Tags {
				v := ""
				if i < len(c.Rows[0]) {
					v = c.Rows[0][i]
				}
				if strings.Contains(v, "\n") {
					fmt.Fprintf(w, "%s\n;%s\n;\n", t, v)
				} else {
					fmt.Fprintf(w, "%-40s %s\n", t, cifFormat(v))
				}
			}
		}
	}
	fmt.Fprintln(w, "#")
	return w.Flush()
}

func writeCIFRow(w *bufio.Writer, row []string) {
	for i, v := range row {
		if strings.Contains(v, "\n") {
			//a semicolon field ends the current line
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, ";%s\n;\n", v)
			continue
		}
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, cifFormat(v))
	}
	fmt.Fprintln(w)
}

// splitCIFLine tokenises one mmCIF data line, honouring single and double
// quotes.
func splitCIFLine(line string) []string {
	var toks []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			q := line[i]
			j := i + 1
			for j < len(line) {
				//a closing quote must be followed by whitespace or EOL
				if line[j] == q && (j+1 >= len(line) || line[j+1] == ' ' || line[j+1] == '\t') {
					break
				}
				j++
			}
			toks = append(toks, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		toks = append(toks, line[i:j])
		i = j
	}
	return toks
}

// categoryOf splits a full tag like "_atom_site.id" into category name and
// item name.
func categoryOf(tag string) (string, string) {
	tag = strings.TrimPrefix(tag, "_")
	if k := strings.Index(tag, "."); k >= 0 {
		return tag[:k], tag[k+1:]
	}
	return tag, ""
}

// PDBxRead reads an mmCIF file from an io.Reader and returns the Molecule,
// with the parsed datablock retained in its Data field.
func PDBxRead(pdb io.Reader) (*Molecule, error) {
	db, err := DatablockRead(pdb)
	if err != nil {
		return nil, errDecorate(err, "PDBxRead")
	}
	mol, err := moleculeFromDatablock(db)
	return mol, errDecorate(err, "PDBxRead")
}

// PDBxFileRead reads a molecule from the mmCIF file with the given name.
// Files ending in .gz are transparently decompressed.
func PDBxFileRead(pdbname string) (*Molecule, error) {
	pdbxfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbxfile.Close()
	var r io.Reader = pdbxfile
	if strings.HasSuffix(pdbname, ".gz") {
		gz, err := gzip.NewReader(pdbxfile)
		if err != nil {
			return nil, errDecorate(err, "PDBxFileRead "+pdbname)
		}
		defer gz.Close()
		r = gz
	}
	mol, err := PDBxRead(r)
	return mol, errDecorate(err, "PDBxFileRead "+pdbname)
}

// DatablockRead parses the first datablock of an mmCIF file. Categories,
// tags, rows and multi-line values are all retained.
func DatablockRead(in io.Reader) (*Datablock, error) {
	rd := bufio.NewReader(in)
	db := new(Datablock)
	var cur *Category    //category being filled
	var pending []string //data tokens of a partially read loop row
	var inloop bool
	var loopTags []string
	var seenData bool
	flushRow := func() {
		if cur != nil && len(pending) > 0 {
			cur.Rows = append(cur.Rows, pending)
			pending = nil
		}
	}
	for {
		line, err := rd.ReadString('\n')
		if err != nil && len(line) == 0 {
			break
		}
		line = strings.TrimRight(line, "\n\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ";") {
			//multi-line value: accumulate until the closing semicolon
			var b strings.Builder
			b.WriteString(strings.TrimPrefix(line, ";"))
			for {
				l2, err2 := rd.ReadString('\n')
				if err2 != nil && len(l2) == 0 {
					return nil, CError{"mol: Unterminated semicolon field", []string{"DatablockRead"}}
				}
				l2 = strings.TrimRight(l2, "\n\r")
				if l2 == ";" {
					break
				}
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString(l2)
			}
			pending = append(pending, b.String())
			if inloop && cur != nil && len(pending) == len(cur.Tags) {
				flushRow()
			}
			continue
		}
		if strings.HasPrefix(tl(line), "data_") {
			if seenData {
				break //only the first datablock is read
			}
			seenData = true
			db.Name = line[len("data_"):]
			continue
		}
		if tl(strings.TrimSpace(line)) == "loop_" {
			flushRow()
			inloop = true
			loopTags = nil
			cur = nil
			continue
		}
		if strings.HasPrefix(line, "_") {
			toks := splitCIFLine(line)
			tag := toks[0]
			cat, _ := categoryOf(tag)
			if inloop && cur == nil {
				//still collecting the tags of a loop header
				loopTags = append(loopTags, tag)
				if len(toks) > 1 {
					return nil, CError{"mol: Value on a loop tag line: " + line, []string{"DatablockRead"}}
				}
				//the category itself is created lazily, on the first data line
				continue
			}
			//non-loop item
			flushRow()
			inloop = false
			if cur == nil || tl(cur.Name) != tl(cat) || cur.Loop {
				cur = &Category{Name: cat}
				db.Append(cur)
			}
			cur.Tags = append(cur.Tags, tag)
			if len(cur.Rows) == 0 {
				cur.Rows = append(cur.Rows, []string{})
			}
			if len(toks) > 1 {
				cur.Rows[0] = append(cur.Rows[0], cifValue(toks[1]))
			} else {
				//the value comes on the following line(s)
				v, err2 := readLoneValue(rd)
				if err2 != nil {
					return nil, errDecorate(err2, "DatablockRead")
				}
				cur.Rows[0] = append(cur.Rows[0], v)
			}
			continue
		}
		//a data line
		if inloop && cur == nil {
			if len(loopTags) == 0 {
				return nil, CError{"mol: Data line outside any category: " + line, []string{"DatablockRead"}}
			}
			cat, _ := categoryOf(loopTags[0])
			cur = &Category{Name: cat, Tags: loopTags, Loop: true}
			db.Append(cur)
		}
		if cur == nil {
			continue //stray data outside a category
		}
		for _, t := range splitCIFLine(line) {
			pending = append(pending, cifValue(t))
		}
		if len(pending) >= len(cur.Tags) {
			flushRow()
		}
	}
	flushRow()
	return db, nil
}

// readLoneValue reads the value of a non-loop item whose value was not on
// the tag line.
func readLoneValue(rd *bufio.Reader) (string, error) {
	for {
		line, err := rd.ReadString('\n')
		if err != nil && len(line) == 0 {
			return "", CError{"mol: Missing value for item", []string{"readLoneValue"}}
		}
		line = strings.TrimRight(line, "\n\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ";") {
			var b strings.Builder
			b.WriteString(strings.TrimPrefix(line, ";"))
			for {
				l2, err2 := rd.ReadString('\n')
				if err2 != nil && len(l2) == 0 {
					return "", CError{"mol: Unterminated semicolon field", []string{"readLoneValue"}}
				}
				l2 = strings.TrimRight(l2, "\n\r")
				if l2 == ";" {
					return b.String(), nil
				}
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString(l2)
			}
		}
		toks := splitCIFLine(line)
		if len(toks) > 0 {
			return cifValue(toks[0]), nil
		}
	}
}

// cifValue maps the mmCIF null placeholders to the empty string.
func cifValue(s string) string {
	if s == "." || s == "?" {
		return ""
	}
	return s
}

// moleculeFromDatablock builds a Molecule from the atom_site category of
// the datablock. Only the first model is kept; of the alternate locations,
// only atoms with no label_alt_id or with 'A' are kept.
func moleculeFromDatablock(db *Datablock) (*Molecule, error) {
	as := db.Get("atom_site")
	if as == nil {
		return nil, CError{"mol: Datablock has no atom_site category", []string{"moleculeFromDatablock"}}
	}
	mol := new(Molecule)
	mol.Data = db
	atoms := make([]*Atom, 0, len(as.Rows))
	coords := make([]float64, 0, 3*len(as.Rows))
	bfactors := make([]float64, 0, len(as.Rows))
	var firstModel string
	for i := range as.Rows {
		if mn := as.Value(i, "_atom_site.pdbx_PDB_model_num"); mn != "" {
			if firstModel == "" {
				firstModel = mn
			} else if mn != firstModel {
				break
			}
		}
		alt := as.Value(i, "_atom_site.label_alt_id")
		if alt != "" && alt != "A" {
			continue
		}
		at := new(Atom)
		at.AltID = alt
		at.Name = as.Value(i, "_atom_site.label_atom_id")
		if n := as.Value(i, "_atom_site.auth_atom_id"); n != "" {
			at.Name = n
		}
		at.Symbol = as.Value(i, "_atom_site.type_symbol")
		if at.Symbol == "" {
			at.Symbol, _ = symbolFromName(at.Name)
		}
		at.MolName = as.Value(i, "_atom_site.label_comp_id")
		if n := as.Value(i, "_atom_site.auth_comp_id"); n != "" {
			at.MolName = n
		}
		at.MolName1 = OneLetterCode(at.MolName)
		at.LabelChain = as.Value(i, "_atom_site.label_asym_id")
		at.Chain = as.Value(i, "_atom_site.auth_asym_id")
		if at.Chain == "" {
			at.Chain = at.LabelChain
		}
		at.InsCode = as.Value(i, "_atom_site.pdbx_PDB_ins_code")
		var err error
		at.ID, err = strconv.Atoi(as.Value(i, "_atom_site.id"))
		if err != nil {
			return nil, CError{fmt.Sprintf("mol: Couldn't parse atom ID in atom_site row %d", i), []string{"moleculeFromDatablock"}}
		}
		seq := as.Value(i, "_atom_site.auth_seq_id")
		if seq == "" {
			seq = as.Value(i, "_atom_site.label_seq_id")
		}
		at.MolID, err = strconv.Atoi(seq)
		if err != nil {
			return nil, CError{fmt.Sprintf("mol: Couldn't parse residue number in atom_site row %d", i), []string{"moleculeFromDatablock"}}
		}
		if ls := as.Value(i, "_atom_site.label_seq_id"); ls != "" {
			at.LabelSeq, _ = strconv.Atoi(ls)
		} else {
			at.LabelSeq = at.MolID
		}
		if oc := as.Value(i, "_atom_site.occupancy"); oc != "" {
			at.Occupancy, _ = strconv.ParseFloat(oc, 64)
		}
		at.Het = as.Value(i, "_atom_site.group_PDB") != "ATOM"
		var c [3]float64
		for j, t := range []string{"_atom_site.Cartn_x", "_atom_site.Cartn_y", "_atom_site.Cartn_z"} {
			c[j], err = strconv.ParseFloat(as.Value(i, t), 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("mol: Couldn't parse coordinate in atom_site row %d", i), []string{"moleculeFromDatablock"}}
			}
		}
		var bf float64
		if b := as.Value(i, "_atom_site.B_iso_or_equiv"); b != "" {
			bf, _ = strconv.ParseFloat(b, 64)
		}
		atoms = append(atoms, at)
		coords = append(coords, c[0], c[1], c[2])
		bfactors = append(bfactors, bf)
	}
	mol.Atoms = atoms
	var err error
	mol.Coords, err = v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "moleculeFromDatablock")
	}
	mol.Bfactors = bfactors
	fillMetadataFromDatablock(mol, db)
	return mol, nil
}

// AsDatablock builds a minimal datablock, with an atom_site category,
// from the molecule. It is used to produce mmCIF output for molecules
// that were not read from an mmCIF file.
func (M *Molecule) AsDatablock(name string) *Datablock {
	db := &Datablock{Name: name}
	as := &Category{Name: "atom_site", Loop: true, Tags: []string{
		"_atom_site.group_PDB",
		"_atom_site.id",
		"_atom_site.type_symbol",
		"_atom_site.label_atom_id",
		"_atom_site.label_alt_id",
		"_atom_site.label_comp_id",
		"_atom_site.label_asym_id",
		"_atom_site.label_seq_id",
		"_atom_site.pdbx_PDB_ins_code",
		"_atom_site.Cartn_x",
		"_atom_site.Cartn_y",
		"_atom_site.Cartn_z",
		"_atom_site.occupancy",
		"_atom_site.B_iso_or_equiv",
		"_atom_site.auth_seq_id",
		"_atom_site.auth_comp_id",
		"_atom_site.auth_asym_id",
		"_atom_site.auth_atom_id",
		"_atom_site.pdbx_PDB_model_num",
	}}
	ff := func(f float64) string { return strconv.FormatFloat(f, 'f', 3, 64) }
	for i, at := range M.Atoms {
		group := "ATOM"
		if at.Het {
			group = "HETATM"
		}
		c := M.Coord(i)
		bf := 0.0
		if i < len(M.Bfactors) {
			bf = M.Bfactors[i]
		}
		as.Rows = append(as.Rows, []string{
			group,
			strconv.Itoa(at.ID),
			at.Symbol,
			at.Name,
			at.AltID,
			at.MolName,
			at.LabelChain,
			strconv.Itoa(at.LabelSeq),
			at.InsCode,
			ff(c.At(0, 0)), ff(c.At(0, 1)), ff(c.At(0, 2)),
			strconv.FormatFloat(at.Occupancy, 'f', 2, 64),
			strconv.FormatFloat(bf, 'f', 2, 64),
			strconv.Itoa(at.MolID),
			at.MolName,
			at.Chain,
			at.Name,
			"1",
		})
	}
	db.Append(as)
	return db
}

// fillMetadataFromDatablock reconstructs the bibliographic PDB records,
// as far as the datablock allows, for the classic DSSP header.
func fillMetadataFromDatablock(mol *Molecule, db *Datablock) {
	var id, keywords string
	if e := db.Get("entry"); e != nil {
		id = e.Value(0, "_entry.id")
	}
	if k := db.Get("struct_keywords"); k != nil {
		keywords = k.Value(0, "_struct_keywords.pdbx_keywords")
	}
	mol.Header = strings.TrimSpace(keywords + "  " + id)
	if s := db.Get("struct"); s != nil {
		mol.Compnd = strings.ReplaceAll(s.Value(0, "_struct.title"), "\n", " ")
	}
	if a := db.Get("audit_author"); a != nil {
		names := make([]string, 0, len(a.Rows))
		for i := range a.Rows {
			if n := a.Value(i, "_audit_author.name"); n != "" {
				names = append(names, n)
			}
		}
		mol.Author = strings.Join(names, ",")
	}
}
