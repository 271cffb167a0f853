/*
 * main.go, part of godssp.
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

// godssp assigns secondary structure to the residues of a protein
// structure, writing either a classic DSSP file or an annotated mmCIF
// file.
//
//	godssp [options] input-file [output-file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rmera/godssp"
	"github.com/rmera/godssp/dsspplot"
	"github.com/rmera/godssp/mol"
)

func main() {
	if err := run(); err != nil {
		printWhat(err)
		os.Exit(1)
	}
}

// printWhat unwinds a decorated error, one ">> "-indented line per
// nesting level.
func printWhat(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	e, ok := err.(mol.Error)
	if !ok {
		return
	}
	deco := e.Decorate("")
	for i := len(deco) - 1; i >= 0; i-- {
		fmt.Fprintln(os.Stderr, strings.Repeat(" >> ", len(deco)-i)+deco[i])
	}
}

// dictList collects repeatable -dict flags.
type dictList []string

func (d *dictList) String() string { return strings.Join(*d, ",") }

func (d *dictList) Set(s string) error {
	*d = append(*d, s)
	return nil
}

func run() error {
	var dicts dictList
	outputFormat := flag.String("output-format", "", "Output format, 'dssp' for classic DSSP or 'mmcif' for annotated mmCIF. The default is chosen from the extension of the output file, if any.")
	flag.Var(&dicts, "dict", "Dictionary file containing restraints for residues in this specific target, can be given multiple times")
	minPPStretch := flag.Int("min-pp-stretch", 3, "Minimal number of residues having PSI/PHI in range for a PP helix")
	createMissing := flag.Bool("create-missing", false, "Create missing backbone atoms")
	ramaPlot := flag.String("rama-plot", "", "Also write a Ramachandran plot of the result to this file (.png is appended)")
	verbose := flag.Bool("verbose", false, "verbose output")
	version := flag.Bool("version", false, "Print version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s [options] input-file [output-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("%s version %s %s\n", os.Args[0], dssp.Version, dssp.VersionDate)
		return nil
	}
	if flag.NArg() < 1 {
		return mol.NewError("Input file not specified", "godssp")
	}
	if *outputFormat != "" && *outputFormat != "dssp" && *outputFormat != "mmcif" {
		return mol.NewError("Output format should be one of 'dssp' or 'mmcif'", "godssp")
	}
	dssp.Verbose = *verbose
	if *createMissing || len(dicts) > 0 {
		//backbone completion needs the compound-restraint dictionaries,
		//which this program does not ship
		fmt.Fprintln(os.Stderr, "godssp: compound dictionaries are not supported, continuing without them")
	}
	xyzin := flag.Arg(0)
	var m *mol.Molecule
	var err error
	if isCIF(xyzin) {
		m, err = mol.PDBxFileRead(xyzin)
	} else {
		m, err = mol.PDBFileRead(xyzin)
	}
	if err != nil {
		return err
	}
	d, err := dssp.New(m, &dssp.Options{MinPPStretch: *minPPStretch})
	if err != nil {
		return err
	}
	format := *outputFormat
	var out io.Writer = os.Stdout
	if flag.NArg() >= 2 {
		output := flag.Arg(1)
		if format == "" && (strings.HasSuffix(output, ".cif") || strings.HasSuffix(output, ".mmcif")) {
			format = "mmcif"
		}
		f, err := os.Create(output)
		if err != nil {
			return mol.NewError("Could not open output file", "godssp "+output)
		}
		defer f.Close()
		out = f
	}
	if format == "" {
		format = "dssp"
	}
	if format == "dssp" {
		err = dssp.WriteDSSP(out, d)
	} else {
		err = dssp.AnnotateMMCIF(out, d)
	}
	if err != nil {
		return err
	}
	if *ramaPlot != "" {
		if err := dsspplot.RamaPlot(d, xyzin, *ramaPlot); err != nil {
			return err
		}
	}
	return nil
}

// isCIF guesses from the file name whether the input is mmCIF.
func isCIF(name string) bool {
	name = strings.TrimSuffix(name, ".gz")
	return strings.HasSuffix(name, ".cif") || strings.HasSuffix(name, ".mmcif")
}
