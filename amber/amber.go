/*
 * amber.go, part of goloos.
 *
 * Copyright 2024 The goLOOS developers
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

//Package amber reads AMBER topology (parmtop) files into a loos.Topology.
//A parmtop is a sequence of sections, each introduced by a %FLAG line
//with the section name, followed by a %FORMAT directive describing the
//field layout of the data lines. Sections may appear in any order, save
//that POINTERS must precede any section whose size it declares. The
//whole file is read in a single pass; the first error aborts the read
//and the partial topology is discarded.
package amber

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	loos "github.com/mehdishafiei/loos"
	"github.com/mehdishafiei/loos/chemgraph"
)

//parser holds the in-progress state of one read: the line source, the
//topology under construction and the cross-section counts. POINTERS
//fills natoms/nbonh/mbona/nres and allocates the atoms; the residue
//arrays are consumed by assignResidues once the file is exhausted; the
//amoeba bond count is set by AMOEBA_REGULAR_BOND_NUM_LIST for the
//AMOEBA_REGULAR_BOND_LIST section that follows it.
type parser struct {
	r           *lineReader
	filename    string
	top         *loos.Topology
	title       string
	natoms      int
	nbonh       int //bonds including hydrogen
	mbona       int //bonds without hydrogen
	nres        int
	resLabels   []string
	resPointers []int
	amoebaBonds int
	nextbond    int
}

//The sections this reader recognizes. Any other %FLAG is skipped, its
//directive and data lines falling through the dispatcher as plain
//unmatched lines.
var sections = map[string]func(*parser) error{
	"TITLE":                        (*parser).parseTitle,
	"POINTERS":                     (*parser).parsePointers,
	"ATOM_NAME":                    (*parser).parseAtomNames,
	"CHARGE":                       (*parser).parseCharges,
	"MASS":                         (*parser).parseMasses,
	"RESIDUE_LABEL":                (*parser).parseResidueLabels,
	"RESIDUE_POINTER":              (*parser).parseResiduePointers,
	"BONDS_INC_HYDROGEN":           func(p *parser) error { return p.parseBonds(p.nbonh, bondCoordIndex) },
	"BONDS_WITHOUT_HYDROGEN":       func(p *parser) error { return p.parseBonds(p.mbona, bondCoordIndex) },
	"AMOEBA_REGULAR_BOND_NUM_LIST": (*parser).parseAmoebaBondNum,
	"AMOEBA_REGULAR_BOND_LIST":     func(p *parser) error { return p.parseBonds(p.amoebaBonds, bondAtomIndex) },
}

//New reads the AMBER topology file filename and returns the assembled
//topology. Files ending in .gz or .zst are decompressed on the fly.
func New(filename string) (*loos.Topology, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Error{UnableToOpen, filename, 0, []string{"New"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{UnableToOpen + ": " + err.Error(), filename, 0, []string{"New"}, true}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(filename, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{UnableToOpen + ": " + err.Error(), filename, 0, []string{"New"}, true}
		}
		defer dec.Close()
		r = dec
	}
	top, err := read(r, filename)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return top, nil
}

//Read reads an AMBER topology from r and returns the assembled topology.
func Read(r io.Reader) (*loos.Topology, error) {
	top, err := read(r, "")
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return top, nil
}

func read(rd io.Reader, filename string) (*loos.Topology, error) {
	p := &parser{r: newLineReader(rd), filename: filename}
	for p.r.next() {
		fields := strings.Fields(p.r.line)
		if len(fields) < 2 || fields[0] != "%FLAG" {
			continue
		}
		handler, ok := sections[fields[1]]
		if !ok {
			continue
		}
		if err := handler(p); err != nil {
			return nil, err
		}
	}
	//The dispatch loop ends on any false from next, so a failed read
	//looks like end of input until the source is asked.
	if err := p.r.err(); err != nil {
		return nil, Error{"Read error: " + err.Error(), filename, p.r.lineno, nil, true}
	}
	if err := p.assignResidues(); err != nil {
		return nil, err
	}
	p.top.SetTitle(p.title)
	p.top.DeduceSymbols()
	p.top.SetConnectivity(chemgraph.Components(p.top))
	return p.top, nil
}

//wrapError builds a fatal parse error at the current line.
func (p *parser) wrapError(msg string) Error {
	return Error{msg, p.filename, p.r.lineno, nil, true}
}

//needAtoms returns a structural error if the sizing section has not
//run yet. Sections that write into the atom slice, or whose expected
//length comes from POINTERS, must call it before reading their block.
func (p *parser) needAtoms(where string) error {
	if p.top == nil {
		return p.wrapError(MissingPointers + " before " + where)
	}
	return nil
}

func (p *parser) parsePointers() error {
	ff, err := p.parseFormat("I", "pointers")
	if err != nil {
		return err
	}
	if p.top != nil {
		return p.wrapError(DuplicatedPointers)
	}
	pointers := readBlock(p.r, ff, convInt)
	if len(pointers) < 12 {
		return p.wrapError("Error parsing pointers from amber file")
	}
	p.natoms = pointers[0]
	p.nbonh = pointers[2]
	p.mbona = pointers[3]
	p.nres = pointers[11]
	ats := make([]*loos.Atom, p.natoms)
	for i := range ats {
		ats[i] = &loos.Atom{ID: i + 1}
	}
	p.top, err = loos.MakeTopology(ats, 0, 0)
	if err != nil {
		return errDecorate(err, "parsePointers")
	}
	return nil
}

//Simply slurp up the title. The fragments are concatenated as they
//come, and there is no expected length.
func (p *parser) parseTitle() error {
	ff, err := p.parseFormat("a", "title")
	if err != nil {
		return err
	}
	for _, v := range readBlock(p.r, ff, convString) {
		p.title += v
	}
	return nil
}

func (p *parser) parseAtomNames() error {
	ff, err := p.parseFormat("a", "atom names")
	if err != nil {
		return err
	}
	if err := p.needAtoms("atom names"); err != nil {
		return err
	}
	names := readBlock(p.r, ff, convString)
	if len(names) != p.natoms {
		return p.wrapError("Error parsing atom names from amber file")
	}
	for i, v := range names {
		p.top.Atom(i).Name = strings.TrimSpace(v)
	}
	return nil
}

func (p *parser) parseCharges() error {
	ff, err := p.parseFormat("EFG", "charges")
	if err != nil {
		return err
	}
	if err := p.needAtoms("charges"); err != nil {
		return err
	}
	charges := readBlock(p.r, ff, convFloat)
	if len(charges) != p.natoms {
		return p.wrapError("Error parsing charges from amber file")
	}
	for i, v := range charges {
		p.top.Atom(i).Charge = v
	}
	return nil
}

func (p *parser) parseMasses() error {
	ff, err := p.parseFormat("EFG", "masses")
	if err != nil {
		return err
	}
	if err := p.needAtoms("masses"); err != nil {
		return err
	}
	masses := readBlock(p.r, ff, convFloat)
	if len(masses) != p.natoms {
		return p.wrapError("Error parsing masses from amber file")
	}
	for i, v := range masses {
		p.top.Atom(i).Mass = v
	}
	return nil
}

func (p *parser) parseResidueLabels() error {
	ff, err := p.parseFormat("a", "residue labels")
	if err != nil {
		return err
	}
	if err := p.needAtoms("residue labels"); err != nil {
		return err
	}
	labels := readBlock(p.r, ff, convString)
	if len(labels) != p.nres {
		return p.wrapError("Error parsing residue labels from amber file")
	}
	p.resLabels = make([]string, len(labels))
	for i, v := range labels {
		p.resLabels[i] = strings.TrimSpace(v)
	}
	return nil
}

func (p *parser) parseResiduePointers() error {
	ff, err := p.parseFormat("I", "residue pointers")
	if err != nil {
		return err
	}
	if err := p.needAtoms("residue pointers"); err != nil {
		return err
	}
	p.resPointers = readBlock(p.r, ff, convInt)
	if len(p.resPointers) != p.nres {
		return p.wrapError("Error parsing residue pointers from amber file")
	}
	return nil
}

//The two atom-numbering conventions of parmtop bond lists. The regular
//bond sections store 0-based coordinate-array offsets, 3 per atom, so
//the atom index is the entry over 3. The AMOEBA list stores plain
//1-based atom ids. The two index spaces are not interchangeable.
func bondCoordIndex(i int) int { return i / 3 }
func bondAtomIndex(i int) int  { return i - 1 }

//parseBonds reads 3*n integers as (a, b, type) triples and adds the
//mutual bonds to the topology. A triple with a == b is a placeholder,
//not a self-bond, and is skipped. Parmtop bond lists are not guaranteed
//symmetric, so symmetry is enforced here rather than assumed.
func (p *parser) parseBonds(n int, index func(int) int) error {
	ff, err := p.parseFormat("I", "bonds")
	if err != nil {
		return err
	}
	if err := p.needAtoms("bonds"); err != nil {
		return err
	}
	bondlist := readBlock(p.r, ff, convInt)
	if len(bondlist) != 3*n {
		return p.wrapError("Error parsing bonds in amber file")
	}
	for i := 0; i < len(bondlist); i += 3 {
		if bondlist[i] == bondlist[i+1] {
			continue
		}
		ia := index(bondlist[i])
		ib := index(bondlist[i+1])
		if ia < 0 || ia >= p.natoms || ib < 0 || ib >= p.natoms {
			return p.wrapError("Bond index out of range in amber file")
		}
		aatom := p.top.Atom(ia)
		batom := p.top.Atom(ib)
		if !aatom.Bonded(batom) {
			loos.NewBond(aatom, batom, p.nextbond)
			p.nextbond++
		}
	}
	return nil
}

//parseAmoebaBondNum reads the single integer giving the length of the
//AMOEBA_REGULAR_BOND_LIST section that follows.
func (p *parser) parseAmoebaBondNum() error {
	ff, err := p.parseFormat("I", "amoeba_regular_bond_num_list")
	if err != nil {
		return err
	}
	if !p.r.next() {
		return p.wrapError("Error parsing amoeba_regular_bond_num_list")
	}
	field := p.r.line
	if ff.Width > 0 && len(field) > ff.Width {
		field = field[:ff.Width]
	}
	n, ok := convInt(field)
	if !ok {
		return p.wrapError("Error parsing amoeba_regular_bond_num_list")
	}
	p.amoebaBonds = n
	return nil
}

//assignResidues expands the residue pointer and label arrays into a
//per-atom residue id and name. Residue i owns the atoms in
//[pointer[i], pointer[i+1]); the last residue has no following pointer
//to bound it, so it takes everything from its own pointer to the end
//of the atom slice.
func (p *parser) assignResidues() error {
	if p.nres == 0 || len(p.resPointers) != p.nres || len(p.resLabels) != p.nres {
		return Error{UnassignableResidues, p.filename, p.r.lineno, nil, true}
	}
	for _, v := range p.resPointers {
		if v < 1 || v > p.natoms {
			return Error{"Residue pointer out of range", p.filename, p.r.lineno, nil, true}
		}
	}
	curresid := 0
	i := 0
	for i = 0; i < p.nres-1; i++ {
		curresid++
		curresname := p.resLabels[i]
		for j := p.resPointers[i]; j < p.resPointers[i+1]; j++ {
			p.top.Atom(j - 1).MolID = curresid
			p.top.Atom(j - 1).MolName = curresname
		}
	}
	//Fix the end...
	curresid++
	curresname := p.resLabels[i]
	for j := p.resPointers[i] - 1; j < p.natoms; j++ {
		p.top.Atom(j).MolID = curresid
		p.top.Atom(j).MolName = curresname
	}
	return nil
}
