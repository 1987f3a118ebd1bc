/*
 * pdbx.go, part of structio.
 *
 *
 * Copyright 2025 rmeraaatacademicosdotutadotcl
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
 *
 */

package structio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	cifCountKey   = "_refine_hist.pdbx_number_atoms_protein"
	cifSiteprefix = "_atom_site."
	cifLoop       = "loop_"
)

// Field is one of the _atom_site columns needed to build the arrays.
type Field int

const (
	FieldSymbol Field = iota
	FieldAsym
	FieldSeqID
	FieldResName
	FieldX
	FieldY
	FieldZ
	numFields
)

var fieldTags = [numFields]string{
	FieldSymbol:  "_atom_site.type_symbol",
	FieldAsym:    "_atom_site.label_asym_id",
	FieldSeqID:   "_atom_site.label_seq_id",
	FieldResName: "_atom_site.label_comp_id",
	FieldX:       "_atom_site.Cartn_x",
	FieldY:       "_atom_site.Cartn_y",
	FieldZ:       "_atom_site.Cartn_z",
}

// Tag returns the mmCIF tag for the field.
func (f Field) Tag() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldTags[f]
}

// Schema gives, for each Field, the position of its token in an
// _atom_site record, or -1 if the header didn't declare it.
type Schema [numFields]int

func newSchema() Schema {
	var s Schema
	for i := range s {
		s[i] = -1
	}
	return s
}

// set records column for field if tag names one of the Fields.
func (s *Schema) set(tag string, column int) {
	for f, t := range fieldTags {
		if t == tag {
			s[f] = column
			return
		}
	}
}

// Validate returns an error naming the first Field that was not declared.
func (s Schema) Validate() error {
	for f, c := range s {
		if c < 0 {
			return fmt.Errorf("tag %s not declared", Field(f).Tag())
		}
	}
	return nil
}

// max returns the largest column in s.
func (s Schema) max() int {
	m := -1
	for _, c := range s {
		if c > m {
			m = c
		}
	}
	return m
}

type cifState int

const (
	readingHeader cifState = iota
	readingBody
)

// cifHeader collects what the header says before the first atom record.
type cifHeader struct {
	schema  Schema
	columns int //_atom_site tags seen so far
	hint    int
}

// atomCountHint reads the declared number of protein atoms from a
// _refine_hist.pdbx_number_atoms_protein line. It returns 0 when the
// value is missing ("?"), zero or not a positive integer.
func atomCountHint(line string) int {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	n := fields[len(fields)-1]
	if n == "?" || n == "0" {
		return 0
	}
	i, err := strconv.Atoi(n)
	if err != nil || i < 0 {
		return 0
	}
	return i
}

// line processes one line of the header. It returns true when the line is
// the first atom record, which means the body starts with it.
func (h *cifHeader) line(line string) bool {
	switch {
	case strings.HasPrefix(line, cifCountKey):
		if n := atomCountHint(line); n > 0 {
			h.hint = n
		}
	case strings.HasPrefix(line, cifSiteprefix):
		if tag := strings.Fields(line); len(tag) > 0 {
			h.schema.set(tag[0], h.columns)
		}
		h.columns++
	case strings.HasPrefix(line, "ATOM"):
		return h.columns > 0
	}
	return false
}

// MMCIFRead reads the heavy atoms of standard residues from the first
// _atom_site loop of a PDBx/mmCIF file. The column of each needed field is
// taken from the loop header, so the order of the tags doesn't matter, but
// all of them must be declared before the first atom record. If the file
// declares the number of protein atoms, at most that many atoms are read.
func MMCIFRead(cif io.Reader) (*Arrays, error) {
	arr, err := mmcifRead(newLineReader(cif))
	return arr, errDecorate(err, "MMCIFRead")
}

func mmcifRead(lines *lineReader) (*Arrays, error) {
	h := &cifHeader{schema: newSchema()}
	state := readingHeader
	var buf *atomBuffer
	for {
		line, ok, err := lines.next()
		if err != nil {
			return nil, newError(ErrRead, "mmcif", fmt.Sprintf("line %d: %v", lines.n+1, err), "mmcifRead")
		}
		if !ok {
			break
		}
		if state == readingHeader {
			if !h.line(line) {
				continue
			}
			if err := h.schema.Validate(); err != nil {
				return nil, newError(ErrSchema, "mmcif", fmt.Sprintf("line %d: %v", lines.n, err), "mmcifRead")
			}
			buf = newAtomBuffer(h.hint)
			state = readingBody
			//no continue: this line is the first record of the body.
		}
		if strings.HasPrefix(line, cifLoop) {
			break
		}
		if !strings.HasPrefix(line, "ATOM") {
			continue
		}
		if err := cifRecord(line, h.schema, buf); err != nil {
			return nil, newError(errKind(err), "mmcif", fmt.Sprintf("line %d: %v", lines.n, err), "mmcifRead")
		}
		if buf.full() {
			break
		}
	}
	if buf == nil {
		//No atom records at all.
		return newAtomBuffer(0).arrays(), nil
	}
	return buf.arrays(), nil
}

// recordError is returned by cifRecord. Its kind is one of the sentinels.
type recordError struct {
	kind error
	msg  string
}

func (e recordError) Error() string { return e.msg }

func errKind(err error) error {
	if r, ok := err.(recordError); ok {
		return r.kind
	}
	return ErrRead
}

// cifRecord adds the atom in line to buf, if it is a heavy atom of a
// residue with a 3-letter name.
func cifRecord(line string, s Schema, buf *atomBuffer) error {
	data := strings.Fields(line)
	if m := s.max(); m >= len(data) {
		return recordError{ErrIndex, fmt.Sprintf("%d fields, but the schema needs %d", len(data), m+1)}
	}
	res := data[s[FieldResName]]
	if len(res) != 3 || data[s[FieldSymbol]] == "H" {
		return nil
	}
	pos, err := parseXYZ(data[s[FieldX]], data[s[FieldY]], data[s[FieldZ]])
	if err != nil {
		return recordError{ErrNumeric, err.Error()}
	}
	buf.add(res, data[s[FieldAsym]]+data[s[FieldSeqID]], pos)
	return nil
}
