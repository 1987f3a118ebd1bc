/*
 * pdb.go, part of structio.
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
	"strings"
)

// Column ranges (0-based, end exclusive) of the PDB ATOM record, as in the
// PDB format description v3.3.
const (
	pdbRecordLen = 81 //80 columns and the newline.
	pdbResStart  = 17 //residue name, columns 18-20
	pdbResEnd    = 20
	pdbGroupFrom = 21 //chain identifier (22) and residue sequence number (23-26)
	pdbGroupTo   = 26
	pdbXFrom     = 30
	pdbYFrom     = 38
	pdbZFrom     = 46
	pdbZTo       = 54
	pdbElemFrom  = 76 //element symbol, right-justified in columns 77-78
	pdbElemTo    = 78
)

// PDBRead reads the first chain of heavy atoms from a PDB file.
// Reading stops at the first TER (or ENDMDL) record. ATOM records that are
// not exactly 80 columns long, that belong to hydrogens, or that have a blank
// first residue name column are skipped without notice. A coordinate that
// can't be read as a finite number is an error, and no data is returned then.
func PDBRead(pdb io.Reader) (*Arrays, error) {
	arr, err := pdbRead(newLineReader(pdb))
	return arr, errDecorate(err, "PDBRead")
}

func pdbRead(lines *lineReader) (*Arrays, error) {
	buf := newAtomBuffer(0)
	for {
		line, ok, err := lines.next()
		if err != nil {
			return nil, newError(ErrRead, "pdb", fmt.Sprintf("line %d: %v", lines.n+1, err), "pdbRead")
		}
		if !ok || strings.HasPrefix(line, "TER") || strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !strings.HasPrefix(line, "ATOM") || !pdbUsable(line) {
			continue
		}
		pos, err := parseXYZ(line[pdbXFrom:pdbYFrom], line[pdbYFrom:pdbZFrom], line[pdbZFrom:pdbZTo])
		if err != nil {
			return nil, newError(ErrNumeric, "pdb", fmt.Sprintf("line %d: %v", lines.n, err), "pdbRead")
		}
		buf.add(line[pdbResStart:pdbResEnd], line[pdbGroupFrom:pdbGroupTo], pos)
	}
	return buf.arrays(), nil
}

// pdbUsable tells whether an ATOM line should be read at all.
func pdbUsable(line string) bool {
	if len(line) != pdbRecordLen {
		return false
	}
	if line[pdbResStart] == ' ' {
		return false
	}
	return strings.TrimSpace(line[pdbElemFrom:pdbElemTo]) != "H"
}
