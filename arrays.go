/*
 * arrays.go, part of structio.
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
	"math"
	"strconv"
	"strings"
)

// Arrays holds the heavy atoms read from one structure file as three
// index-aligned slices. Element i of each slice describes the same atom.
type Arrays struct {
	//3-letter residue code of each atom.
	Residues []string
	//Cartesian coordinates, in Angstrom.
	Positions [][3]float32
	//Chain (or asym) identifier followed by the residue sequence number,
	//both taken verbatim from the file.
	Groups []string
}

// Len returns the number of atoms in A.
func (A *Arrays) Len() int {
	if A == nil {
		return 0
	}
	return len(A.Residues)
}

// Corrupted returns an error if the three slices in A don't have the
// same length. It returns nil otherwise.
func (A *Arrays) Corrupted() error {
	if A == nil {
		return fmt.Errorf("Corrupted: nil Arrays")
	}
	if len(A.Residues) != len(A.Positions) || len(A.Residues) != len(A.Groups) {
		return fmt.Errorf("Corrupted: %d residues, %d positions and %d groups", len(A.Residues), len(A.Positions), len(A.Groups))
	}
	return nil
}

// atomBuffer accumulates accepted atoms. With a positive hint the slices
// are allocated once with that exact size and the buffer reports itself
// full when the hint is reached. Without one they just grow.
type atomBuffer struct {
	hint      int
	residues  []string
	positions [][3]float32
	groups    []string
}

func newAtomBuffer(hint int) *atomBuffer {
	if hint < 0 {
		hint = 0
	}
	return &atomBuffer{
		hint:      hint,
		residues:  make([]string, 0, hint),
		positions: make([][3]float32, 0, hint),
		groups:    make([]string, 0, hint),
	}
}

func (b *atomBuffer) add(residue, group string, pos [3]float32) {
	b.residues = append(b.residues, residue)
	b.positions = append(b.positions, pos)
	b.groups = append(b.groups, group)
}

func (b *atomBuffer) len() int { return len(b.residues) }

// full is only ever true for a buffer created with a hint.
func (b *atomBuffer) full() bool {
	return b.hint > 0 && len(b.residues) >= b.hint
}

// arrays hands the contents over. Slices are trimmed to the number of
// atoms actually added so no capacity from an optimistic hint is kept.
func (b *atomBuffer) arrays() *Arrays {
	n := len(b.residues)
	return &Arrays{
		Residues:  b.residues[:n:n],
		Positions: b.positions[:n:n],
		Groups:    b.groups[:n:n],
	}
}

// parseCoord reads one coordinate. Blank fields and non-finite values
// (NaN, Inf) are rejected instead of becoming zeros.
func parseCoord(s string) (float32, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("can't parse coordinate %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite coordinate %q", s)
	}
	return float32(f), nil
}

// parseXYZ reads the three coordinates of an atom.
func parseXYZ(x, y, z string) ([3]float32, error) {
	var pos [3]float32
	var err error
	for i, v := range [3]string{x, y, z} {
		pos[i], err = parseCoord(v)
		if err != nil {
			return pos, err
		}
	}
	return pos, nil
}
