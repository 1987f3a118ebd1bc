/*
 * contact.go, part of structio.
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
 */

// Package contact builds distance and contact maps from the coordinates
// and residue groups read by structio.
package contact

import (
	"fmt"

	v3 "github.com/rmera/structio/v3"
	"gonum.org/v1/gonum/mat"
)

// DefaultCutoff is the distance, in Angstrom, under which two atoms are
// considered in contact.
const DefaultCutoff = 6.0

// Distances returns the matrix of euclidean distances between all the
// vectors in c.
func Distances(c *v3.Matrix) *mat.SymDense {
	n := c.NVecs()
	if n == 0 {
		return &mat.SymDense{}
	}
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, c.Dist(i, j))
		}
	}
	return d
}

// AtomMap returns a matrix with 1 for each pair of atoms closer than, or
// at, cutoff, and 0 for the others. Each atom is in contact with itself.
func AtomMap(c *v3.Matrix, cutoff float64) *mat.SymDense {
	m := Distances(c)
	if m.IsEmpty() {
		return m
	}
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if m.At(i, j) <= cutoff {
				m.SetSym(i, j, 1)
			} else {
				m.SetSym(i, j, 0)
			}
		}
	}
	return m
}

// ResidueMap returns the groups present in groups, in the order in which
// they first appear, and a matrix with 1 for each pair of groups that have
// at least one pair of atoms within cutoff of each other, and 0 otherwise.
// groups[i] is the group of the ith vector in c.
func ResidueMap(groups []string, c *v3.Matrix, cutoff float64) ([]string, *mat.SymDense, error) {
	n := c.NVecs()
	if len(groups) != n {
		return nil, nil, fmt.Errorf("ResidueMap: %d groups for %d atoms", len(groups), n)
	}
	if cutoff <= 0 {
		return nil, nil, fmt.Errorf("ResidueMap: cutoff must be positive, got %g", cutoff)
	}
	index := make(map[string]int)
	names := make([]string, 0)
	atomres := make([]int, n)
	for i, g := range groups {
		k, ok := index[g]
		if !ok {
			k = len(names)
			index[g] = k
			names = append(names, g)
		}
		atomres[i] = k
	}
	if len(names) == 0 {
		return names, &mat.SymDense{}, nil
	}
	m := mat.NewSymDense(len(names), nil)
	for i := range names {
		m.SetSym(i, i, 1)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ri, rj := atomres[i], atomres[j]
			if ri == rj || m.At(ri, rj) == 1 {
				continue
			}
			if c.Dist(i, j) <= cutoff {
				m.SetSym(ri, rj, 1)
			}
		}
	}
	return names, m, nil
}

// Count returns the number of pairs i<j set to 1 in the contact map m.
func Count(m *mat.SymDense) int {
	if m.IsEmpty() {
		return 0
	}
	n := m.SymmetricDim()
	var c int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) != 0 {
				c++
			}
		}
	}
	return c
}
