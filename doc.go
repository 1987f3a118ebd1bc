/*
 * doc.go, part of structio.
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

/*
Package structio reads protein structure files into three aligned
per-atom slices: the residue name of each atom, its coordinates, and a
key for the residue it belongs to (chain identifier plus residue number).
They are meant as the input for contact maps and similar geometric
analyses, see the contact sub-package.

	**Capabilities**

	Reads PDB files (fixed columns). Only the first chain block is read,
	up to the first TER record.

	Reads PDBx/mmCIF files. The columns are located from the _atom_site
	loop header, so their order in the file doesn't matter.

	Hydrogens are never included in the output. Malformed records are
	dropped, while coordinates that can't be parsed, and mmCIF headers that
	lack a needed tag, make the whole read fail.

	Files may be gzip or zstd compressed.

Parsing functions take an io.Reader and keep no state between calls, so
many files can be read at the same time from different goroutines.
*/
package structio
