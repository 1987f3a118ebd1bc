/*
 * files.go, part of structio.
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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format is one of the structure file formats that can be read.
type Format int

const (
	PDB Format = iota
	MMCIF
)

func (f Format) String() string {
	switch f {
	case PDB:
		return "pdb"
	case MMCIF:
		return "mmcif"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format for a name as given by a user: "pdb",
// "ent", "cif" or "mmcif", in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "pdb", "ent":
		return PDB, nil
	case "cif", "mmcif":
		return MMCIF, nil
	}
	return 0, newError(ErrFormat, "structure", fmt.Sprintf("%q", s), "ParseFormat")
}

// compression suffixes, and the function that opens a decompressed stream
// for each.
var decompressors = map[string]func(io.Reader) (io.ReadCloser, error){
	".gz":   func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) },
	".zst":  zstdReader,
	".zstd": zstdReader,
}

// zstdDecoder wraps a *zstd.Decoder, whose Close returns nothing, so it
// implements io.ReadCloser.
type zstdDecoder struct {
	*zstd.Decoder
}

func (z zstdDecoder) Close() error {
	z.Decoder.Close()
	return nil
}

func zstdReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdDecoder{d}, nil
}

// splitCompression returns name without a compression suffix, and the
// suffix, or "" if there is none.
func splitCompression(name string) (string, string) {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := decompressors[ext]; ok {
		return name[:len(name)-len(ext)], ext
	}
	return name, ""
}

// FormatFromName guesses the format of a file from its extension, ignoring
// a compression suffix (.gz, .zst, .zstd).
func FormatFromName(name string) (Format, error) {
	base, _ := splitCompression(name)
	ext := filepath.Ext(base)
	if ext == "" {
		return 0, newError(ErrFormat, "structure", fmt.Sprintf("no extension in %s", name), "FormatFromName")
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, errDecorate(err, "FormatFromName", name)
	}
	return f, nil
}

// Read reads the structure in r, which must be in the format f.
func Read(r io.Reader, f Format) (*Arrays, error) {
	switch f {
	case PDB:
		return PDBRead(r)
	case MMCIF:
		return MMCIFRead(r)
	}
	return nil, newError(ErrFormat, "structure", f.String(), "Read")
}

// FileRead opens and reads the structure file name. The format is taken from
// the extension, unless given. Files ending in .gz, .zst or .zstd are
// decompressed on the fly. The file is always closed before returning.
func FileRead(name string, format ...Format) (*Arrays, error) {
	var f Format
	var err error
	if len(format) > 0 {
		f = format[0]
	} else if f, err = FormatFromName(name); err != nil {
		return nil, errDecorate(err, "FileRead", name)
	}
	fin, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "FileRead", name)
	}
	defer fin.Close()
	_, comp := splitCompression(name)
	var arr *Arrays
	if comp == "" {
		arr, err = readPlain(fin, f)
	} else {
		arr, err = readCompressed(fin, comp, f)
	}
	return arr, errDecorate(err, "FileRead", name)
}

func readCompressed(fin *os.File, comp string, f Format) (*Arrays, error) {
	r, err := decompressors[comp](bufio.NewReader(fin))
	if err != nil {
		return nil, newError(ErrRead, f.String(), fmt.Sprintf("can't open %s stream: %v", comp, err), "readCompressed")
	}
	defer r.Close()
	return Read(r, f)
}

// readPlain reads through a read-only mapping of the file, or directly
// from it when the file is empty or can't be mapped.
func readPlain(fin *os.File, f Format) (*Arrays, error) {
	info, err := fin.Stat()
	if err != nil || info.Size() == 0 {
		return Read(fin, f)
	}
	m, err := mmap.Map(fin, mmap.RDONLY, 0)
	if err != nil {
		log.Printf("Couldn't map %s (%v), it will be read normally", fin.Name(), err)
		return Read(fin, f)
	}
	defer m.Unmap()
	return Read(bytes.NewReader(m), f)
}
