/*
 * lines.go, part of structio.
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
	"io"
	"strings"
)

// lineReader returns the lines of a stream one by one, keeping the
// terminating '\n'. A "\r\n" terminator is turned into "\n".
type lineReader struct {
	r    *bufio.Reader
	n    int //lines read so far
	done bool
}

func newLineReader(r io.Reader) *lineReader {
	if b, ok := r.(*bufio.Reader); ok {
		return &lineReader{r: b}
	}
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line and true, or "" and false after the last line.
// The error is only non-nil for actual read failures, never for io.EOF.
func (L *lineReader) next() (string, bool, error) {
	if L.done {
		return "", false, nil
	}
	line, err := L.r.ReadString('\n')
	if err != nil {
		L.done = true
		if err != io.EOF {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	L.n++
	if strings.HasSuffix(line, "\r\n") {
		line = line[:len(line)-2] + "\n"
	}
	return line, true, nil
}
