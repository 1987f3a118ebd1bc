/*
 * json.go, part of structio.
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
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// JSONArrays is the serialized form of Arrays, with the number of atoms.
type JSONArrays struct {
	Atoms     int          `json:"atoms"`
	Residues  []string     `json:"residues"`
	Positions [][3]float32 `json:"positions"`
	Groups    []string     `json:"groups"`
}

// Send writes A to out as one line of JSON.
func (A *Arrays) Send(out io.Writer) error {
	if err := A.Corrupted(); err != nil {
		return err
	}
	ja := JSONArrays{Atoms: A.Len(), Residues: A.Residues, Positions: A.Positions, Groups: A.Groups}
	enc := json.NewEncoder(out)
	if err := enc.Encode(ja); err != nil {
		return errDecorate(err, "Arrays.Send")
	}
	return nil
}

// DecodeJSONArrays reads one line written by Send.
func DecodeJSONArrays(stream *bufio.Reader) (*Arrays, error) {
	line, err := stream.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, errDecorate(err, "DecodeJSONArrays")
	}
	ja := new(JSONArrays)
	if err := json.Unmarshal(line, ja); err != nil {
		return nil, errDecorate(err, "DecodeJSONArrays")
	}
	A := &Arrays{Residues: ja.Residues, Positions: ja.Positions, Groups: ja.Groups}
	if err := A.Corrupted(); err != nil {
		return nil, errDecorate(err, "DecodeJSONArrays")
	}
	return A, nil
}

// An easily JSON-serializable error type.
type JSONError struct {
	IsError bool   `json:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	File    string `json:"file,omitempty"`
	Format  string `json:"format,omitempty"`
	Kind    string `json:"kind,omitempty"` //one of the sentinel messages, if known.
	Message string `json:"message"`
}

// implements the error interface
func (J *JSONError) Error() string {
	return J.Message
}

// Marshal serializes the error. Panics on failure.
func (J *JSONError) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// MakeJSONError takes an error, probably from this package, and collects
// what is known about it into a JSONError.
func MakeJSONError(err error) *JSONError {
	jerr := &JSONError{IsError: true, Message: err.Error()}
	var e *Error
	if errors.As(err, &e) {
		jerr.File = e.FileName()
		jerr.Format = e.Format()
		jerr.Kind = e.kind.Error()
	}
	return jerr
}
