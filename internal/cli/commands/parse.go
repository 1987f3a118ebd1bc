/*
 * parse.go, part of structio.
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

// Package commands implements the structio subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/structio"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var format string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Read one structure file",
		Long: `Read a PDB or mmCIF file and print the number of heavy atoms found.

With --json, the residue, position and group of every atom are printed
as one JSON object instead. A file that can't be read is then reported as
a JSON error object, and the exit code is still 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], format, asJSON)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "File format (pdb or cif) instead of the one given by the extension")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the arrays as JSON")
	return cmd
}

func runParse(out io.Writer, name, format string, asJSON bool) error {
	arr, err := readStructure(name, format)
	if err != nil {
		if asJSON {
			_, _ = fmt.Fprintf(out, "%s\n", structio.MakeJSONError(err).Marshal())
		}
		return err
	}
	if asJSON {
		return arr.Send(out)
	}
	_, err = fmt.Fprintln(out, arr.Len())
	return err
}

// readStructure reads name, in the given format or, if format is empty,
// the one given by its extension.
func readStructure(name, format string) (*structio.Arrays, error) {
	if format == "" {
		return structio.FileRead(name)
	}
	f, err := structio.ParseFormat(format)
	if err != nil {
		//a usage error, not a failed read.
		return nil, fmt.Errorf("--format: %v", err)
	}
	return structio.FileRead(name, f)
}
