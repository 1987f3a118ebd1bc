/*
 * root.go, part of structio.
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

// Package cli provides the command-line interface for structio.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/structio"
	"github.com/rmera/structio/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitParse  = 1 //a structure file couldn't be read
	ExitConfig = 2 //usage or configuration errors
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:], os.Stderr)
}

func run(rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var e *structio.Error
	if errors.As(err, &e) || errors.Is(err, commands.ErrFailedFiles) {
		return ExitParse
	}
	return ExitConfig
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var quiet bool
	rootCmd := &cobra.Command{
		Use:   "structio",
		Short: "Read protein structure files into per-atom arrays",
		Long: `structio reads PDB and PDBx/mmCIF files (optionally gzip or zstd
compressed) and extracts, for every heavy atom, its residue name, its
coordinates and the residue it belongs to.

Those arrays can be printed, turned into residue contact maps, or
collected for many files at once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetPrefix("structio: ")
			log.SetFlags(0)
			log.SetOutput(cmd.ErrOrStderr())
			if quiet {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Don't print log messages")

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewContactsCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
