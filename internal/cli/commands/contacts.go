/*
 * contacts.go, part of structio.
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

package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/rmera/structio/contact"
	"github.com/rmera/structio/internal/config"
	v3 "github.com/rmera/structio/v3"
)

// contactOptions are the settings of one contacts run.
type contactOptions struct {
	format   string
	cutoff   float64
	plotFile string
	atoms    bool //atom map instead of residue map
}

// NewContactsCommand creates the contacts command.
func NewContactsCommand() *cobra.Command {
	var opts contactOptions
	var configPath string
	cmd := &cobra.Command{
		Use:   "contacts <file>",
		Short: "Residue contact map of a structure file",
		Long: `Read a structure file and build its residue contact map: two residues
are in contact if any of their heavy atoms are within the cutoff of each
other.

Prints the number of residues and the number of residue pairs in contact.
With --atoms, the map is built between atoms instead, and the number of
atoms and of atom pairs in contact are printed. With --plot, the map is
also drawn as a heat map. The image format is given by the extension of
the file (png, svg, pdf...).

The cutoff and the format are taken, lowest priority first, from the
defaults, the --config file, the STRUCTIO_CUTOFF environment variable,
and the flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg, err := config.Load(ctx, configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cutoff") {
				opts.cutoff = cfg.Cutoff
			}
			if !cmd.Flags().Changed("format") {
				opts.format = cfg.Format
			}
			if cfg.Quiet {
				log.SetOutput(io.Discard)
			}
			return runContacts(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "File format (pdb or cif) instead of the one given by the extension")
	cmd.Flags().Float64VarP(&opts.cutoff, "cutoff", "c", contact.DefaultCutoff, "Contact distance, in A")
	cmd.Flags().StringVarP(&opts.plotFile, "plot", "p", "", "Draw the contact map in this file")
	cmd.Flags().BoolVar(&opts.atoms, "atoms", false, "Build the map between atoms, not residues")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	return cmd
}

func runContacts(out io.Writer, name string, opts contactOptions) error {
	if !(opts.cutoff > 0) {
		return fmt.Errorf("--cutoff must be a positive distance, got %g", opts.cutoff)
	}
	arr, err := readStructure(name, opts.format)
	if err != nil {
		return err
	}
	coords := v3.FromPositions(arr.Positions)
	var m *mat.SymDense
	if opts.atoms {
		m = contact.AtomMap(coords, opts.cutoff)
		_, err = fmt.Fprintf(out, "atoms\t%d\ncontacts\t%d\n", arr.Len(), contact.Count(m))
	} else {
		var groups []string
		groups, m, err = contact.ResidueMap(arr.Groups, coords, opts.cutoff)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "groups\t%d\ncontacts\t%d\n", len(groups), contact.Count(m))
	}
	if err != nil || opts.plotFile == "" {
		return err
	}
	if err := contact.Plot(m, filepath.Base(name), opts.plotFile); err != nil {
		return err
	}
	log.Printf("Contact map written to %s", opts.plotFile)
	return nil
}
