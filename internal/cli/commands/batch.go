/*
 * batch.go, part of structio.
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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rmera/structio"
	"github.com/rmera/structio/internal/config"
)

// ErrFailedFiles is returned by batch when at least one file couldn't be read.
var ErrFailedFiles = errors.New("some files could not be read")

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var workers int
	var configPath, format string
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Read many structure files concurrently",
		Long: `Read many structure files at the same time and print one tab-separated
line per file, in the order given:

  name  format  atoms  groups  error

The error column is "-" for files read correctly. Files that fail don't
stop the batch, but make the exit code 1. An interrupt (Ctrl-C) stops
sending new files to the workers; files not read are reported as failed.

Settings are taken, lowest priority first, from the defaults, the
--config file, the STRUCTIO_WORKERS and STRUCTIO_CUTOFF environment
variables, and the flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
			defer stop()
			cfg, err := config.Load(ctx, configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if cfg.Quiet {
				log.SetOutput(io.Discard)
			}
			return runBatch(ctx, cmd.OutOrStdout(), args, cfg)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of files read at the same time (default: one per CPU)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "File format (pdb or cif) for all files, instead of the one given by each extension")
	return cmd
}

// summary is what batch reports for one file.
type summary struct {
	name   string
	format string
	atoms  int
	groups int
	err    error
}

func (s summary) String() string {
	e := "-"
	if s.err != nil {
		e = s.err.Error()
	}
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%s", s.name, s.format, s.atoms, s.groups, e)
}

func runBatch(ctx context.Context, out io.Writer, names []string, cfg *config.Config) error {
	f, forced, err := cfg.StructFormat()
	if err != nil {
		return err
	}
	read := func(name string) summary {
		s := summary{name: name, format: "-"}
		var arr *structio.Arrays
		if forced {
			s.format = f.String()
			arr, s.err = structio.FileRead(name, f)
		} else {
			if g, err := structio.FormatFromName(name); err == nil {
				s.format = g.String()
			}
			arr, s.err = structio.FileRead(name)
		}
		if s.err == nil {
			s.atoms = arr.Len()
			s.groups = countGroups(arr.Groups)
		}
		return s
	}
	results := readAll(ctx, names, cfg.Workers, read)
	var failed int
	for _, s := range results {
		if s.err != nil {
			failed++
			log.Printf("%s: %v", s.name, s.err)
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFailedFiles, failed, len(names))
	}
	return nil
}

// readAll sends the indexes of names to workers goroutines, which call
// read on them. The results keep the order of names. Once ctx is done no
// more files are sent, and the ones left get ctx's error.
func readAll(ctx context.Context, names []string, workers int, read func(string) summary) []summary {
	results := make([]summary, len(names))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = read(names[i])
			}
		}()
	}
	sent := 0
dispatch:
	for ; sent < len(names); sent++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- sent:
		}
	}
	close(jobs)
	wg.Wait()
	if sent < len(names) {
		log.Printf("Batch cancelled, %d of %d files not read", len(names)-sent, len(names))
	}
	for i := sent; i < len(names); i++ {
		results[i] = summary{name: names[i], format: "-", err: ctx.Err()}
	}
	return results
}

// countGroups returns the number of different groups.
func countGroups(groups []string) int {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		seen[g] = struct{}{}
	}
	return len(seen)
}
