/*
 * commands_test.go, part of structio.
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
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/structio"
	"github.com/rmera/structio/internal/config"
)

const (
	pdbFile = "../../../test/2res.pdb"
	cifFile = "../../../test/2res.cif"
)

func TestNewCommands(t *testing.T) {
	assert.Equal(t, "parse <file>", NewParseCommand().Use)
	assert.Equal(t, "contacts <file>", NewContactsCommand().Use)
	assert.Equal(t, "batch <file>...", NewBatchCommand().Use)
	assert.Equal(t, "version", NewVersionCommand().Use)

	for _, flag := range []string{"workers", "config", "format"} {
		assert.NotNil(t, NewBatchCommand().Flags().Lookup(flag), "missing batch flag %s", flag)
	}
	for _, flag := range []string{"cutoff", "plot", "format", "atoms", "config"} {
		assert.NotNil(t, NewContactsCommand().Flags().Lookup(flag), "missing contacts flag %s", flag)
	}
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runParse(&out, pdbFile, "", false))
	assert.Equal(t, "9\n", out.String())

	out.Reset()
	require.NoError(t, runParse(&out, cifFile, "mmcif", true))
	arr, err := structio.DecodeJSONArrays(bufio.NewReader(&out))
	require.NoError(t, err)
	assert.Equal(t, 9, arr.Len())
	assert.Equal(t, "A1", arr.Groups[0])
}

func TestRunParse_Errors(t *testing.T) {
	var out bytes.Buffer
	err := runParse(&out, "nonexistent.pdb", "", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, structio.ErrRead))
	assert.Contains(t, out.String(), `"is_error":true`)

	err = runParse(&out, pdbFile, "xyz", false)
	require.Error(t, err)
	var e *structio.Error
	assert.False(t, errors.As(err, &e), "a bad --format is not a read error")
}

func TestRunContacts(t *testing.T) {
	var out bytes.Buffer
	plotFile := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, runContacts(&out, pdbFile, contactOptions{cutoff: 6, plotFile: plotFile}))
	assert.Equal(t, "groups\t2\ncontacts\t1\n", out.String())
	info, err := os.Stat(plotFile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, runContacts(&out, pdbFile, contactOptions{cutoff: 0}))
	assert.Error(t, runContacts(&out, pdbFile, contactOptions{cutoff: -1}))
}

func TestRunContacts_Atoms(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runContacts(&out, pdbFile, contactOptions{cutoff: 0.5, atoms: true}))
	assert.Equal(t, "atoms\t9\ncontacts\t0\n", out.String())

	out.Reset()
	require.NoError(t, runContacts(&out, cifFile, contactOptions{cutoff: 100, atoms: true}))
	assert.Equal(t, "atoms\t9\ncontacts\t36\n", out.String())
}

// executeContacts runs the contacts command with args and returns its output.
func executeContacts(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewContactsCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestContacts_CutoffFromConfig(t *testing.T) {
	t.Setenv(config.EnvCutoff, "")
	assert.Equal(t, "groups\t2\ncontacts\t1\n", executeContacts(t, pdbFile))

	t.Setenv(config.EnvCutoff, "0.5")
	assert.Equal(t, "groups\t2\ncontacts\t0\n", executeContacts(t, pdbFile))
	//the flag wins over the environment.
	assert.Equal(t, "groups\t2\ncontacts\t1\n", executeContacts(t, "--cutoff", "6", pdbFile))
}

func TestContacts_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "structio.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("cutoff: 0.5\nformat: pdb\n"), 0644))
	assert.Equal(t, "groups\t2\ncontacts\t0\n", executeContacts(t, "--config", cfg, pdbFile))
	//format: pdb makes the mmCIF file read as PDB, which has no atoms.
	assert.Equal(t, "groups\t0\ncontacts\t0\n", executeContacts(t, "--config", cfg, cifFile))
	assert.Equal(t, "groups\t2\ncontacts\t1\n", executeContacts(t, "--config", cfg, "--cutoff", "6", "--format", "cif", cifFile))
}

func TestRunBatch(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Workers = 2
	names := []string{pdbFile, cifFile, "nonexistent.pdb", pdbFile}
	err := runBatch(context.Background(), &out, names, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailedFiles))
	assert.Contains(t, err.Error(), "1 of 4")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, pdbFile+"\tpdb\t9\t2\t-", lines[0])
	assert.Equal(t, cifFile+"\tmmcif\t9\t2\t-", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "nonexistent.pdb\tpdb\t0\t0\t"))
	assert.NotEqual(t, "-", strings.Split(lines[2], "\t")[4])
	assert.Equal(t, lines[0], lines[3])
}

func TestRunBatch_ForcedFormat(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Format = "pdb"
	require.NoError(t, runBatch(context.Background(), &out, []string{cifFile}, cfg))
	assert.Equal(t, cifFile+"\tpdb\t0\t0\t-\n", out.String())
}

func TestReadAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int
	read := func(name string) summary {
		calls++
		return summary{name: name}
	}
	results := readAll(ctx, []string{"a", "b", "c"}, 2, read)
	require.Len(t, results, 3)
	assert.Zero(t, calls)
	for i, s := range results {
		assert.Equal(t, []string{"a", "b", "c"}[i], s.name)
		assert.ErrorIs(t, s.err, context.Canceled)
	}
}

func TestReadAll_Order(t *testing.T) {
	names := make([]string, 50)
	for i := range names {
		names[i] = strings.Repeat("x", i+1)
	}
	read := func(name string) summary { return summary{name: name, atoms: len(name)} }
	results := readAll(context.Background(), names, 8, read)
	for i, s := range results {
		assert.Equal(t, names[i], s.name)
		assert.Equal(t, i+1, s.atoms)
	}
}

func TestCountGroups(t *testing.T) {
	assert.Equal(t, 0, countGroups(nil))
	assert.Equal(t, 2, countGroups([]string{"A1", "A1", "A2", "A1"}))
}

func TestVersion(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "structio dev\n", out.String())
}
