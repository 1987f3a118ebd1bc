/*
 * root_test.go, part of structio.
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

package cli

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pdbFile = "../../test/2res.pdb"

// execute runs the root command with args and returns the exit code,
// stdout and stderr.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	code := run(root, args, &errOut)
	return code, out.String(), errOut.String()
}

func TestSubcommands(t *testing.T) {
	root := NewRootCommand()
	for _, name := range []string{"parse", "contacts", "batch", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("quiet"))
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "parse", args: []string{"parse", pdbFile}, code: ExitOK},
		{name: "version", args: []string{"version"}, code: ExitOK},
		{name: "missing file", args: []string{"parse", "nonexistent.pdb"}, code: ExitParse},
		{name: "batch with failures", args: []string{"batch", pdbFile, "nonexistent.cif"}, code: ExitParse},
		{name: "unknown command", args: []string{"frobnicate"}, code: ExitConfig},
		{name: "no arguments", args: []string{"parse"}, code: ExitConfig},
		{name: "bad format flag", args: []string{"parse", "--format", "xyz", pdbFile}, code: ExitConfig},
		{name: "bad cutoff", args: []string{"contacts", "--cutoff", "-1", pdbFile}, code: ExitConfig},
		{name: "bad workers", args: []string{"batch", "--workers", "0", pdbFile}, code: ExitConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := execute(t, tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestBatchConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "structio.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("workers: 1\nformat: pdb\nquiet: true\n"), 0644))
	code, out, errOut := execute(t, "batch", "--config", cfg, pdbFile, "nonexistent.cif")
	assert.Equal(t, ExitParse, code)
	assert.Contains(t, out, pdbFile+"\tpdb\t9\t2\t-")
	//the forced format wins over the extension.
	assert.Contains(t, out, "nonexistent.cif\tpdb\t0\t0\t")
	assert.NotContains(t, errOut, "structio: nonexistent.cif", "quiet config didn't silence the log")
}

func TestQuiet(t *testing.T) {
	_, _, errOut := execute(t, "batch", pdbFile, "nonexistent.pdb")
	assert.Contains(t, errOut, "structio: nonexistent.pdb")
	_, _, errOut = execute(t, "--quiet", "batch", pdbFile, "nonexistent.pdb")
	assert.NotContains(t, errOut, "structio: nonexistent.pdb")
	assert.Contains(t, errOut, "Error: ")
}
