// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ARBOR_CONFIG", filepath.Join(t.TempDir(), "arbor.yaml"))

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInsertCommand(t *testing.T) {
	out, err := executeCommand(t, "insert", "30", "10", "20", "--style", "preorder")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "20 10 30\n"), out)
	assert.Contains(t, out, "rotations: LL 0, LR 1, RR 0, RL 0")
}

func TestInsertCommandSorted(t *testing.T) {
	out, err := executeCommand(t, "insert", "7", "6", "5", "4", "3", "2", "1", "--sorted", "--style", "preorder")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4 2 1 3 6 5 7\n"), out)
	assert.Contains(t, out, "height: 2")
}

func TestInsertCommandInvalidKey(t *testing.T) {
	_, err := executeCommand(t, "insert", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer key "x"`)
}

func TestInsertCommandUnknownStyle(t *testing.T) {
	_, err := executeCommand(t, "insert", "1", "--style", "spiral")
	assert.Error(t, err)
}

func TestLoadCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("# sample\n1 2 3\n\n4\n5\n3\n"), 0644))

	out, err := executeCommand(t, "load", path, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "read 6 keys, inserted 5, skipped 1 duplicates")
	assert.Contains(t, out, "keys: 5  height: 2  balanced: true")
}

func TestLoadCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "load", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCompareCommand(t *testing.T) {
	out, err := executeCommand(t, "compare", "1", "2", "3", "4", "5", "6", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "avl height:     2 (balanced: true)")
	assert.Contains(t, out, "plain height:   6 (balanced: false)")
}

func TestStressCommand(t *testing.T) {
	out, err := executeCommand(t, "stress", "-n", "300", "--runs", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "2 runs of 300 keys verified")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
