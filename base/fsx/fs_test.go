// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "box.bin")
	exists, err := FileExists(fn)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(fn, []byte{0}, 0666))
	exists, err = FileExists(fn)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = FileExists(dir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
	assert.NoError(t, EnsureDir(dir))
	assert.NoError(t, EnsureDir(""))
	assert.NoError(t, EnsureDir("."))
}

func TestJoinOutput(t *testing.T) {
	assert.Equal(t, "box.bin", JoinOutput("", "box.bin"))
	assert.Equal(t, filepath.Join("out", "box.bin"), JoinOutput("out", "box.bin"))
	abs := filepath.Join(t.TempDir(), "box.bin")
	assert.Equal(t, abs, JoinOutput("out", abs))
}
