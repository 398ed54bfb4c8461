// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackageList_LiteralIdentifier(t *testing.T) {
	ids, err := ReadPackageList("com.example.app")
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.app"}, ids)
}

func TestReadPackageList_LiteralIsTrimmed(t *testing.T) {
	ids, err := ReadPackageList("com.example.app \t")
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.app"}, ids)
}

func TestReadPackageList_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.txt")
	content := "com.example.one\ncom.example.two   \r\n\n   \ncom.example.three"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ids, err := ReadPackageList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.one", "com.example.two", "com.example.three"}, ids)
}

func TestReadPackageList_DirectoryIsLiteral(t *testing.T) {
	dir := t.TempDir()

	ids, err := ReadPackageList(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, ids)
}

func TestReadPackageList_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o644))

	_, err := ReadPackageList(path)
	assert.ErrorIs(t, err, ErrNoPackages)
}

func TestReadPackageList_Blank(t *testing.T) {
	_, err := ReadPackageList("   ")
	assert.ErrorIs(t, err, ErrNoPackages)
}
