// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()

	orig := clipboardWriteAll
	clipboardWriteAll = fn
	t.Cleanup(func() { clipboardWriteAll = orig })
}

func TestSessionExports(t *testing.T) {
	got := SessionExports(models.Session{GsfID: 42, AuthSubToken: "tok"})
	assert.Equal(t, "GSFID=42\nAUTHSUBTOKEN=tok\n", got)
}

func TestCopySession(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error {
		copied = s
		return nil
	})

	require.NoError(t, CopySession(models.Session{GsfID: 7, AuthSubToken: "abc"}))
	assert.Equal(t, "GSFID=7\nAUTHSUBTOKEN=abc\n", copied)
}

func TestCopySession_Error(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utility") })

	err := CopySession(models.Session{GsfID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}
