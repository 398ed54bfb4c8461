// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

var clipboardWriteAll = clipboard.WriteAll

// SessionExports renders session as the environment assignments the
// download command picks up.
func SessionExports(session models.Session) string {
	return fmt.Sprintf("GSFID=%s\nAUTHSUBTOKEN=%s\n", session.GsfIDString(), session.AuthSubToken)
}

// CopySession places the session's environment assignments on the system
// clipboard.
func CopySession(session models.Session) error {
	if err := clipboardWriteAll(SessionExports(session)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
