// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only structural problems are
// rejected here; per-command requirements live on [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Store.RequestTimeout < 0 {
		return ErrInvalidStoreConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Store.URL) == "" || cfg.Store.RequestTimeout <= 0 {
		return ErrInvalidStoreConfigs
	}

	return nil
}

// ValidateSession reports whether a resumable session is configured.
func (cfg *ClientConfig) ValidateSession() error {
	if cfg.Session.GsfID == 0 || strings.TrimSpace(cfg.Session.AuthSubToken) == "" {
		return ErrInvalidSessionConfigs
	}
	return nil
}

// ValidateLedger reports whether a download ledger is configured.
func (cfg *ClientConfig) ValidateLedger() error {
	if strings.TrimSpace(cfg.Ledger.DSN) == "" {
		return ErrInvalidLedgerConfigs
	}
	return nil
}
