// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientStore holds the store gateway settings used by the adapter.
type ClientStore struct {
	URL            string
	RequestTimeout time.Duration
	Locale         string
	Timezone       string
	Device         string
}

// ClientSession is the resumable session pair.
type ClientSession struct {
	GsfID        uint64
	AuthSubToken string
}

// ClientLedger holds the download ledger settings.
type ClientLedger struct {
	DSN string
}

// ClientLog holds diagnostic logging settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the configuration consumed by the command-line client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	Store   ClientStore
	Session ClientSession
	Ledger  ClientLedger
	Log     ClientLog
}

// GetClientConfig builds the client view of the merged configuration and
// validates the parts every command needs. Command-specific requirements are
// checked with [ClientConfig.ValidateSession] and [ClientConfig.ValidateLedger].
func GetClientConfig(flags *FlagValues) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Store: ClientStore{
			URL:            cfg.Store.URL,
			RequestTimeout: cfg.Store.RequestTimeout,
			Locale:         cfg.Store.Locale,
			Timezone:       cfg.Store.Timezone,
			Device:         cfg.Store.Device,
		},
		Session: ClientSession{
			GsfID:        cfg.Session.GsfID,
			AuthSubToken: cfg.Session.AuthSubToken,
		},
		Ledger: ClientLedger{DSN: cfg.Storage.LedgerDSN},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
