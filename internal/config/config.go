// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other configuration source.
const (
	DefaultStoreURL       = "http://localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLocale         = "en_US"
	DefaultTimezone       = "UTC"
	DefaultDevice         = "oneplus3"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, an optional JSON file and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Store holds the store gateway endpoint and device profile.
	Store Store `envPrefix:"STORE_"`

	// Session holds a previously issued session. Both parts are normally
	// supplied through GSFID and AUTHSUBTOKEN or the matching flags.
	Session Session

	// Storage holds the optional download ledger settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Store holds the settings used to reach the store gateway.
type Store struct {
	// URL is the base URL of the store gateway (e.g. "https://gw.example.com").
	// Env: STORE_URL
	URL string `env:"URL"`

	// RequestTimeout bounds metadata and authentication requests.
	// Payload streams are not subject to it.
	// Env: STORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Locale is sent as Accept-Language (e.g. "en_US").
	// Env: STORE_LOCALE
	Locale string `env:"LOCALE"`

	// Timezone is the device timezone reported to the store.
	// Env: STORE_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// Device is the device codename the store should assume.
	// Env: STORE_DEVICE
	Device string `env:"DEVICE"`
}

// Session is the resumable session pair.
type Session struct {
	// GsfID is the device-scoped session identifier.
	// Env: GSFID
	GsfID uint64 `env:"GSFID"`

	// AuthSubToken is the bearer token paired with GsfID.
	// Env: AUTHSUBTOKEN
	AuthSubToken string `env:"AUTHSUBTOKEN"`
}

// Storage groups persistence settings.
type Storage struct {
	// LedgerDSN selects the download ledger database. A value starting with
	// "postgres://" or "postgresql://" uses PostgreSQL, anything else is a
	// SQLite file path. Empty disables the ledger.
	// Env: STORAGE_LEDGER_DSN
	LedgerDSN string `env:"LEDGER_DSN"`
}

// Log holds diagnostic logging settings.
type Log struct {
	// File is the path diagnostics are appended to. Empty logs to stderr.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Store: Store{
			URL:            DefaultStoreURL,
			RequestTimeout: DefaultRequestTimeout,
			Locale:         DefaultLocale,
			Timezone:       DefaultTimezone,
			Device:         DefaultDevice,
		},
		Log: Log{Level: "info"},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// every source. flags may be nil when no command-line flags were bound.
func GetStructuredConfig(flags *FlagValues) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON(flags).
		withFlags(flags).
		build()
}
