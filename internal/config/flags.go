// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared between the config layer and the commands.
const (
	FlagConfig         = "config"
	FlagStoreURL       = "store-url"
	FlagRequestTimeout = "request-timeout"
	FlagLocale         = "locale"
	FlagTimezone       = "timezone"
	FlagDevice         = "device"
	FlagLedgerDSN      = "ledger-dsn"
	FlagLogFile        = "log-file"
	FlagLogLevel       = "log-level"
	FlagGsfID          = "gsfid"
	FlagAuthSubToken   = "authsubtoken"
)

// FlagValues holds the raw values of every configuration flag. It is filled
// in by pflag during command-line parsing and converted into a
// [StructuredConfig] when the configuration is built.
type FlagValues struct {
	jsonConfigPath string
	storeURL       string
	requestTimeout time.Duration
	locale         string
	timezone       string
	device         string
	ledgerDSN      string
	logFile        string
	logLevel       string

	gsfID        uint64
	authSubToken string
}

// BindFlags registers the global configuration flags on fs.
//
// Flags:
//
//	--config           JSON config file path
//	--store-url        store gateway base URL
//	--request-timeout  metadata/auth request timeout (e.g. "30s")
//	--locale           locale reported to the store
//	--timezone         timezone reported to the store
//	--device           device codename reported to the store
//	--ledger-dsn       download ledger DSN (SQLite path or postgres:// URL)
//	--log-file         diagnostic log file
//	--log-level        diagnostic log level
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	fv := &FlagValues{}

	fs.StringVar(&fv.jsonConfigPath, FlagConfig, "", "JSON config file path")
	fs.StringVar(&fv.storeURL, FlagStoreURL, "", "Store gateway base URL (default "+DefaultStoreURL+")")
	fs.DurationVar(&fv.requestTimeout, FlagRequestTimeout, 0, "Store request timeout (e.g. 30s, 1m)")
	fs.StringVar(&fv.locale, FlagLocale, "", "Locale reported to the store (default "+DefaultLocale+")")
	fs.StringVar(&fv.timezone, FlagTimezone, "", "Timezone reported to the store (default "+DefaultTimezone+")")
	fs.StringVar(&fv.device, FlagDevice, "", "Device codename reported to the store (default "+DefaultDevice+")")
	fs.StringVar(&fv.ledgerDSN, FlagLedgerDSN, "", "Download ledger DSN (SQLite file or postgres:// URL)")
	fs.StringVar(&fv.logFile, FlagLogFile, "", "Diagnostic log file (default stderr)")
	fs.StringVar(&fv.logLevel, FlagLogLevel, "", "Diagnostic log level (debug, info, warn, error)")

	return fv
}

// BindSessionFlags registers --gsfid and --authsubtoken on fs. defaults are
// shown as the flag defaults, which is how values taken from the environment
// surface in the help text.
func (fv *FlagValues) BindSessionFlags(fs *pflag.FlagSet, defaults Session) {
	fs.Uint64Var(&fv.gsfID, FlagGsfID, defaults.GsfID, "gsfid")
	fs.StringVar(&fv.authSubToken, FlagAuthSubToken, defaults.AuthSubToken, "authsubtoken")
}

// config converts the parsed flag values into a [StructuredConfig]. Unset
// flags stay zero so they do not override other sources during the merge.
func (fv *FlagValues) config() *StructuredConfig {
	return &StructuredConfig{
		Store: Store{
			URL:            fv.storeURL,
			RequestTimeout: fv.requestTimeout,
			Locale:         fv.locale,
			Timezone:       fv.timezone,
			Device:         fv.device,
		},
		Session: Session{
			GsfID:        fv.gsfID,
			AuthSubToken: fv.authSubToken,
		},
		Storage: Storage{
			LedgerDSN: fv.ledgerDSN,
		},
		Log: Log{
			File:  fv.logFile,
			Level: fv.logLevel,
		},
		JSONFilePath: fv.jsonConfigPath,
	}
}
