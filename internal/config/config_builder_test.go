// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Store: Store{URL: "https://override.example.com"},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", cfg.Store.URL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Store.RequestTimeout, "unset fields keep the earlier value")
	assert.Equal(t, DefaultDevice, cfg.Store.Device)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Store: Store{RequestTimeout: -time.Second}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStoreConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultStoreURL, cfg.Store.URL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Store.RequestTimeout)
	assert.Equal(t, DefaultLocale, cfg.Store.Locale)
	assert.Equal(t, DefaultTimezone, cfg.Store.Timezone)
	assert.Equal(t, DefaultDevice, cfg.Store.Device)
}

func TestGetStructuredConfig_FlagsOverrideEnvAndJSON(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, `{"store":{"url":"https://json.example.com","device":"json-device"}}`)
	setEnvVars(t, map[string]string{
		"STORE_URL":    "https://env.example.com",
		"STORE_LOCALE": "env_LOCALE",
		"GSFID":        "11",
		"AUTHSUBTOKEN": "env-token",
	})

	fs := newTestFlagSet()
	fv := BindFlags(fs)
	fv.BindSessionFlags(fs, Session{})
	require.NoError(t, fs.Parse([]string{
		"--config", jsonPath,
		"--store-url", "https://flag.example.com",
		"--gsfid", "22",
	}))

	cfg, err := GetStructuredConfig(fv)

	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.Store.URL)
	assert.Equal(t, "json-device", cfg.Store.Device)
	assert.Equal(t, "env_LOCALE", cfg.Store.Locale)
	assert.Equal(t, uint64(22), cfg.Session.GsfID)
	assert.Equal(t, "env-token", cfg.Session.AuthSubToken)
}

func TestGetStructuredConfig_JSONFromEnv(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, `{"storage":{"ledger_dsn":"from-json.db"}}`)
	setEnvVars(t, map[string]string{"CONFIG": jsonPath})

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "from-json.db", cfg.Storage.LedgerDSN)
}

func TestGetStructuredConfig_MissingJSON(t *testing.T) {
	fs := newTestFlagSet()
	fv := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.json")}))

	cfg, err := GetStructuredConfig(fv)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── client view ───────────────────────────────────────────────────────────────

func TestGetClientConfig_MapsFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"GSFID":              "5",
		"AUTHSUBTOKEN":       "tok",
		"STORAGE_LEDGER_DSN": "ledger.db",
		"LOG_LEVEL":          "warn",
	})

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultStoreURL, cfg.Store.URL)
	assert.Equal(t, ClientSession{GsfID: 5, AuthSubToken: "tok"}, cfg.Session)
	assert.Equal(t, "ledger.db", cfg.Ledger.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.ValidateSession())
	assert.NoError(t, cfg.ValidateLedger())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{Store: ClientStore{URL: "http://x", RequestTimeout: time.Second}}
	assert.NoError(t, valid.validate())

	noURL := valid
	noURL.Store.URL = " "
	assert.ErrorIs(t, noURL.validate(), ErrInvalidStoreConfigs)

	noTimeout := valid
	noTimeout.Store.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidStoreConfigs)
}

func TestClientConfig_ValidateSession(t *testing.T) {
	cfg := ClientConfig{}
	assert.ErrorIs(t, cfg.ValidateSession(), ErrInvalidSessionConfigs)

	cfg.Session.GsfID = 1
	assert.ErrorIs(t, cfg.ValidateSession(), ErrInvalidSessionConfigs)

	cfg.Session.AuthSubToken = "tok"
	assert.NoError(t, cfg.ValidateSession())
}

func TestClientConfig_ValidateLedger(t *testing.T) {
	cfg := ClientConfig{}
	assert.ErrorIs(t, cfg.ValidateLedger(), ErrInvalidLedgerConfigs)
}
