// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"STORE_URL":             "https://gw.example.com",
		"STORE_REQUEST_TIMEOUT": "45s",
		"STORE_LOCALE":          "de_DE",
		"STORE_TIMEZONE":        "Europe/Berlin",
		"STORE_DEVICE":          "walleye",

		"GSFID":        "4012345678901234567",
		"AUTHSUBTOKEN": "token-value",

		"STORAGE_LEDGER_DSN": "/var/lib/apkfetch/ledger.db",

		"LOG_FILE":  "/var/log/apkfetch.log",
		"LOG_LEVEL": "debug",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://gw.example.com", cfg.Store.URL)
	assert.Equal(t, 45*time.Second, cfg.Store.RequestTimeout)
	assert.Equal(t, "de_DE", cfg.Store.Locale)
	assert.Equal(t, "Europe/Berlin", cfg.Store.Timezone)
	assert.Equal(t, "walleye", cfg.Store.Device)

	assert.Equal(t, uint64(4012345678901234567), cfg.Session.GsfID)
	assert.Equal(t, "token-value", cfg.Session.AuthSubToken)

	assert.Equal(t, "/var/lib/apkfetch/ledger.db", cfg.Storage.LedgerDSN)
	assert.Equal(t, "/var/log/apkfetch.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"STORE_REQUEST_TIMEOUT": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidGsfID(t *testing.T) {
	setEnvVars(t, map[string]string{"GSFID": "abc"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestSessionFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		gsfID string
		token string
		want  bool
	}{
		{name: "both set", gsfID: "42", token: "tok", want: true},
		{name: "only gsfid", gsfID: "42", token: "", want: false},
		{name: "only token", gsfID: "", token: "tok", want: false},
		{name: "neither", gsfID: "", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GSFID", tt.gsfID)
			t.Setenv("AUTHSUBTOKEN", tt.token)

			assert.Equal(t, tt.want, SessionFromEnv())
		})
	}
}

func TestEnvSession(t *testing.T) {
	setEnvVars(t, map[string]string{"GSFID": "42", "AUTHSUBTOKEN": "tok"})

	s, err := EnvSession()

	require.NoError(t, err)
	assert.Equal(t, Session{GsfID: 42, AuthSubToken: "tok"}, s)
}
