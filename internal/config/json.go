// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
// Session credentials are deliberately absent: they come from the
// environment or flags only.
type StructuredJSONConfig struct {
	Store struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
		Locale         string   `json:"locale"`
		Timezone       string   `json:"timezone"`
		Device         string   `json:"device"`
	} `json:"store,omitempty"`

	Storage struct {
		LedgerDSN string `json:"ledger_dsn"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Store: Store{
			URL:            jsonCfg.Store.URL,
			RequestTimeout: time.Duration(jsonCfg.Store.RequestTimeout),
			Locale:         jsonCfg.Store.Locale,
			Timezone:       jsonCfg.Store.Timezone,
			Device:         jsonCfg.Store.Device,
		},
		Storage: Storage{
			LedgerDSN: jsonCfg.Storage.LedgerDSN,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
