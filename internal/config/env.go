// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SessionFromEnv reports whether both GSFID and AUTHSUBTOKEN are set to
// non-empty values. When they are, the matching command-line flags become
// optional and default from the environment.
func SessionFromEnv() bool {
	return os.Getenv("GSFID") != "" && os.Getenv("AUTHSUBTOKEN") != ""
}

// EnvSession parses GSFID and AUTHSUBTOKEN. Missing variables yield zero
// values; a GSFID that is not an unsigned integer is an error.
func EnvSession() (Session, error) {
	s, err := env.ParseAs[Session]()
	if err != nil {
		return Session{}, fmt.Errorf("error getting session from env: %w", err)
	}
	return s, nil
}
