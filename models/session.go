// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Credentials are the plaintext account credentials used once, during the
// first interactive login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the credential bundle issued by the store after a successful
// login. It is printed once and then passed back by the operator on every
// later invocation; nothing in this module persists it.
type Session struct {
	// GsfID is the device-scoped identifier issued by the store's
	// authentication service.
	GsfID uint64 `json:"gsfId"`

	// AuthSubToken is the opaque bearer token issued alongside GsfID.
	AuthSubToken string `json:"authSubToken"`
}

// IsZero reports whether neither part of the session has been set.
func (s Session) IsZero() bool {
	return s.GsfID == 0 && s.AuthSubToken == ""
}

// GsfIDString returns GsfID in the decimal form the store expects in headers.
func (s Session) GsfIDString() string {
	return strconv.FormatUint(s.GsfID, 10)
}
