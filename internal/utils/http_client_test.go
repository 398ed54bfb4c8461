// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, UserAgent, client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_WithHeaders(t *testing.T) {
	client := NewHTTPClient().WithHeaders(map[string]string{
		"X-Device": "oneplus3",
		"X-Empty":  "",
	})

	assert.Equal(t, "oneplus3", client.Header.Get("X-Device"))
	_, present := client.Header["X-Empty"]
	assert.False(t, present, "empty headers are skipped")
}
