// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the adapter,
// store and service layers: the resty HTTP client wrapper and run
// identifier generation.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-apk-fetcher"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own underlying
// resty.Client and the default User-Agent header.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}

// WithHeaders sets every non-empty header in headers on the client and
// returns the client for chaining.
func (c *HTTPClient) WithHeaders(headers map[string]string) *HTTPClient {
	for k, v := range headers {
		if v == "" {
			continue
		}
		c.SetHeader(k, v)
	}
	return c
}
