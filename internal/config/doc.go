// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the apk fetcher.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. JSON config file
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the view consumed by the command-line client.
package config
