// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrLogin         = errors.New("store login failed")
	ErrResumeSession = errors.New("failed to resume store session")
	ErrEmptySession  = errors.New("session credentials are empty")
	ErrPackageList   = errors.New("failed to read package list")
	ErrNoPackages    = errors.New("no packages to download")
)
