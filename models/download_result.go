// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DownloadResult is the tagged outcome of processing a single package.
// A result is successful when Err is nil; otherwise Err holds the store
// failure that stopped this package and the remaining fields describe
// whatever had been produced before it happened.
type DownloadResult struct {
	PackageID string
	Version   string

	// Dir is the per-package download directory.
	Dir string

	// Files lists the APK files written into Dir, splits first.
	Files []string

	// Archive is the zip produced from Dir. Empty on failure.
	Archive string

	// BaseSize is the number of bytes written to the base APK.
	BaseSize int64

	// TotalSize is the number of bytes written across all files.
	TotalSize int64

	Err error
}

// OK reports whether the package was downloaded and archived.
func (r DownloadResult) OK() bool {
	return r.Err == nil
}

// DownloadSummary counts successful and failed results.
type DownloadSummary struct {
	Downloaded int
	Failed     int
}

// Summarize counts the outcomes in results.
func Summarize(results []DownloadResult) DownloadSummary {
	var s DownloadSummary
	for _, r := range results {
		if r.OK() {
			s.Downloaded++
		} else {
			s.Failed++
		}
	}
	return s
}
