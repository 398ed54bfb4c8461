// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PackageMetadata is the subset of the store's details response used to name
// downloaded files.
type PackageMetadata struct {
	PackageID     string
	VersionString string
	VersionCode   int64
	Title         string
}

// PackagePayload describes everything the store delivers for one package:
// the base APK, its split APKs and any additional data (OBB expansion files).
// Streams are opened lazily, so holding a PackagePayload costs no I/O.
type PackagePayload struct {
	// DocID is the package identifier as reported by the store.
	DocID string

	// File is the base APK stream.
	File FileStream

	// Splits are the architecture/density/language specific partial APKs.
	Splits []Split

	// AdditionalData are auxiliary expansion files. They are reported but
	// never written to disk.
	AdditionalData []AdditionalData
}

// Split is a named partial APK that is installed together with the base APK.
type Split struct {
	Name string
	File FileStream
}

// AdditionalData is an expansion file associated with a package.
type AdditionalData struct {
	Type        string
	VersionCode int64
	File        FileStream
}
