// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"strings"
)

const (
	downloadDirName = "download"
	bundledDirName  = "bundled"
	apkExt          = ".apk"
	zipExt          = ".zip"
)

// Layout computes the deterministic on-disk locations for a download run
// rooted at Root:
//
//	<Root>/download/<pkg>-<version>/<pkg>-<version>-base.apk
//	<Root>/download/<pkg>-<version>/<pkg>-<version>-<split>.apk
//	<Root>/bundled/<pkg>-<version>.zip
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root. An empty root means the current
// directory.
func NewLayout(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{Root: root}
}

// FileStem is the common prefix of every file produced for one package.
func FileStem(packageID, version string) string {
	return sanitizeName(packageID) + "-" + sanitizeName(version)
}

// sanitizeName keeps store-provided names from introducing path separators.
func sanitizeName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if name == "." || name == ".." {
		return strings.Repeat("_", len(name))
	}
	return name
}

// DownloadRoot is the parent of every per-package download directory.
func (l Layout) DownloadRoot() string {
	return filepath.Join(l.Root, downloadDirName)
}

// BundledRoot is the directory holding the zip archives.
func (l Layout) BundledRoot() string {
	return filepath.Join(l.Root, bundledDirName)
}

// DownloadDir is the per-package download directory.
func (l Layout) DownloadDir(packageID, version string) string {
	return filepath.Join(l.DownloadRoot(), FileStem(packageID, version))
}

// BaseFile is the path of the base APK.
func (l Layout) BaseFile(packageID, version string) string {
	return l.SplitFile(packageID, version, "base")
}

// SplitFile is the path of the split APK named splitName.
func (l Layout) SplitFile(packageID, version, splitName string) string {
	return filepath.Join(l.DownloadDir(packageID, version), FileStem(packageID, version)+"-"+sanitizeName(splitName)+apkExt)
}

// ArchiveFile is the path of the package's zip archive.
func (l Layout) ArchiveFile(packageID, version string) string {
	return filepath.Join(l.BundledRoot(), FileStem(packageID, version)+zipExt)
}
