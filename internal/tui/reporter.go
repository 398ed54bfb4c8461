// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders everything the fetcher shows to a person: download
// progress, session credentials, ledger history and the masked password
// prompt.
package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

// Reporter prints download progress line by line to a writer, normally
// stdout.
type Reporter struct {
	w      io.Writer
	styles styles
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

func (r *Reporter) Started(packageID string) {
	r.println(r.styles.title.Render("Downloading " + packageID))
}

func (r *Reporter) Version(version string) {
	r.println("    -> Version: " + version)
}

func (r *Reporter) AdditionalData(index int, data models.AdditionalData) {
	r.println(r.styles.label.Render("    Additional data: " + strconv.Itoa(index)))
	r.println("        -> Type:    " + data.Type)
	r.println("        -> Version: " + strconv.FormatInt(data.VersionCode, 10))
	r.println("        -> File:    " + data.File.String())
}

func (r *Reporter) Split(index int, split models.Split) {
	r.println(r.styles.label.Render("    Splits: " + strconv.Itoa(index)))
	r.println("        -> Name:    " + split.Name)
	r.println("        -> File:    " + split.File.String())
}

func (r *Reporter) SplitDownloaded(name string) {
	r.println("Download of split " + name + " finished")
}

func (r *Reporter) BaseDownloaded() {
	r.println("Download of base apk finished")
}

func (r *Reporter) Archived(path string) {
	r.println(r.styles.success.Render("Made archive at " + path))
}

func (r *Reporter) Failed(packageID string, err error) {
	r.println(r.styles.err.Render("Failed to download " + packageID))
	r.println(humanizeStoreError(err))
}

func (r *Reporter) Summary(summary models.DownloadSummary) {
	r.println(fmt.Sprintf("%d downloaded, %d failed", summary.Downloaded, summary.Failed))
}

// Session prints the credentials produced by a first-time login.
func (r *Reporter) Session(session models.Session) {
	r.println("gsfId: " + session.GsfIDString())
	r.println("authSubToken: " + session.AuthSubToken)
}

// History prints ledger records as a table, newest first.
func (r *Reporter) History(records []models.DownloadRecord) {
	if len(records) == 0 {
		r.println(r.styles.help.Render("no downloads recorded"))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WHEN", "PACKAGE", "VERSION", "STATUS", "FILES", "BYTES", "ARCHIVE / ERROR").
		StyleFunc(func(row, col int) lipgloss.Style {
			return r.styles.table
		})

	for _, rec := range records {
		detail := rec.Archive
		if rec.Status == models.DownloadStatusFailed {
			detail = rec.Error
		}
		t.Row(
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.PackageID,
			rec.Version,
			string(rec.Status),
			strconv.Itoa(rec.Files),
			strconv.FormatInt(rec.Bytes, 10),
			detail,
		)
	}

	r.println(t.String())
}

// BuildInfo prints the version banner.
func (r *Reporter) BuildInfo(info models.AppBuildInfo) {
	r.println(r.styles.title.Render("apkfetch") + " " + info.String())
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}
