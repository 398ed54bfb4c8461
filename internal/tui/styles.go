// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// styles are bound to a renderer so that output written to a pipe or a
// file carries no escape sequences.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	help    lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	table   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Faint(true),
		help:    r.NewStyle().Faint(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		table:   r.NewStyle().Padding(0, 1),
	}
}
