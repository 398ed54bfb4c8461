// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	submit key.Binding
	cancel key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

type passwordModel struct {
	title    string
	input    textinput.Model
	styles   styles
	canceled bool
	done     bool
	errMsg   string
}

func newPasswordModel(title string, st styles) passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Width = 40
	input.Focus()

	return passwordModel{title: title, input: input, styles: st}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, keys.submit):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.errMsg = ErrEmptyPassword.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	out := m.styles.title.Render(m.title) + "\n" + m.input.View() + "\n"
	if m.errMsg != "" {
		out += m.styles.err.Render(m.errMsg) + "\n"
	}
	return out + m.styles.help.Render("enter submit  esc cancel") + "\n"
}

// PromptPassword asks for a password on in/out with masked echo.
func PromptPassword(ctx context.Context, in io.Reader, out io.Writer, title string) (string, error) {
	model := newPasswordModel(title, newStyles(lipgloss.NewRenderer(out)))

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.canceled || !result.done {
		return "", ErrPromptCanceled
	}

	return result.input.Value(), nil
}
