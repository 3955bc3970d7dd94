// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-book/internal/app"
	"github.com/MKhiriev/go-contact-book/internal/command"
	"github.com/MKhiriev/go-contact-book/models"
)

// reservedLines is the number of screen rows used by everything except the
// scrollback: padding, title, dividers, prompt and help.
const reservedLines = 8

type lineKind int

const (
	lineEcho lineKind = iota
	lineOutput
)

type line struct {
	kind lineKind
	text string
}

type resultMsg struct {
	result command.Result
}

type model struct {
	ctx     context.Context
	exec    Executor
	appName string
	info    models.AppBuildInfo

	input   textinput.Model
	history []string
	histIdx int
	lines   []line

	busy     bool
	showInfo bool
	height   int
	quitting bool
}

func newModel(ctx context.Context, exec Executor, appName string, info models.AppBuildInfo) model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type a command, or help"
	input.CharLimit = 256
	input.Focus()

	return model{
		ctx:     ctx,
		exec:    exec,
		appName: appName,
		info:    info,
		input:   input,
		lines:   []line{{kind: lineOutput, text: app.MsgHello}},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case resultMsg:
		m.busy = false
		if msg.result.Output != "" {
			for _, text := range strings.Split(msg.result.Output, "\n") {
				m.lines = append(m.lines, line{kind: lineOutput, text: text})
			}
		}
		if msg.result.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		if m.showInfo {
			if key.Matches(msg, keys.esc, keys.info) {
				m.showInfo = false
			}
			if key.Matches(msg, keys.quit) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.quit, keys.esc):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.info):
			m.showInfo = true
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, keys.next):
			m.browse(1)
			return m, nil
		case key.Matches(msg, keys.clear):
			m.lines = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	m.history = append(m.history, text)
	m.histIdx = len(m.history)
	m.lines = append(m.lines, line{kind: lineEcho, text: m.input.Prompt + text})
	m.busy = true

	return m, m.cmdExecute(text)
}

func (m model) cmdExecute(text string) tea.Cmd {
	ctx, exec := m.ctx, m.exec
	return func() tea.Msg {
		return resultMsg{result: exec.Execute(ctx, text)}
	}
}

// browse moves through the command history. Moving past the newest entry
// leaves an empty prompt.
func (m *model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histIdx = min(max(m.histIdx+delta, 0), len(m.history))
	if m.histIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.appName, m.info))
	}

	visible := 0
	if m.height > 0 {
		visible = max(m.height-reservedLines, 1)
	}

	rendered := make([]string, 0, len(m.lines))
	for _, l := range m.lines {
		if l.kind == lineEcho {
			rendered = append(rendered, echoStyle.Render(l.text))
		} else {
			rendered = append(rendered, outputStyle.Render(l.text))
		}
	}

	body := strings.Join(tail(rendered, visible), "\n")
	if body != "" {
		body += "\n"
	}
	body += m.input.View()

	return renderPage(m.appName, body, helpLine())
}
