// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	enter key.Binding
	quit  key.Binding
	esc   key.Binding
	prev  key.Binding
	next  key.Binding
	clear key.Binding
	info  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	esc:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	prev:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
	next:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
	clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	info:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
}

func helpLine() string {
	bindings := []key.Binding{keys.enter, keys.prev, keys.next, keys.clear, keys.info, keys.esc}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+": "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}
