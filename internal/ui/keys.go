// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the TUI application.
// It maps keys to actions and provides descriptions for the help menu.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Navigation keys
	Next key.Binding // Move to the next item
	Back key.Binding // Move to the previous item
	List key.Binding // Toggle the list view

	// Item actions
	Mark    key.Binding
	Unmark  key.Binding
	Skip    key.Binding // Skip and ask for a comment
	Comment key.Binding

	// Comment input
	Enter key.Binding // Store the comment
	Esc   key.Binding // Cancel the comment

	// General UI control
	Save key.Binding
	Help key.Binding
	Quit key.Binding // Exit without saving
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("down", "j", "n"),
		key.WithHelp("↓/j", "next"),
	),
	Back: key.NewBinding(
		key.WithKeys("up", "k", "b"),
		key.WithHelp("↑/k", "back"),
	),
	List: key.NewBinding(
		key.WithKeys("l", "tab"),
		key.WithHelp("l", "toggle list"),
	),
	Mark: key.NewBinding(
		key.WithKeys("m", "x", " "),
		key.WithHelp("m/space", "mark"),
	),
	Unmark: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unmark"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "store comment"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Save: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit (no save)"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Mark, k.Skip, k.Save, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back, k.List},
		{k.Mark, k.Unmark, k.Skip, k.Comment},
		{k.Save, k.Help, k.Quit},
	}
}

// commentKeys is the help shown while typing a comment.
type commentKeys struct{ KeyMap }

func (k commentKeys) ShortHelp() []key.Binding { return []key.Binding{k.Enter, k.Esc} }

func (k commentKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
