// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Firstyear/checklists/internal/checklist"
	"github.com/Firstyear/checklists/internal/session"
)

// noticeKind selects the style of the status line.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// model is the Bubble Tea model of the checklist walker. All changes go
// through the session, so the TUI has the same semantics as the line mode:
// nothing is written until save, and quitting never saves.
type model struct {
	sess   *session.Session
	keymap KeyMap
	help   help.Model

	currentState  state
	previousState state // view to return to after a comment
	skipping      bool  // the open comment belongs to a skip
	input         textinput.Model
	viewport      viewport.Model
	viewportReady bool

	notice     string
	noticeKind noticeKind

	width  int
	height int
}

// InitialModel creates the TUI model for a loaded session.
func InitialModel(sess *session.Session) model {
	ti := textinput.New()
	ti.Placeholder = "comment"
	ti.Prompt = "Comment: "
	ti.CharLimit = 1024

	m := model{
		sess:         sess,
		keymap:       DefaultKeyMap,
		help:         help.New(),
		currentState: stateItem,
		input:        ti,
	}
	if _, err := sess.Current(); err != nil {
		m.setNotice(err)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("checklist: " + m.sess.Checklist().Name)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		return m, nil
	case tea.KeyMsg:
		if m.currentState == stateComment {
			return m, m.handleCommentKeys(msg)
		}
		return m, m.handleBrowseKeys(msg)
	}
	return m, nil
}

func (m *model) View() string {
	return m.renderView()
}

func (m *model) resizeViewport() {
	h := m.height - headerHeight - footerHeight - 2 // border
	if h < 1 {
		h = 1
	}
	w := m.width - 4 // border and padding
	if w < 1 {
		w = 1
	}
	if !m.viewportReady {
		m.viewport = viewport.New(w, h)
		m.viewportReady = true
	} else {
		m.viewport.Width, m.viewport.Height = w, h
	}
	m.refreshList()
}

// statusStyle picks the lipgloss style for a status marker.
func statusStyle(s checklist.Status) func(...string) string {
	switch s {
	case checklist.Checked:
		return checkedStyle.Render
	case checklist.Skipped:
		return skippedStyle.Render
	default:
		return uncheckedStyle.Render
	}
}
