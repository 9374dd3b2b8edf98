// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Firstyear/checklists/internal/checklist"
	"github.com/Firstyear/checklists/internal/session"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleBrowseKeys(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Next):
		_, err := m.sess.Next()
		m.setNotice(err)
	case key.Matches(msg, m.keymap.Back):
		_, err := m.sess.Back()
		m.setNotice(err)
	case key.Matches(msg, m.keymap.List):
		if m.currentState == stateList {
			m.currentState = stateItem
		} else {
			m.currentState = stateList
		}
	case key.Matches(msg, m.keymap.Mark):
		m.setNotice(m.sess.Mark())
	case key.Matches(msg, m.keymap.Unmark):
		m.setNotice(m.sess.Unmark())
	case key.Matches(msg, m.keymap.Skip):
		if _, err := m.sess.Current(); err != nil {
			m.setNotice(err)
			break
		}
		m.skipping = true
		return m.startComment()
	case key.Matches(msg, m.keymap.Comment):
		if _, err := m.sess.Current(); err != nil {
			m.setNotice(err)
			break
		}
		m.skipping = false
		return m.startComment()
	case key.Matches(msg, m.keymap.Save):
		m.save()
	}
	m.refreshList()
	return nil
}

func (m *model) handleCommentKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Enter):
		if m.skipping {
			m.setNotice(m.sess.Skip(m.input.Value()))
		} else {
			m.setNotice(m.sess.SetComment(m.input.Value()))
		}
		m.endComment()
		return nil
	case key.Matches(msg, m.keymap.Esc):
		// A cancelled skip still skips; only the comment is dropped.
		if m.skipping {
			m.setNotice(m.sess.SetStatus(checklist.Skipped))
		}
		m.endComment()
		m.notice, m.noticeKind = "Comment cancelled", noticeInfo
		return nil
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) startComment() tea.Cmd {
	m.previousState = m.currentState
	m.currentState = stateComment
	m.input.Reset()
	if cur, err := m.sess.Current(); err == nil && cur.Comment != nil {
		m.input.SetValue(*cur.Comment)
	}
	return m.input.Focus()
}

func (m *model) endComment() {
	m.skipping = false
	m.input.Blur()
	m.currentState = m.previousState
	m.refreshList()
}

func (m *model) save() {
	if err := m.sess.Save(); err != nil {
		m.notice, m.noticeKind = fmt.Sprintf("Save failed: %v", err), noticeError
		return
	}
	m.notice, m.noticeKind = "Saved to "+m.sess.Path(), noticeSuccess
}

// setNotice turns a session error into the status line text.
func (m *model) setNotice(err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, session.ErrEndOfList):
		m.notice = "End of list"
	case errors.Is(err, session.ErrStartOfList):
		m.notice = "Start of list"
	case errors.Is(err, session.ErrEmptyChecklist):
		m.notice = "Checklist has no items"
	default:
		m.notice, m.noticeKind = err.Error(), noticeError
		return
	}
	m.noticeKind = noticeInfo
}
