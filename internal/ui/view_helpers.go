// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderView combines the header, the body for the current state, the
// status line and the help footer.
func (m *model) renderView() string {
	var body string
	switch m.currentState {
	case stateList:
		body = m.renderListBody()
	case stateComment:
		body = m.renderItemBody() + "\n" + m.input.View()
	default:
		body = m.renderItemBody()
	}

	var helpView string
	if m.currentState == stateComment {
		helpView = m.help.View(commentKeys{m.keymap})
	} else {
		helpView = m.help.View(m.keymap)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		mainContentBorderStyle.Render(body),
		m.renderNotice(),
		helpView,
	)
}

func (m *model) renderHeader() string {
	cl := m.sess.Checklist()
	checked, skipped, unchecked := cl.Counts()
	pos := "0/0"
	if cl.Len() > 0 {
		pos = fmt.Sprintf("%d/%d", m.sess.Step()+1, cl.Len())
	}
	progress := dimStyle.Render(fmt.Sprintf("item %s  ", pos)) +
		checkedStyle.Render(fmt.Sprintf("✔ %d  ", checked)) +
		skippedStyle.Render(fmt.Sprintf("– %d  ", skipped)) +
		uncheckedStyle.Render(fmt.Sprintf("☐ %d", unchecked))
	return titleStyle.Render("checklist: "+cl.Name) + "\n" + progress
}

func (m *model) renderItemBody() string {
	it, err := m.sess.Current()
	if err != nil {
		return dimStyle.Render("(no items)")
	}
	comment := dimStyle.Render("-")
	if it.Comment != nil {
		comment = *it.Comment
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("name:"), it.Name)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("description:"), it.Description)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("status:"), statusStyle(it.Status)(it.Status.String()))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("comment:"), comment)
	return b.String()
}

// listContent renders one line per item with the cursor marked.
func (m *model) listContent() string {
	cl := m.sess.Checklist()
	if cl.Len() == 0 {
		return dimStyle.Render("(no items)")
	}
	lines := make([]string, 0, cl.Len())
	for i, it := range cl.Items {
		cursor := "  "
		name := it.Name
		if i == m.sess.Step() {
			cursor = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor, statusStyle(it.Status)(it.Status.String()), name))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderListBody() string {
	if !m.viewportReady {
		return m.listContent()
	}
	return m.viewport.View()
}

// refreshList updates the viewport content and keeps the cursor visible.
func (m *model) refreshList() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.listContent())
	step := m.sess.Step()
	switch {
	case step < m.viewport.YOffset:
		m.viewport.SetYOffset(step)
	case step >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(step - m.viewport.Height + 1)
	}
}

func (m *model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.noticeKind {
	case noticeError:
		return errorStyle.Render(m.notice)
	case noticeSuccess:
		return successStyle.Render(m.notice)
	default:
		return noticeStyle.Render(m.notice)
	}
}
