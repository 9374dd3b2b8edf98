// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Firstyear/checklists/internal/session"
	"github.com/Firstyear/checklists/internal/store"
	"github.com/Firstyear/checklists/internal/ui"
)

// RunTUI loads the checklist at path and runs the full-screen walker until
// the user quits. Load failures are returned before the screen is taken over.
func RunTUI(path string, in io.Reader, out io.Writer) error {
	sess, err := session.Open(path, store.Store{})
	if err != nil {
		return err
	}
	m := ui.InitialModel(sess)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
