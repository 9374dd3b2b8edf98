// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Firstyear/checklists/cmd/tui"
	"github.com/Firstyear/checklists/internal/config"
)

const tuiCmdName = "tui"

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:               tuiCmdName + " <checklist file>",
		Short:             "Walk a checklist in a full-screen terminal UI",
		Long:              `Same semantics as the line mode: changes stay in memory until saved (w), and quitting (q) never saves.`,
		Example:           "  checklists tui ~/checklists/shoot.list.json",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: checklistFileCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(args[0])
			if err != nil {
				return err
			}
			return tui.RunTUI(path, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
