// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"net"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Firstyear/checklists/internal/config"
)

// dimColor is used for less important/secondary text in the CLI output
var dimColor = color.New(color.Faint)

// newConfigCmd is the parent command for all configuration-related subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage checklists configuration",
		Long: `Provides subcommands to inspect and change the checklists configuration file.
The file lives in the user configuration directory (e.g. ~/.config/checklists/config.yaml).`,
	}
	configCmd.AddCommand(newConfigShowCmd(), newConfigSetListenCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration file path and effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Config file: %s\n", identifierColor.Sprint(path))
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}
			if len(data) > 0 && string(data) != "{}\n" {
				fmt.Fprint(out, string(data))
			} else {
				dimColor.Fprintln(out, "(no settings, using defaults)")
			}
			fmt.Fprintf(out, "Effective listen address: %s\n", cfg.ListenAddr())
			fmt.Fprintf(out, "File logging: %t\n", cfg.FileLogging())
			return nil
		},
	}
}

func newConfigSetListenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-listen <host:port>",
		Short: "Set the address the web viewer listens on",
		Long: `Sets the address used by "checklists serve" when --listen is not given.
To revert to the default (` + config.DefaultListen + `), set it to an empty string: checklists config set-listen ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := args[0]
			if addr != "" {
				if _, _, err := net.SplitHostPort(addr); err != nil {
					return &UsageError{Msg: fmt.Sprintf("invalid listen address %q: %v", addr, err)}
				}
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg.Listen = addr
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			if addr == "" {
				successColor.Fprintf(cmd.OutOrStdout(), "Listen address reset to default (%s).\n", config.DefaultListen)
			} else {
				successColor.Fprintf(cmd.OutOrStdout(), "Listen address set to: %s\n", addr)
			}
			return nil
		},
	}
}
