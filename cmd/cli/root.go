// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Firstyear/checklists/internal/config"
	"github.com/Firstyear/checklists/internal/logger"
	"github.com/Firstyear/checklists/internal/session"
	"github.com/Firstyear/checklists/internal/store"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// UsageError reports missing or conflicting command line arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// options holds the root flags and the loaded configuration.
type options struct {
	checklistsDir string
	verbose       bool
	example       bool
	cfg           config.Config
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "checklists [checklist file]",
		Short: "Walk through a checklist one item at a time",
		Long: `Opens a checklist file and walks it item by item.

Commands, one per line:
  p        print the current item
  next     move to the next item
  back     move to the previous item
  mark     mark the current item checked
  unmark   mark the current item unchecked
  skip     mark the current item skipped and ask for a comment
  comment  set a comment on the current item
  l        list all items
  save     write the checklist back to its file
  exit     leave without saving

Changes are kept in memory until "save". "exit" never saves.`,
		Example: "  checklists ~/checklists/shoot.list.json\n  checklists -e -c ~/checklists",
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage:      true,
		SilenceErrors:     true,
		ValidArgsFunction: checklistFileCompletion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if cfg.NoColor {
				color.NoColor = true
			}
			logger.InitLogger(logger.Options{
				Verbose:  opts.verbose,
				ToFile:   cfg.FileLogging(),
				ToStderr: opts.verbose && cmd.Name() != tuiCmdName,
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.example {
				return runExample(cmd.OutOrStdout(), opts.checklistsDir)
			}
			if len(args) == 0 {
				return &UsageError{Msg: "Require a checklist path to work on"}
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Add extra verbose messages")
	rootCmd.Flags().StringVarP(&opts.checklistsDir, "checklists", "c", "", "Directory location of checklists")
	rootCmd.Flags().BoolVarP(&opts.example, "example", "e", false, "Create an example checklist into checklists directory")
	_ = rootCmd.MarkFlagDirname("checklists")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// runSession loads the checklist and runs the command loop. A load failure
// is fatal; failures inside the loop are reported by the loop itself.
func runSession(in io.Reader, out io.Writer, path string) error {
	path, err := config.ResolvePath(path)
	if err != nil {
		return err
	}
	sess, err := session.Open(path, store.Store{})
	if err != nil {
		return fmt.Errorf("cannot open checklist: %w", err)
	}
	return session.NewLoop(sess, in, out).Run()
}

// runExample writes the example checklist into dir and echoes it.
func runExample(out io.Writer, dir string) error {
	if dir == "" {
		return &UsageError{Msg: "-c is required with -e"}
	}
	dir, err := config.ResolvePath(dir)
	if err != nil {
		return err
	}
	statusColor.Fprintf(out, "Creating example checklist in %s\n", filepath.Join(dir, store.ExampleFileName))
	path, data, err := store.WriteExample(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	logger.Info("Wrote example checklist", "path", path)
	return nil
}

// run executes the CLI and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(out, usageErr.Msg)
		fmt.Fprint(out, executed.UsageString())
		return 1
	}
	errorColor.Fprintf(errOut, "Error: %v\n", err)
	return 1
}

// RunCLI runs the command line interface and exits the process.
func RunCLI() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
