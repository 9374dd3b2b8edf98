// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Firstyear/checklists/internal/logger"
)

// Commands understood by the line-oriented loop.
const (
	CmdExit    = "exit"
	CmdSave    = "save"
	CmdPrint   = "p"
	CmdNext    = "next"
	CmdBack    = "back"
	CmdMark    = "mark"
	CmdUnmark  = "unmark"
	CmdSkip    = "skip"
	CmdComment = "comment"
	CmdList    = "l"
)

const (
	prompt        = "# "
	commentPrompt = "Comment: "
	commentEnd    = "End comment -- "
)

var (
	noticeColor  = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.Bold)
)

// UnknownCommandError is returned for input that is not a command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Command)
}

// errExit ends the loop. It never escapes Run.
var errExit = errors.New("exit")

// Loop drives a Session from a line-oriented command stream.
type Loop struct {
	s     *Session
	in    *bufio.Reader
	out   io.Writer
	eof   bool
	inErr error
}

// NewLoop reads commands from in and writes all output to out.
func NewLoop(s *Session, in io.Reader, out io.Writer) *Loop {
	return &Loop{s: s, in: bufio.NewReader(in), out: out}
}

type handler func(l *Loop) error

var commands = map[string]handler{
	CmdExit: func(*Loop) error { return errExit },
	CmdSave: (*Loop).save,
	CmdPrint: func(l *Loop) error {
		it, err := l.s.Current()
		if err != nil {
			return err
		}
		fmt.Fprintln(l.out, it)
		return nil
	},
	CmdNext: func(l *Loop) error {
		it, err := l.s.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(l.out, it)
		return nil
	},
	CmdBack: func(l *Loop) error {
		it, err := l.s.Back()
		if err != nil {
			return err
		}
		fmt.Fprintln(l.out, it)
		return nil
	},
	CmdMark:   func(l *Loop) error { return l.s.Mark() },
	CmdUnmark: func(l *Loop) error { return l.s.Unmark() },
	CmdSkip: func(l *Loop) error {
		if _, err := l.s.Current(); err != nil {
			return err
		}
		return l.s.Skip(l.readComment())
	},
	CmdComment: func(l *Loop) error {
		if _, err := l.s.Current(); err != nil {
			return err
		}
		return l.s.SetComment(l.readComment())
	},
	CmdList: func(l *Loop) error {
		fmt.Fprintln(l.out, l.s.Checklist())
		return nil
	},
}

// Run prints the checklist header and first item, then executes commands
// until "exit" or the end of input. It never saves implicitly. The returned
// error is non-nil only when reading input fails.
func (l *Loop) Run() error {
	headerColor.Fprintf(l.out, "checklist: %s\n", l.s.Checklist().Name)
	if it, err := l.s.Current(); err != nil {
		l.report(err)
	} else {
		fmt.Fprintln(l.out, it)
	}

	for {
		fmt.Fprintln(l.out, prompt)
		line, ok := l.readLine()
		if !ok {
			if l.inErr != nil {
				return fmt.Errorf("read command: %w", l.inErr)
			}
			logger.Debug("Input closed, ending session", "path", l.s.Path())
			return nil
		}
		if err := l.Execute(line); err != nil {
			if errors.Is(err, errExit) {
				logger.Debug("Session ended", "path", l.s.Path())
				return nil
			}
			l.report(err)
		}
	}
}

// Execute runs a single command line. Errors are returned for the caller to
// report; the session state is unchanged by any command that fails.
func (l *Loop) Execute(line string) error {
	cmd := strings.TrimSpace(line)
	h, ok := commands[cmd]
	if !ok {
		return &UnknownCommandError{Command: cmd}
	}
	logger.Debug("Command", "cmd", cmd, "step", l.s.Step())
	return h(l)
}

func (l *Loop) save() error {
	fmt.Fprintf(l.out, "Saving to %s ...\n", l.s.Path())
	if err := l.s.Save(); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	successColor.Fprintln(l.out, "Saved.")
	return nil
}

// readComment prompts for and reads one line. End of input yields "".
func (l *Loop) readComment() string {
	fmt.Fprintln(l.out, commentPrompt)
	c, _ := l.readLine()
	fmt.Fprintln(l.out, commentEnd)
	return c
}

// readLine returns the next input line of any length. A final line without
// a newline is still returned; the following call reports end of input.
func (l *Loop) readLine() (string, bool) {
	if l.eof {
		return "", false
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		l.eof = true
		if !errors.Is(err, io.EOF) {
			l.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (l *Loop) report(err error) {
	var unknown *UnknownCommandError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintln(l.out, "Unknown command")
	case errors.Is(err, ErrEndOfList):
		noticeColor.Fprintln(l.out, "End of list")
	case errors.Is(err, ErrStartOfList):
		noticeColor.Fprintln(l.out, "Start of list")
	case errors.Is(err, ErrEmptyChecklist):
		noticeColor.Fprintln(l.out, "Checklist has no items")
	default:
		errorColor.Fprintf(l.out, "Error: %v\n", err)
	}
}
