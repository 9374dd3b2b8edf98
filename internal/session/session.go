// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package session holds one loaded checklist and the cursor that walks it.
//
// Every change is made in memory only. Nothing reaches the file until Save is
// called, and nothing is saved implicitly when a session ends.
package session

import (
	"errors"
	"fmt"

	"github.com/Firstyear/checklists/internal/checklist"
	"github.com/Firstyear/checklists/internal/logger"
)

var (
	// ErrEmptyChecklist is returned by cursor operations on a list with no items.
	ErrEmptyChecklist = errors.New("checklist has no items")
	// ErrEndOfList is returned by Next when the cursor is on the last item.
	ErrEndOfList = errors.New("end of list")
	// ErrStartOfList is returned by Back when the cursor is on the first item.
	ErrStartOfList = errors.New("start of list")
)

// Storage loads and saves checklists by path.
type Storage interface {
	Load(path string) (*checklist.Checklist, error)
	Save(path string, c *checklist.Checklist) error
}

// Session owns one checklist and a zero-based cursor into its items.
type Session struct {
	path    string
	list    *checklist.Checklist
	step    int
	storage Storage
}

// New starts a session over an already loaded checklist.
func New(path string, c *checklist.Checklist, storage Storage) *Session {
	if c == nil {
		c = &checklist.Checklist{}
	}
	return &Session{path: path, list: c, storage: storage}
}

// Open loads the checklist at path and starts a session on its first item.
func Open(path string, storage Storage) (*Session, error) {
	c, err := storage.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("Opened checklist", "path", path, "name", c.Name, "items", c.Len())
	return New(path, c, storage), nil
}

// Path is the file the checklist was loaded from and is saved to.
func (s *Session) Path() string { return s.path }

// Checklist returns the in-memory checklist.
func (s *Session) Checklist() *checklist.Checklist { return s.list }

// Step returns the cursor position.
func (s *Session) Step() int { return s.step }

// Current returns the item under the cursor.
func (s *Session) Current() (*checklist.Item, error) {
	if len(s.list.Items) == 0 {
		return nil, ErrEmptyChecklist
	}
	return &s.list.Items[s.step], nil
}

// Next moves the cursor forward. On the last item the cursor stays put and
// ErrEndOfList is returned.
func (s *Session) Next() (*checklist.Item, error) {
	if len(s.list.Items) == 0 {
		return nil, ErrEmptyChecklist
	}
	if s.step+1 >= len(s.list.Items) {
		return nil, ErrEndOfList
	}
	s.step++
	return &s.list.Items[s.step], nil
}

// Back moves the cursor backward. On the first item the cursor stays put and
// ErrStartOfList is returned.
func (s *Session) Back() (*checklist.Item, error) {
	if len(s.list.Items) == 0 {
		return nil, ErrEmptyChecklist
	}
	if s.step == 0 {
		return nil, ErrStartOfList
	}
	s.step--
	return &s.list.Items[s.step], nil
}

// SetStatus sets the status of the current item.
func (s *Session) SetStatus(st checklist.Status) error {
	it, err := s.Current()
	if err != nil {
		return err
	}
	it.SetStatus(st)
	logger.Debug("Set status", "item", it.Name, "step", s.step, "status", st.Token())
	return nil
}

// Mark checks the current item.
func (s *Session) Mark() error { return s.SetStatus(checklist.Checked) }

// Unmark clears the current item back to unchecked.
func (s *Session) Unmark() error { return s.SetStatus(checklist.Unchecked) }

// SetComment replaces the comment of the current item. Status is unchanged.
func (s *Session) SetComment(c string) error {
	it, err := s.Current()
	if err != nil {
		return err
	}
	it.SetComment(c)
	logger.Debug("Set comment", "item", it.Name, "step", s.step)
	return nil
}

// Skip marks the current item skipped and stores comment on it.
func (s *Session) Skip(comment string) error {
	if err := s.SetStatus(checklist.Skipped); err != nil {
		return err
	}
	return s.SetComment(comment)
}

// Save writes the in-memory checklist to the session path. A failure leaves
// the session untouched so the caller can retry.
func (s *Session) Save() error {
	if s.storage == nil {
		return fmt.Errorf("save %s: no storage configured", s.path)
	}
	if err := s.storage.Save(s.path, s.list); err != nil {
		logger.Error("Save failed", "path", s.path, "error", err)
		return err
	}
	logger.Info("Saved checklist", "path", s.path, "name", s.list.Name)
	return nil
}
