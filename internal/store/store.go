// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store reads and writes checklist files.
//
// A file is opened, fully read or written, and closed within a single call;
// no handle is kept between calls and there is no locking.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Firstyear/checklists/internal/checklist"
	"github.com/Firstyear/checklists/internal/logger"
)

// ExampleFileName is the file written by WriteExample.
const ExampleFileName = "example.list.json"

// FileAccessError wraps an I/O failure on a checklist file.
type FileAccessError struct {
	Op   string // "read", "write", ...
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Store is the file-backed checklist storage used by sessions.
type Store struct{}

// Load reads and decodes the checklist at path.
func (Store) Load(path string) (*checklist.Checklist, error) {
	return Load(path)
}

// Save encodes c and writes it to path.
func (Store) Save(path string, c *checklist.Checklist) error {
	return Save(path, c)
}

// Load reads and decodes the checklist at path. Read failures are returned
// as *FileAccessError and decoding failures as *checklist.ParseError.
func Load(path string) (*checklist.Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	c, err := checklist.Unmarshal(data)
	if err != nil {
		var pe *checklist.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	logger.Debug("Loaded checklist", "path", path, "name", c.Name, "items", c.Len())
	return c, nil
}

// Save encodes c and replaces the file at path with it.
//
// The data is written to a temporary file in the same directory and renamed
// over path, so a failed save leaves the previous file untouched.
func Save(path string, c *checklist.Checklist) error {
	data, err := checklist.Marshal(c)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	logger.Debug("Saved checklist", "path", path, "name", c.Name, "bytes", len(data))
	return nil
}

// WriteExample writes the example checklist into dir and returns the file
// path together with the serialized content.
func WriteExample(dir string) (string, []byte, error) {
	path := filepath.Join(dir, ExampleFileName)
	data, err := checklist.Marshal(checklist.Example())
	if err != nil {
		return path, nil, err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return path, data, err
	}
	return path, data, nil
}

func writeFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}
