// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package checklist defines the checklist data model, its on-disk JSON
// representation and the plain-text renderings shown to the user.
package checklist

import (
	"fmt"
	"strings"
)

// Status is the check state of a single item.
type Status int

const (
	Unchecked Status = iota
	Checked
	Skipped
)

// Tokens used on disk. These must match existing saved files exactly.
const (
	tokenUnchecked = "UNCHECKED"
	tokenChecked   = "CHECKED"
	tokenSkipped   = "SKIP"
)

// String returns the display marker for the status, e.g. "[x] (Checked)".
func (s Status) String() string {
	switch s {
	case Checked:
		return "[x] (Checked)"
	case Skipped:
		return "[-] (skipped)"
	default:
		return "[ ] (Unchecked)"
	}
}

// Token returns the on-disk representation of the status.
func (s Status) Token() string {
	switch s {
	case Checked:
		return tokenChecked
	case Skipped:
		return tokenSkipped
	default:
		return tokenUnchecked
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Unchecked, Checked, Skipped:
		return []byte(s.Token()), nil
	}
	return nil, fmt.Errorf("invalid status value %d", int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown tokens are rejected.
func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStatus maps an on-disk token to a Status.
func ParseStatus(token string) (Status, error) {
	switch token {
	case tokenUnchecked:
		return Unchecked, nil
	case tokenChecked:
		return Checked, nil
	case tokenSkipped:
		return Skipped, nil
	}
	return Unchecked, fmt.Errorf("unknown status %q", token)
}

// Item is a single step of a checklist.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"desc"`
	Status      Status  `json:"status"`
	Comment     *string `json:"comment"` // nil when no comment was ever set
}

// SetStatus changes the item status. The comment is left alone.
func (it *Item) SetStatus(s Status) {
	it.Status = s
}

// SetComment stores c as the item comment, replacing any previous one.
func (it *Item) SetComment(c string) {
	it.Comment = &c
}

// HasComment reports whether a comment was set, including an empty one.
func (it Item) HasComment() bool {
	return it.Comment != nil
}

// String renders the item as a multi-line block.
func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", it.Name)
	fmt.Fprintf(&b, "description: %s\n", it.Description)
	fmt.Fprintf(&b, "status: %s\n", it.Status)
	if it.Comment != nil {
		fmt.Fprintf(&b, "comment: %s\n", *it.Comment)
	} else {
		b.WriteString("comment: -\n")
	}
	return b.String()
}

// Checklist is a named, ordered list of items.
type Checklist struct {
	Name  string `json:"name"`
	Items []Item `json:"list"`
}

// Len returns the number of items.
func (c *Checklist) Len() int {
	return len(c.Items)
}

// Counts returns how many items are in each state.
func (c *Checklist) Counts() (checked, skipped, unchecked int) {
	for _, it := range c.Items {
		switch it.Status {
		case Checked:
			checked++
		case Skipped:
			skipped++
		default:
			unchecked++
		}
	}
	return
}

// String renders the list view: a header followed by one line per item.
func (c *Checklist) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "checklist name: %s\n\n", c.Name)
	for _, it := range c.Items {
		fmt.Fprintf(&b, "\tname: %s -> %s\n", it.Name, it.Status)
	}
	return b.String()
}

// Example returns the sample checklist written by the --example generator.
func Example() *Checklist {
	return &Checklist{
		Name: "list 1",
		Items: []Item{
			{Name: "item1", Description: "item 1 description", Status: Unchecked},
			{Name: "item2", Description: "item 2 description", Status: Unchecked},
		},
	}
}
