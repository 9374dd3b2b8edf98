// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package checklist

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed checklist.schema.json
var schemaSource string

var checklistSchema = jsonschema.MustCompileString("checklist.schema.json", schemaSource)

// ParseError reports checklist text that does not have the expected shape.
type ParseError struct {
	// Path is the file the text came from, if known.
	Path string
	// Field is the offending location (e.g. "list[1].status"); empty when the
	// text is not valid JSON at all.
	Field string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse checklist")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	b.WriteString(": ")
	if e.Field != "" {
		b.WriteString(e.Field + ": ")
	}
	b.WriteString(e.Msg)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Marshal serializes c as indented JSON. Absent comments are written as null.
func Marshal(c *Checklist) ([]byte, error) {
	if c == nil {
		return nil, errors.New("marshal checklist: nil checklist")
	}
	out := *c
	if out.Items == nil {
		// "list" is required on disk; never write null for it.
		out.Items = []Item{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("marshal checklist: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal parses checklist JSON. Structural problems are reported as a
// *ParseError; nothing is defaulted silently except a missing comment.
func Unmarshal(data []byte) (*Checklist, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Msg: "malformed JSON: " + err.Error(), Err: err}
	}
	if err := checklistSchema.Validate(raw); err != nil {
		return nil, schemaParseError(err)
	}
	var c Checklist
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Msg: err.Error(), Err: err}
	}
	return &c, nil
}

// schemaParseError converts the first leaf schema violation into a ParseError.
func schemaParseError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ParseError{Msg: err.Error(), Err: err}
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &ParseError{
		Field: pointerToPath(leaf.InstanceLocation),
		Msg:   leaf.Message,
		Err:   err,
	}
}

// pointerToPath turns a JSON pointer like "/list/0/status" into "list[0].status".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
