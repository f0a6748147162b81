// Copyright 2023 Intrinsic Innovation LLC

// Package notebook reads, builds and writes Jupyter notebook documents.
package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed is returned when a document is not valid notebook JSON.
	ErrMalformed = errors.New("malformed notebook")
	// ErrMissingCells is returned when a document has no "cells" sequence.
	ErrMissingCells = errors.New("notebook has no cells field")
)

// Cell is a single notebook cell. Its contents are never inspected.
type Cell = json.RawMessage

// Document is a notebook in the nbformat interchange format.
type Document struct {
	NBFormat      int             `json:"nbformat"`
	NBFormatMinor int             `json:"nbformat_minor"`
	Metadata      json.RawMessage `json:"metadata"`
	Cells         []Cell          `json:"cells"`
}

// wireDocument distinguishes a missing or null "cells" field from an empty one.
type wireDocument struct {
	NBFormat      int             `json:"nbformat"`
	NBFormatMinor int             `json:"nbformat_minor"`
	Metadata      json.RawMessage `json:"metadata"`
	Cells         *[]Cell         `json:"cells"`
}

// Parse decodes a notebook document.
func Parse(data []byte) (*Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.Cells == nil {
		return nil, ErrMissingCells
	}
	return &Document{
		NBFormat:      w.NBFormat,
		NBFormatMinor: w.NBFormatMinor,
		Metadata:      w.Metadata,
		Cells:         *w.Cells,
	}, nil
}

// Encode writes doc to w as a single line of JSON followed by a newline.
//
// HTML characters are not escaped so that cell sources are written back the way they
// were read. Output is deterministic for a given document.
func Encode(w io.Writer, doc *Document) error {
	out := *doc
	if out.Cells == nil {
		out.Cells = []Cell{}
	}
	if len(out.Metadata) == 0 {
		out.Metadata = json.RawMessage("{}")
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encoding notebook: %w", err)
	}
	return nil
}

// Marshal returns the encoding of doc as written by Encode.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
