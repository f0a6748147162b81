// Copyright 2023 Intrinsic Innovation LLC

// Package printer provides utilities for printing command results.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
)

const (
	// KeyOutput is a string used to refer the output flag.
	KeyOutput = "output"
	// JSONOutputFormat is a string indicating JSON output format.
	JSONOutputFormat = "json"
	// TextOutputFormat is a string indicating human-readable text output format.
	TextOutputFormat = ""
)

// AllowedFormats is a list of possible output formats.
var AllowedFormats = []string{JSONOutputFormat}

// Message defines a struct for printing a single message in JSON format.
type Message struct {
	Msg string `json:"msg"`
}

// Printer prints command results.
type Printer interface {
	Print(val any)
	PrintSf(format string, a ...any)
}

// JSONPrinter prints one JSON object per line.
type JSONPrinter struct {
	enc *json.Encoder
}

// Print prints val in JSON format.
func (p *JSONPrinter) Print(val any) {
	p.enc.Encode(val)
}

// PrintSf prints the formatted string as a JSON object with a single "msg" field.
func (p *JSONPrinter) PrintSf(format string, a ...any) {
	p.Print(&Message{Msg: fmt.Sprintf(format, a...)})
}

// TextPrinter prints values using their String method when they have one.
type TextPrinter struct {
	w io.Writer
}

// Print prints val in human-readable text format.
func (p *TextPrinter) Print(val any) {
	if s, ok := val.(fmt.Stringer); ok {
		fmt.Fprintln(p.w, s.String())
		return
	}
	fmt.Fprintf(p.w, "%v\n", val)
}

// PrintSf prints the formatted string followed by a newline.
func (p *TextPrinter) PrintSf(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// NewPrinterWithWriter returns a new Printer which writes to the given writer
// using the given output format.
func NewPrinterWithWriter(outputFormat string, w io.Writer) (Printer, error) {
	switch outputFormat {
	case JSONOutputFormat:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return &JSONPrinter{enc: enc}, nil
	case TextOutputFormat:
		return &TextPrinter{w: w}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", outputFormat)
}
