// Copyright 2023 Intrinsic Innovation LLC

package notebook

import (
	"encoding/json"
	"fmt"
)

const (
	// FileExtension is appended to notebook base names.
	FileExtension = ".ipynb"

	defaultNBFormat      = 4
	defaultNBFormatMinor = 0
)

// Template holds the fixed envelope of a combined notebook. Only cells are added to
// it; nothing in a Template is derived from source documents.
type Template struct {
	NBFormat      int
	NBFormatMinor int
	Metadata      Metadata
}

// Metadata is the notebook level metadata record.
type Metadata struct {
	Colab        ColabInfo    `json:"colab"`
	LanguageInfo LanguageInfo `json:"language_info"`
	KernelSpec   KernelSpec   `json:"kernelspec"`
}

// ColabInfo describes the notebook to Colaboratory.
type ColabInfo struct {
	Name       string            `json:"name"`
	Version    string            `json:"version"`
	Provenance []json.RawMessage `json:"provenance"`
}

// CodeMirrorMode selects the editor syntax mode.
type CodeMirrorMode struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

// LanguageInfo describes the notebook's programming language.
type LanguageInfo struct {
	CodeMirrorMode    CodeMirrorMode `json:"codemirror_mode"`
	FileExtension     string         `json:"file_extension"`
	MimeType          string         `json:"mimetype"`
	Name              string         `json:"name"`
	NBConvertExporter string         `json:"nbconvert_exporter"`
	PygmentsLexer     string         `json:"pygments_lexer"`
	Version           string         `json:"version"`
}

// KernelSpec names the kernel that runs the notebook.
type KernelSpec struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

// DefaultTemplate returns the Python 3 envelope used for combined notebooks. fileName
// is recorded as the Colab notebook name and should include the extension.
func DefaultTemplate(fileName string) Template {
	return Template{
		NBFormat:      defaultNBFormat,
		NBFormatMinor: defaultNBFormatMinor,
		Metadata: Metadata{
			Colab: ColabInfo{
				Name:       fileName,
				Version:    "0.3.2",
				Provenance: []json.RawMessage{},
			},
			LanguageInfo: LanguageInfo{
				CodeMirrorMode: CodeMirrorMode{
					Name:    "ipython",
					Version: 3,
				},
				FileExtension:     ".py",
				MimeType:          "text/x-python",
				Name:              "python",
				NBConvertExporter: "python",
				PygmentsLexer:     "ipython3",
				Version:           "3.7.3",
			},
			KernelSpec: KernelSpec{
				DisplayName: "Python 3",
				Language:    "python",
				Name:        "python3",
			},
		},
	}
}

// Builder concatenates the cells of several documents under one Template.
type Builder struct {
	template Template
	cells    []Cell
}

// NewBuilder returns a Builder with no cells.
func NewBuilder(t Template) *Builder {
	return &Builder{template: t, cells: []Cell{}}
}

// Append adds all cells of doc after the cells appended so far.
func (b *Builder) Append(doc *Document) {
	b.cells = append(b.cells, doc.Cells...)
}

// Len returns the number of cells appended so far.
func (b *Builder) Len() int {
	return len(b.cells)
}

// Build returns the combined document.
func (b *Builder) Build() (*Document, error) {
	md := b.template.Metadata
	if md.Colab.Provenance == nil {
		md.Colab.Provenance = []json.RawMessage{}
	}
	raw, err := json.Marshal(&md)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Document{
		NBFormat:      b.template.NBFormat,
		NBFormatMinor: b.template.NBFormatMinor,
		Metadata:      raw,
		Cells:         cells,
	}, nil
}
