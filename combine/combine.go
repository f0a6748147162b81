// Copyright 2023 Intrinsic Innovation LLC

// Package combine downloads a list of notebooks and merges their cells into a single
// notebook file.
package combine

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/golang/glog"
	"go.opencensus.io/trace"
	"nbcombine/notebook"
	"nbcombine/util/fileutil"
)

const (
	// DefaultOutputName is the base name of the combined notebook.
	DefaultOutputName = "solution_01"
)

// DefaultSources are the notebooks combined when no other sources are configured.
var DefaultSources = []string{
	"https://raw.githubusercontent.com/ManshaP/CCEES/master/exercise_1/1_pedestrian's_solution_of_ODE_system.ipynb",
	"https://raw.githubusercontent.com/ManshaP/CCEES/master/exercise_1/2_glycolysis_model.ipynb",
	"https://raw.githubusercontent.com/ManshaP/CCEES/master/exercise_1/4_saddle_node_bifurcation.ipynb",
	"https://raw.githubusercontent.com/ManshaP/CCEES/master/exercise_1/5_globally_stable_subcritical_pitchfork_bifurcation.ipynb",
}

// Fetcher retrieves the raw content of a document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Config describes one combine run.
type Config struct {
	// Sources are fetched in order; their cells appear in the output in this order.
	Sources []string
	// OutputName is the base name of the output file, without extension.
	OutputName string
	// Dir is the directory the output is written to. Empty means the working
	// directory.
	Dir string
	// NoOverwrite makes the run fail instead of replacing an existing output file.
	NoOverwrite bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Sources:    append([]string(nil), DefaultSources...),
		OutputName: DefaultOutputName,
	}
}

// FileName returns the output file name including its extension.
func (c Config) FileName() string {
	return c.OutputName + notebook.FileExtension
}

// OutputPath returns the path of the output file.
func (c Config) OutputPath() string {
	return filepath.Join(c.Dir, c.FileName())
}

// SourceError identifies the source that made a run fail.
type SourceError struct {
	Index int
	URL   string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %d (%s): %v", e.Index+1, e.URL, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// SourceSummary is the outcome for one source.
type SourceSummary struct {
	URL   string `json:"url"`
	Cells int    `json:"cells"`
}

// Result describes a successful run.
type Result struct {
	OutputPath string          `json:"outputPath"`
	Cells      int             `json:"cells"`
	Sources    []SourceSummary `json:"sources"`
}

// Run fetches every source in order, appends its cells and writes the combined
// notebook. The first failure aborts the run before anything is written.
func Run(ctx context.Context, cfg Config, f Fetcher) (*Result, error) {
	if cfg.OutputName == "" {
		return nil, fmt.Errorf("output name must not be empty")
	}
	ctx, span := trace.StartSpan(ctx, "combine.Run")
	defer span.End()

	builder := notebook.NewBuilder(notebook.DefaultTemplate(cfg.FileName()))
	result := &Result{OutputPath: cfg.OutputPath()}
	for i, url := range cfg.Sources {
		log.Infof("Fetching %d/%d: %s", i+1, len(cfg.Sources), url)
		body, err := f.Fetch(ctx, url)
		if err != nil {
			return nil, &SourceError{Index: i, URL: url, Err: err}
		}
		doc, err := notebook.Parse(body)
		if err != nil {
			return nil, &SourceError{Index: i, URL: url, Err: err}
		}
		builder.Append(doc)
		result.Sources = append(result.Sources, SourceSummary{URL: url, Cells: len(doc.Cells)})
	}

	doc, err := builder.Build()
	if err != nil {
		return nil, err
	}
	data, err := notebook.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := fileutil.WriteFile(result.OutputPath, data, fileutil.CreateFileOptions{Override: !cfg.NoOverwrite}); err != nil {
		return nil, err
	}
	result.Cells = len(doc.Cells)
	log.Infof("Wrote %d cells from %d notebooks to %s", result.Cells, len(cfg.Sources), result.OutputPath)
	return result, nil
}
