// Copyright 2023 Intrinsic Innovation LLC

// Package fileutil contains helpers for writing output files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// CheckFileDoesNotExist returns an error if the given file does
// already exist.
func CheckFileDoesNotExist(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file %q: %w", path, os.ErrExist)
	}
	return nil
}

// CreateFileOptions defines optional settings for file creation.
type CreateFileOptions struct {
	Override bool
}

// WriteFile writes data to path. The data is written to a temporary file in the same
// directory first and renamed into place, so path either keeps its old contents or
// holds all of data. Returns an error if the file already exists unless overriding
// is intended.
func WriteFile(path string, data []byte, opts CreateFileOptions) (err error) {
	if !opts.Override {
		if err := CheckFileDoesNotExist(path); err != nil {
			return fmt.Errorf("file %s cannot be created since it already exists: %w", path, os.ErrExist)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("writing %s: %w", tmp.Name(), err), tmp.Close())
	}
	if err := tmp.Chmod(0644); err != nil {
		return multierr.Append(fmt.Errorf("setting mode of %s: %w", tmp.Name(), err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving output to %s: %w", path, err)
	}
	return nil
}
