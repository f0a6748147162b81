// Copyright 2023 Intrinsic Innovation LLC

// Package testio provides helper functions for handling files in tests.
package testio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// MustCreateFile creates a file at the given path with the specified content.
func MustCreateFile(t *testing.T, content []byte, path string) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Write %q failed: %v", path, err)
	}
}

// MustReadFile returns the content of the file at path.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read %q failed: %v", path, err)
	}
	return b
}

// MustNotExist fails the test if a file exists at path.
func MustNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("File %q exists, expected none", path)
	}
}

// ServeFiles starts a server that responds to GET requests for the keys of files
// with the corresponding body. Other paths get a 404. The server is closed when the
// test ends.
func ServeFiles(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.Error(w, "404: Not Found", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
