// Copyright 2023 Intrinsic Innovation LLC

package create

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"nbcombine/notebook"
	"nbcombine/util/testing/testio"
)

func TestRunCreateCmd(t *testing.T) {
	dir := t.TempDir()
	msg, err := RunCreateCmd(&cmdParams{NotebookName: "scratch", TargetPath: dir})
	if err != nil {
		t.Fatalf("RunCreateCmd() failed: %v", err)
	}
	want := SuccessMessage{TargetPath: dir, AffectedFiles: []string{"scratch.ipynb"}}
	if diff := cmp.Diff(want, msg); diff != "" {
		t.Errorf("RunCreateCmd() returned unexpected message (-want +got):\n%s", diff)
	}

	doc, err := notebook.Parse(testio.MustReadFile(t, filepath.Join(dir, "scratch.ipynb")))
	if err != nil {
		t.Fatalf("Parse() of created notebook failed: %v", err)
	}
	if len(doc.Cells) != 0 || doc.NBFormat != 4 {
		t.Errorf("created notebook has %d cells and nbformat %d, want 0 cells and nbformat 4", len(doc.Cells), doc.NBFormat)
	}

	if _, err := RunCreateCmd(&cmdParams{NotebookName: "scratch", TargetPath: dir}); !errors.Is(err, os.ErrExist) {
		t.Errorf("second RunCreateCmd() returned %v, want os.ErrExist", err)
	}
}

func TestRunCreateCmdDryRun(t *testing.T) {
	dir := t.TempDir()
	msg, err := RunCreateCmd(&cmdParams{NotebookName: "scratch", TargetPath: dir, DryRun: true})
	if err != nil {
		t.Fatalf("RunCreateCmd() failed: %v", err)
	}
	if got, want := msg.String(), "Will create:\n"+filepath.Join(dir, "scratch.ipynb"); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	testio.MustNotExist(t, filepath.Join(dir, "scratch.ipynb"))

	testio.MustCreateFile(t, []byte("{}"), filepath.Join(dir, "taken.ipynb"))
	if _, err := RunCreateCmd(&cmdParams{NotebookName: "taken", TargetPath: dir, DryRun: true}); err == nil {
		t.Errorf("RunCreateCmd() dry run for existing file succeeded, want error")
	}
}
