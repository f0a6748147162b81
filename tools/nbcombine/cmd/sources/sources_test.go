// Copyright 2023 Intrinsic Innovation LLC

package sources

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"nbcombine/combine"
	"nbcombine/tools/nbcombine/cmd/root"
	"nbcombine/util/printer"
)

func TestRunSourcesCmd(t *testing.T) {
	settings := &root.Settings{Combine: combine.Config{
		Sources:    []string{"https://example.com/a.ipynb", "https://example.com/b.ipynb"},
		OutputName: "out",
	}}

	var text bytes.Buffer
	if err := runSourcesCmd(settings, printer.TextOutputFormat, &text); err != nil {
		t.Fatalf("runSourcesCmd() failed: %v", err)
	}
	want := "1  https://example.com/a.ipynb\n2  https://example.com/b.ipynb\n-> out.ipynb\n"
	if diff := cmp.Diff(want, text.String()); diff != "" {
		t.Errorf("runSourcesCmd() printed unexpected text (-want +got):\n%s", diff)
	}

	var js bytes.Buffer
	if err := runSourcesCmd(settings, printer.JSONOutputFormat, &js); err != nil {
		t.Fatalf("runSourcesCmd() failed: %v", err)
	}
	var got sourceList
	if err := json.Unmarshal(js.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal(%s) failed: %v", js.String(), err)
	}
	wantList := sourceList{Sources: settings.Combine.Sources, OutputPath: "out.ipynb"}
	if diff := cmp.Diff(wantList, got); diff != "" {
		t.Errorf("runSourcesCmd() printed unexpected JSON (-want +got):\n%s", diff)
	}
}

func TestRunSourcesCmdUnknownFormat(t *testing.T) {
	if err := runSourcesCmd(&root.Settings{}, "xml", &bytes.Buffer{}); err == nil {
		t.Errorf("runSourcesCmd() with unknown format succeeded, want error")
	}
}
