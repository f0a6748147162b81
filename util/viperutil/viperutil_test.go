// Copyright 2023 Intrinsic Innovation LLC

package viperutil

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"nbcombine/util/testing/testio"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("name", "solution_01", "")
	fs.StringSlice("url", nil, "")
	fs.Int("max_retries", 0, "")
	return fs
}

func TestBindToViperFlags(t *testing.T) {
	fs := newFlags()
	if err := fs.Parse([]string{"--name=merged", "--url=a", "--url=b"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	v := BindToViper(fs, nil)

	if got, want := v.GetString("name"), "merged"; got != want {
		t.Errorf("GetString(name) = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.GetStringSlice("url")); diff != "" {
		t.Errorf("GetStringSlice(url) returned unexpected value (-want +got):\n%s", diff)
	}
}

func TestBindToViperEnv(t *testing.T) {
	t.Setenv("NBCOMBINE_NAME", "from_env")
	t.Setenv("NBCOMBINE_MAX_RETRIES", "4")

	fs := newFlags()
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	v := BindToViper(fs, BindToListEnv("name"))

	if got, want := v.GetString("name"), "from_env"; got != want {
		t.Errorf("GetString(name) = %q, want %q", got, want)
	}
	if got := v.GetInt("max_retries"); got != 0 {
		t.Errorf("GetInt(max_retries) = %d, want 0 since it is not bound to the environment", got)
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nbcombine.yaml")
	testio.MustCreateFile(t, []byte("name: from_file\nurl:\n  - https://example.com/a.ipynb\n"), path)

	fs := newFlags()
	if err := fs.Parse([]string{"--max_retries=2"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	v := BindToViper(fs, nil)
	if err := ReadConfigFile(v, path); err != nil {
		t.Fatalf("ReadConfigFile(%q) failed: %v", path, err)
	}

	if got, want := v.GetString("name"), "from_file"; got != want {
		t.Errorf("GetString(name) = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"https://example.com/a.ipynb"}, v.GetStringSlice("url")); diff != "" {
		t.Errorf("GetStringSlice(url) returned unexpected value (-want +got):\n%s", diff)
	}
	if got := v.GetInt("max_retries"); got != 2 {
		t.Errorf("GetInt(max_retries) = %d, want 2", got)
	}
}

func TestReadConfigFileEmptyPath(t *testing.T) {
	if err := ReadConfigFile(BindToViper(newFlags(), nil), ""); err != nil {
		t.Errorf("ReadConfigFile(\"\") returned %v, want nil", err)
	}
}
