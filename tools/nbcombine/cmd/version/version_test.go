// Copyright 2023 Intrinsic Innovation LLC

package version

import (
	"bytes"
	"runtime/debug"
	"testing"

	"nbcombine/util/printer"
)

func TestRunVersionCmd(t *testing.T) {
	tests := []struct {
		desc      string
		format    string
		buildInfo *debug.BuildInfo
		want      string
	}{
		{
			desc:   "no build info",
			format: printer.TextOutputFormat,
			want:   "nbcombine version: unknown\n",
		},
		{
			desc:      "devel build",
			format:    printer.TextOutputFormat,
			buildInfo: &debug.BuildInfo{GoVersion: "go1.22.1", Main: debug.Module{Version: "(devel)"}},
			want:      "nbcombine version: unknown\nGo version: go1.22.1\n",
		},
		{
			desc:      "module version",
			format:    printer.JSONOutputFormat,
			buildInfo: &debug.BuildInfo{GoVersion: "go1.22.1", Main: debug.Module{Version: "v0.3.0"}},
			want:      `{"version":"v0.3.0","goVersion":"go1.22.1"}` + "\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runVersionCmd(tc.format, tc.buildInfo, &buf); err != nil {
				t.Fatalf("runVersionCmd() failed: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("runVersionCmd() printed %q, want %q", got, tc.want)
			}
		})
	}
}
