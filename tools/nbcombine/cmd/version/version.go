// Copyright 2023 Intrinsic Innovation LLC

// Package version contains the version command.
package version

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
	"nbcombine/tools/nbcombine/cmd/root"
	"nbcombine/util/printer"
)

const (
	// VersionDefaultValue is a special value for Version below.
	VersionDefaultValue = "unknown"
)

var (
	// Version is the version of nbcombine. It can be changed by stamping at build
	// time:
	//
	//   go build -ldflags "-X nbcombine/tools/nbcombine/cmd/version.Version=v1.2.3"
	Version string = VersionDefaultValue
)

type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion,omitempty"`
}

// String prints the versionInfo in the case of --output=text.
func (msg *versionInfo) String() string {
	s := fmt.Sprintf("nbcombine version: %s", msg.Version)
	if msg.GoVersion != "" {
		s += fmt.Sprintf("\nGo version: %s", msg.GoVersion)
	}
	return s
}

// runVersionCmd implements the version command. buildInfo may be nil.
func runVersionCmd(outputFormat string, buildInfo *debug.BuildInfo, stdout io.Writer) error {
	prtr, err := printer.NewPrinterWithWriter(outputFormat, stdout)
	if err != nil {
		return fmt.Errorf("creating printer: %w", err)
	}

	info := &versionInfo{Version: Version}
	if buildInfo != nil {
		info.GoVersion = buildInfo.GoVersion
		if info.Version == VersionDefaultValue && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			info.Version = buildInfo.Main.Version
		}
	}
	prtr.Print(info)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the nbcombine version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		buildInfo, _ := debug.ReadBuildInfo()
		return runVersionCmd(root.FlagOutput, buildInfo, cmd.OutOrStdout())
	},
}

func init() {
	root.RootCmd.AddCommand(versionCmd)
}
