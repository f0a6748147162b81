// Copyright 2023 Intrinsic Innovation LLC

// Package sources contains the command that lists the notebooks to combine.
package sources

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"nbcombine/tools/nbcombine/cmd/root"
	"nbcombine/util/printer"
)

type sourceList struct {
	Sources    []string `json:"sources"`
	OutputPath string   `json:"outputPath"`
}

// String prints the source list in the case of --output=text.
func (l *sourceList) String() string {
	var result strings.Builder
	for i, src := range l.Sources {
		fmt.Fprintf(&result, "%d  %s\n", i+1, src)
	}
	fmt.Fprintf(&result, "-> %s", l.OutputPath)
	return result.String()
}

func runSourcesCmd(settings *root.Settings, outputFormat string, stdout io.Writer) error {
	prtr, err := printer.NewPrinterWithWriter(outputFormat, stdout)
	if err != nil {
		return fmt.Errorf("creating printer: %w", err)
	}
	prtr.Print(&sourceList{
		Sources:    settings.Combine.Sources,
		OutputPath: settings.Combine.OutputPath(),
	})
	return nil
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Lists the notebooks that will be combined",
	Long:  "Lists the notebook URLs in the order their cells are combined, followed by the output file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := root.LoadSettings(root.Viper)
		if err != nil {
			return err
		}
		return runSourcesCmd(settings, root.FlagOutput, cmd.OutOrStdout())
	},
}

func init() {
	root.RootCmd.AddCommand(sourcesCmd)
}
