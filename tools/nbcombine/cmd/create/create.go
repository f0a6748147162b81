// Copyright 2023 Intrinsic Innovation LLC

// Package create contains the command that writes an empty notebook with the
// envelope used for combined notebooks.
package create

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"nbcombine/notebook"
	"nbcombine/tools/nbcombine/cmd/root"
	"nbcombine/util/fileutil"
	"nbcombine/util/printer"
)

var (
	flagTargetPath string
	flagDryRun     bool
)

type cmdParams struct {
	NotebookName string
	TargetPath   string
	DryRun       bool
}

// SuccessMessage is printed to stdout after a successful run.
type SuccessMessage struct {
	TargetPath    string   `json:"targetPath,omitempty"`
	AffectedFiles []string `json:"affectedFiles,omitempty"`
	WasDryRun     bool     `json:"wasDryRun,omitempty"`
}

// String prints a SuccessMessage in the case of --output=text.
func (msg *SuccessMessage) String() string {
	var result strings.Builder
	if msg.WasDryRun {
		result.WriteString("Will create:")
	} else {
		result.WriteString("Created:")
	}
	for _, affectedFile := range msg.AffectedFiles {
		result.WriteByte('\n')
		result.WriteString(filepath.Join(msg.TargetPath, affectedFile))
	}
	return result.String()
}

// RunCreateCmd implements the create command. It is the entry-point for unit tests
// and does not rely on any global state (e.g. global flag variables).
func RunCreateCmd(params *cmdParams) (SuccessMessage, error) {
	fileName := params.NotebookName + notebook.FileExtension
	fullPath := filepath.Join(params.TargetPath, fileName)

	if params.DryRun {
		if err := fileutil.CheckFileDoesNotExist(fullPath); err != nil {
			return SuccessMessage{}, fmt.Errorf("will fail: %w", err)
		}
	} else {
		doc, err := notebook.NewBuilder(notebook.DefaultTemplate(fileName)).Build()
		if err != nil {
			return SuccessMessage{}, err
		}
		data, err := notebook.Marshal(doc)
		if err != nil {
			return SuccessMessage{}, err
		}
		if err := fileutil.WriteFile(fullPath, data, fileutil.CreateFileOptions{}); err != nil {
			return SuccessMessage{}, fmt.Errorf("creating %s: %w", fullPath, err)
		}
	}
	return SuccessMessage{TargetPath: params.TargetPath, AffectedFiles: []string{fileName}, WasDryRun: params.DryRun}, nil
}

var createCmd = &cobra.Command{
	Use:   "create notebook_name",
	Short: "Create an empty notebook.",
	Long:  "Create an empty Jupyter Notebook with the same metadata as combined notebooks.",
	Example: `Create a notebook called scratch.ipynb in the current working directory:
$ nbcombine create scratch`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"notebook_name"},
	RunE: func(cmd *cobra.Command, argsArray []string) error {
		params := cmdParams{
			NotebookName: argsArray[0],
			TargetPath:   flagTargetPath,
			DryRun:       flagDryRun,
		}
		successMsg, err := RunCreateCmd(&params)
		if err != nil {
			return err
		}

		printr, err := printer.NewPrinterWithWriter(root.FlagOutput, cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("creating printer: %w", err)
		}
		printr.Print(&successMsg)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&flagTargetPath, "path", "", "(optional) Path to a folder to create the file in.")
	createCmd.Flags().BoolVar(&flagDryRun, "dry_run", false, "(optional) If set, no file will be created.")
	root.RootCmd.AddCommand(createCmd)
}
