// Copyright 2023 Intrinsic Innovation LLC

// Package root contains the root command for the nbcombine CLI.
package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opencensus.io/trace"
	"nbcombine/combine"
	"nbcombine/fetch"
	"nbcombine/notebook"
	"nbcombine/production"
	"nbcombine/util/printer"
	"nbcombine/util/viperutil"
)

var (
	// FlagOutput holds the value of the --output flag.
	FlagOutput = printer.TextOutputFormat

	// Viper holds the configuration flags of all commands.
	Viper *viper.Viper
)

// RootCmd is the top level command of nbcombine. Run without a subcommand it
// combines the configured notebooks.
var RootCmd = &cobra.Command{
	Use:   "nbcombine",
	Short: "nbcombine merges Jupyter notebooks",
	Long: `nbcombine downloads a list of Jupyter notebooks and writes a single notebook that contains all of their cells, in order.

Without flags the built-in list of notebooks is combined into ` + combine.DefaultOutputName + notebook.FileExtension + ` in the current directory.`,
	Args: cobra.NoArgs,
	// Do not print usage when a command exits with an error.
	SilenceUsage: true,
	// Silence errors so we can control how they are printed.
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := LoadSettings(Viper)
		if err != nil {
			return err
		}
		client := fetch.NewClient(fetch.WithMaxRetries(settings.MaxRetries))
		return runCombineCmd(cmd.Context(), settings, client, FlagOutput, cmd.OutOrStdout())
	},
}

// summary is printed to stdout after a successful run.
type summary combine.Result

// String prints a summary in the case of --output=text.
func (s *summary) String() string {
	var result strings.Builder
	fmt.Fprintf(&result, "Created %s with %d cells from %d notebooks:", s.OutputPath, s.Cells, len(s.Sources))
	for _, src := range s.Sources {
		fmt.Fprintf(&result, "\n%6d  %s", src.Cells, src.URL)
	}
	return result.String()
}

// runCombineCmd implements the root command. It is the entry-point for unit tests
// and does not rely on any global state (e.g. global flag variables).
func runCombineCmd(ctx context.Context, settings *Settings, f combine.Fetcher, outputFormat string, stdout io.Writer) error {
	prtr, err := printer.NewPrinterWithWriter(outputFormat, stdout)
	if err != nil {
		return fmt.Errorf("creating printer: %w", err)
	}
	result, err := combine.Run(ctx, settings.Combine, f)
	if err != nil {
		return err
	}
	prtr.Print((*summary)(result))
	return nil
}

// RewriteError looks at the root cause of an error and tries to add an
// actionable suggestion for how to resolve it.
func RewriteError(err error) string {
	cause := errors.Cause(err)

	if strings.HasPrefix(cause.Error(), "unknown command") {
		return fmt.Sprintf("%v\nRun 'nbcombine --help' for usage.", err)
	}

	var srcErr *combine.SourceError
	if errors.As(cause, &srcErr) {
		switch {
		case errors.Is(srcErr, fetch.ErrNotFound):
			return fmt.Sprintf("%v\nThe notebook at %s does not exist. Check the --%s list.", err, srcErr.URL, KeyURL)
		case errors.Is(srcErr, notebook.ErrMissingCells), errors.Is(srcErr, notebook.ErrMalformed):
			return fmt.Sprintf("%v\n%s does not serve a Jupyter notebook.", err, srcErr.URL)
		}
	}

	if errors.Is(cause, os.ErrExist) {
		return fmt.Sprintf("%v\nRemove the file or run without --%s.", err, KeyNoOverwrite)
	}

	return err.Error()
}

// Execute runs the root command and prints any errors. It returns true if the
// command was successful.
func Execute(args []string) bool {
	ctx, span := trace.StartSpan(context.Background(), "nbcombine", trace.WithSampler(trace.AlwaysSample()))
	defer span.End()

	RootCmd.SetArgs(args)
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", RewriteError(err))
		return false
	}
	return true
}

// Nbcombine launches nbcombine with the currently configured commands.
func Nbcombine() {
	production.Init(RootCmd.PersistentFlags())
	defer log.Flush()
	if !Execute(os.Args[1:]) {
		log.Warning("Command failed")
		log.Flush()
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(
		&FlagOutput, printer.KeyOutput, "o", printer.TextOutputFormat,
		fmt.Sprintf("(optional) Output format. One of: (%s)", strings.Join(printer.AllowedFormats, ", ")))
	flags.StringSlice(KeyURL, nil, "(optional) Notebook URL to combine. Repeat to combine several notebooks in order. Replaces the built-in list.")
	flags.String(KeyName, combine.DefaultOutputName, "(optional) Base name of the combined notebook, without extension.")
	flags.String(KeyDir, "", "(optional) Directory to write the combined notebook to. Defaults to the working directory.")
	flags.Int(KeyMaxRetries, 0, "(optional) Number of times a failed download is retried.")
	flags.Bool(KeyNoOverwrite, false, "(optional) If set, fail instead of replacing an existing output file.")
	flags.String(KeyConfig, "", "(optional) Path to a YAML or JSON file with values for the flags above.")

	Viper = viperutil.BindToViper(flags, viperutil.BindToListEnv(KeyURL, KeyName, KeyDir, KeyMaxRetries, KeyNoOverwrite, KeyConfig))
}
