// Command gomresume renders a YAML resume into PDF, HTML or JSON.
//
//	gomresume generate resume.yaml
//	gomresume generate -o out --format pdf --format html --config layout.toml resume.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gompdf/gomresume/pkg/errors"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. Errors
// are printed to stderr with their cause.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", errors.UserMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool
	logger := newLogger(logOut, log.InfoLevel)

	root := &cobra.Command{
		Use:           "gomresume",
		Short:         "Render YAML resumes into paginated documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newGenerateCmd(logger))
	return root
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
