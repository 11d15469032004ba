package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gompdf/gomresume/pkg/api"
)

type generateOpts struct {
	outputDir string
	config    string
	formats   []string
	pageSize  string
	paths     []string
}

func newGenerateCmd(logger *log.Logger) *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <input-file>",
		Short: "Generate a resume from a YAML document",
		Long: `Generate reads a resume document from a local path or an http(s) URL and
writes <Name>_resume.<format> for every requested format into the output
directory, which is created if missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", api.DefaultOutputDir, "output directory")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML layout overlay applied over the document's config")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", []string{string(api.FormatPDF)}, "output format: pdf, html or json (repeatable)")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "", "page size: letter, a4 or legal (overrides the document)")
	cmd.Flags().StringArrayVar(&opts.paths, "search-path", nil, "directory searched when the input is not found")

	return cmd
}

func runGenerate(cmd *cobra.Command, input string, opts generateOpts, logger *log.Logger) error {
	formats := make([]api.Format, 0, len(opts.formats))
	for _, s := range opts.formats {
		f, err := api.ParseFormat(s)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	options := []api.Option{
		api.WithOutputDir(opts.outputDir),
		api.WithFormats(formats...),
		api.WithLogger(logger),
	}
	if opts.config != "" {
		options = append(options, api.WithConfigFile(opts.config))
	}
	if opts.pageSize != "" {
		options = append(options, api.WithPageSize(opts.pageSize))
	}
	for _, p := range opts.paths {
		options = append(options, api.WithResourcePath(p))
	}

	logger.Debug("generating", "input", input, "formats", opts.formats)
	paths, err := api.New(options...).ConvertFile(cmd.Context(), input)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
