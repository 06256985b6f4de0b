package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/tier"
)

type renderOptions struct {
	configPath string
	tierName   string
	format     string
	verbose    bool
}

var renderCmdRunner = runRender

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <config-path>",
		Short: "Run the full pipeline and emit the variable set",
		Long: `Render takes a document through sanitization, validation and translation,
then prints the complete cw-* variable set. The css format emits a :root
custom-property block ready to embed; json emits a flat name/value object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = args[0]
			opts.verbose = rootFlags.verbose
			return renderCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format (css, json)")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	code, err := runRenderInternal(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func runRenderInternal(stdout, stderr io.Writer, opts *renderOptions) (int, error) {
	if opts.format != "css" && opts.format != "json" {
		fmt.Fprintf(stderr, "Error: unknown format %q (expected css or json)\n", opts.format)
		return 2, nil
	}

	t, err := tier.Parse(opts.tierName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2, nil
	}

	cfg, _, err := loadDocument(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing configuration: %v\n", err)
		return 2, nil
	}

	log, err := newCommandLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 3, nil
	}

	result, err := engine.New(log).Process(cfg, t)
	if err != nil {
		fmt.Fprintf(stderr, "Pipeline error: %v\n", err)
		return 3, nil
	}

	if opts.format == "json" {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return 0, encoder.Encode(result.Variables.Map())
	}

	fmt.Fprint(stdout, result.Variables.CSS())
	return 0, nil
}
