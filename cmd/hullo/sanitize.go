package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/tier"
)

type sanitizeOptions struct {
	configPath string
	tierName   string
	outputPath string
	jsonOutput bool
	verbose    bool
}

var sanitizeCmdRunner = runSanitize

func newSanitizeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &sanitizeOptions{}

	cmd := &cobra.Command{
		Use:   "sanitize <config-path>",
		Short: "Correct a configuration document for a subscription tier",
		Long: `Sanitize never rejects a document: every malformed value is corrected and
every field the tier does not allow is reset. The corrected document is
written to stdout, or to a file with -o. Pass the source path to -o to
correct a document in place. Individual fixups are logged at debug level;
run with --verbose to see them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = args[0]
			opts.verbose = rootFlags.verbose
			return sanitizeCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the sanitized document to this file")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSanitize(cmd *cobra.Command, opts *sanitizeOptions) error {
	code, err := runSanitizeInternal(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func runSanitizeInternal(stdout, stderr io.Writer, opts *sanitizeOptions) (int, error) {
	t, err := tier.Parse(opts.tierName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2, nil
	}

	cfg, absPath, err := loadDocument(opts.configPath)
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

	corrections := engine.CountCorrections(cfg, result.Sanitized)

	if opts.outputPath != "" {
		format := config.DetectFormat(opts.outputPath)
		data, err := config.Marshal(result.Sanitized, format)
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding document: %v\n", err)
			return 3, nil
		}
		if err := os.WriteFile(opts.outputPath, data, 0o644); err != nil {
			fmt.Fprintf(stderr, "Error writing %s: %v\n", opts.outputPath, err)
			return 3, nil
		}
	}

	if opts.jsonOutput {
		return 0, writeSanitizeJSON(stdout, absPath, t, corrections, opts.outputPath, result.Sanitized)
	}

	if opts.outputPath != "" {
		fmt.Fprintf(stdout, "✓ Sanitized document for tier '%s' (%d correction(s)).\n", t, corrections)
		fmt.Fprintf(stdout, "  Wrote: %s\n", opts.outputPath)
		return 0, nil
	}

	// No destination: the sanitized document itself goes to stdout, in the
	// source document's encoding, so the command pipes cleanly.
	data, err := config.Marshal(result.Sanitized, config.DetectFormat(absPath))
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding document: %v\n", err)
		return 3, nil
	}
	_, _ = stdout.Write(data)
	return 0, nil
}

type sanitizeJSONPayload struct {
	Version     string               `json:"version"`
	Config      string               `json:"config"`
	Tier        tier.Tier            `json:"tier"`
	Corrections int                  `json:"corrections"`
	Output      string               `json:"output,omitempty"`
	Document    *config.WidgetConfig `json:"document"`
}

func writeSanitizeJSON(w io.Writer, configPath string, t tier.Tier, corrections int, outputPath string, doc *config.WidgetConfig) error {
	payload := sanitizeJSONPayload{
		Version:     "1.0",
		Config:      configPath,
		Tier:        t,
		Corrections: corrections,
		Output:      outputPath,
		Document:    doc,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(payload)
}
