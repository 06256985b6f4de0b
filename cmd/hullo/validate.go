package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/tier"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

type validateOptions struct {
	configPath string
	tierName   string
	jsonOutput bool
	verbose    bool
}

var validateCmdRunner = runValidate

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <config-path>",
		Short: "Check a configuration document against a subscription tier",
		Long: `Validate checks the document exactly as written, without correcting it.
Every violation is reported in one pass. The exit code is 1 when the document
has violations and 2 when it cannot be parsed at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = args[0]
			opts.verbose = rootFlags.verbose
			return validateCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	code, err := runValidateInternal(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// runValidateInternal carries the whole command body and reports the exit
// code instead of exiting, so tests can drive it with plain buffers.
func runValidateInternal(stdout, stderr io.Writer, opts *validateOptions) (int, error) {
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

	validationErr := engine.New(log).Validate(cfg, t)
	if validationErr == nil {
		if opts.jsonOutput {
			return 0, writeValidateJSON(stdout, absPath, t, nil)
		}
		fmt.Fprintf(stdout, "✓ Document is valid for tier '%s'.\n", t)
		return 0, nil
	}

	var vErr *hulloerrors.ValidationError
	if !errors.As(validationErr, &vErr) {
		fmt.Fprintf(stderr, "Validation error: %v\n", validationErr)
		return 3, nil
	}

	if opts.jsonOutput {
		if err := writeValidateJSON(stdout, absPath, t, vErr.Violations); err != nil {
			return 3, err
		}
		return 1, nil
	}

	writeViolationTable(stdout, vErr.Violations)
	fmt.Fprintf(stdout, "\n%d violation(s) found.\n", len(vErr.Violations))
	return 1, nil
}

func writeViolationTable(w io.Writer, violations []hulloerrors.Violation) {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "FIELD\tRULE\tMESSAGE")
	for _, v := range violations {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", v.FieldPath, v.Rule, v.Message)
	}

	_ = writer.Flush()
}

type validateJSONPayload struct {
	Version    string                  `json:"version"`
	Config     string                  `json:"config"`
	Tier       tier.Tier               `json:"tier"`
	Valid      bool                    `json:"valid"`
	Violations []hulloerrors.Violation `json:"violations"`
}

func writeValidateJSON(w io.Writer, configPath string, t tier.Tier, violations []hulloerrors.Violation) error {
	payload := validateJSONPayload{
		Version:    "1.0",
		Config:     configPath,
		Tier:       t,
		Valid:      len(violations) == 0,
		Violations: violations,
	}
	if payload.Violations == nil {
		payload.Violations = []hulloerrors.Violation{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
