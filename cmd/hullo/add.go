package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/tier"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

type addOptions struct {
	id          string
	name        string
	description string
	tierName    string
	verbose     bool
}

func newAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <config-path>",
		Short: "Add a widget to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.verbose = rootFlags.verbose
			return runAdd(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.id, "id", "i", "", "Widget ID (auto-generated if omitted)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Widget name (defaults to filename)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")
	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")

	return cmd
}

func runAdd(cmd *cobra.Command, configPath string, opts *addOptions) error {
	t, err := tier.Parse(opts.tierName)
	if err != nil {
		return newCommandError("add", "parsing tier", err, "Valid tiers are basic, pro and agency.")
	}

	absPath, err := validateAndNormalizePath(configPath)
	if err != nil {
		return newCommandError("add", fmt.Sprintf("resolving config path %q", configPath), err, "Check that the file exists and you have permission to read it.")
	}

	if opts.name == "" {
		opts.name = deriveNameFromPath(absPath)
	}

	if opts.id == "" {
		opts.id = registry.GenerateWidgetID(absPath)
	}

	if err := registry.ValidateWidgetID(opts.id); err != nil {
		return newCommandError("add", "validating widget ID", err, "Provide an ID using lowercase letters, numbers, and hyphens. IDs must start and end with alphanumeric characters.")
	}

	if opts.verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "→ Validating config file: %s\n", absPath)
	}

	cfg, err := config.ParseFile(absPath)
	if err != nil {
		return newCommandError("add", "validating configuration", err, "Fix the configuration errors shown above and try again.")
	}

	// Violations do not block registration. The dashboard tracks imperfect
	// documents as correctable; only an unreadable file is a hard failure.
	var violationCount int
	if err := config.Validate(cfg, t); err != nil {
		var vErr *hulloerrors.ValidationError
		if errors.As(err, &vErr) {
			violationCount = len(vErr.Violations)
		} else {
			violationCount = 1
		}
	}

	registryPath, err := registry.DefaultPath()
	if err != nil {
		return newCommandError("add", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("add", "loading registry", err, "Check that you have write access to the registry directory.")
	}

	newWidget := registry.Widget{
		ID:           opts.id,
		Name:         opts.name,
		Path:         absPath,
		Tier:         t,
		Description:  opts.description,
		RegisteredAt: time.Now().UTC(),
	}

	if err := reg.Add(newWidget); err != nil {
		return newCommandError("add", fmt.Sprintf("adding widget %q", opts.id), err, "Use a different ID or remove the existing widget first.")
	}

	if err := reg.Save(); err != nil {
		return newCommandError("add", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added widget '%s' (%s)\n", newWidget.ID, newWidget.Name)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Path: %s\n", newWidget.Path)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Tier: %s\n", newWidget.Tier)

	if violationCount > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nDocument has %d violation(s) for tier '%s'; the dashboard will show it as correctable.\n", violationCount, t)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Run 'hullo sanitize %s --tier %s -o %s' to fix it in place.\n", absPath, t, absPath)
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'hullo dashboard' to check its status.")
	}

	return nil
}

func validateAndNormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("config path cannot be empty")
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", absPath)
	}

	return absPath, nil
}

func deriveNameFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return strings.TrimSpace(base)
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}
