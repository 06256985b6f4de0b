package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/config"
)

type initOptions struct {
	outputPath string
	company    string
}

func newInitCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "hullo.json", "Destination file (.json or .yaml)")
	cmd.Flags().StringVar(&opts.company, "company", config.DefaultCompanyName, "Company name for the branding section")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	if _, err := os.Stat(opts.outputPath); err == nil {
		return newCommandError("init", fmt.Sprintf("creating %s", opts.outputPath), errors.New("file already exists"), "Pass a different path with -o or remove the existing file first.")
	}

	widgetID := uuid.NewString()
	doc := starterDocument(widgetID, opts.company)

	data, err := config.Marshal(doc, config.DetectFormat(opts.outputPath))
	if err != nil {
		return newCommandError("init", "encoding starter document", err, "This is a bug; please report it.")
	}

	if err := os.WriteFile(opts.outputPath, data, 0o644); err != nil {
		return newCommandError("init", fmt.Sprintf("writing %s", opts.outputPath), err, "Check directory permissions and disk space, then retry.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", opts.outputPath)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Widget ID: %s\n", widgetID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nRun 'hullo render %s' to see the generated theme.\n", opts.outputPath)

	return nil
}

// starterDocument carries just enough to validate on every tier: the three
// required branding texts, a fresh widget identifier and the light default
// accent.
func starterDocument(widgetID, company string) *config.WidgetConfig {
	welcome := config.DefaultWelcomeText
	first := config.DefaultFirstMessage
	mode := config.DefaultThemeMode
	accent := config.DefaultColor

	return &config.WidgetConfig{
		WidgetID: &widgetID,
		Branding: &config.BrandingConfig{
			CompanyName:  &company,
			WelcomeText:  &welcome,
			FirstMessage: &first,
		},
		ThemeMode:   &mode,
		AccentColor: &accent,
	}
}
