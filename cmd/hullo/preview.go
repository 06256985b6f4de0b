package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hullochat/hullo/internal/engine"
	"github.com/hullochat/hullo/internal/preview"
	"github.com/hullochat/hullo/internal/tier"
)

type previewOptions struct {
	configPath  string
	tierName    string
	interactive bool
	verbose     bool
}

var previewCmdRunner = runPreview

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <config-path>",
		Short: "Show the rendered theme as a terminal swatch board",
		Long: `Preview renders a document's theme as color swatches in the terminal.
Interactive mode keeps the session open: toggle the color scheme, cycle the
subscription tier and watch the variable set rebuild live.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = args[0]
			opts.verbose = rootFlags.verbose
			return previewCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.tierName, "tier", "t", "pro", "Subscription tier (basic, pro, agency)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Open an interactive preview session")

	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	if opts.interactive {
		return runPreviewInteractive(opts)
	}

	code, err := runPreviewInternal(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func runPreviewInternal(stdout, stderr io.Writer, opts *previewOptions) (int, error) {
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

	renderer := preview.NewRenderer(previewWidth(stdout))
	fmt.Fprint(stdout, renderer.Render(result))
	return 0, nil
}

func runPreviewInteractive(opts *previewOptions) error {
	t, err := tier.Parse(opts.tierName)
	if err != nil {
		return err
	}

	cfg, absPath, err := loadDocument(opts.configPath)
	if err != nil {
		return fmt.Errorf("parsing configuration: %w", err)
	}

	m := preview.NewModel(absPath, cfg, t)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	return nil
}

// previewWidth reads the terminal width when stdout is a real terminal.
// Anything else (pipes, test buffers) falls back to the renderer default.
func previewWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if !term.IsTerminal(int(file.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
