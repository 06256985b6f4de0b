package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hullochat/hullo/internal/registry"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <widget-id>",
		Short: "Remove a widget from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, widgetID string, opts *removeOptions) error {
	if strings.TrimSpace(widgetID) == "" {
		return newCommandError("remove", "validating widget ID", errors.New("widget ID cannot be empty"), "Provide the widget ID you wish to remove.")
	}

	registryPath, err := registry.DefaultPath()
	if err != nil {
		return newCommandError("remove", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	statusPath, err := registry.DefaultCachePath()
	if err != nil {
		return newCommandError("remove", "determining status cache path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("remove", "loading registry", err, "Check registry file permissions and try again.")
	}

	widget, err := reg.Get(widgetID)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up widget %q", widgetID), err, "Run 'hullo list' to view registered widgets.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, widgetID, widget.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := reg.Remove(widgetID); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing widget %q", widgetID), err, "Verify the widget still exists using 'hullo list'.")
	}

	if err := reg.Save(); err != nil {
		return newCommandError("remove", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	statusCache, err := registry.NewStatusCache(statusPath)
	if err == nil {
		_ = statusCache.Invalidate(widgetID)
		_ = statusCache.Save()
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed widget '%s'\n", widgetID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nThe configuration document at %s was not deleted.\n", widget.Path)

	return nil
}

func confirmRemoval(cmd *cobra.Command, widgetID, widgetName string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove widget '%s' (%s) from registry? [y/N]: ", widgetID, widgetName)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
