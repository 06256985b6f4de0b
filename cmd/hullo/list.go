package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/tier"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered widgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	registryPath, err := registry.DefaultPath()
	if err != nil {
		return newCommandError("list", "determining registry path", err, "Ensure your HOME directory is set correctly.")
	}

	statusPath, err := registry.DefaultCachePath()
	if err != nil {
		return newCommandError("list", "determining status cache path", err, "Ensure your HOME directory is set correctly.")
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return newCommandError("list", "loading widget registry", err, "Check registry file permissions and try again.")
	}

	widgets := reg.List()
	if len(widgets) == 0 {
		return renderEmptyList(cmd)
	}

	statusCache, err := registry.NewStatusCache(statusPath)
	if err != nil {
		return newCommandError("list", "loading status cache", err, "Check status cache file permissions and try again.")
	}

	enriched := enrichWidgetsWithStatus(widgets, statusCache)

	if opts.jsonOutput {
		return renderListJSON(cmd, enriched)
	}

	return renderListTable(cmd, enriched)
}

type widgetWithStatus struct {
	Widget registry.Widget
	Status registry.CachedStatus
}

func enrichWidgetsWithStatus(widgets []registry.Widget, cache *registry.StatusCache) []widgetWithStatus {
	enriched := make([]widgetWithStatus, len(widgets))

	for i, w := range widgets {
		status, ok := cache.Get(w.ID)
		if !ok {
			status = registry.CachedStatus{Status: registry.StatusUnknown}
		}

		enriched[i] = widgetWithStatus{
			Widget: w,
			Status: status,
		}
	}

	sort.Slice(enriched, func(i, j int) bool {
		return enriched[i].Widget.ID < enriched[j].Widget.ID
	})

	return enriched
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No widgets registered yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'hullo add <config-path>' to add your first widget.")
	return nil
}

func renderListTable(cmd *cobra.Command, widgets []widgetWithStatus) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tTIER\tSTATUS\tLAST CHECKED\tPATH")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, w := range widgets {
		statusStr := formatStatus(w.Status.Status, useUnicode)
		lastChecked := formatRelativeTime(w.Status.LastChecked)

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			w.Widget.ID,
			valueOrFallback(w.Widget.Name, "(no name)"),
			w.Widget.Tier,
			statusStr,
			lastChecked,
			w.Widget.Path,
		)
	}

	return writer.Flush()
}

type listJSONWidget struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Path         string                `json:"path"`
	Tier         tier.Tier             `json:"tier"`
	Description  string                `json:"description"`
	RegisteredAt time.Time             `json:"registered_at"`
	Status       registry.WidgetStatus `json:"status"`
	LastChecked  time.Time             `json:"last_checked"`
	Summary      string                `json:"summary"`
	Violations   int                   `json:"violations,omitempty"`
}

type listJSONPayload struct {
	Version string           `json:"version"`
	Count   int              `json:"count"`
	Widgets []listJSONWidget `json:"widgets"`
}

func renderListJSON(cmd *cobra.Command, widgets []widgetWithStatus) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(widgets),
		Widgets: make([]listJSONWidget, len(widgets)),
	}

	for i, w := range widgets {
		payload.Widgets[i] = listJSONWidget{
			ID:           w.Widget.ID,
			Name:         w.Widget.Name,
			Path:         w.Widget.Path,
			Tier:         w.Widget.Tier,
			Description:  w.Widget.Description,
			RegisteredAt: w.Widget.RegisteredAt,
			Status:       w.Status.Status,
			LastChecked:  w.Status.LastChecked,
			Summary:      w.Status.Summary,
			Violations:   w.Status.Violations,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatStatus(status registry.WidgetStatus, useUnicode bool) string {
	if useUnicode {
		return fmt.Sprintf("%s %s", status.Icon(), status.String())
	}

	return fmt.Sprintf("%s %s", status.IconFallback(), status.String())
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
