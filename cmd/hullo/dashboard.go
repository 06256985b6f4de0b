package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/tui/dashboard"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard to view and manage all registered widgets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}

	return cmd
}

func runDashboard() error {
	registryPath, err := registry.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to determine registry path: %w", err)
	}

	cachePath, err := registry.DefaultCachePath()
	if err != nil {
		return fmt.Errorf("failed to determine status cache path: %w", err)
	}

	reg, err := registry.NewRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	cache, err := registry.NewStatusCache(cachePath)
	if err != nil {
		return fmt.Errorf("failed to load status cache: %w", err)
	}

	widgets := reg.List()

	m := dashboard.NewModel(widgets, reg, cache)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}
