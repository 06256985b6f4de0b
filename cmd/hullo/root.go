package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "hullo",
		Short:         "Hullo turns chat-widget configuration into deployable themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the dashboard
			if len(args) == 0 {
				return runDashboard()
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newSanitizeCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
