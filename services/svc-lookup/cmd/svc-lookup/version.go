package main

import (
	"fmt"

	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of svc-lookup",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "svc-lookup version %s\n", orUnknown(config.ServiceVersion))

			if showFull, _ := cmd.Flags().GetBool("full"); showFull {
				fmt.Fprintf(cmd.OutOrStdout(), "Git commit: %s\n", orUnknown(config.CommitSHA))
			}
		},
	}

	cmd.Flags().BoolP("full", "f", false, "Display full version information")

	return cmd
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}

	return value
}
