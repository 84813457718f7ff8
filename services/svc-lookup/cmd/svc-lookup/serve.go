package main

import (
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/runtime"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the public and admin HTTP servers",
		Long: `Start the lookup service. Configuration is read from the environment
and, when enabled, overlaid with secrets from Vault.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			runtime.New().Run()
		},
	}
}
