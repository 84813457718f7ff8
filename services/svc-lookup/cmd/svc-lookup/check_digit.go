package main

import (
	"fmt"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/spf13/cobra"
)

func newCheckDigitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-digit <body>...",
		Short: "Complete 14 digit IMEI bodies with their Luhn check digit",
		Long: `Print the full 15 digit IMEI for every 14 digit body, one per line.
Spaces and dashes in the body are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				body := identifier.Normalize(raw)

				digit, err := identifier.CheckDigit(body)
				if err != nil {
					return fmt.Errorf("%q: %w", raw, err)
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%c\n", body, digit); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
