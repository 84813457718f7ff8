package main

import (
	"encoding/json"
	"errors"

	"github.com/architeacher/imei-lookup/pkg/identifier"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var serialMinLength int

	cmd := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Classify identifiers offline",
		Long: `Classify each value as an IMEI or a serial number without calling the
provider. One JSON object is printed per value; the command fails when any
value is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := identifier.NewClassifier(identifier.WithSerialMinLength(serialMinLength))
			encoder := json.NewEncoder(cmd.OutOrStdout())
			allValid := true

			for _, raw := range args {
				id, err := classifier.Classify(raw)
				if err != nil && !errors.Is(err, identifier.ErrEmptyIdentifier) {
					return err
				}

				if err := encoder.Encode(id); err != nil {
					return err
				}

				allValid = allValid && id.Valid
			}

			if !allValid {
				return errInvalidIdentifiers
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&serialMinLength, "serial-min-length", identifier.DefaultSerialMinLength,
		"minimum serial number length, leading letter included")

	return cmd
}
