package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errInvalidIdentifiers makes classify exit non-zero without printing usage.
var errInvalidIdentifiers = errors.New("one or more identifiers are invalid")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidIdentifiers) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "svc-lookup",
		Short:         "IMEI and serial number lookup service",
		Long:          `Looks up devices by IMEI or serial number through a DHRU provider and records the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newClassifyCmd(), newCheckDigitCmd(), newVersionCmd())

	return root
}
