package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate outfit records against the outfit record schema",
		Long:  "Validate every built-in catalog record, or a single outfit record JSON file with --file, against the embedded JSON schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if file != "" {
				if err := schemas.ValidateRecordFile(file); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ %s is a valid outfit record\n", file)
				return nil
			}

			records := catalog.New().All()
			if errs := schemas.ValidateRecords(records); len(errs) > 0 {
				for _, err := range errs {
					fmt.Fprintf(out, "✗ %v\n", err)
				}
				return fmt.Errorf("%d of %d catalog records failed validation: %w", len(errs), len(records), errors.Join(errs...))
			}
			fmt.Fprintf(out, "✓ all %d catalog records are valid\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to an outfit record JSON file")
	return cmd
}
