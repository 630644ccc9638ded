package main

import (
	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/observability"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List outfit categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories := catalog.New().ListCategories()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintCategories(categories)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
