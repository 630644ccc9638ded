package main

import (
	"fmt"

	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/observability"
	"github.com/jonathan/stylesense/internal/recommend"
	"github.com/jonathan/stylesense/internal/types"
	"github.com/spf13/cobra"
)

func newOutfitsCmd() *cobra.Command {
	var (
		categoryName string
		all          bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "Show the outfits of a category",
		Long:  "Show the primary outfit and named variants of a category, or of every category with --all.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := recommend.NewService(catalog.New(), recommend.NewSeededChooser(0))

			var results []types.CategoryOutfits
			switch {
			case all:
				tried, err := svc.Try()
				if err != nil {
					return err
				}
				results = tried
			case categoryName != "":
				category, err := types.ParseCategory(categoryName)
				if err != nil {
					return err
				}
				result, err := svc.ByCategory(category)
				if err != nil {
					return err
				}
				results = []types.CategoryOutfits{result}
			default:
				return fmt.Errorf("either --category or --all is required")
			}

			if asJSON {
				if all {
					return writeJSON(cmd.OutOrStdout(), results)
				}
				return writeJSON(cmd.OutOrStdout(), results[0])
			}
			printer := observability.NewPrinter(cmd.OutOrStdout())
			for _, r := range results {
				printer.PrintOutfits(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryName, "category", "c", "", "Category name (Casual, Party, Business, Summer, Winter, Sportswear)")
	cmd.Flags().BoolVar(&all, "all", false, "Show every category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	cmd.MarkFlagsMutuallyExclusive("category", "all")
	return cmd
}
