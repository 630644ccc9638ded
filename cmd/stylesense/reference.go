package main

import (
	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/observability"
	"github.com/jonathan/stylesense/internal/types"
	"github.com/spf13/cobra"
)

// referenceOutput is the JSON shape of the reference command.
type referenceOutput struct {
	SkinTones []types.SkinTonePalette `json:"skinTones"`
	BodyTypes []types.BodyTypeGuide   `json:"bodyTypes"`
}

func newReferenceCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Show colors by skin tone and style guides by body type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := catalog.New()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), referenceOutput{
					SkinTones: store.Palettes(),
					BodyTypes: store.Guides(),
				})
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintReference(store.Palettes(), store.Guides())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
