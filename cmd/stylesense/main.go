// Package main provides the stylesense CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stylesense",
		Short:         "StyleSense outfit recommendations",
		Long:          "StyleSense serves outfit suggestions by category or by body and weather attributes, over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newCategoriesCmd(),
		newOutfitsCmd(),
		newRecommendCmd(),
		newReferenceCmd(),
		newValidateCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
