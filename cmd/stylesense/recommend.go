package main

import (
	"time"

	"github.com/jonathan/stylesense/internal/catalog"
	"github.com/jonathan/stylesense/internal/config"
	"github.com/jonathan/stylesense/internal/observability"
	"github.com/jonathan/stylesense/internal/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var (
		flags      config.Config
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest an outfit from body and weather attributes",
		Long: `Suggest an outfit from height, weight, hip size, skin tone, body type and weather.
Values may come from flags or a JSON config file; flags win. Use --seed for a
reproducible pick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags
			if configPath != "" {
				fileCfg, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}
				if err := fileCfg.Validate(); err != nil {
					return err
				}
				opts = flags.MergeWithDefaults(*fileCfg)
				if !cmd.Flags().Changed("json") {
					opts.JSON = fileCfg.JSON
				}
				if !cmd.Flags().Changed("verbose") {
					opts.Verbose = fileCfg.Verbose
				}
			}

			seed := opts.Seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			store := catalog.New()
			svc := recommend.NewService(store, recommend.NewSeededChooser(seed))
			suggestion := svc.ByAttributes(opts.Attributes())

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), suggestion)
			}

			printer := observability.NewPrinter(cmd.OutOrStdout())
			printer.PrintSuggestion(suggestion)
			if opts.Verbose {
				printer.PrintReference(store.Palettes(), store.Guides())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Height, "height", "", "Height (free text, e.g. 170)")
	f.StringVar(&flags.Weight, "weight", "", "Weight (free text)")
	f.StringVar(&flags.HipSize, "hip-size", "", "Hip size (free text)")
	f.StringVar(&flags.SkinTone, "skin-tone", "", "Skin tone (Fair, Medium, Dark)")
	f.StringVar(&flags.BodyType, "body-type", "", "Body type (Slim, Athletic, Average, Plus Size)")
	f.StringVar(&flags.Weather, "weather", "", "Weather (free text)")
	f.Uint64Var(&flags.Seed, "seed", 0, "Random seed for a reproducible pick (0 = random)")
	f.BoolVar(&flags.JSON, "json", false, "Emit JSON")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "Also print the reference tables")
	f.StringVar(&configPath, "config", "", "Path to a JSON config file with default attributes")

	return cmd
}
