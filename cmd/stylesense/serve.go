package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jonathan/stylesense/internal/config"
	"github.com/jonathan/stylesense/internal/db"
	"github.com/jonathan/stylesense/internal/kv"
	"github.com/jonathan/stylesense/internal/logging"
	"github.com/jonathan/stylesense/internal/recommend"
	"github.com/jonathan/stylesense/internal/server"
	"github.com/jonathan/stylesense/internal/server/ratelimit"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing the outfit catalog, recommendations and accounts.
Accounts are kept in Postgres when DATABASE_URL is set and in memory otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, port, cmd.Flags().Changed("port"))
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, port int, portFlagSet bool) error {
	env, err := config.LoadServerEnv()
	if err != nil {
		return err
	}
	logging.Setup(env.LogFormat, env.LogLevel)

	if !portFlagSet {
		port = env.Port
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	rateLimitConfig, err := ratelimit.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load rate limit config: %w", err)
	}

	store, closeStore, err := openStore(ctx, env.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	var chooser recommend.Chooser
	if env.RandomSeed != 0 {
		chooser = recommend.NewSeededChooser(env.RandomSeed)
		log.Info().Uint64("seed", env.RandomSeed).Msg("using fixed recommendation seed")
	}

	srv, err := server.New(server.Config{
		Port:      port,
		Store:     store,
		Chooser:   chooser,
		Password:  passwordConfig,
		JWT:       jwtConfig,
		RateLimit: rateLimitConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(ctx)
}

// openStore picks the account store: Postgres when databaseURL is set, memory otherwise.
func openStore(ctx context.Context, databaseURL string) (kv.Store, func(), error) {
	if databaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set; accounts are kept in memory and lost on restart")
		return kv.NewMemory(), func() {}, nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}
	log.Info().Msg("connected to database")
	return database, database.Close, nil
}
