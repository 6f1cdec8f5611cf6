package main

import (
	"flag"

	"kitchen-order-service/internal/adapters/repositories"
	"kitchen-order-service/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// dbtool prepares the decision archive schema ahead of a run.
func main() {
	store := flag.String("store", "", "sqlite or postgres (overrides DECISION_STORE)")
	flag.Parse()

	var overrides config.Overrides
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "store" {
			overrides.Store = store
		}
	})

	envErr := config.LoadEnv()
	settings, err := config.Load(overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}
	zerolog.SetGlobalLevel(settings.LogLevel)
	config.ReportEnv(envErr)

	if settings.Store == "" {
		log.Fatal().Msg("DECISION_STORE or -store is required")
	}

	conn, dialect, err := repositories.OpenStore(settings.Store, settings.DBPath, settings.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open store failed")
	}
	defer conn.Close()

	log.Info().Str("store", settings.Store).Msg("initializing decision schema")
	if err := repositories.InitSchema(conn, dialect); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("schema ready")
}
