package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"kitchen-order-service/internal/adapters/csvsource"
	"kitchen-order-service/internal/adapters/repositories"
	"kitchen-order-service/internal/config"
	"kitchen-order-service/internal/platform/obs"
	"kitchen-order-service/internal/report"
	"kitchen-order-service/internal/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the composition root: it reads settings, runs the admission pass
// over the CSV file and prints diagnostics followed by the status lines.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Caller().Logger()

	csvFile := flag.String("csv_file", "", "CSV order file")
	ceiling := flag.Int("ceiling", 20, "admission ceiling in minutes (overrides ADMISSION_CEILING_MINUTES)")
	store := flag.String("store", "", "archive decisions to sqlite or postgres (overrides DECISION_STORE)")
	flag.Parse()

	var overrides config.Overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ceiling":
			overrides.CeilingMinutes = ceiling
		case "store":
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

	path := *csvFile
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: kitchen [-ceiling N] [-store sqlite|postgres] -csv_file <orders.csv>")
		log.Fatal().Msg("no csv file has been specified")
	}

	ctx, runID := obs.WithRunID(context.Background())
	log.Info().Str("run_id", runID).Str("csv_file", path).Int("ceiling", settings.CeilingMinutes).Msg("run started")

	results, err := services.ProcessOrders(ctx, csvsource.NewFileSource(path), settings.CeilingMinutes)
	if err != nil {
		log.Fatal().Err(err).Str("run_id", runID).Msg("processing orders failed")
	}

	if settings.Store != "" {
		if err := archive(ctx, settings, results); err != nil {
			log.Fatal().Err(err).Str("run_id", runID).Msg("archiving decisions failed")
		}
	}

	if err := report.WriteRun(os.Stdout, results); err != nil {
		log.Fatal().Err(err).Msg("writing report failed")
	}
}

func archive(ctx context.Context, settings config.Settings, results []services.GroupResult) error {
	conn, dialect, err := repositories.OpenStore(settings.Store, settings.DBPath, settings.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn, dialect); err != nil {
		return err
	}

	repo, err := repositories.NewDecisionRepository(conn, dialect)
	if err != nil {
		return err
	}

	if err := services.ArchiveDecisions(ctx, repo, results, time.Now()); err != nil {
		return err
	}

	log.Info().Str("run_id", obs.RunID(ctx)).Str("store", settings.Store).Msg("decisions archived")
	return nil
}
