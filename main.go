package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gridlearn/config"
	"gridlearn/engine"
	"gridlearn/experiments/metrics"
	"gridlearn/meta"
	"gridlearn/store"
	"gridlearn/visualization"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
}

func parseConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("gridlearn", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file, overridden by flags")
	cfg := config.Default()
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return cfg, err
		}
		// Flags take precedence over the file
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func run(ctx context.Context, cfg config.Config) error {
	log.Info().Msgf("%s %s", meta.APPLICATION_NAME, meta.APPLICATION_VERSION)

	if cfg.Seed == 0 {
		// Stored in setup.json so the session can be replayed
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	session := uuid.New()
	log.Info().Str("session", session.String()).Uint64("seed", cfg.Seed).Msg("starting session")

	st := store.NewFileStore(cfg.StatePath, cfg.Grid.Width, cfg.Grid.Height)
	if _, err := st.LoadOrCreate(); err != nil {
		return err
	}

	options := []engine.Option{}
	collector := metrics.NewCollector()
	options = append(options, engine.WithMetrics(collector))
	if cfg.EventLogPath != "" {
		events, err := store.OpenEventLog(cfg.EventLogPath, session)
		if err != nil {
			return err
		}
		defer events.Close()
		options = append(options, engine.WithEventLog(events))
	}

	summary, err := engine.LocalEngine(cfg, st, rng, options...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Warn().Msgf("session interrupted after %d rounds", summary.Rounds)
	} else if err != nil {
		return err
	}

	log.Info().
		Int("rounds", summary.Rounds).
		Int("explorations", summary.Explorations).
		Str("meanDistance", fmt.Sprintf("%.2f", summary.MeanDistance)).
		Float64("medianDistance", summary.MedianDistance).
		Int("best", summary.BestDistance).
		Int("worst", summary.WorstDistance).
		Msg("session summary")

	return writeResults(cfg, session, summary, collector.History())
}

func writeResults(cfg config.Config, session uuid.UUID, summary metrics.SessionMetric, history []metrics.RoundMetric) error {
	if cfg.ExperimentsDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.ExperimentsDir, "sessions", session)
	if err != nil {
		return fmt.Errorf("failed to create session writer: %w", err)
	}

	if err := writer.WriteSetup(session, cfg, summary); err != nil {
		return err
	}
	log.Info().Msg("stored session setup")

	if err := writer.WriteRoundRecords(history); err != nil {
		return err
	}
	log.Info().Msg("stored round records")

	if !cfg.Plot || len(history) == 0 {
		return nil
	}
	if _, err := visualization.PlotLearning(writer.Dir(), history); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(writer.Dir(), "learning.html"))
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := visualization.RenderChart(f, history); err != nil {
		return err
	}
	log.Info().Msgf("stored plots in %s", writer.Dir())
	return nil
}
