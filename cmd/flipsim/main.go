package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/alejandrodnm/flipsim/config"
	"github.com/alejandrodnm/flipsim/internal/adapters/notify"
	"github.com/alejandrodnm/flipsim/internal/adapters/random"
	"github.com/alejandrodnm/flipsim/internal/simulation"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file (optional)")
	trials := flag.Int("trials", 0, "number of trials (overrides config)")
	flips := flag.Int("flips", 0, "max flips per trial (overrides config)")
	seed := flag.Uint64("seed", 0, "PRNG seed; 0 = fresh entropy (overrides config)")
	table := flag.Bool("table", false, "print statistics and payoff distribution as tables")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	applyFlags(cfg, *trials, *flips, *seed, *table)
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(os.Stderr, cfg.Log)

	simCfg := simulation.DefaultConfig()
	simCfg.Trials = cfg.Simulation.Trials
	simCfg.FlipsTotal = cfg.Simulation.FlipsTotal
	simCfg.Seed = cfg.Simulation.Seed

	runner := simulation.New(
		simCfg,
		random.NewPCGSource(cfg.Simulation.Seed),
		notify.NewConsole(cfg.TableOutput()),
	)

	if _, err := runner.Run(context.Background()); err != nil {
		// Un fallo de escritura en stdout no cambia el código de salida.
		slog.Warn("could not print summary", "err", err)
	}
}

// applyFlags pisa la configuración con los flags que se hayan pasado.
func applyFlags(cfg *config.Config, trials, flips int, seed uint64, table bool) {
	if trials > 0 {
		cfg.Simulation.Trials = trials
	}
	if flips > 0 {
		cfg.Simulation.FlipsTotal = flips
	}
	if seed != 0 {
		cfg.Simulation.Seed = seed
	}
	if table {
		cfg.Output.Format = "table"
	}
}

func setupLogger(w io.Writer, cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
