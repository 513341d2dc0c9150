package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/flipsim/internal/domain"
	"github.com/alejandrodnm/flipsim/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultTrials   = 100000
	progressLogRate = time.Second
)

// Config contiene los parámetros de una corrida.
type Config struct {
	Trials     int
	FlipsTotal int
	Seed       uint64 // solo informativo; la semilla real vive en el SamplerSource
}

// DefaultConfig devuelve los valores de referencia: 100000 juegos de hasta 201 lanzamientos.
func DefaultConfig() Config {
	return Config{
		Trials:     defaultTrials,
		FlipsTotal: domain.DefaultFlipsTotal,
	}
}

// Runner ejecuta los juegos en secuencia y agrega los resultados.
type Runner struct {
	cfg      Config
	samplers ports.SamplerSource
	notifier ports.Notifier
	now      func() time.Time
}

// New crea un Runner con todas las dependencias inyectadas.
// notifier puede ser nil si solo interesa el Summary devuelto.
func New(cfg Config, samplers ports.SamplerSource, notifier ports.Notifier) *Runner {
	return &Runner{
		cfg:      cfg,
		samplers: samplers,
		notifier: notifier,
		now:      time.Now,
	}
}

// Run ejecuta la corrida completa, notifica el resumen y lo devuelve.
// El tiempo medido incluye juegos y agregación.
func (r *Runner) Run(ctx context.Context) (domain.Summary, error) {
	start := r.now()
	runID := uuid.New().String()
	log := slog.With("run_id", runID)

	log.Info("simulation starting",
		"trials", r.cfg.Trials,
		"flips_total", r.cfg.FlipsTotal,
		"seed", r.cfg.Seed,
	)

	outcomes := r.playAll(log)

	summary := domain.Summarize(outcomes)
	summary.RunID = runID
	summary.FlipsTotal = r.cfg.FlipsTotal
	summary.Seed = r.cfg.Seed
	summary.Elapsed = r.now().Sub(start)

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, summary); err != nil {
			return summary, fmt.Errorf("simulation.Run: notify: %w", err)
		}
	}

	log.Info("simulation complete",
		"trials", summary.Trials,
		"average_payoff", summary.AveragePayoff,
		"duration", summary.Elapsed.Round(time.Millisecond),
	)
	return summary, nil
}

// playAll juega cfg.Trials juegos en orden, cada uno con su propio sampler.
func (r *Runner) playAll(log *slog.Logger) []domain.TrialOutcome {
	trials := max(r.cfg.Trials, 0)
	outcomes := make([]domain.TrialOutcome, 0, trials)

	progress := rate.Sometimes{Interval: progressLogRate}
	for i := 0; i < trials; i++ {
		outcomes = append(outcomes, domain.PlayGame(r.samplers.NewSampler(), r.cfg.FlipsTotal))

		progress.Do(func() {
			log.Debug("simulation progress", "done", i+1, "trials", trials)
		})
	}
	return outcomes
}
