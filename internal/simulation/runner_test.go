package simulation_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alejandrodnm/flipsim/internal/adapters/random"
	"github.com/alejandrodnm/flipsim/internal/domain"
	"github.com/alejandrodnm/flipsim/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockNotifier struct {
	notified []domain.Summary
	err      error
}

func (m *mockNotifier) Notify(_ context.Context, s domain.Summary) error {
	m.notified = append(m.notified, s)
	return m.err
}

// H T H T H H H: cara gana por 3 en el séptimo lanzamiento.
var sevenFlips = []float64{0.1, 0.9, 0.1, 0.9, 0.1, 0.1, 0.1}

func TestDefaultConfig(t *testing.T) {
	cfg := simulation.DefaultConfig()
	assert.Equal(t, 100000, cfg.Trials)
	assert.Equal(t, 201, cfg.FlipsTotal)
}

func TestRunner_SingleTrialEndToEnd(t *testing.T) {
	src := random.NewSequenceSource(sevenFlips...)
	notifier := &mockNotifier{}
	r := simulation.New(simulation.Config{Trials: 1, FlipsTotal: 201}, src, notifier)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Trials)
	assert.Equal(t, 1.0, summary.AveragePayoff)
	assert.Equal(t, 1, summary.MinPayoff)
	assert.Equal(t, 1, summary.MaxPayoff)
	assert.Equal(t, 0.0, summary.StdDev)
	assert.InDelta(t, 1.0, summary.Expectation, 1e-15)
	assert.Equal(t, 5.0/7.0, summary.CummHeadsP)
	assert.Equal(t, 2.0/7.0, summary.CummTailsP)
	assert.Equal(t, 201, summary.FlipsTotal)
	assert.NotEmpty(t, summary.RunID)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, summary, notifier.notified[0])

	require.Len(t, src.Issued(), 1)
	assert.Equal(t, 7, src.Issued()[0].Draws())
}

func TestRunner_EachTrialGetsItsOwnSampler(t *testing.T) {
	src := random.NewSequenceSource(sevenFlips...)
	r := simulation.New(simulation.Config{Trials: 25, FlipsTotal: 201}, src, nil)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, src.Issued(), 25)
	assert.Equal(t, map[int]int{1: 25}, summary.PayoffCounts)
	assert.InDelta(t, 1.0, summary.AveragePayoff, 1e-12)
}

func TestRunner_TruncatedTrials(t *testing.T) {
	src := random.NewSequenceSource(0.1, 0.9)
	r := simulation.New(simulation.Config{Trials: 3, FlipsTotal: 10}, src, nil)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, -2, summary.MinPayoff)
	assert.Equal(t, -2, summary.MaxPayoff)
	assert.Equal(t, 0.5, summary.CummHeadsP)
}

func TestRunner_ZeroTrialsYieldsNaN(t *testing.T) {
	r := simulation.New(simulation.Config{Trials: 0, FlipsTotal: 201}, random.NewPCGSource(1), nil)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(summary.AveragePayoff))
	assert.True(t, math.IsNaN(summary.Expectation))
}

func TestRunner_SameSeedSameStatistics(t *testing.T) {
	cfg := simulation.Config{Trials: 2000, FlipsTotal: 201, Seed: 2024}

	a, err := simulation.New(cfg, random.NewPCGSource(cfg.Seed), nil).Run(context.Background())
	require.NoError(t, err)
	b, err := simulation.New(cfg, random.NewPCGSource(cfg.Seed), nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.AveragePayoff, b.AveragePayoff)
	assert.Equal(t, a.StdDev, b.StdDev)
	assert.Equal(t, a.PayoffCounts, b.PayoffCounts)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, uint64(2024), a.Seed)
}

func TestRunner_Invariants(t *testing.T) {
	cfg := simulation.Config{Trials: 5000, FlipsTotal: 201, Seed: 31337}
	s, err := simulation.New(cfg, random.NewPCGSource(cfg.Seed), nil).Run(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, s.AveragePayoff, s.Expectation, 1e-9)
	assert.InDelta(t, 1.0, s.CummHeadsP+s.CummTailsP, 1e-9)
	assert.LessOrEqual(t, float64(s.MinPayoff), s.AveragePayoff)
	assert.GreaterOrEqual(t, float64(s.MaxPayoff), s.AveragePayoff)
	assert.GreaterOrEqual(t, s.Elapsed, time.Duration(0))
}

func TestRunner_NotifierError(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("stdout closed")}
	r := simulation.New(simulation.Config{Trials: 1, FlipsTotal: 201}, random.NewSequenceSource(sevenFlips...), notifier)

	summary, err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout closed")
	assert.Equal(t, 1, summary.Trials)
}
