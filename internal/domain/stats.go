package domain

import (
	"math"
	"time"
)

// Summary agrega las estadísticas de una corrida completa.
// Se recalcula en cada corrida y no se persiste.
type Summary struct {
	RunID      string
	Trials     int
	FlipsTotal int
	Seed       uint64 // 0 = entropía del sistema
	Elapsed    time.Duration

	AveragePayoff float64
	MinPayoff     int
	MaxPayoff     int
	StdDev        float64 // desviación estándar poblacional (÷ n)
	Expectation   float64 // Σ(payoff·pH + payoff·pT) / n
	CummHeadsP    float64 // media de pH entre juegos
	CummTailsP    float64 // media de pT entre juegos

	// PayoffCounts cuenta cuántos juegos terminaron con cada payoff.
	PayoffCounts map[int]int
}

// Summarize reduce los resultados a las estadísticas de la corrida.
//
// No protege el caso vacío: con cero resultados las medias quedan en NaN
// (0/0) y min/max en 0.
func Summarize(outcomes []TrialOutcome) Summary {
	n := float64(len(outcomes))
	sum := Summary{
		Trials:       len(outcomes),
		PayoffCounts: make(map[int]int),
	}

	var totalPayoff float64
	for i, o := range outcomes {
		totalPayoff += float64(o.Payoff)
		if i == 0 || o.Payoff < sum.MinPayoff {
			sum.MinPayoff = o.Payoff
		}
		if i == 0 || o.Payoff > sum.MaxPayoff {
			sum.MaxPayoff = o.Payoff
		}
		sum.PayoffCounts[o.Payoff]++
	}
	sum.AveragePayoff = totalPayoff / n

	var variance float64
	for _, o := range outcomes {
		d := float64(o.Payoff) - sum.AveragePayoff
		variance += d * d
	}
	variance /= n
	sum.StdDev = math.Sqrt(variance)

	// Las probabilidades de cada juego suman 1, así que esto coincide con
	// AveragePayoff salvo redondeo. Se calcula igualmente término a término.
	var expectation float64
	for _, o := range outcomes {
		p := float64(o.Payoff)
		expectation += p * o.ProbabilityHeads
		expectation += p * o.ProbabilityTails
	}
	sum.Expectation = expectation / n

	var cummHeads, cummTails float64
	for _, o := range outcomes {
		cummHeads += o.ProbabilityHeads
		cummTails += o.ProbabilityTails
	}
	sum.CummHeadsP = cummHeads / n
	sum.CummTailsP = cummTails / n

	return sum
}

// ElapsedSeconds devuelve los segundos completos transcurridos (truncados).
func (s Summary) ElapsedSeconds() int64 {
	return s.Elapsed.Milliseconds() / 1000
}
