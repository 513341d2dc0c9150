package domain

// Sampler es una fuente de valores uniformes en [0, 1).
// *rand.Rand de math/rand/v2 la implementa directamente.
type Sampler interface {
	Float64() float64
}

const (
	// DefaultFlipsTotal es el tope de lanzamientos por juego.
	DefaultFlipsTotal = 201

	// StopImbalance: el juego termina cuando |caras - cruces| alcanza este valor.
	StopImbalance = 3

	// BasePayoff es el premio antes de descontar un punto por lanzamiento.
	BasePayoff = 8

	headsThreshold = 0.5
)

// TrialOutcome es el resultado inmutable de un juego.
type TrialOutcome struct {
	Payoff           int     // BasePayoff - flips jugados (puede ser negativo)
	ProbabilityHeads float64 // caras / flips al terminar
	ProbabilityTails float64 // cruces / flips al terminar
}

// FlipsPlayed reconstruye el número de lanzamientos a partir del payoff.
func (o TrialOutcome) FlipsPlayed() int {
	return BasePayoff - o.Payoff
}

// PlayGame simula un juego completo.
//
// Regla: se lanza la moneda (cara si r < 0.5) hasta que la diferencia
// absoluta entre caras y cruces llega a StopImbalance, o hasta flipsTotal
// lanzamientos. El lanzamiento que provoca la parada cuenta.
// Llegar al tope no es un error: el juego se corta sin marca alguna.
func PlayGame(s Sampler, flipsTotal int) TrialOutcome {
	heads, tails := 0, 0
	stillPlaying := true

	var probHeads, probTails float64

	for i := 0; i < flipsTotal; i++ {
		if !stillPlaying {
			break
		}

		if s.Float64() < headsThreshold {
			heads++
		} else {
			tails++
		}

		flips := float64(heads + tails)
		probHeads = float64(heads) / flips
		probTails = float64(tails) / flips

		stillPlaying = absInt(heads-tails) < StopImbalance
	}

	return TrialOutcome{
		Payoff:           BasePayoff - (heads + tails),
		ProbabilityHeads: probHeads,
		ProbabilityTails: probTails,
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
