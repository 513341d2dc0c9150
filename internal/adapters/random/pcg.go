package random

// pcg.go: fuentes PCG de math/rand/v2, una por juego.
//
// Con semilla 0 cada juego arranca desde entropía del sistema. Con semilla
// != 0 una PCG maestra deriva las semillas de cada juego, y la corrida es
// reproducible.

import (
	"math/rand/v2"

	"github.com/alejandrodnm/flipsim/internal/domain"
)

// seedStream separa el stream de la PCG maestra del de los juegos.
const seedStream = 0x9e3779b97f4a7c15

// PCGSource implementa ports.SamplerSource.
type PCGSource struct {
	seed   uint64
	master *rand.Rand // nil cuando seed == 0
}

// NewPCGSource crea la fuente. seed == 0 significa entropía del sistema.
func NewPCGSource(seed uint64) *PCGSource {
	s := &PCGSource{seed: seed}
	if seed != 0 {
		s.master = rand.New(rand.NewPCG(seed, seed^seedStream))
	}
	return s
}

// Seed devuelve la semilla configurada (0 = no determinista).
func (s *PCGSource) Seed() uint64 {
	return s.seed
}

// NewSampler devuelve un generador nuevo e independiente.
// No es seguro para uso concurrente con semilla fija: la PCG maestra no tiene lock.
func (s *PCGSource) NewSampler() domain.Sampler {
	if s.master == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(s.master.Uint64(), s.master.Uint64()))
}
