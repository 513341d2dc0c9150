package ports

import "github.com/alejandrodnm/flipsim/internal/domain"

// SamplerSource entrega una fuente uniforme independiente por juego.
type SamplerSource interface {
	NewSampler() domain.Sampler
}
