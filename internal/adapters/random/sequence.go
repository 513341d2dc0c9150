package random

import "github.com/alejandrodnm/flipsim/internal/domain"

// Sequence es un sampler guionizado: devuelve los valores en orden y vuelve
// a empezar al agotarlos. Sirve para reproducir juegos exactos.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence crea un Sequence. Sin valores entra en pánico, igual que un
// índice fuera de rango.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("random.NewSequence: no values")
	}
	return &Sequence{values: values}
}

// Float64 devuelve el siguiente valor del guion.
func (s *Sequence) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Draws devuelve cuántos valores se han consumido.
func (s *Sequence) Draws() int {
	return s.pos
}

// SequenceSource entrega el mismo guion (desde el principio) a cada juego.
type SequenceSource struct {
	values []float64
	issued []*Sequence
}

// NewSequenceSource crea una fuente guionizada.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// NewSampler implementa ports.SamplerSource.
func (s *SequenceSource) NewSampler() domain.Sampler {
	seq := NewSequence(s.values...)
	s.issued = append(s.issued, seq)
	return seq
}

// Issued devuelve los samplers entregados hasta ahora, en orden.
func (s *SequenceSource) Issued() []*Sequence {
	return s.issued
}
