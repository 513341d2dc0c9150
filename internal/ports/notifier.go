package ports

import (
	"context"

	"github.com/alejandrodnm/flipsim/internal/domain"
)

// Notifier presenta el resumen de una corrida al usuario.
type Notifier interface {
	// Notify muestra las estadísticas agregadas.
	// En la implementación de consola, imprime las líneas etiquetadas o una tabla.
	Notify(ctx context.Context, summary domain.Summary) error
}
