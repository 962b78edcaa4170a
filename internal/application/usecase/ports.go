package usecase

import (
	"context"

	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// La escritura del registro y su entrada de auditoría se confirman juntas o
// ninguna; un fallo deja el estado persistido y el conjunto en memoria intactos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		records repository.BrandRecordRepository,
		audit repository.AuditRepository,
	) error) error
}

// Actor quién ejecuta la operación: identidad para la bitácora + contexto de
// proyección para las decisiones de visibilidad/editabilidad.
type Actor struct {
	UserID   string
	Username string
	Viewer   projection.Viewer
}
