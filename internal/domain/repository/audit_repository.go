package repository

import "github.com/brandops/allocation-api/internal/domain/entity"

// AuditRepository define el puerto de persistencia para la bitácora de auditoría.
type AuditRepository interface {
	Create(entry *entity.AuditEntry) error
	List(limit, offset int) ([]*entity.AuditEntry, error)
	ListByRecord(recordID string, limit, offset int) ([]*entity.AuditEntry, error)
}
