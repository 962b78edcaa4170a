package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los cambios de campo se guardan como arreglo JSONB.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *AuditRepo) Create(entry *entity.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO audit_entries (id, record_id, user_id, username, action, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, nullable(entry.RecordID), entry.UserID, entry.Username,
		entry.Action, entry.Changes, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve la bitácora completa paginada, más reciente primero.
func (r *AuditRepo) List(limit, offset int) ([]*entity.AuditEntry, error) {
	query := auditSelect + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryEntries(query, limit, offset)
}

// ListByRecord devuelve la bitácora de un registro, más reciente primero.
func (r *AuditRepo) ListByRecord(recordID string, limit, offset int) ([]*entity.AuditEntry, error) {
	query := auditSelect + ` WHERE record_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryEntries(query, recordID, limit, offset)
}

const auditSelect = `
	SELECT id, COALESCE(record_id, ''), user_id, username, action, changes, created_at
	FROM audit_entries`

func (r *AuditRepo) queryEntries(query string, args ...any) ([]*entity.AuditEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.RecordID, &e.UserID, &e.Username, &e.Action, &e.Changes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
