package dto

import (
	"time"

	"github.com/brandops/allocation-api/internal/domain/entity"
)

// AuditEntryResponse una entrada de la bitácora.
type AuditEntryResponse struct {
	ID        string               `json:"id"`
	RecordID  string               `json:"record_id,omitempty"`
	UserID    string               `json:"user_id"`
	Username  string               `json:"username"`
	Action    string               `json:"action"`
	Changes   []entity.FieldChange `json:"changes,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// AuditListResponse listado paginado de la bitácora.
type AuditListResponse struct {
	Items []AuditEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
