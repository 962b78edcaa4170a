package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditActionCreate    = "create"
	AuditActionUpdate    = "update"
	AuditActionDelete    = "delete"
	AuditActionAddColumn = "add_column"
)

// FieldChange un cambio de valor en un campo (para la bitácora de auditoría).
type FieldChange struct {
	Key  string `json:"key"`
	From string `json:"from"`
	To   string `json:"to"`
}

// AuditEntry entrada de la bitácora: quién cambió qué y cuándo.
// Se persiste en la misma transacción que la escritura del registro.
type AuditEntry struct {
	ID        string
	RecordID  string
	UserID    string
	Username  string
	Action    string // create, update, delete, add_column
	Changes   []FieldChange
	CreatedAt time.Time
}
