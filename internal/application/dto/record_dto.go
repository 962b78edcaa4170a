package dto

import "time"

// RecordResponse un registro de marca proyectado para el viewer.
type RecordResponse struct {
	ID           string         `json:"id"`
	Fields       map[string]any `json:"fields"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	UpdatedBy    string         `json:"updated_by,omitempty"`
}

// RecordListResponse listado de registros proyectados.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Total int              `json:"total"`
}

// ListRecordsQuery parámetros de listado: búsqueda, orden y preferencia de inactivos.
// El filtro de asignación por fábrica se evalúa SIEMPRE antes que Search.
type ListRecordsQuery struct {
	Search       string `query:"search"`
	SortBy       string `query:"sort_by"`
	Order        string `query:"order"` // asc | desc
	ShowInactive bool   `query:"show_inactive"`
}

// CreateRecordRequest datos de un registro nuevo.
type CreateRecordRequest struct {
	Fields       map[string]any `json:"fields"`
	CustomFields map[string]any `json:"custom_fields"`
}

// UpdateRecordRequest edición parcial: solo las claves presentes se aplican.
type UpdateRecordRequest struct {
	Fields       map[string]any `json:"fields"`
	CustomFields map[string]any `json:"custom_fields"`
}
