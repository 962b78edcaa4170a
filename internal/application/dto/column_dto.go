package dto

// ColumnResponse metadatos de una columna visible para el viewer.
type ColumnResponse struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Width    int      `json:"width,omitempty"`
	Custom   bool     `json:"custom,omitempty"`
	Required bool     `json:"required,omitempty"`
	Group    string   `json:"group,omitempty"`
	Editable bool     `json:"editable"`
}

// GroupSummaryResponse resumen de un grupo de presentación.
type GroupSummaryResponse struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Visible int      `json:"visible"`
	Total   int      `json:"total"`
}

// ColumnsResponse configuración de columnas para el viewer: visibles (ordenadas),
// conjunto editable implícito en cada columna y resumen de grupos.
type ColumnsResponse struct {
	Columns         []ColumnResponse       `json:"columns"`
	Groups          []GroupSummaryResponse `json:"groups"`
	CanCreateCustom bool                   `json:"can_create_custom"`
}

// CreateCustomColumnRequest alta de una columna personalizada.
type CreateCustomColumnRequest struct {
	Key string `json:"key"`
}
