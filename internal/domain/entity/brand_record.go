package entity

import "time"

// BrandRecord representa un registro de asignación de marca.
// Fields contiene las columnas declaradas en el catálogo (valores string, bool o nil,
// tal como llegan del almacenamiento). CustomFields es el sub-mapa abierto de columnas
// dinámicas descubiertas desde los datos.
type BrandRecord struct {
	ID           string
	Fields       map[string]any
	CustomFields map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UpdatedBy    string
}

// Clone devuelve una copia profunda del registro (los mapas no se comparten).
// Los motores de derivación y proyección trabajan siempre sobre copias para que
// un fallo de escritura nunca deje mutado el conjunto en memoria.
func (r *BrandRecord) Clone() *BrandRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	out.CustomFields = make(map[string]any, len(r.CustomFields))
	for k, v := range r.CustomFields {
		out.CustomFields[k] = v
	}
	return &out
}
