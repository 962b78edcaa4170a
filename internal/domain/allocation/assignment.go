// Package allocation implementa el motor de asignación de fábricas: deriva los
// campos FA ("factory assignment") de cada registro a partir de sus campos bandera.
// La tabla de parejas bandera→FA→fábrica es configuración inmutable que se inyecta
// al construir la tabla; funciones puras, sin estado persistente.
package allocation

import (
	"fmt"
	"strings"
)

// FlagYes es el único valor canónico "encendido" de un campo bandera.
// Todo lo demás (vacío, "0", false, nil, casing inconsistente) normaliza a "".
const FlagYes = "Yes"

// Pairing una pareja fija campo bandera → campo FA → nombre de fábrica.
type Pairing struct {
	FlagKey     string
	FAKey       string
	FactoryName string
}

// Table tabla de parejas con índices por clave. Inmutable después de construida.
type Table struct {
	pairs  []Pairing
	byFlag map[string]Pairing
	byFA   map[string]Pairing
}

// NewTable construye la tabla a partir de las parejas dadas.
func NewTable(pairs []Pairing) Table {
	t := Table{
		pairs:  make([]Pairing, len(pairs)),
		byFlag: make(map[string]Pairing, len(pairs)),
		byFA:   make(map[string]Pairing, len(pairs)),
	}
	copy(t.pairs, pairs)
	for _, p := range pairs {
		t.byFlag[p.FlagKey] = p
		t.byFA[p.FAKey] = p
	}
	return t
}

// Default devuelve la tabla con las seis parejas conocidas del sistema.
func Default() Table {
	return NewTable([]Pairing{
		{FlagKey: "wuxi_moretti", FAKey: "fa_wuxi", FactoryName: "Wuxi"},
		{FlagKey: "hz_u_jump", FAKey: "fa_hz_u", FactoryName: "HZ-U"},
		{FlagKey: "pt_u_jump", FAKey: "fa_pt_uwu", FactoryName: "PT-UWU"},
		{FlagKey: "korea_mel", FAKey: "fa_korea_m", FactoryName: "Korea-M"},
		{FlagKey: "singfore", FAKey: "fa_singfore", FactoryName: "Singfore"},
		{FlagKey: "heads_up", FAKey: "fa_heads_up", FactoryName: "Heads Up"},
	})
}

// Pairings devuelve una copia de las parejas (en orden de declaración).
func (t Table) Pairings() []Pairing {
	out := make([]Pairing, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// IsFlagColumn indica si la clave es un campo bandera de la tabla.
// Los callers lo usan para decidir si una edición de celda dispara re-derivación.
func (t Table) IsFlagColumn(key string) bool {
	_, ok := t.byFlag[key]
	return ok
}

// IsFAColumn indica si la clave es un campo FA derivado.
func (t Table) IsFAColumn(key string) bool {
	_, ok := t.byFA[key]
	return ok
}

// FactoryName devuelve el nombre de fábrica asociado a un campo FA, o "" si la
// clave no pertenece a la tabla.
func (t Table) FactoryName(faKey string) string {
	return t.byFA[faKey].FactoryName
}

// Derive recalcula todos los campos FA a partir de sus banderas y devuelve una
// copia del mapa; los campos fuera de la tabla pasan sin tocar. Idempotente:
// ninguna pareja lee la salida de otra, el orden no afecta el resultado.
func (t Table) Derive(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+len(t.pairs))
	for k, v := range fields {
		out[k] = v
	}
	for _, p := range t.pairs {
		if NormalizeFlagValue(fields[p.FlagKey]) == FlagYes {
			out[p.FAKey] = p.FactoryName
		} else {
			out[p.FAKey] = ""
		}
	}
	return out
}

// NormalizeFlagValue normaliza cualquier valor de bandera al par canónico {"Yes", ""}.
// Devuelve "Yes" solo si la forma string del valor, recortada y en minúsculas, es "yes".
// nil, "", "0", false, números y cualquier otro string degradan en silencio a "".
// Los datos legacy traen casing y espacios inconsistentes; esta normalización se
// aplica en toda escritura de bandera y en toda comparación de ordenamiento.
func NormalizeFlagValue(raw any) string {
	if raw == nil {
		return ""
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	if strings.EqualFold(strings.TrimSpace(s), "yes") {
		return FlagYes
	}
	return ""
}
