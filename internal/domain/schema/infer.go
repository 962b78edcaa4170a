package schema

import (
	"sort"
	"strings"
)

// Umbrales de la inferencia de tipo para columnas personalizadas.
const (
	// maxSelectOptions máximo de valores distintos para inferir un select;
	// por encima de esto la columna se trata como texto libre.
	maxSelectOptions = 6
)

// booleanLiterals valores que, si son los únicos observados, infieren boolean.
var booleanLiterals = map[string]bool{
	"yes": true, "no": true, "true": true, "false": true,
}

// CustomKind variante inferida de una columna personalizada.
type CustomKind string

const (
	CustomText    CustomKind = "text"
	CustomBoolean CustomKind = "boolean"
	CustomSelect  CustomKind = "select"
)

// InferredType tipo inferido de una columna personalizada: variante etiquetada
// Text | Boolean | Select(opciones). Options solo aplica a Select.
type InferredType struct {
	Kind    CustomKind
	Options []string
}

// InferCustomType infiere el tipo de una columna a partir de los valores
// observados en todos los registros. Reglas, en orden:
//  1. Sin valores no vacíos → texto libre.
//  2. Todos los valores en {yes,no,true,false} (sin distinguir mayúsculas) → boolean.
//  3. Pocos valores distintos (≤ maxSelectOptions) y al menos un valor repetido
//     → select con los valores observados como opciones (orden alfabético).
//  4. En cualquier otro caso → texto libre.
func InferCustomType(values []any) InferredType {
	distinct := make(map[string]int)
	total := 0
	allBoolean := true
	for _, raw := range values {
		s := strings.TrimSpace(stringValue(raw))
		if s == "" {
			continue
		}
		total++
		distinct[s]++
		if !booleanLiterals[strings.ToLower(s)] {
			allBoolean = false
		}
	}
	if total == 0 {
		return InferredType{Kind: CustomText}
	}
	if allBoolean {
		return InferredType{Kind: CustomBoolean}
	}
	if len(distinct) <= maxSelectOptions && total > len(distinct) {
		options := make([]string, 0, len(distinct))
		for v := range distinct {
			options = append(options, v)
		}
		sort.Strings(options)
		return InferredType{Kind: CustomSelect, Options: options}
	}
	return InferredType{Kind: CustomText}
}

// InferCustomColumns descubre las columnas personalizadas a partir de los
// sub-mapas custom_fields de todos los registros y les infiere un tipo.
// Devuelve columnas ordenadas por clave para una presentación estable.
func InferCustomColumns(customSets []map[string]any) []Column {
	valuesByKey := make(map[string][]any)
	for _, set := range customSets {
		for k, v := range set {
			valuesByKey[k] = append(valuesByKey[k], v)
		}
	}
	keys := make([]string, 0, len(valuesByKey))
	for k := range valuesByKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]Column, 0, len(keys))
	for _, k := range keys {
		inferred := InferCustomType(valuesByKey[k])
		col := Column{Key: k, Label: labelFromKey(k), Custom: true}
		switch inferred.Kind {
		case CustomBoolean:
			col.Type = ColumnBoolean
		case CustomSelect:
			col.Type = ColumnSelect
			col.Options = inferred.Options
		default:
			col.Type = ColumnText
		}
		cols = append(cols, col)
	}
	return cols
}

// labelFromKey convierte snake_case en un label legible ("lead_time" → "Lead Time").
func labelFromKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func stringValue(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
