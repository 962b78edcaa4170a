// Package textutil utilidades de normalización de texto para búsquedas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un string para comparación de búsqueda: minúsculas y sin
// diacríticos ("Montaña" → "montana"). Los nombres de marca legacy mezclan
// acentos y casing; la búsqueda no debe distinguirlos.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// ContainsFold indica si needle aparece en haystack ignorando casing y acentos.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
