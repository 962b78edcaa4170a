package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandops/allocation-api/internal/domain/allocation"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeFlagValue: contrato exhaustivo del par canónico {"Yes", ""}.
// Los datos legacy traen "yes", " YES ", "1", booleanos y nulos; todo lo que no
// sea "yes" (recortado, sin distinguir mayúsculas) degrada en silencio a "".
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeFlagValue_Exhaustivo(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want string
	}{
		{"yes canónico", "Yes", "Yes"},
		{"yes minúsculas", "yes", "Yes"},
		{"yes con espacios", " Yes ", "Yes"},
		{"yes mayúsculas con espacios", " YES ", "Yes"},
		{"no", "no", ""},
		{"string vacío", "", ""},
		{"nil", nil, ""},
		{"numérico uno", "1", ""},
		{"booleano true", true, ""},
		{"booleano false", false, ""},
		{"cero", "0", ""},
		{"entero", 1, ""},
		{"string arbitrario", "assigned", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, allocation.NormalizeFlagValue(tc.raw))
		})
	}
}

// La regla "falsy en bloque" es intencional: un valor legacy "0" o un booleano
// false se tratan igual que el string vacío, nunca como bandera encendida.
func TestNormalizeFlagValue_CeroYFalseSonUnset(t *testing.T) {
	assert.Equal(t, "", allocation.NormalizeFlagValue("0"))
	assert.Equal(t, "", allocation.NormalizeFlagValue(false))
	assert.Equal(t, "", allocation.NormalizeFlagValue(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Derive: para cada pareja, FA = nombre de fábrica sii la bandera normaliza a
// "Yes"; en cualquier otro caso FA = "". El resto de campos pasa sin tocar.
// ──────────────────────────────────────────────────────────────────────────────

func TestDerive_TodasLasParejas(t *testing.T) {
	table := allocation.Default()
	for _, p := range table.Pairings() {
		t.Run(p.FlagKey, func(t *testing.T) {
			on := table.Derive(map[string]any{p.FlagKey: "Yes"})
			assert.Equal(t, p.FactoryName, on[p.FAKey],
				"bandera en Yes debe producir el nombre de fábrica")

			off := table.Derive(map[string]any{p.FlagKey: ""})
			assert.Equal(t, "", off[p.FAKey],
				"bandera vacía debe producir FA vacío")
		})
	}
}

func TestDerive_BanderaConCasingLegacy(t *testing.T) {
	table := allocation.Default()
	out := table.Derive(map[string]any{"wuxi_moretti": " yes "})
	assert.Equal(t, "Wuxi", out["fa_wuxi"],
		"la derivación usa el valor normalizado, no el literal almacenado")
}

// Escenario del contrato: un FA obsoleto se recalcula siempre, tanto para
// encender como para apagar.
func TestDerive_RecalculaFAObsoletos(t *testing.T) {
	table := allocation.Default()
	in := map[string]any{
		"id":           "1",
		"wuxi_moretti": "Yes",
		"singfore":     "",
		"fa_wuxi":      "",
		"fa_singfore":  "Singfore", // obsoleto: la bandera ya no está encendida
	}
	out := table.Derive(in)
	assert.Equal(t, "Wuxi", out["fa_wuxi"])
	assert.Equal(t, "", out["fa_singfore"])
}

func TestDerive_Idempotente(t *testing.T) {
	table := allocation.Default()
	in := map[string]any{
		"all_brand":    "Nordic Trail",
		"wuxi_moretti": "Yes",
		"korea_mel":    "no",
		"heads_up":     nil,
	}
	once := table.Derive(in)
	twice := table.Derive(once)
	assert.Equal(t, once, twice, "aplicar dos veces debe dar lo mismo que una")
}

// Independencia de parejas: mutar solo una bandera nunca cambia los FA ajenos.
func TestDerive_ParejasIndependientes(t *testing.T) {
	table := allocation.Default()
	base := map[string]any{
		"wuxi_moretti": "",
		"hz_u_jump":    "Yes",
		"singfore":     "Yes",
	}
	before := table.Derive(base)

	mutated := map[string]any{
		"wuxi_moretti": "Yes", // solo cambia wuxi
		"hz_u_jump":    "Yes",
		"singfore":     "Yes",
	}
	after := table.Derive(mutated)

	assert.Equal(t, before["fa_hz_u"], after["fa_hz_u"])
	assert.Equal(t, before["fa_singfore"], after["fa_singfore"])
	assert.Equal(t, before["fa_korea_m"], after["fa_korea_m"])
	assert.Equal(t, "Wuxi", after["fa_wuxi"])
}

func TestDerive_NoMutaElMapaDeEntrada(t *testing.T) {
	table := allocation.Default()
	in := map[string]any{"wuxi_moretti": "Yes", "fa_wuxi": ""}
	_ = table.Derive(in)
	assert.Equal(t, "", in["fa_wuxi"], "Derive trabaja sobre una copia")
}

func TestDerive_CamposAjenosPasanSinTocar(t *testing.T) {
	table := allocation.Default()
	in := map[string]any{
		"all_brand":      "Nordic Trail",
		"classification": "A",
		"status":         "active",
	}
	out := table.Derive(in)
	assert.Equal(t, "Nordic Trail", out["all_brand"])
	assert.Equal(t, "A", out["classification"])
	assert.Equal(t, "active", out["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados de pertenencia y lookup
// ──────────────────────────────────────────────────────────────────────────────

func TestIsFlagColumn(t *testing.T) {
	table := allocation.Default()
	assert.True(t, table.IsFlagColumn("wuxi_moretti"))
	assert.True(t, table.IsFlagColumn("heads_up"))
	assert.False(t, table.IsFlagColumn("fa_wuxi"), "un campo FA no es bandera")
	assert.False(t, table.IsFlagColumn("all_brand"))
	assert.False(t, table.IsFlagColumn(""))
}

func TestFactoryName_LookupYMiss(t *testing.T) {
	table := allocation.Default()
	assert.Equal(t, "PT-UWU", table.FactoryName("fa_pt_uwu"))
	assert.Equal(t, "Heads Up", table.FactoryName("fa_heads_up"))
	assert.Equal(t, "", table.FactoryName("fa_inexistente"),
		"lookup-miss nunca lanza, devuelve vacío")
}

func TestNewTable_TablaInyectada(t *testing.T) {
	table := allocation.NewTable([]allocation.Pairing{
		{FlagKey: "acme_flag", FAKey: "fa_acme", FactoryName: "ACME"},
	})
	require.True(t, table.IsFlagColumn("acme_flag"))
	out := table.Derive(map[string]any{"acme_flag": "YES"})
	assert.Equal(t, "ACME", out["fa_acme"])
}
