package projection

import "github.com/brandops/allocation-api/internal/domain/schema"

// Identity una identidad de fábrica: la cuenta del viewer y los grupos FA que
// posee. Una identidad "fusionada" posee dos grupos simultáneamente y se evalúa
// con semántica OR generalizada sobre todos sus campos FA.
type Identity struct {
	Account      string
	FAKeys       []string
	OwnedColumns []string
}

// Registry tabla estática identidad→columnas. Inmutable después de construida.
type Registry struct {
	byAccount map[string]Identity
}

// NewRegistry construye el registro a partir de la lista de identidades.
func NewRegistry(list []Identity) Registry {
	r := Registry{byAccount: make(map[string]Identity, len(list))}
	for _, id := range list {
		r.byAccount[id.Account] = id
	}
	return r
}

// Lookup busca la identidad de una cuenta. Una cuenta sin entrada no lanza:
// devuelve la identidad cero (no posee ninguna columna de fábrica) y false.
func (r Registry) Lookup(account string) (Identity, bool) {
	id, ok := r.byAccount[account]
	return id, ok
}

// identityFor une familias en una sola identidad (cuenta simple o fusionada).
func identityFor(account string, fams ...schema.Family) Identity {
	id := Identity{Account: account}
	for _, f := range fams {
		id.FAKeys = append(id.FAKeys, f.FAKey)
		id.OwnedColumns = append(id.OwnedColumns, f.MemberKeys()...)
	}
	return id
}

// DefaultRegistry devuelve el registro de cuentas de fábrica del sistema: una
// cuenta por familia más las dos cuentas fusionadas (Wuxi+Singfore y las dos
// plantas U-Jump).
func DefaultRegistry() Registry {
	byKey := make(map[string]schema.Family)
	for _, f := range schema.Families() {
		byKey[f.Key] = f
	}
	return NewRegistry([]Identity{
		identityFor("factory_wuxi", byKey["wuxi"]),
		identityFor("factory_hz_u", byKey["hz_u"]),
		identityFor("factory_pt_uwu", byKey["pt_uwu"]),
		identityFor("factory_korea_m", byKey["korea_m"]),
		identityFor("factory_singfore", byKey["singfore"]),
		identityFor("factory_heads_up", byKey["heads_up"]),
		identityFor("factory_wuxi_singfore", byKey["wuxi"], byKey["singfore"]),
		identityFor("factory_u_jump", byKey["hz_u"], byKey["pt_uwu"]),
	})
}
