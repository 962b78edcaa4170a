package projection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandops/allocation-api/internal/domain/allocation"
	"github.com/brandops/allocation-api/internal/domain/entity"
	"github.com/brandops/allocation-api/internal/domain/schema"
)

// Config configuración inmutable del motor: tabla de parejas, registro de
// identidades, catálogo de columnas, familias y tabla de grupos. Se inyecta
// completa para preservar la testabilidad de función pura.
type Config struct {
	Table    allocation.Table
	Registry Registry
	Catalog  []schema.Column
	Families []schema.Family
	Groups   map[string]string
}

// Engine motor de proyección por rol. Sin estado mutable: todos los métodos son
// funciones puras de (registros, viewer) recalculadas bajo demanda.
type Engine struct {
	cfg Config

	familyOf        map[string]string // clave de columna → clave de familia
	companyReadOnly map[string]bool   // FA + contactos: company no-admin los ve pero no los edita
	factoryBlocked  map[string]bool   // columnas propiedad de company: factory no las edita
}

// NewEngine construye el motor con la configuración dada.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		cfg:             cfg,
		familyOf:        make(map[string]string),
		companyReadOnly: make(map[string]bool),
		factoryBlocked:  make(map[string]bool),
	}
	// brand_visible_to_factory es derivado: nadie lo edita por la vía normal.
	e.companyReadOnly[schema.KeyBrandVisibleToFactory] = true
	e.factoryBlocked[schema.KeyBrandVisibleToFactory] = true

	for _, f := range cfg.Families {
		for _, k := range f.MemberKeys() {
			e.familyOf[k] = f.Key
		}
		// Company no-admin: FA y contactos son de la fábrica o derivados del sistema.
		e.companyReadOnly[f.FAKey] = true
		for _, k := range f.ContactKeys {
			e.companyReadOnly[k] = true
		}
		// Factory: banderas y FA siguen siendo propiedad de company / del sistema.
		e.factoryBlocked[f.FlagKey] = true
		e.factoryBlocked[f.FAKey] = true
	}
	// Columnas núcleo: propiedad de company, bloqueadas para factory.
	for _, c := range cfg.Catalog {
		if _, isFamily := e.familyOf[c.Key]; !isFamily && c.Key != schema.KeyBrandVisibleToFactory {
			e.factoryBlocked[c.Key] = true
		}
	}
	return e
}

// NewDefaultEngine construye el motor con la configuración de fábrica del sistema.
func NewDefaultEngine() *Engine {
	return NewEngine(Config{
		Table:    allocation.Default(),
		Registry: DefaultRegistry(),
		Catalog:  schema.Catalog(),
		Families: schema.Families(),
		Groups:   schema.Groups(),
	})
}

// Table expone la tabla de parejas del motor (para el path de escritura).
func (e *Engine) Table() allocation.Table {
	return e.cfg.Table
}

// identity resuelve la identidad del viewer; cuenta desconocida → identidad cero.
func (e *Engine) identity(v Viewer) Identity {
	id, _ := e.cfg.Registry.Lookup(v.FactoryAccount)
	return id
}

// ownedSet columnas de fábrica que posee el viewer.
func (e *Engine) ownedSet(v Viewer) map[string]bool {
	owned := make(map[string]bool)
	for _, k := range e.identity(v).OwnedColumns {
		owned[k] = true
	}
	return owned
}

// VisibleColumns calcula el conjunto visible (ordenado) para el viewer.
// admin y company ven todo el catálogo más las columnas personalizadas; factory
// ve un subconjunto estricto: nunca all_brand, y de las columnas de familia solo
// las de su propia identidad.
func (e *Engine) VisibleColumns(v Viewer, custom []schema.Column) []schema.Column {
	all := make([]schema.Column, 0, len(e.cfg.Catalog)+len(custom))
	all = append(all, e.cfg.Catalog...)
	all = append(all, custom...)

	if v.Role != RoleFactory {
		return all
	}

	owned := e.ownedSet(v)
	out := make([]schema.Column, 0, len(all))
	for _, c := range all {
		if c.Key == schema.KeyAllBrand {
			continue
		}
		if _, isFamily := e.familyOf[c.Key]; isFamily && !owned[c.Key] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// EditableKeys calcula el subconjunto editable de las columnas visibles.
func (e *Engine) EditableKeys(v Viewer, custom []schema.Column) map[string]bool {
	visible := e.VisibleColumns(v, custom)
	editable := make(map[string]bool, len(visible))

	switch {
	case v.Role == RoleAdmin, v.IsCompanyAdmin():
		for _, c := range visible {
			editable[c.Key] = true
		}
	case v.Role == RoleCompany:
		for _, c := range visible {
			if !e.companyReadOnly[c.Key] {
				editable[c.Key] = true
			}
		}
	case v.Role == RoleFactory:
		owned := e.ownedSet(v)
		for _, c := range visible {
			blocked := e.factoryBlocked[c.Key]
			// Una columna propia (contactos de su fábrica) se edita aunque esté
			// en el blocklist; banderas y FA nunca, son derivados o de company.
			ownOverride := owned[c.Key] &&
				!e.cfg.Table.IsFlagColumn(c.Key) && !e.cfg.Table.IsFAColumn(c.Key)
			if !blocked || ownOverride {
				editable[c.Key] = true
			}
		}
	}
	return editable
}

// CanCreateCustomColumn admin siempre; company solo con cuenta admin; factory nunca.
func (e *Engine) CanCreateCustomColumn(v Viewer) bool {
	return v.Role == RoleAdmin || v.IsCompanyAdmin()
}

// ProjectRecords aplica la transformación por registro: filtro de asignación
// para factory (dominante, se evalúa antes que cualquier búsqueda del usuario),
// filtro de inactivos para no-admin y redacción de campos ocultos. Devuelve
// copias; el conjunto de entrada nunca se muta.
func (e *Engine) ProjectRecords(records []*entity.BrandRecord, v Viewer) []*entity.BrandRecord {
	var hidden map[string]bool
	var faKeys []string
	if v.Role == RoleFactory {
		owned := e.ownedSet(v)
		hidden = map[string]bool{schema.KeyAllBrand: true}
		for k := range e.familyOf {
			if !owned[k] {
				hidden[k] = true
			}
		}
		faKeys = e.identity(v).FAKeys
	}

	out := make([]*entity.BrandRecord, 0, len(records))
	for _, r := range records {
		if v.Role == RoleFactory && !e.assignedTo(r, faKeys) {
			// No asignado: el registro se excluye por completo, no solo se redacta.
			continue
		}
		if v.Role != RoleAdmin && !v.ShowInactive && normalizedStatus(r) == "inactive" {
			continue
		}
		p := r.Clone()
		if v.Role == RoleFactory {
			p.Fields[schema.KeyBrandVisibleToFactory] = valueString(r.Fields[schema.KeyAllBrand])
			for k := range hidden {
				delete(p.Fields, k)
			}
		}
		out = append(out, p)
	}
	return out
}

// assignedTo semántica OR generalizada: el registro está asignado al viewer si
// al menos uno de sus campos FA propios contiene el nombre de fábrica pareado.
func (e *Engine) assignedTo(r *entity.BrandRecord, faKeys []string) bool {
	for _, fa := range faKeys {
		name := e.cfg.Table.FactoryName(fa)
		if name != "" && valueString(r.Fields[fa]) == name {
			return true
		}
	}
	return false
}

// GroupSummary resumen grupo → columnas miembro → visibles/total, solo para
// presentación. Las columnas sin entrada en la tabla de grupos quedan fuera.
type GroupSummary struct {
	Name    string
	Columns []string
	Visible int
	Total   int
}

// GroupSummaries calcula el resumen de grupos para el viewer, en orden estable.
func (e *Engine) GroupSummaries(v Viewer, custom []schema.Column) []GroupSummary {
	visible := make(map[string]bool)
	for _, c := range e.VisibleColumns(v, custom) {
		visible[c.Key] = true
	}

	order := []string{schema.GroupBrand, schema.GroupFlags, schema.GroupFactoryAssignment, schema.GroupFactoryContacts}
	byName := make(map[string]*GroupSummary, len(order))
	for _, name := range order {
		byName[name] = &GroupSummary{Name: name}
	}

	all := append(append([]schema.Column{}, e.cfg.Catalog...), custom...)
	for _, c := range all {
		name, ok := e.cfg.Groups[c.Key]
		if !ok {
			continue
		}
		g, ok := byName[name]
		if !ok {
			continue
		}
		g.Columns = append(g.Columns, c.Key)
		g.Total++
		if visible[c.Key] {
			g.Visible++
		}
	}

	out := make([]GroupSummary, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// SortRecords ordena una copia del slice por la columna dada. Cuando la columna
// es una bandera, ambos valores comparados pasan por NormalizeFlagValue para que
// el casing legacy nunca produzca un orden distinto del par canónico.
func (e *Engine) SortRecords(records []*entity.BrandRecord, key string, ascending bool) []*entity.BrandRecord {
	out := make([]*entity.BrandRecord, len(records))
	copy(out, records)
	isFlag := e.cfg.Table.IsFlagColumn(key)
	sort.SliceStable(out, func(i, j int) bool {
		a := e.sortValue(out[i], key, isFlag)
		b := e.sortValue(out[j], key, isFlag)
		if ascending {
			return a < b
		}
		return a > b
	})
	return out
}

func (e *Engine) sortValue(r *entity.BrandRecord, key string, isFlag bool) string {
	raw, ok := r.Fields[key]
	if !ok {
		raw = r.CustomFields[key]
	}
	if isFlag {
		return allocation.NormalizeFlagValue(raw)
	}
	return valueString(raw)
}

func normalizedStatus(r *entity.BrandRecord) string {
	return strings.ToLower(strings.TrimSpace(valueString(r.Fields[schema.KeyStatus])))
}

// valueString forma string de un valor de campo (nil → "").
func valueString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
