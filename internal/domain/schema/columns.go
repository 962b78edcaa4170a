// Package schema define el modelo de columnas del tablero de marcas: el catálogo
// estático (columnas núcleo, banderas, FA y contactos por fábrica), la tabla de
// grupos de presentación y la inferencia de tipo para columnas personalizadas.
// Todo es configuración inmutable que se construye una vez y se inyecta en los
// motores; las funciones devuelven copias para preservar la pureza.
package schema

// ColumnType tipo declarado de una columna.
type ColumnType string

const (
	ColumnText     ColumnType = "text"
	ColumnSelect   ColumnType = "select"
	ColumnBoolean  ColumnType = "boolean"
	ColumnYesBlank ColumnType = "yes_blank" // banderas: "Yes" o ""
	ColumnCustom   ColumnType = "custom"    // tipo real inferido desde los datos
)

// Column metadatos de una columna del tablero.
type Column struct {
	Key      string
	Label    string
	Type     ColumnType
	Options  []string // solo para select
	Width    int      // ancho fijo de presentación; 0 = automático
	Custom   bool
	Required bool
}

// Claves de columnas núcleo.
const (
	KeyAllBrand              = "all_brand"
	KeyBrandVisibleToFactory = "brand_visible_to_factory"
	KeyClassification        = "classification"
	KeyStatus                = "status"
	KeyShipmentTerms         = "shipment_terms"
	KeyCompanyContact        = "company_contact"
	KeySalesContact          = "sales_contact"
	KeySeason                = "season"
	KeyRemark                = "remark"
)

// Family agrupa las columnas propiedad de una fábrica: su bandera, su campo FA
// y sus columnas de contacto/embarque/coordinación.
type Family struct {
	Key         string // prefijo de la fábrica (wuxi, hz_u, ...)
	FlagKey     string
	FAKey       string
	ContactKeys []string
}

// MemberKeys devuelve todas las claves de la familia (bandera + FA + contactos).
func (f Family) MemberKeys() []string {
	out := make([]string, 0, 2+len(f.ContactKeys))
	out = append(out, f.FlagKey, f.FAKey)
	out = append(out, f.ContactKeys...)
	return out
}

// contactKeys genera las cuatro columnas de contacto de una fábrica.
func contactKeys(prefix string) []string {
	return []string{
		prefix + "_senior_md",
		prefix + "_shipping",
		prefix + "_coordinator",
		prefix + "_merchandiser",
	}
}

// Families devuelve las seis familias de fábrica del sistema.
func Families() []Family {
	return []Family{
		{Key: "wuxi", FlagKey: "wuxi_moretti", FAKey: "fa_wuxi", ContactKeys: contactKeys("wuxi")},
		{Key: "hz_u", FlagKey: "hz_u_jump", FAKey: "fa_hz_u", ContactKeys: contactKeys("hz_u")},
		{Key: "pt_uwu", FlagKey: "pt_u_jump", FAKey: "fa_pt_uwu", ContactKeys: contactKeys("pt_uwu")},
		{Key: "korea_m", FlagKey: "korea_mel", FAKey: "fa_korea_m", ContactKeys: contactKeys("korea_m")},
		{Key: "singfore", FlagKey: "singfore", FAKey: "fa_singfore", ContactKeys: contactKeys("singfore")},
		{Key: "heads_up", FlagKey: "heads_up", FAKey: "fa_heads_up", ContactKeys: contactKeys("heads_up")},
	}
}

// Etiquetas legibles por familia (para labels de columnas).
var familyLabels = map[string]string{
	"wuxi":     "Wuxi",
	"hz_u":     "HZ-U",
	"pt_uwu":   "PT-UWU",
	"korea_m":  "Korea-M",
	"singfore": "Singfore",
	"heads_up": "Heads Up",
}

// Catalog devuelve el catálogo estático de columnas en orden de presentación:
// núcleo → banderas → FA → contactos por fábrica.
func Catalog() []Column {
	cols := []Column{
		{Key: KeyAllBrand, Label: "Brand", Type: ColumnText, Width: 180, Required: true},
		{Key: KeyBrandVisibleToFactory, Label: "Brand", Type: ColumnText, Width: 180},
		{Key: KeyClassification, Label: "Classification", Type: ColumnSelect, Options: []string{"International", "Domestic", "Licensed"}, Width: 120},
		{Key: KeyStatus, Label: "Status", Type: ColumnSelect, Options: []string{"active", "inactive"}, Width: 90, Required: true},
		{Key: KeyShipmentTerms, Label: "Shipment Terms", Type: ColumnSelect, Options: []string{"FOB", "CIF", "EXW", "DDP"}, Width: 110},
		{Key: KeyCompanyContact, Label: "Company Contact", Type: ColumnText, Width: 130},
		{Key: KeySalesContact, Label: "Sales Contact", Type: ColumnText, Width: 130},
		{Key: KeySeason, Label: "Season", Type: ColumnText, Width: 90},
		{Key: KeyRemark, Label: "Remark", Type: ColumnText},
	}
	fams := Families()
	for _, f := range fams {
		cols = append(cols, Column{Key: f.FlagKey, Label: familyLabels[f.Key], Type: ColumnYesBlank, Width: 80})
	}
	for _, f := range fams {
		cols = append(cols, Column{Key: f.FAKey, Label: "FA " + familyLabels[f.Key], Type: ColumnText, Width: 100})
	}
	for _, f := range fams {
		label := familyLabels[f.Key]
		cols = append(cols,
			Column{Key: f.ContactKeys[0], Label: label + " Senior MD", Type: ColumnText},
			Column{Key: f.ContactKeys[1], Label: label + " Shipping", Type: ColumnText},
			Column{Key: f.ContactKeys[2], Label: label + " Coordinator", Type: ColumnText},
			Column{Key: f.ContactKeys[3], Label: label + " Merchandiser", Type: ColumnText},
		)
	}
	return cols
}

// Nombres de grupos de presentación.
const (
	GroupBrand             = "Brand Info"
	GroupFlags             = "Flags"
	GroupFactoryAssignment = "Factory Assignment"
	GroupFactoryContacts   = "Factory Contacts"
)

// Groups devuelve la tabla estática clave→grupo. Clave desconocida no aparece
// en el mapa: la política por defecto es "visible, no editable, sin grupo".
func Groups() map[string]string {
	g := map[string]string{
		KeyAllBrand:              GroupBrand,
		KeyBrandVisibleToFactory: GroupBrand,
		KeyClassification:        GroupBrand,
		KeyStatus:                GroupBrand,
		KeyShipmentTerms:         GroupBrand,
		KeyCompanyContact:        GroupBrand,
		KeySalesContact:          GroupBrand,
		KeySeason:                GroupBrand,
		KeyRemark:                GroupBrand,
	}
	for _, f := range Families() {
		g[f.FlagKey] = GroupFlags
		g[f.FAKey] = GroupFactoryAssignment
		for _, k := range f.ContactKeys {
			g[k] = GroupFactoryContacts
		}
	}
	return g
}

// GroupOf devuelve el grupo de una columna; desconocida → "" (sin grupo).
func GroupOf(key string) string {
	return Groups()[key]
}
