// Package projection implementa el motor de proyección por rol: dado un viewer
// (company / factory / admin) calcula qué columnas ve, cuáles puede editar y qué
// transformación/filtrado se aplica a cada registro antes de llegar a la UI.
// Reemplaza los if(role==...) dispersos por una única superficie de decisión.
package projection

// Role rol del viewer.
type Role string

const (
	RoleCompany Role = "company"
	RoleFactory Role = "factory"
	RoleAdmin   Role = "admin"
)

// AccountTypeAdmin usuarios company con cuenta tipo admin editan igual que admin.
const AccountTypeAdmin = "admin"

// Viewer contexto del viewer: rol, identidad de fábrica (solo factory), tipo de
// cuenta (solo company) y la preferencia explícita de mostrar inactivos.
type Viewer struct {
	Role           Role
	FactoryAccount string
	AccountType    string
	ShowInactive   bool
}

// IsCompanyAdmin indica si el viewer es company con cuenta tipo admin
// (edita todo, igual que el rol admin).
func (v Viewer) IsCompanyAdmin() bool {
	return v.Role == RoleCompany && v.AccountType == AccountTypeAdmin
}
