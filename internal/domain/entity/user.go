package entity

import "time"

// Roles válidos para User.
const (
	RoleCompany = "company"
	RoleFactory = "factory"
	RoleAdmin   = "admin"
)

// Tipos de cuenta para usuarios de rol company.
const (
	AccountTypeAdmin  = "admin"
	AccountTypeNormal = "normal"
)

// User representa un usuario del sistema.
// Para role=factory, FactoryAccount es la identidad de fábrica que se usa como
// clave de búsqueda en el registro de identidades del motor de proyección.
type User struct {
	ID             string
	Username       string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // company, factory, admin
	FactoryAccount string // ej. "factory_wuxi", "factory_wuxi_singfore" (vacío si no es factory)
	AccountType    string // admin, normal (solo aplica a company)
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
