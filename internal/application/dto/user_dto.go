package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT + datos del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Role           string `json:"role"`                      // company | factory | admin
	FactoryAccount string `json:"factory_account,omitempty"` // requerido si role=factory
	AccountType    string `json:"account_type,omitempty"`    // admin | normal (role=company)
}

// UserResponse datos públicos de un usuario.
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	FactoryAccount string    `json:"factory_account,omitempty"`
	AccountType    string    `json:"account_type,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
