package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden Role, FactoryAccount y AccountType para que los middlewares y el motor
// de proyección puedan tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	Role           string `json:"role"`                      // "company" | "factory" | "admin"
	FactoryAccount string `json:"factory_account,omitempty"` // solo para role=factory (ej. "factory_wuxi")
	AccountType    string `json:"account_type,omitempty"`    // "admin" | "normal" (solo para role=company)
}

// TokenInput datos de la sesión que viajan dentro del token.
type TokenInput struct {
	UserID         string
	Username       string
	Role           string
	FactoryAccount string
	AccountType    string
}

// Generate genera un token JWT firmado (HS256) con los claims de la sesión.
func Generate(secret string, in TokenInput, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   in.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:         in.UserID,
		Username:       in.Username,
		Role:           in.Role,
		FactoryAccount: in.FactoryAccount,
		AccountType:    in.AccountType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
