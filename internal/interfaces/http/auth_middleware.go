package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/dto"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/pkg/jwt"
)

// Locals keys para los claims de sesión en Fiber.
const (
	LocalUserID         = "user_id"
	LocalUsername       = "username"
	LocalRole           = "role"
	LocalFactoryAccount = "factory_account"
	LocalAccountType    = "account_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims de sesión a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalFactoryAccount, claims.FactoryAccount)
		c.Locals(LocalAccountType, claims.AccountType)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que autoriza solo los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 MISSING_ROLE → token sin claim de rol (tokens legacy).
//   - 403 FORBIDDEN    → rol presente pero no permitido en la ruta.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a esta ruta"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetFactoryAccount devuelve la identidad de fábrica del contexto (solo role=factory).
func GetFactoryAccount(c *fiber.Ctx) string { return localString(c, LocalFactoryAccount) }

// GetAccountType devuelve el tipo de cuenta del contexto (solo role=company).
func GetAccountType(c *fiber.Ctx) string { return localString(c, LocalAccountType) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// viewerFromCtx construye el contexto de proyección a partir de los claims.
func viewerFromCtx(c *fiber.Ctx) projection.Viewer {
	return projection.Viewer{
		Role:           projection.Role(GetRole(c)),
		FactoryAccount: GetFactoryAccount(c),
		AccountType:    GetAccountType(c),
	}
}

// actorFromCtx construye el actor (identidad para la bitácora + viewer).
func actorFromCtx(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{
		UserID:   GetUserID(c),
		Username: GetUsername(c),
		Viewer:   viewerFromCtx(c),
	}
}
