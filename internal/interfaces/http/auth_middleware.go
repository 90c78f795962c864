package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Traslados-api/internal/application/dto"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
	"github.com/jhoicas/Traslados-api/pkg/jwt"
)

// Local key de la cuenta autenticada en Fiber.
const localAccount = "account"

// AuthMiddleware valida el Bearer Token JWT y deja la cuenta del actor en
// c.Locals para la auditoría de las acciones.
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
		accountID, name, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localAccount, &entity.Account{ID: accountID, Name: name, Email: email})
		return c.Next()
	}
}

// GetAccount devuelve la cuenta del contexto (después del middleware de
// auth); nil cuando no hay actor, en cuyo caso la auditoría usa el centinela
// de usuario del sistema.
func GetAccount(c *fiber.Ctx) *entity.Account {
	v := c.Locals(localAccount)
	if v == nil {
		return nil
	}
	account, _ := v.(*entity.Account)
	return account
}
