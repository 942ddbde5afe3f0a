package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ferrarisboutique/dashboard-effe-api/pkg/jwt"
)

// LocalUser chiave Locals per l'utente autenticato.
const LocalUser = "user"

// AuthMiddleware valida il Bearer Token JWT ed espone l'utente in c.Locals.
// Con secret vuoto il middleware è un pass-through: deployment interni senza
// autenticazione.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if jwtSecret == "" {
			return c.Next()
		}
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Success: false, Code: "MISSING_TOKEN", Message: "header Authorization richiesto",
			})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Success: false, Code: "INVALID_TOKEN", Message: "formato: Bearer <token>",
			})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Success: false, Code: "MISSING_TOKEN", Message: "token vuoto",
			})
		}
		user, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Success: false, Code: "INVALID_TOKEN", Message: "token invalido o scaduto",
			})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUser l'utente autenticato dal contesto (dopo il middleware).
func GetUser(c *fiber.Ctx) string {
	v := c.Locals(LocalUser)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
