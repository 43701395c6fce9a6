package middleware

import (
	"strings"

	"github.com/Xenn-00/schicht-meister/internal/dtos"
	"github.com/Xenn-00/schicht-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Token werden vom externen Auth-Dienst ausgestellt; hier wird nur verifiziert.
// Verhalten:
// - Sendet bei fehlendem Header, falschem Format oder ungültigem/abgelaufenem Token HTTP 401 mit einer JSON-Fehlerantwort.
// - Bei erfolgreicher Verifizierung setzt es die Context-Lokale: "owner_id", "username", "email", "jti".
// - Liefert einen fiber.Handler zurück, der bei Erfolg c.Next() aufruft.
func AuthMiddleware(pasetoMaker *utils.PasetoMaker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Authorization header fehlt",
				},
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token-Format ist falsch. Nutze Bearer <token>.",
				},
			})
		}

		token := parts[1]

		// Verifizieren via PASETO
		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Err(err).Msg("Verification error")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Token ist ungültig oder abgelaufen",
				},
			})
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("owner_id", payload.WorkerID)
		c.Locals("username", payload.Username)
		c.Locals("email", payload.Email)
		c.Locals("jti", payload.JTI)

		return c.Next()
	}
}
