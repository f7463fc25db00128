package middleware

import (
	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected rejects requests without a valid bearer token before the
// handler runs, so handlers always see an authenticated identity.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Msg: "No token, authorization denied",
			})
		},
	})
}
