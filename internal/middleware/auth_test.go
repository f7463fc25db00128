package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", middleware.JWTProtected(cfg), func(c *fiber.Ctx) error {
		userID, err := middleware.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(userID.String())
	})
	return app
}

func signToken(t *testing.T, secret string, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "test-secret"})

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No token, authorization denied")
}

func TestJWTProtectedRejectsWrongSignature(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "test-secret"})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.NewString()))

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUserIDRoundTripsThroughClaims(t *testing.T) {
	app := protectedApp(&config.Config{JWTSecret: "test-secret"})
	userID := uuid.New()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", userID.String()))

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, userID.String(), string(body))
}
