package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation short-circuits before any service call, so these routes can
// be exercised with a nil service: reaching it would panic the test.
func validationApp(cfg *config.Config) *fiber.App {
	handler := handlers.NewProfileHandler(nil, nil)

	app := fiber.New()
	app.Post("/api/profile", middleware.JWTProtected(cfg), handler.Upsert)
	app.Put("/api/profile/experience", middleware.JWTProtected(cfg), handler.AddExperience)
	return app
}

func bearerToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

type errorsBody struct {
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func TestUpsertProfileMissingStatusIsItemized(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := validationApp(cfg)

	req := httptest.NewRequest("POST", "/api/profile", strings.NewReader(`{"skills":"go,sql"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, cfg.JWTSecret))

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "status", body.Errors[0].Field)
	assert.Equal(t, "Status is required", body.Errors[0].Message)
}

func TestAddExperienceReportsEveryMissingField(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := validationApp(cfg)

	req := httptest.NewRequest("PUT", "/api/profile/experience", strings.NewReader(`{"company":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, cfg.JWTSecret))

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "from", body.Errors[1].Field)
}
