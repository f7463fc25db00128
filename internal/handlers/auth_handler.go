package handlers

import (
	"errors"
	"log/slog"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/services"
	"github.com/devconnect/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/users - creates an account and returns a token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("name", req.Name, "Name is required"),
		validation.Required("email", req.Email, "Please include a valid email"),
		validation.MinLength("password", req.Password, 6, "Please enter a password with 6 or more characters"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	token, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Errors: []validation.FieldError{{Field: "email", Message: "User already exists"}},
			})
		}
		slog.Error("register failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// Login handles POST /api/auth - verifies credentials and returns a token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("email", req.Email, "Please include a valid email"),
		validation.Required("password", req.Password, "Password is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Errors: []validation.FieldError{{Field: "email", Message: "Invalid credentials"}},
			})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// Current handles GET /api/auth - returns the caller's account record.
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "User not found"})
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(user)
}
