package dto

import "github.com/devconnect/backend/internal/validation"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed JWT issued on register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the short `{"msg": ...}` body used for not-found
// and confirmation responses.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ValidationErrorResponse itemizes every failed field check.
type ValidationErrorResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
