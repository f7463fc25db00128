package handlers

import (
	"errors"
	"log/slog"

	"github.com/devconnect/backend/internal/dto"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/services"
	"github.com/devconnect/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	githubClient   *services.GithubClient
}

func NewProfileHandler(profileService *services.ProfileService, githubClient *services.GithubClient) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, githubClient: githubClient}
}

// Me handles GET /api/profile/me - the caller's own profile with the
// owning user joined in.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// Upsert handles POST /api/profile - creates the caller's profile or
// updates it in place.
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("status", req.Status, "Status is required"),
		validation.Required("skills", req.Skills, "Skills is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	profile, err := h.profileService.Upsert(userID, &req)
	if err != nil {
		slog.Error("profile upsert failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// List handles GET /api/profile - every profile, public.
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.profileService.List()
	if err != nil {
		slog.Error("profile list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}
	return c.JSON(profiles)
}

// ByUser handles GET /api/profile/user/:user_id - public lookup. A
// malformed identifier gets the same 400 as a missing profile, never a 500.
func (h *ProfileHandler) ByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Profile not found"})
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Profile not found"})
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile - removes posts, profile
// and user together.
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	if err := h.profileService.DeleteAccount(userID); err != nil {
		slog.Error("account deletion failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(dto.MessageResponse{Msg: "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.ExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("title", req.Title, "Title is required"),
		validation.Required("company", req.Company, "Company is required"),
		validation.Required("from", req.From, "From date is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	profile, err := h.profileService.AddExperience(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		}
		slog.Error("add experience failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id. An
// identifier that matches nothing is a 404, not a silent no-op.
func (h *ProfileHandler) RemoveExperience(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	entryID, err := uuid.Parse(c.Params("exp_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Experience not found"})
	}

	profile, err := h.profileService.RemoveExperience(userID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		case errors.Is(err, services.ErrExperienceNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Experience not found"})
		}
		slog.Error("remove experience failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.EducationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("school", req.School, "School is required"),
		validation.Required("degree", req.Degree, "Degree is required"),
		validation.Required("fieldofstudy", req.FieldOfStudy, "Field of study is required"),
		validation.Required("from", req.From, "From date is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	profile, err := h.profileService.AddEducation(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		}
		slog.Error("add education failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	entryID, err := uuid.Parse(c.Params("edu_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Education not found"})
	}

	profile, err := h.profileService.RemoveEducation(userID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "There is no profile for this user"})
		case errors.Is(err, services.ErrEducationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Education not found"})
		}
		slog.Error("remove education failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(profile)
}

// GithubRepos handles GET /api/profile/github/:username - relays the
// upstream repo listing verbatim. Every failure path answers: non-200
// upstream is a 404, transport errors a 502.
func (h *ProfileHandler) GithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")

	body, err := h.githubClient.Repos(username)
	if err != nil {
		if errors.Is(err, services.ErrNoGithubProfile) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "No Github profile found"})
		}
		slog.Error("github repos fetch failed", "error", err, "username", username)
		return c.Status(fiber.StatusBadGateway).JSON(dto.MessageResponse{Msg: "Failed to fetch Github repos"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
