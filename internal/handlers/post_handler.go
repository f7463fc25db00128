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

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("text", req.Text, "Text is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	post, err := h.postService.Create(userID, req.Text)
	if err != nil {
		slog.Error("post creation failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post)
}

// List handles GET /api/posts - all posts, newest first.
func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.List()
	if err != nil {
		slog.Error("post list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}
	return c.JSON(posts)
}

// Get handles GET /api/posts/:id. A malformed identifier reads the same
// as a missing post.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	post, err := h.postService.Get(postID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		}
		slog.Error("post lookup failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post)
}

// Delete handles DELETE /api/posts/:id - owner only.
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	if err := h.postService.Delete(userID, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		case errors.Is(err, services.ErrNotPostOwner):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "User not authorized"})
		}
		slog.Error("post deletion failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(dto.MessageResponse{Msg: "Post removed"})
}

// Like handles PUT /api/posts/like/:id and returns the likes array.
func (h *PostHandler) Like(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	post, err := h.postService.Like(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		case errors.Is(err, services.ErrAlreadyLiked):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Post already liked"})
		}
		slog.Error("post like failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post.Likes)
}

// Unlike handles PUT /api/posts/unlike/:id.
func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	post, err := h.postService.Unlike(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		case errors.Is(err, services.ErrNotLiked):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Post has not yet been liked"})
		}
		slog.Error("post unlike failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post.Likes)
}

// AddComment handles POST /api/posts/comment/:id and returns the
// comments array.
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Msg: "Invalid request body"})
	}

	if errs := validation.Check(
		validation.Required("text", req.Text, "Text is required"),
	); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	post, err := h.postService.AddComment(userID, postID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		}
		slog.Error("comment creation failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post.Comments)
}

// RemoveComment handles DELETE /api/posts/comment/:id/:comment_id.
func (h *PostHandler) RemoveComment(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "Token is not valid"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
	}

	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Comment does not exist"})
	}

	post, err := h.postService.RemoveComment(userID, postID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Post not found"})
		case errors.Is(err, services.ErrCommentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Msg: "Comment does not exist"})
		case errors.Is(err, services.ErrNotCommentAuthor):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Msg: "User not authorized"})
		}
		slog.Error("comment removal failed", "error", err, "post_id", postID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Msg: "Server error"})
	}

	return c.JSON(post.Comments)
}
