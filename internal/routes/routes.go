package routes

import (
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	postHandler *handlers.PostHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Register + login get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/users", authLimiter, authHandler.Register)
	api.Post("/auth", authLimiter, authHandler.Login)
	api.Get("/auth", middleware.JWTProtected(cfg), authHandler.Current)

	// Profile resource. Reads are public except /me; writes require auth.
	profile := api.Group("/profile")
	profile.Get("/me", middleware.JWTProtected(cfg), profileHandler.Me)
	profile.Post("/", middleware.JWTProtected(cfg), profileHandler.Upsert)
	profile.Get("/", profileHandler.List)
	profile.Get("/user/:user_id", profileHandler.ByUser)
	profile.Delete("/", middleware.JWTProtected(cfg), profileHandler.DeleteAccount)
	profile.Put("/experience", middleware.JWTProtected(cfg), profileHandler.AddExperience)
	profile.Delete("/experience/:exp_id", middleware.JWTProtected(cfg), profileHandler.RemoveExperience)
	profile.Put("/education", middleware.JWTProtected(cfg), profileHandler.AddEducation)
	profile.Delete("/education/:edu_id", middleware.JWTProtected(cfg), profileHandler.RemoveEducation)
	profile.Get("/github/:username", profileHandler.GithubRepos)

	// Posts are auth-only end to end.
	posts := api.Group("/posts", middleware.JWTProtected(cfg))
	posts.Post("/", postHandler.Create)
	posts.Get("/", postHandler.List)
	posts.Get("/:id", postHandler.Get)
	posts.Delete("/:id", postHandler.Delete)
	posts.Put("/like/:id", postHandler.Like)
	posts.Put("/unlike/:id", postHandler.Unlike)
	posts.Post("/comment/:id", postHandler.AddComment)
	posts.Delete("/comment/:id/:comment_id", postHandler.RemoveComment)
}
