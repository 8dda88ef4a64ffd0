package routes

import (
	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/delivery/http/handler"
	"career-mentor/internal/delivery/http/middleware"
)

type Registry struct {
	auth      *handler.AuthHandler
	profile   *handler.ProfileHandler
	mentor    *handler.MentorHandler
	interview *handler.InterviewHandler
	health    *handler.HealthHandler
	authMw    *middleware.AuthMiddleware
}

func NewRegistry(
	auth *handler.AuthHandler,
	profile *handler.ProfileHandler,
	mentor *handler.MentorHandler,
	interview *handler.InterviewHandler,
	health *handler.HealthHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		auth:      auth,
		profile:   profile,
		mentor:    mentor,
		interview: interview,
		health:    health,
		authMw:    authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	r.auth.RegisterRoutes(v1.Group("/auth"))

	protect := r.authMw.Middleware()
	r.profile.RegisterRoutes(v1.Group("/users", protect))
	r.mentor.RegisterRoutes(v1.Group("/mentor", protect))
	r.interview.RegisterRoutes(v1.Group("/interview", protect))
}
