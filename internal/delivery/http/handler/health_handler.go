package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/pkg/response"
	"career-mentor/internal/usecase/mentoring"
)

type HealthHandler struct {
	uc *mentoring.Service
}

func NewHealthHandler(uc *mentoring.Service) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status, err := h.uc.Health(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "degraded", map[string]any{
			"database": "unavailable",
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"database": "ok",
		"cache":    status.Cache,
		"users":    status.Users,
	})
}
