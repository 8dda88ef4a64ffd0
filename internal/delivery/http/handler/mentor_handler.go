package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/delivery/http/middleware"
	"career-mentor/internal/pkg/response"
	"career-mentor/internal/usecase/mentoring"
)

type MentorHandler struct {
	uc *mentoring.Service
}

type selectRoleRequest struct {
	Role string `json:"role" form:"role"`
}

func NewMentorHandler(uc *mentoring.Service) *MentorHandler {
	return &MentorHandler{uc: uc}
}

func (h *MentorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/role", h.SelectRole)
}

// SelectRole locks in a target role and returns the freshly generated
// roadmap and project ideas for it.
func (h *MentorHandler) SelectRole(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req selectRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.SelectRole(c.Context(), email, req.Role)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}

	data := map[string]any{
		"selected_role": res.SelectedRole,
		"roadmap":       res.Roadmap,
		"projects":      res.Projects,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
