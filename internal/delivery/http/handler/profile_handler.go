package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/delivery/http/middleware"
	"career-mentor/internal/pkg/response"
	"career-mentor/internal/usecase/mentoring"
)

type ProfileHandler struct {
	uc *mentoring.Service
}

func NewProfileHandler(uc *mentoring.Service) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me/resume", h.UpdateResume)
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetProfile(c.Context(), email)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProfileHandler) UpdateResume(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	}
	data, err := readFormFile(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume upload", nil, err)
	}

	analysis, err := h.uc.UpdateResume(c.Context(), email, data, fh.Filename)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"ai_analysis": analysis,
	})
}

func mapMentoringUsecaseError(err error) error {
	switch {
	case errors.Is(err, mentoring.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, mentoring.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
