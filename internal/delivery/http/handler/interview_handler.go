package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/delivery/http/middleware"
	"career-mentor/internal/domain/profile"
	"career-mentor/internal/pkg/response"
	"career-mentor/internal/usecase/mentoring"
)

type InterviewHandler struct {
	uc *mentoring.Service
}

type interviewAnswerRequest struct {
	Answer string `json:"answer" form:"answer"`
}

type interviewEvaluateRequest struct {
	QAPairs []profile.QAPair `json:"qa_pairs"`
}

func NewInterviewHandler(uc *mentoring.Service) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/answer", h.Answer)
	r.Post("/start", h.Start)
	r.Post("/evaluate", h.Evaluate)
}

func (h *InterviewHandler) Answer(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req interviewAnswerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	feedback, err := h.uc.AnswerInterview(c.Context(), email, req.Answer)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"feedback": feedback,
	})
}

func (h *InterviewHandler) Start(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	role, questions, err := h.uc.StartInterview(c.Context(), email)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"role":      role,
		"questions": questions,
	})
}

// Evaluate accepts either a JSON body with a qa_pairs array or a form
// field carrying the same array as a JSON string.
func (h *InterviewHandler) Evaluate(c fiber.Ctx) error {
	email, ok := middleware.EmailFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	qa, err := decodeQAPairs(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	evaluation, err := h.uc.EvaluateInterview(c.Context(), email, qa)
	if err != nil {
		return mapMentoringUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"evaluation": evaluation,
	})
}

func decodeQAPairs(c fiber.Ctx) ([]profile.QAPair, error) {
	if raw := strings.TrimSpace(c.FormValue("qa_pairs")); raw != "" {
		var qa []profile.QAPair
		if err := json.Unmarshal([]byte(raw), &qa); err != nil {
			return nil, err
		}
		return qa, nil
	}

	var req interviewEvaluateRequest
	if err := c.Bind().Body(&req); err != nil {
		return nil, err
	}
	return req.QAPairs, nil
}
