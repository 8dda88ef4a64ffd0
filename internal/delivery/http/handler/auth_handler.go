package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"career-mentor/internal/delivery/http/middleware"
	"career-mentor/internal/pkg/response"
	ucauth "career-mentor/internal/usecase/auth"
)

type AuthHandler struct {
	uc *ucauth.Service
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func NewAuthHandler(uc *ucauth.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

// Register accepts multipart form data so the resume file can ride along
// with the credentials. The file part is optional.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	in := ucauth.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		data, err := readFormFile(fh)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume upload", nil, err)
		}
		in.ResumeData = data
		in.ResumeFilename = fh.Filename
	}

	res, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":    res.Token,
		"token_type":      "bearer",
		"suggested_roles": res.SuggestedRoles,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  res.Token,
		"token_type":    "bearer",
		"name":          res.Name,
		"email":         res.Email,
		"selected_role": res.SelectedRole,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func mapAuthUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
