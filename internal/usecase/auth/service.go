package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"career-mentor/internal/domain/profile"
	"career-mentor/internal/mentor"
	"career-mentor/internal/pkg/jwt"
	"career-mentor/internal/resume"
)

// bcrypt only looks at the first 72 bytes of input.
const maxPasswordBytes = 72

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	// Optional resume upload; empty means registration without analysis.
	ResumeData     []byte
	ResumeFilename string
}

type RegisterResult struct {
	Token          string
	SuggestedRoles []string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token        string
	Name         string
	Email        string
	SelectedRole *string
}

type Service struct {
	profiles profile.Repository
	engine   *mentor.Engine
	tokens   jwt.Service
	logger   *zap.Logger
}

func NewService(profiles profile.Repository, engine *mentor.Engine, tokens jwt.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{profiles: profiles, engine: engine, tokens: tokens, logger: logger}
}

// Register creates the user document and, when a resume was uploaded, runs
// the analysis and role-suggestion stage before the first write.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || strings.TrimSpace(in.Password) == "" {
		return RegisterResult{}, ErrInvalidInput
	}

	if _, err := s.profiles.GetByEmail(ctx, email); err == nil {
		return RegisterResult{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, profile.ErrNotFound) {
		return RegisterResult{}, ErrInternal
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return RegisterResult{}, ErrInternal
	}

	var (
		resumeText string
		analysis   profile.Analysis
		suggested  []string
	)
	if len(in.ResumeData) > 0 {
		text, err := resume.ExtractText(in.ResumeData, in.ResumeFilename)
		if err != nil {
			s.logger.Warn("resume text extraction failed",
				zap.String("filename", in.ResumeFilename), zap.Error(err))
			text = ""
		}
		analysis = s.engine.AnalyzeResume(ctx, text, "general")
		suggested = mentor.SuggestRoles(text)
		resumeText = profile.TruncateResumeText(text)
	}

	p := profile.Profile{
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		ResumeText:     resumeText,
		Analysis:       analysis,
		SuggestedRoles: suggested,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, profile.ErrEmailTaken) {
			return RegisterResult{}, ErrEmailAlreadyRegistered
		}
		return RegisterResult{}, ErrInternal
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return RegisterResult{}, ErrInternal
	}

	return RegisterResult{Token: token, SuggestedRoles: suggested}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), truncatePassword(in.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{
		Token:        token,
		Name:         p.Name,
		Email:        p.Email,
		SelectedRole: p.SelectedRole,
	}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func truncatePassword(pw string) []byte {
	b := []byte(pw)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
