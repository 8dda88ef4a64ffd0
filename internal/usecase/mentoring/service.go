package mentoring

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"career-mentor/internal/domain/profile"
	"career-mentor/internal/infrastructure/cache"
	"career-mentor/internal/mentor"
	"career-mentor/internal/resume"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// defaultRoleForInterview mirrors the profile default used when the user
// has not selected a role yet.
const defaultRoleForInterview = "General"

// defaultSkills seeds roadmap generation when no analysis has produced a
// skill set yet.
var defaultSkills = []string{"Python", "SQL", "React", "Machine Learning"}

const questionCacheKeyPrefix = "mentor:questions:"

type SelectRoleResult struct {
	SelectedRole string
	Roadmap      profile.RoadmapPlan
	Projects     []profile.ProjectIdea
}

type HealthStatus struct {
	Users int64
	Cache string
}

// Service orchestrates the stage transitions: resume updates, role
// selection, and mock-interview turns. Normalizer failures never bubble
// out of it; only store and auth failures do.
type Service struct {
	profiles profile.Repository
	engine   *mentor.Engine
	cache    *cache.Redis
	logger   *zap.Logger
}

func NewService(profiles profile.Repository, engine *mentor.Engine, redis *cache.Redis, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{profiles: profiles, engine: engine, cache: redis, logger: logger}
}

func (s *Service) GetProfile(ctx context.Context, email string) (profile.Profile, error) {
	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	p.PasswordHash = ""
	return p, nil
}

// UpdateResume re-extracts and re-analyzes an uploaded resume without
// touching the selected role, roadmap, or history.
func (s *Service) UpdateResume(ctx context.Context, email string, data []byte, filename string) (profile.Analysis, error) {
	if len(data) == 0 {
		return profile.Analysis{}, ErrInvalidInput
	}
	if _, err := s.profiles.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Analysis{}, ErrNotFound
		}
		return profile.Analysis{}, ErrInternal
	}

	text, err := resume.ExtractText(data, filename)
	if err != nil {
		s.logger.Warn("resume text extraction failed",
			zap.String("filename", filename), zap.Error(err))
		text = ""
	}

	analysis := s.engine.AnalyzeResume(ctx, text, "general")
	if err := s.profiles.UpdateResume(ctx, email, profile.TruncateResumeText(text), analysis); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Analysis{}, ErrNotFound
		}
		return profile.Analysis{}, ErrInternal
	}
	return analysis, nil
}

// SelectRole generates a roadmap and project ideas for the chosen role and
// fully replaces the previous ones.
func (s *Service) SelectRole(ctx context.Context, email, role string) (SelectRoleResult, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return SelectRoleResult{}, ErrInvalidInput
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return SelectRoleResult{}, ErrNotFound
		}
		return SelectRoleResult{}, ErrInternal
	}

	skills := p.Analysis.Skills
	if len(skills) == 0 {
		skills = defaultSkills
	}

	roadmap := s.engine.GenerateRoadmap(ctx, skills, role)
	projects := s.engine.GenerateProjects(ctx, role)

	if err := s.profiles.SelectRole(ctx, email, role, roadmap, projects); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return SelectRoleResult{}, ErrNotFound
		}
		return SelectRoleResult{}, ErrInternal
	}

	return SelectRoleResult{SelectedRole: role, Roadmap: roadmap, Projects: projects}, nil
}

// AnswerInterview produces feedback for one candidate answer and appends
// the turn to the append-only history.
func (s *Service) AnswerInterview(ctx context.Context, email, answer string) (string, error) {
	if strings.TrimSpace(answer) == "" {
		return "", ErrInvalidInput
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", ErrInternal
	}

	feedback := s.engine.InterviewFeedback(ctx, answer, interviewRole(p))

	if err := s.profiles.AppendInterviewEvent(ctx, email, profile.InterviewEvent{
		Answer:   answer,
		Feedback: feedback,
	}); err != nil {
		return "", ErrInternal
	}
	return feedback, nil
}

// StartInterview generates a question batch for the user's role and stores
// it wholesale. Batches are cached per role so repeated sessions within
// the TTL reuse the same set; a cold or down cache just regenerates.
func (s *Service) StartInterview(ctx context.Context, email string) (string, []profile.InterviewQuestion, error) {
	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, ErrInternal
	}
	role := interviewRole(p)

	var questions []profile.InterviewQuestion
	cacheKey := questionCacheKeyPrefix + strings.ToLower(role)
	hit, _ := s.cache.GetJSON(ctx, cacheKey, &questions)
	if !hit || len(questions) == 0 {
		questions = s.engine.GenerateQuestions(ctx, role)
		if err := s.cache.SetJSON(ctx, cacheKey, questions, 0); err != nil {
			s.logger.Debug("question batch cache write failed", zap.Error(err))
		}
	}

	if err := s.profiles.SetInterviewQuestions(ctx, email, questions); err != nil {
		return "", nil, ErrInternal
	}

	s.logger.Info("mock interview started",
		zap.String("email", email),
		zap.String("role", role),
		zap.Int("questions", len(questions)),
	)
	return role, questions, nil
}

// EvaluateInterview scores a completed Q&A batch and appends the
// evaluation to the history.
func (s *Service) EvaluateInterview(ctx context.Context, email string, qa []profile.QAPair) (profile.Evaluation, error) {
	if len(qa) == 0 {
		return profile.Evaluation{}, ErrInvalidInput
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Evaluation{}, ErrNotFound
		}
		return profile.Evaluation{}, ErrInternal
	}

	evaluation := s.engine.EvaluateInterview(ctx, qa, interviewRole(p))

	if err := s.profiles.AppendInterviewEvent(ctx, email, profile.InterviewEvent{
		QA:         qa,
		Evaluation: &evaluation,
	}); err != nil {
		return profile.Evaluation{}, ErrInternal
	}
	return evaluation, nil
}

// Health reports store connectivity via a user count plus cache status.
func (s *Service) Health(ctx context.Context) (HealthStatus, error) {
	count, err := s.profiles.Count(ctx)
	if err != nil {
		return HealthStatus{}, ErrInternal
	}

	cacheStatus := "ok"
	if err := s.cache.Ping(ctx); err != nil {
		cacheStatus = "unavailable"
	}
	return HealthStatus{Users: count, Cache: cacheStatus}, nil
}

func interviewRole(p profile.Profile) string {
	if p.SelectedRole != nil && strings.TrimSpace(*p.SelectedRole) != "" {
		return *p.SelectedRole
	}
	return defaultRoleForInterview
}
