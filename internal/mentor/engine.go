package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"career-mentor/internal/ai"
	"career-mentor/internal/domain/profile"
)

const defaultRequestTimeout = 30 * time.Second

// Engine wraps every call to the generative-text endpoint with a directive
// prompt, tolerant extraction of the reply, and a deterministic fallback.
// Each call is attempted exactly once and bounded by the configured
// timeout; upstream failures never propagate to callers.
type Engine struct {
	gen     ai.ContentGenerator
	logger  *zap.Logger
	timeout time.Duration

	// intN is injected so the randomized fallback timeline ranges stay
	// testable.
	intN func(n int) int
}

func NewEngine(gen ai.ContentGenerator, logger *zap.Logger, timeout time.Duration) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Engine{
		gen:     gen,
		logger:  logger,
		timeout: timeout,
		intN:    rand.IntN,
	}
}

func (e *Engine) generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.gen.GenerateContent(ctx, req)
}

// randBetween returns an integer in [lo, hi].
func (e *Engine) randBetween(lo, hi int) int {
	return lo + e.intN(hi-lo+1)
}

// AnalyzeResume asks the model for a prose skill analysis. The skill set is
// computed locally and therefore survives any upstream failure.
func (e *Engine) AnalyzeResume(ctx context.Context, text, targetRole string) profile.Analysis {
	summary, err := e.generate(ctx, ai.GenerateRequest{Prompt: analyzeResumePrompt(text, targetRole)})
	if err != nil {
		e.logger.Warn("resume analysis unavailable", zap.Error(err))
		summary = fmt.Sprintf("AI analysis unavailable (%v). Using fallback.", err)
	}
	return profile.Analysis{Summary: summary, Skills: ExtractSkills(text)}
}

// GenerateProjects asks for exactly 3 project ideas as a JSON array and
// normalizes whatever comes back. A failed call falls back to the
// role-keyed static table.
func (e *Engine) GenerateProjects(ctx context.Context, role string) []profile.ProjectIdea {
	temp := float32(0.7)
	raw, err := e.generate(ctx, ai.GenerateRequest{Prompt: projectsPrompt(role), Temperature: &temp})
	if err != nil {
		e.logger.Warn("project generation unavailable, using static fallback",
			zap.String("role", role), zap.Error(err))
		return fallbackProjects(role)
	}
	return normalizeProjects(raw)
}

// GenerateRoadmap asks for a strict-JSON multi-phase plan. The reply is
// parsed directly with no fence stripping; the two failure paths use
// distinct randomized timeline ranges.
func (e *Engine) GenerateRoadmap(ctx context.Context, skills []string, targetRole string) profile.RoadmapPlan {
	temp := float32(0.75)
	raw, err := e.generate(ctx, ai.GenerateRequest{
		Prompt:      roadmapPrompt(skills, targetRole),
		System:      roadmapSystemDirective,
		Temperature: &temp,
	})
	if err != nil {
		e.logger.Warn("roadmap generation unavailable, using static fallback",
			zap.String("role", targetRole), zap.Error(err))
		return fallbackRoadmapCallFailed(targetRole, e.randBetween(10, 20))
	}

	var plan profile.RoadmapPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &plan); err != nil {
		e.logger.Warn("roadmap reply was not valid JSON, using static fallback",
			zap.String("role", targetRole), zap.Error(err))
		return fallbackRoadmapUnparseable(targetRole, e.randBetween(12, 24))
	}
	return plan
}

// InterviewFeedback returns the raw model reply as feedback for a single
// candidate answer.
func (e *Engine) InterviewFeedback(ctx context.Context, answer, role string) string {
	raw, err := e.generate(ctx, ai.GenerateRequest{Prompt: feedbackPrompt(answer, role)})
	if err != nil {
		e.logger.Warn("interview feedback unavailable", zap.String("role", role), zap.Error(err))
		return fmt.Sprintf("Mock interview AI failed (%v). Try again later.", err)
	}
	return raw
}

// GenerateQuestions asks for exactly 5 questions as a JSON array. Any
// failure yields the fixed batch with ids 1-5.
func (e *Engine) GenerateQuestions(ctx context.Context, role string) []profile.InterviewQuestion {
	temp := float32(0.7)
	raw, err := e.generate(ctx, ai.GenerateRequest{Prompt: questionsPrompt(role), Temperature: &temp})
	if err != nil {
		e.logger.Warn("question generation unavailable, using static fallback",
			zap.String("role", role), zap.Error(err))
		return fallbackQuestions()
	}

	questions, ok := parseQuestionBatch(raw)
	if !ok {
		e.logger.Warn("question batch reply was not valid JSON, using static fallback",
			zap.String("role", role))
		return fallbackQuestions()
	}
	return questions
}

// EvaluateInterview scores a completed Q&A batch. Any failure yields the
// fixed literal evaluation.
func (e *Engine) EvaluateInterview(ctx context.Context, qa []profile.QAPair, role string) profile.Evaluation {
	raw, err := e.generate(ctx, ai.GenerateRequest{Prompt: evaluationPrompt(qa, role)})
	if err != nil {
		e.logger.Warn("interview evaluation unavailable, using static fallback",
			zap.String("role", role), zap.Error(err))
		return fallbackEvaluation()
	}

	ev, ok := parseEvaluation(raw)
	if !ok {
		e.logger.Warn("evaluation reply was not valid JSON, using static fallback",
			zap.String("role", role))
		return fallbackEvaluation()
	}
	return ev
}
