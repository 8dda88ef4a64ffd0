package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"career-mentor/internal/ai"
	"career-mentor/internal/domain/profile"
)

type stubGenerator struct {
	reply string
	err   error

	lastReq ai.GenerateRequest
	calls   int
}

func (s *stubGenerator) GenerateContent(_ context.Context, req ai.GenerateRequest) (string, error) {
	s.lastReq = req
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestEngine(gen ai.ContentGenerator) *Engine {
	return NewEngine(gen, nil, time.Second)
}

func TestAnalyzeResumeFallbackKeepsLocalSkills(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("quota exceeded")})

	analysis := e.AnalyzeResume(context.Background(), "Python and SQL experience", "general")

	if !strings.HasPrefix(analysis.Summary, "AI analysis unavailable") {
		t.Fatalf("unexpected summary: %q", analysis.Summary)
	}
	if len(analysis.Skills) != 2 || analysis.Skills[0] != "Python" || analysis.Skills[1] != "SQL" {
		t.Fatalf("expected local skills to survive, got %v", analysis.Skills)
	}
}

func TestGenerateProjectsCallFailureUsesRoleTable(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("down")})

	projects := e.GenerateProjects(context.Background(), "Data Scientist")

	if len(projects) != 3 {
		t.Fatalf("expected 3 fallback projects, got %d", len(projects))
	}
	if projects[0].Title != "ML Pipeline for Customer Churn Prediction" {
		t.Fatalf("unexpected first fallback project: %q", projects[0].Title)
	}
}

func TestGenerateProjectsCallFailureUnknownRole(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("down")})

	projects := e.GenerateProjects(context.Background(), "Marine Biologist")

	if len(projects) != 1 || projects[0].Title != "AI Innovation Hub" {
		t.Fatalf("expected generic fallback, got %+v", projects)
	}
}

func TestGenerateProjectsNormalizesReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n[{\"title\": \"X\"}]\n```"}
	e := newTestEngine(gen)

	projects := e.GenerateProjects(context.Background(), "Data Scientist")

	if len(projects) != 1 || projects[0].Title != "X" || projects[0].Difficulty != "Intermediate" {
		t.Fatalf("unexpected projects: %+v", projects)
	}
	if gen.lastReq.Temperature == nil || *gen.lastReq.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", gen.lastReq.Temperature)
	}
}

func TestGenerateRoadmapParsesStrictJSON(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"target_role": "Data Scientist",
		"timeline_weeks": 16,
		"roadmap": [
			{"phase": "Phase 1", "objective": "o", "focus": ["f"], "projects": ["p"], "duration_weeks": 4}
		]
	}`}
	e := newTestEngine(gen)

	plan := e.GenerateRoadmap(context.Background(), []string{"Python"}, "Data Scientist")

	if plan.TargetRole != "Data Scientist" || plan.TimelineWeeks != 16 || len(plan.Phases) != 1 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if gen.lastReq.System == "" {
		t.Fatal("expected a system directive on roadmap requests")
	}
	if gen.lastReq.Temperature == nil || *gen.lastReq.Temperature != 0.75 {
		t.Fatalf("expected temperature 0.75, got %v", gen.lastReq.Temperature)
	}
}

func TestGenerateRoadmapCallFailureRange(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("down")})

	var gotN int
	e.intN = func(n int) int {
		gotN = n
		return 0
	}

	plan := e.GenerateRoadmap(context.Background(), nil, "DevOps Engineer")

	if gotN != 11 {
		t.Fatalf("expected draw from an 11-wide range, got %d", gotN)
	}
	if plan.TimelineWeeks != 10 {
		t.Fatalf("expected lower bound 10, got %d", plan.TimelineWeeks)
	}
	if plan.Phases[0].Phase != "Phase 1: Strengthen Fundamentals" {
		t.Fatalf("wrong fallback template: %q", plan.Phases[0].Phase)
	}
}

func TestGenerateRoadmapUnparseableReplyRange(t *testing.T) {
	e := newTestEngine(&stubGenerator{reply: "I cannot produce JSON today."})

	var gotN int
	e.intN = func(n int) int {
		gotN = n
		return 0
	}

	plan := e.GenerateRoadmap(context.Background(), nil, "DevOps Engineer")

	if gotN != 13 {
		t.Fatalf("expected draw from a 13-wide range, got %d", gotN)
	}
	if plan.TimelineWeeks != 12 {
		t.Fatalf("expected lower bound 12, got %d", plan.TimelineWeeks)
	}
	if plan.Phases[0].Phase != "Phase 1: Foundations" {
		t.Fatalf("wrong fallback template: %q", plan.Phases[0].Phase)
	}
}

func TestGenerateRoadmapDoesNotStripFences(t *testing.T) {
	// Fenced roadmap replies are treated as unparseable on purpose.
	e := newTestEngine(&stubGenerator{reply: "```json\n{\"target_role\": \"X\"}\n```"})
	e.intN = func(int) int { return 0 }

	plan := e.GenerateRoadmap(context.Background(), nil, "X")

	if plan.Phases[0].Phase != "Phase 1: Foundations" {
		t.Fatalf("expected unparseable fallback, got %+v", plan)
	}
}

func TestInterviewFeedbackError(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("boom")})

	got := e.InterviewFeedback(context.Background(), "my answer", "General")

	want := "Mock interview AI failed (boom). Try again later."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGenerateQuestionsFallbackBatch(t *testing.T) {
	e := newTestEngine(&stubGenerator{reply: "no array in sight"})

	questions := e.GenerateQuestions(context.Background(), "General")

	if len(questions) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Fatalf("expected sequential ids, got %+v", questions)
		}
	}
	if questions[4].Question != "Why should we hire you for this position?" {
		t.Fatalf("unexpected final question: %q", questions[4].Question)
	}
}

func TestEvaluateInterviewFallback(t *testing.T) {
	e := newTestEngine(&stubGenerator{err: errors.New("down")})

	ev := e.EvaluateInterview(context.Background(), []profile.QAPair{{Question: "q", Answer: "a"}}, "General")

	if ev.Score != 78 {
		t.Fatalf("expected fallback score 78, got %d", ev.Score)
	}
	if ev.Feedback.Suggestions != "Give more practical examples next time." {
		t.Fatalf("unexpected suggestions: %q", ev.Feedback.Suggestions)
	}
}

func TestEvaluateInterviewParsesWrappedObject(t *testing.T) {
	e := newTestEngine(&stubGenerator{
		reply: `Here it is: {"score": 85, "feedback": {"strengths": ["clear"], "weaknesses": [], "suggestions": "s"}}`,
	})

	ev := e.EvaluateInterview(context.Background(), []profile.QAPair{{Question: "q", Answer: "a"}}, "General")

	if ev.Score != 85 {
		t.Fatalf("expected parsed score 85, got %d", ev.Score)
	}
}
