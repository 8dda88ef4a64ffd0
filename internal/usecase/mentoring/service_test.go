package mentoring

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"career-mentor/internal/ai"
	"career-mentor/internal/domain/profile"
	"career-mentor/internal/mentor"
)

type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, ai.GenerateRequest) (string, error) {
	return "", errors.New("unavailable")
}

type memRepo struct {
	profiles map[string]profile.Profile

	appendedEvents []profile.InterviewEvent
}

func newMemRepo() *memRepo {
	return &memRepo{profiles: map[string]profile.Profile{}}
}

func (m *memRepo) Create(_ context.Context, p profile.Profile) error {
	if _, ok := m.profiles[p.Email]; ok {
		return profile.ErrEmailTaken
	}
	m.profiles[p.Email] = p
	return nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (profile.Profile, error) {
	p, ok := m.profiles[email]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdateResume(_ context.Context, email, resumeText string, analysis profile.Analysis) error {
	p, ok := m.profiles[email]
	if !ok {
		return profile.ErrNotFound
	}
	p.ResumeText = resumeText
	p.Analysis = analysis
	m.profiles[email] = p
	return nil
}

func (m *memRepo) SelectRole(_ context.Context, email, role string, roadmap profile.RoadmapPlan, projects []profile.ProjectIdea) error {
	p, ok := m.profiles[email]
	if !ok {
		return profile.ErrNotFound
	}
	p.SelectedRole = &role
	p.Roadmap = &roadmap
	p.Projects = projects
	m.profiles[email] = p
	return nil
}

func (m *memRepo) SetInterviewQuestions(_ context.Context, email string, questions []profile.InterviewQuestion) error {
	p, ok := m.profiles[email]
	if !ok {
		return profile.ErrNotFound
	}
	p.InterviewQuestions = questions
	m.profiles[email] = p
	return nil
}

func (m *memRepo) AppendInterviewEvent(_ context.Context, email string, event profile.InterviewEvent) error {
	p, ok := m.profiles[email]
	if !ok {
		return profile.ErrNotFound
	}
	p.InterviewHistory = append(p.InterviewHistory, event)
	m.profiles[email] = p
	m.appendedEvents = append(m.appendedEvents, event)
	return nil
}

func (m *memRepo) Count(context.Context) (int64, error) {
	return int64(len(m.profiles)), nil
}

func newTestService(repo profile.Repository) *Service {
	engine := mentor.NewEngine(failingGenerator{}, nil, time.Second)
	return NewService(repo, engine, nil, nil)
}

func seedProfile(repo *memRepo, email string) {
	repo.profiles[email] = profile.Profile{
		Name:         "Ada",
		Email:        email,
		PasswordHash: "hashed",
	}
}

func TestGetProfileSanitizesPasswordHash(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	p, err := svc.GetProfile(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if p.PasswordHash != "" {
		t.Fatal("expected password hash to be cleared")
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc := newTestService(newMemRepo())

	if _, err := svc.GetProfile(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSelectRoleReplacesRoadmapAndProjects(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	res, err := svc.SelectRole(context.Background(), "ada@example.com", "Data Scientist")
	if err != nil {
		t.Fatalf("select role failed: %v", err)
	}
	if res.SelectedRole != "Data Scientist" {
		t.Fatalf("unexpected role: %q", res.SelectedRole)
	}
	if res.Roadmap.TargetRole != "Data Scientist" {
		t.Fatalf("unexpected roadmap target: %q", res.Roadmap.TargetRole)
	}
	if len(res.Projects) != 3 {
		t.Fatalf("expected 3 fallback projects, got %d", len(res.Projects))
	}

	p := repo.profiles["ada@example.com"]
	if p.SelectedRole == nil || *p.SelectedRole != "Data Scientist" {
		t.Fatalf("expected stored role, got %+v", p.SelectedRole)
	}
	if p.Roadmap == nil || len(p.Projects) != 3 {
		t.Fatal("expected roadmap and projects stored wholesale")
	}
}

func TestSelectRoleRejectsBlankRole(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	if _, err := svc.SelectRole(context.Background(), "ada@example.com", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnswerInterviewAppendsTurn(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	feedback, err := svc.AnswerInterview(context.Background(), "ada@example.com", "My answer.")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if !strings.HasPrefix(feedback, "Mock interview AI failed") {
		t.Fatalf("expected fallback feedback, got %q", feedback)
	}

	if len(repo.appendedEvents) != 1 {
		t.Fatalf("expected one appended event, got %d", len(repo.appendedEvents))
	}
	ev := repo.appendedEvents[0]
	if ev.Answer != "My answer." || ev.Feedback != feedback {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Evaluation != nil || len(ev.QA) != 0 {
		t.Fatalf("single-turn event must not carry batch fields: %+v", ev)
	}
}

func TestAnswerInterviewRejectsBlankAnswer(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	if _, err := svc.AnswerInterview(context.Background(), "ada@example.com", "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStartInterviewDefaultsRole(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	role, questions, err := svc.StartInterview(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if role != "General" {
		t.Fatalf("expected default role General, got %q", role)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(questions))
	}

	p := repo.profiles["ada@example.com"]
	if len(p.InterviewQuestions) != 5 {
		t.Fatalf("expected stored question batch, got %d", len(p.InterviewQuestions))
	}
}

func TestStartInterviewUsesSelectedRole(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	role := "Data Scientist"
	p := repo.profiles["ada@example.com"]
	p.SelectedRole = &role
	repo.profiles["ada@example.com"] = p
	svc := newTestService(repo)

	got, _, err := svc.StartInterview(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if got != "Data Scientist" {
		t.Fatalf("expected selected role, got %q", got)
	}
}

func TestEvaluateInterviewAppendsBatch(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	qa := []profile.QAPair{{Question: "Q1", Answer: "A1"}}
	ev, err := svc.EvaluateInterview(context.Background(), "ada@example.com", qa)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if ev.Score != 78 {
		t.Fatalf("expected fallback score 78, got %d", ev.Score)
	}

	if len(repo.appendedEvents) != 1 {
		t.Fatalf("expected one appended event, got %d", len(repo.appendedEvents))
	}
	event := repo.appendedEvents[0]
	if len(event.QA) != 1 || event.Evaluation == nil || event.Evaluation.Score != 78 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Answer != "" || event.Feedback != "" {
		t.Fatalf("batch event must not carry single-turn fields: %+v", event)
	}
}

func TestEvaluateInterviewRejectsEmptyBatch(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	if _, err := svc.EvaluateInterview(context.Background(), "ada@example.com", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHealthWithoutCache(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	status, err := svc.Health(context.Background())
	if err != nil {
		t.Fatalf("health failed: %v", err)
	}
	if status.Users != 1 {
		t.Fatalf("expected 1 user, got %d", status.Users)
	}
	if status.Cache != "unavailable" {
		t.Fatalf("expected cache unavailable, got %q", status.Cache)
	}
}

func TestUpdateResumeReanalyzes(t *testing.T) {
	repo := newMemRepo()
	seedProfile(repo, "ada@example.com")
	svc := newTestService(repo)

	analysis, err := svc.UpdateResume(context.Background(), "ada@example.com", []byte("Docker and Kubernetes daily"), "resume.txt")
	if err != nil {
		t.Fatalf("update resume failed: %v", err)
	}
	if len(analysis.Skills) != 2 {
		t.Fatalf("expected Docker and Kubernetes, got %v", analysis.Skills)
	}

	p := repo.profiles["ada@example.com"]
	if p.ResumeText == "" {
		t.Fatal("expected resume text stored")
	}
}

func TestUpdateResumeRejectsEmptyUpload(t *testing.T) {
	svc := newTestService(newMemRepo())

	if _, err := svc.UpdateResume(context.Background(), "ada@example.com", nil, "resume.txt"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
