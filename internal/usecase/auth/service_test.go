package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"career-mentor/internal/ai"
	"career-mentor/internal/domain/profile"
	"career-mentor/internal/mentor"
	"career-mentor/internal/pkg/jwt"
)

type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, ai.GenerateRequest) (string, error) {
	return "", errors.New("unavailable")
}

type memRepo struct {
	profiles map[string]profile.Profile

	createCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{profiles: map[string]profile.Profile{}}
}

func (m *memRepo) Create(_ context.Context, p profile.Profile) error {
	m.createCalls++
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
	return nil
}

func (m *memRepo) Count(context.Context) (int64, error) {
	return int64(len(m.profiles)), nil
}

func newTestService(repo profile.Repository) *Service {
	engine := mentor.NewEngine(failingGenerator{}, nil, time.Second)
	tokens := jwt.NewHMACService("test-secret", time.Hour)
	return NewService(repo, engine, tokens, nil)
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}
	if len(res.SuggestedRoles) != 0 {
		t.Fatalf("expected no suggestions without a resume, got %v", res.SuggestedRoles)
	}
	if _, ok := repo.profiles["ada@example.com"]; !ok {
		t.Fatal("expected profile stored under lowercased email")
	}
}

func TestRegisterDuplicateEmailBeforeAnyWrite(t *testing.T) {
	repo := newMemRepo()
	repo.profiles["ada@example.com"] = profile.Profile{Email: "ada@example.com"}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ADA@example.com",
		Password: "s3cret",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no create attempt, got %d", repo.createCalls)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newTestService(newMemRepo())

	cases := []RegisterInput{
		{Name: "", Email: "a@b.c", Password: "x"},
		{Name: "Ada", Email: "", Password: "x"},
		{Name: "Ada", Email: "a@b.c", Password: "   "},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestRegisterWithResumeSuggestsRoles(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	res, err := svc.Register(context.Background(), RegisterInput{
		Name:           "Ada",
		Email:          "ada@example.com",
		Password:       "s3cret",
		ResumeData:     []byte("Experienced with Python, Pandas, SQL and Machine Learning."),
		ResumeFilename: "resume.txt",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(res.SuggestedRoles) == 0 || res.SuggestedRoles[0] != "Data Scientist" {
		t.Fatalf("expected Data Scientist first, got %v", res.SuggestedRoles)
	}

	p := repo.profiles["ada@example.com"]
	if len(p.Analysis.Skills) == 0 {
		t.Fatalf("expected extracted skills on the stored profile, got %+v", p.Analysis)
	}
	if !strings.HasPrefix(p.Analysis.Summary, "AI analysis unavailable") {
		t.Fatalf("expected fallback summary, got %q", p.Analysis.Summary)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), LoginInput{Email: "ADA@example.com", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" || res.Email != "ada@example.com" || res.Name != "Ada" {
		t.Fatalf("unexpected login result: %+v", res)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newMemRepo())

	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLongPasswordsMatchOnTruncatedPrefix(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	long := strings.Repeat("a", 80)
	if _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: long,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Only the first 72 bytes participate in the hash.
	variant := strings.Repeat("a", 72) + "bbbbbbbb"
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: variant}); err != nil {
		t.Fatalf("expected prefix match to succeed, got %v", err)
	}
}
