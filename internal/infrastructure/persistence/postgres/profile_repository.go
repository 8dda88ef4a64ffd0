package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"career-mentor/internal/database"
	"career-mentor/internal/domain/profile"
)

const uniqueViolationCode = "23505"

// ProfileRepository persists one accreting document per user, keyed by
// lowercased email. Structured fields live in JSONB columns so each
// mutation touches only the fields its stage owns.
type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	analysis, err := json.Marshal(p.Analysis)
	if err != nil {
		return err
	}
	roles, err := json.Marshal(emptyIfNil(p.SuggestedRoles))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
INSERT INTO users (email, name, password_hash, resume_text, ai_analysis, suggested_roles)
VALUES ($1, $2, $3, $4, $5, $6)`,
		normalizeEmail(p.Email), p.Name, p.PasswordHash, p.ResumeText, analysis, roles,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return profile.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `
SELECT email, name, password_hash, resume_text, ai_analysis, suggested_roles,
       selected_role, roadmap, projects, interview_questions, interview_history,
       created_at, updated_at
FROM users WHERE email = $1`,
		normalizeEmail(email),
	)

	var (
		p            profile.Profile
		analysis     []byte
		roles        []byte
		selectedRole *string
		roadmap      []byte
		projects     []byte
		questions    []byte
		history      []byte
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(
		&p.Email, &p.Name, &p.PasswordHash, &p.ResumeText, &analysis, &roles,
		&selectedRole, &roadmap, &projects, &questions, &history,
		&createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	p.SelectedRole = selectedRole
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	if err := json.Unmarshal(analysis, &p.Analysis); err != nil {
		return profile.Profile{}, fmt.Errorf("decode ai_analysis: %w", err)
	}
	if err := json.Unmarshal(roles, &p.SuggestedRoles); err != nil {
		return profile.Profile{}, fmt.Errorf("decode suggested_roles: %w", err)
	}
	if len(roadmap) > 0 {
		p.Roadmap = &profile.RoadmapPlan{}
		if err := json.Unmarshal(roadmap, p.Roadmap); err != nil {
			return profile.Profile{}, fmt.Errorf("decode roadmap: %w", err)
		}
	}
	if err := json.Unmarshal(projects, &p.Projects); err != nil {
		return profile.Profile{}, fmt.Errorf("decode projects: %w", err)
	}
	if err := json.Unmarshal(questions, &p.InterviewQuestions); err != nil {
		return profile.Profile{}, fmt.Errorf("decode interview_questions: %w", err)
	}
	if err := json.Unmarshal(history, &p.InterviewHistory); err != nil {
		return profile.Profile{}, fmt.Errorf("decode interview_history: %w", err)
	}

	return p, nil
}

// UpdateResume overwrites the resume text and analysis fields only.
func (r *ProfileRepository) UpdateResume(ctx context.Context, email, resumeText string, analysis profile.Analysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx, `
UPDATE users SET resume_text = $2, ai_analysis = $3, updated_at = now()
WHERE email = $1`,
		normalizeEmail(email), resumeText, payload,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// SelectRole fully replaces the selected role, roadmap, and projects.
func (r *ProfileRepository) SelectRole(ctx context.Context, email, role string, roadmap profile.RoadmapPlan, projects []profile.ProjectIdea) error {
	roadmapJSON, err := json.Marshal(roadmap)
	if err != nil {
		return err
	}
	projectsJSON, err := json.Marshal(emptyIfNilProjects(projects))
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx, `
UPDATE users SET selected_role = $2, roadmap = $3, projects = $4, updated_at = now()
WHERE email = $1`,
		normalizeEmail(email), role, roadmapJSON, projectsJSON,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// SetInterviewQuestions replaces the current question batch wholesale.
func (r *ProfileRepository) SetInterviewQuestions(ctx context.Context, email string, questions []profile.InterviewQuestion) error {
	payload, err := json.Marshal(emptyIfNilQuestions(questions))
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx, `
UPDATE users SET interview_questions = $2, updated_at = now()
WHERE email = $1`,
		normalizeEmail(email), payload,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

// AppendInterviewEvent appends one entry to the history atomically; the
// JSONB concatenation never rewrites prior entries.
func (r *ProfileRepository) AppendInterviewEvent(ctx context.Context, email string, event profile.InterviewEvent) error {
	payload, err := json.Marshal([]profile.InterviewEvent{event})
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx, `
UPDATE users SET interview_history = interview_history || $2::jsonb, updated_at = now()
WHERE email = $1`,
		normalizeEmail(email), payload,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilProjects(s []profile.ProjectIdea) []profile.ProjectIdea {
	if s == nil {
		return []profile.ProjectIdea{}
	}
	return s
}

func emptyIfNilQuestions(s []profile.InterviewQuestion) []profile.InterviewQuestion {
	if s == nil {
		return []profile.InterviewQuestion{}
	}
	return s
}
