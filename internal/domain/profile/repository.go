package profile

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("profile not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByEmail(ctx context.Context, email string) (Profile, error)

	UpdateResume(ctx context.Context, email, resumeText string, analysis Analysis) error
	SelectRole(ctx context.Context, email, role string, roadmap RoadmapPlan, projects []ProjectIdea) error
	SetInterviewQuestions(ctx context.Context, email string, questions []InterviewQuestion) error
	AppendInterviewEvent(ctx context.Context, email string, event InterviewEvent) error

	Count(ctx context.Context) (int64, error)
}
