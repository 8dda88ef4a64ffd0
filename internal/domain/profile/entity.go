package profile

import "time"

// ResumeTextLimit caps how much extracted resume text is retained per user.
const ResumeTextLimit = 1500

// Profile is the accreting per-user document. Email is the sole identity
// key and is lowercased before every lookup or write.
type Profile struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ResumeText   string    `json:"resume_text"`

	Analysis       Analysis `json:"ai_analysis"`
	SuggestedRoles []string `json:"suggested_roles"`

	SelectedRole *string      `json:"selected_role"`
	Roadmap      *RoadmapPlan `json:"roadmap"`
	Projects     []ProjectIdea `json:"projects"`

	InterviewQuestions []InterviewQuestion `json:"interview_questions"`
	InterviewHistory   []InterviewEvent    `json:"interview_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Analysis is the AI-derived resume summary plus the deterministic skill set.
type Analysis struct {
	Summary string   `json:"summary"`
	Skills  []string `json:"skills"`
}

type ProjectIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Difficulty  string   `json:"difficulty"`
}

type RoadmapPlan struct {
	TargetRole    string  `json:"target_role"`
	TimelineWeeks int     `json:"timeline_weeks"`
	Phases        []Phase `json:"roadmap"`
}

type Phase struct {
	Phase         string   `json:"phase"`
	Objective     string   `json:"objective"`
	Focus         []string `json:"focus"`
	Projects      []string `json:"projects"`
	DurationWeeks int      `json:"duration_weeks"`
}

type InterviewQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
}

type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type EvaluationFeedback struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions string   `json:"suggestions"`
}

type Evaluation struct {
	Score    int                `json:"score"`
	Feedback EvaluationFeedback `json:"feedback"`
}

// InterviewEvent is one append-only history entry: either a single-turn
// {answer, feedback} or a batch {qa, evaluation}.
type InterviewEvent struct {
	Answer   string `json:"answer,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	QA         []QAPair    `json:"qa,omitempty"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
}

// TruncateResumeText enforces the storage cap, counting runes so a
// multi-byte resume is not cut mid-character.
func TruncateResumeText(s string) string {
	r := []rune(s)
	if len(r) <= ResumeTextLimit {
		return s
	}
	return string(r[:ResumeTextLimit])
}
