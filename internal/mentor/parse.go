package mentor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"career-mentor/internal/domain/profile"
)

// Greedy spans: first opening bracket to last closing bracket.
var (
	arraySpanPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	objectSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// stripCodeFences removes a leading "```json"/"```" marker and a trailing
// "```" so fenced replies can be re-parsed.
func stripCodeFences(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// normalizeProjects coerces a raw model reply into well-typed project
// ideas. Parse order: direct JSON, fence-stripped JSON, then string
// salvage (re-parse, bracketed span, wrap-as-title).
func normalizeProjects(raw string) []profile.ProjectIdea {
	trimmed := strings.TrimSpace(raw)

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		cleaned := stripCodeFences(trimmed)
		if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
			return salvageProjectsFromString(trimmed)
		}
	}

	switch v := value.(type) {
	case []any:
		return formatProjects(v)
	case string:
		return salvageProjectsFromString(v)
	default:
		return formatProjects([]any{value})
	}
}

func salvageProjectsFromString(s string) []profile.ProjectIdea {
	var value any
	if err := json.Unmarshal([]byte(s), &value); err == nil {
		if list, ok := value.([]any); ok {
			return formatProjects(list)
		}
		return formatProjects([]any{value})
	}

	if span := arraySpanPattern.FindString(s); span != "" {
		if err := json.Unmarshal([]byte(span), &value); err == nil {
			if list, ok := value.([]any); ok {
				return formatProjects(list)
			}
			return formatProjects([]any{value})
		}
	}

	// Wrapped as a title-only record; defaults fill the remaining fields.
	return formatProjects([]any{map[string]any{"title": s}})
}

// formatProjects applies field defaults to object elements, turns plain
// strings into title-only records, and drops every other shape.
func formatProjects(items []any) []profile.ProjectIdea {
	out := make([]profile.ProjectIdea, 0, len(items))
	for _, item := range items {
		switch p := item.(type) {
		case map[string]any:
			out = append(out, profile.ProjectIdea{
				Title:       stringField(p["title"], "Untitled Project"),
				Description: stringField(p["description"], ""),
				TechStack:   stringSliceField(p["tech_stack"]),
				Difficulty:  stringField(p["difficulty"], "Intermediate"),
			})
		case string:
			out = append(out, profile.ProjectIdea{Title: p, Description: ""})
		}
	}
	return out
}

func stringField(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func stringSliceField(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseQuestionBatch extracts the first bracketed span from the reply and
// requires a JSON array whose every element carries a "question" field.
func parseQuestionBatch(raw string) ([]profile.InterviewQuestion, bool) {
	span := arraySpanPattern.FindString(raw)
	if span == "" {
		return nil, false
	}

	var elements []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &elements); err != nil {
		return nil, false
	}
	for _, el := range elements {
		if _, ok := el["question"]; !ok {
			return nil, false
		}
	}

	var questions []profile.InterviewQuestion
	if err := json.Unmarshal([]byte(span), &questions); err != nil {
		return nil, false
	}
	return questions, true
}

// parseEvaluation extracts the first braced span and decodes the strict
// evaluation shape.
func parseEvaluation(raw string) (profile.Evaluation, bool) {
	span := objectSpanPattern.FindString(raw)
	if span == "" {
		return profile.Evaluation{}, false
	}

	var ev profile.Evaluation
	if err := json.Unmarshal([]byte(span), &ev); err != nil {
		return profile.Evaluation{}, false
	}
	return ev, true
}
