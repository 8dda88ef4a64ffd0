package ai

import "context"

// GenerateRequest is a single prompt for the generative-text endpoint.
// Temperature is optional; System sets a system directive when non-empty.
type GenerateRequest struct {
	Prompt      string
	System      string
	Temperature *float32
}

// ContentGenerator is the narrow contract the mentor engine depends on.
// Implementations make exactly one attempt per call; retries are the
// caller's decision (and this system never retries).
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (string, error)
}
