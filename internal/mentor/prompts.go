package mentor

import (
	"encoding/json"
	"fmt"
	"strings"

	"career-mentor/internal/domain/profile"
)

const roadmapSystemDirective = "You are a precise and structured AI roadmap generator."

func analyzeResumePrompt(text, targetRole string) string {
	return fmt.Sprintf(`You are an expert AI career mentor. Analyze this resume:
%s

Target role: %s.
Identify:
1. Top skills found.
2. Missing skills to improve.
3. A short 3-step learning roadmap.
Return your response in a clear bullet list format.`, text, targetRole)
}

func projectsPrompt(role string) string {
	return fmt.Sprintf(`You are an expert mentor for the role of %s.
Suggest 3 advanced, resume-worthy project ideas suitable for professionals aiming to master this role.

Return the output in pure JSON format, strictly structured as follows:

[
  {
    "title": "Project title",
    "description": "A concise 2-3 line description of what the project achieves.",
    "tech_stack": ["Tech1", "Tech2", "Tech3"],
    "difficulty": "Beginner | Intermediate | Advanced"
  },
  ...
]

Do not include any additional text or explanation outside the JSON.`, role)
}

func roadmapPrompt(skills []string, targetRole string) string {
	return fmt.Sprintf(`You are an expert AI career coach.

The user has these current skills:
%s

The user wants to become a %s.

Create a detailed, multi-phase learning roadmap that will guide the user
from beginner/intermediate level to a professional %s.

Requirements:
- Divide the roadmap into 5 to 7 phases.
- Each phase must include:
  1. A phase title (e.g., "Phase 2: Core Development Skills")
  2. A short objective (1-2 sentences)
  3. A list of key topics or tools to learn
  4. Expected duration in weeks
  5. 1-2 practical tasks or mini-projects

Return the output strictly in JSON format like this:

{
    "target_role": "%s",
    "timeline_weeks": <total_estimated_weeks>,
    "roadmap": [
        {
            "phase": "Phase 1: <title>",
            "objective": "<brief goal of this phase>",
            "focus": ["topic1", "topic2", "topic3"],
            "projects": ["mini project idea 1", "mini project idea 2"],
            "duration_weeks": <int>
        },
        ...
    ]
}`, strings.Join(skills, ", "), targetRole, targetRole, targetRole)
}

func feedbackPrompt(answer, role string) string {
	return fmt.Sprintf(`You are a professional interviewer for the role: %s.
Candidate's last answer:
"%s"

Provide constructive feedback and one follow-up question.`, role, answer)
}

func questionsPrompt(role string) string {
	return fmt.Sprintf(`You are an expert technical interviewer for the role of %s.
Generate exactly 5 unique, challenging, and realistic interview questions.
Return ONLY a valid JSON array in the following format:
[
    { "id": 1, "question": "Explain the concept of microservices and their benefits." },
    { "id": 2, "question": "How do you ensure scalability in a large web application?" }
]
Do NOT include any text, explanation, or markdown before or after the JSON.`, role)
}

func evaluationPrompt(qa []profile.QAPair, role string) string {
	payload, err := json.MarshalIndent(qa, "", "  ")
	if err != nil {
		payload = []byte("[]")
	}
	return fmt.Sprintf(`You are a senior interviewer evaluating a %s candidate.
Evaluate the following answers and return ONLY valid JSON:
{
    "score": 0-100,
    "feedback": {
        "strengths": ["..."],
        "weaknesses": ["..."],
        "suggestions": "..."
    }
}
Q&A: %s`, role, payload)
}
