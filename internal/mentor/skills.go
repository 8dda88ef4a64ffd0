package mentor

import (
	"regexp"
	"sort"
	"strings"
)

// skillVocabulary is the fixed set of technology keywords recognized in
// free text. Matching is case-insensitive and whole-word.
var skillVocabulary = []string{
	"Python", "Java", "C++", "C#", "SQL", "HTML", "CSS", "JavaScript",
	"React", "Node.js", "Express", "Django", "Flask", "TensorFlow",
	"PyTorch", "AWS", "Azure", "Docker", "Kubernetes", "Pandas",
	"NumPy", "Power BI", "Tableau", "Excel", "Machine Learning",
	"Deep Learning", "Data Analysis", "FastAPI", "NLP", "DevOps", "Git",
}

// Terms are quoted so symbols like "+" in "C++" match literally instead of
// being interpreted as pattern operators.
var skillPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skillVocabulary))
	for i, term := range skillVocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
	}
	return patterns
}()

// ExtractSkills returns the subset of the vocabulary present in text as
// whole words. It never fails; no matches yields an empty slice.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	for i, pattern := range skillPatterns {
		if pattern.MatchString(lower) {
			found = append(found, skillVocabulary[i])
		}
	}
	return found
}

type roleRequirement struct {
	role   string
	skills []string
}

// roleTable maps candidate roles to required skills. Order matters: ties in
// overlap score break in declared order.
var roleTable = []roleRequirement{
	{"Data Scientist", []string{"Python", "Pandas", "Machine Learning", "Deep Learning", "SQL", "Power BI"}},
	{"AI Engineer", []string{"Python", "TensorFlow", "PyTorch", "NLP", "Deep Learning", "AI"}},
	{"Frontend Developer", []string{"JavaScript", "React", "HTML", "CSS"}},
	{"Backend Developer", []string{"Node.js", "Express", "Flask", "Django", "FastAPI", "SQL", "MongoDB"}},
	{"DevOps Engineer", []string{"Docker", "Kubernetes", "AWS", "Git", "CI", "Cloud"}},
	{"Cybersecurity Analyst", []string{"Network", "Security", "Firewall", "Cybersecurity", "Encryption"}},
	{"Full Stack Developer", []string{"React", "Node.js", "Flask", "MongoDB", "HTML", "CSS"}},
	{"Data Analyst", []string{"Excel", "Power BI", "Python", "SQL", "Data Analysis"}},
}

var defaultSuggestedRoles = []string{"AI Engineer", "Data Scientist", "Full Stack Developer"}

// SuggestRoles scores each role in the table by the number of extracted
// skills overlapping its requirements and returns the top 5 positive
// scorers, highest first. When nothing scores it returns the fixed default
// triple.
func SuggestRoles(text string) []string {
	skills := ExtractSkills(text)
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	type scored struct {
		role  string
		score int
	}
	candidates := make([]scored, 0, len(roleTable))
	for _, r := range roleTable {
		overlap := 0
		for _, required := range r.skills {
			if _, ok := have[required]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			candidates = append(candidates, scored{role: r.role, score: overlap})
		}
	}

	if len(candidates) == 0 {
		out := make([]string, len(defaultSuggestedRoles))
		copy(out, defaultSuggestedRoles)
		return out
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.role
	}
	return out
}
