package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Match weights for keyword containment.
const (
	skillMatchWeight    = 1.0
	positionMatchWeight = 0.5
)

// matchKeywords scores literal keyword overlap between the document and a
// job description: each skill name found in the description adds 1.0, each
// experience position title adds 0.5, capped at keywordMax.
//
// Matching is case-insensitive substring containment, not tokenized or
// stemmed, so a short skill name can match inside a longer word (skill
// "Go" matches "Google"). That imprecision is a known property of the
// score, not something the matcher guards against.
func matchKeywords(doc types.ResumeDocument, jobDescription string) float64 {
	descLower := strings.ToLower(jobDescription)

	raw := 0.0
	for _, skill := range doc.Skills {
		if skill.Name != "" && strings.Contains(descLower, strings.ToLower(skill.Name)) {
			raw += skillMatchWeight
		}
	}
	for _, exp := range doc.Experience {
		if exp.Position != "" && strings.Contains(descLower, strings.ToLower(exp.Position)) {
			raw += positionMatchWeight
		}
	}
	return math.Min(raw, keywordMax)
}
