// Package scoring implements the ATS compatibility score for a resume
// document, optionally weighted by a target job description.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-builder/internal/progress"
	"github.com/jonathan/resume-builder/internal/types"
)

// Per-category weights. The category maxima sum to exactly 100, so the
// final clamp is a safety bound rather than an expected path.
const (
	contactPoints             = 15.0
	summaryPoints             = 10.0
	perSkillPoints            = 3.0
	skillsMax                 = 15.0
	perExperiencePoints       = 5.0
	experienceMax             = 15.0
	detailedAchievementsBonus = 10.0
	perEducationPoints        = 7.5
	educationMax              = 15.0
	perProjectPoints          = 5.0
	projectsMax               = 10.0
	keywordMax                = 10.0
	keywordDefault            = 5.0
	maxScore                  = 100
)

// Breakdown reports the per-category contributions to the final score.
type Breakdown struct {
	Contact    float64 `json:"contact"`
	Summary    float64 `json:"summary"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Projects   float64 `json:"projects"`
	Keywords   float64 `json:"keywords"`
}

// Total returns the unrounded sum of all categories.
func (b Breakdown) Total() float64 {
	return b.Contact + b.Summary + b.Skills + b.Experience +
		b.Education + b.Projects + b.Keywords
}

// CalculateScore returns the ATS compatibility score in [0,100] along with
// its per-category breakdown. A blank or whitespace-only job description
// counts as "not provided" and earns the flat keyword credit instead of a
// zero match score. The function is pure and deterministic.
func CalculateScore(doc types.ResumeDocument, jobDescription string) (int, Breakdown) {
	var b Breakdown

	if progress.IsSectionComplete(progress.SectionContact, doc) {
		b.Contact = contactPoints
	}
	if progress.IsSectionComplete(progress.SectionSummary, doc) {
		b.Summary = summaryPoints
	}

	b.Skills = math.Min(float64(len(doc.Skills))*perSkillPoints, skillsMax)

	if n := len(doc.Experience); n > 0 {
		b.Experience = math.Min(float64(n)*perExperiencePoints, experienceMax)
		for _, exp := range doc.Experience {
			if len(exp.Achievements) > 1 {
				b.Experience += detailedAchievementsBonus
				break
			}
		}
	}

	b.Education = math.Min(float64(len(doc.Education))*perEducationPoints, educationMax)
	b.Projects = math.Min(float64(len(doc.Projects))*perProjectPoints, projectsMax)

	if strings.TrimSpace(jobDescription) == "" {
		b.Keywords = keywordDefault
	} else {
		b.Keywords = matchKeywords(doc, jobDescription)
	}

	score := int(math.Round(b.Total()))
	if score > maxScore {
		score = maxScore
	}
	return score, b
}

// Explain returns a short human-readable summary of where a breakdown
// loses points.
func Explain(b Breakdown) string {
	var parts []string
	if b.Contact < contactPoints {
		parts = append(parts, "Complete all contact fields")
	}
	if b.Summary < summaryPoints {
		parts = append(parts, "Add a professional summary")
	}
	if b.Skills < skillsMax {
		parts = append(parts, "List more skills")
	}
	if b.Experience < experienceMax+detailedAchievementsBonus {
		parts = append(parts, "Add experience entries with multiple achievements")
	}
	if b.Education < educationMax {
		parts = append(parts, "Add education entries")
	}
	if b.Projects < projectsMax {
		parts = append(parts, "Add projects")
	}
	if b.Keywords < keywordMax {
		parts = append(parts, "Align skills and titles with the job description")
	}
	if len(parts) == 0 {
		return "All scoring categories at maximum"
	}
	return strings.Join(parts, ". ")
}
