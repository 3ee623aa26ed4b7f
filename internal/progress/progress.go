// Package progress evaluates section completeness and overall resume
// progress. All functions are pure over a document snapshot.
package progress

import (
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section names recognized by the evaluator.
const (
	SectionContact    = "Contact"
	SectionSummary    = "Summary"
	SectionSkills     = "Skills"
	SectionExperience = "Experience"
	SectionEducation  = "Education"
	SectionProjects   = "Projects"
)

// Sections lists the six sections that count toward progress, in step
// order. The Preview step is display-only and excluded.
var Sections = []string{
	SectionContact,
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
}

// IsSectionComplete reports whether a section has enough data to count as
// done: all four required contact fields for Contact, a non-empty summary
// for Summary, and a non-empty list for the rest. Unknown section names
// report false.
func IsSectionComplete(section string, doc types.ResumeDocument) bool {
	switch section {
	case SectionContact:
		c := doc.ContactInfo
		return c.FullName != "" && c.Email != "" && c.Phone != "" && c.Location != ""
	case SectionSummary:
		return doc.ProfessionalSummary.Summary != ""
	case SectionSkills:
		return len(doc.Skills) > 0
	case SectionExperience:
		return len(doc.Experience) > 0
	case SectionEducation:
		return len(doc.Education) > 0
	case SectionProjects:
		return len(doc.Projects) > 0
	default:
		return false
	}
}

// CalculateProgress returns the share of complete sections as a percentage
// in [0,100], rounded to the nearest integer.
func CalculateProgress(doc types.ResumeDocument) int {
	complete := 0
	for _, section := range Sections {
		if IsSectionComplete(section, doc) {
			complete++
		}
	}
	return int(math.Round(float64(complete) / float64(len(Sections)) * 100))
}
