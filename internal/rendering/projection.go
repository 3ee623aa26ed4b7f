// Package rendering projects the resume document into a normalized,
// render-ready model and renders it to HTML for preview and PDF export.
package rendering

import (
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// technologySeparator joins a project's technology list for display.
const technologySeparator = ", "

// RenderModel is the order-preserving projection of a resume document.
// The on-screen preview and the PDF export capture consume it
// identically; it carries no interactive state.
type RenderModel struct {
	ContactLines []string
	Summary      string
	Skills       []SkillLine
	Experience   []ExperienceEntry
	Education    []EducationEntry
	Projects     []ProjectEntry
}

// SkillLine is one skill with its display level and style descriptor.
type SkillLine struct {
	Name       string
	Level      string
	StyleClass string
}

// ExperienceEntry is one rendered work history item.
type ExperienceEntry struct {
	Position     string
	Company      string
	DateRange    string
	Description  string
	Achievements []string
}

// EducationEntry is one rendered education item.
type EducationEntry struct {
	Institution string
	Degree      string
	Field       string
	DateRange   string
	Description string
}

// ProjectEntry is one rendered project item.
type ProjectEntry struct {
	Title        string
	Description  string
	Technologies string
	Link         string
	DateRange    string
}

// Project maps a document snapshot to its render model. The
// transformation is pure: identical documents always project to identical
// models. Contact lines appear in fixed order (name, email, phone,
// location, linkedin, website) with empty fields omitted; list sections
// keep insertion order.
func Project(doc types.ResumeDocument) RenderModel {
	var m RenderModel

	contactFields := []string{
		doc.ContactInfo.FullName,
		doc.ContactInfo.Email,
		doc.ContactInfo.Phone,
		doc.ContactInfo.Location,
		doc.ContactInfo.LinkedIn,
		doc.ContactInfo.Website,
	}
	for _, field := range contactFields {
		if field != "" {
			m.ContactLines = append(m.ContactLines, field)
		}
	}

	m.Summary = doc.ProfessionalSummary.Summary

	for _, skill := range doc.Skills {
		m.Skills = append(m.Skills, SkillLine{
			Name:       skill.Name,
			Level:      string(skill.Level),
			StyleClass: skill.Level.StyleClass(),
		})
	}

	for _, exp := range doc.Experience {
		entry := ExperienceEntry{
			Position:    exp.Position,
			Company:     exp.Company,
			DateRange:   formatDateRange(exp.StartDate, exp.EndDate, exp.Current),
			Description: exp.Description,
		}
		entry.Achievements = append(entry.Achievements, exp.Achievements...)
		m.Experience = append(m.Experience, entry)
	}

	for _, edu := range doc.Education {
		m.Education = append(m.Education, EducationEntry{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			Field:       edu.Field,
			DateRange:   formatDateRange(edu.StartDate, edu.EndDate, edu.Current),
			Description: edu.Description,
		})
	}

	for _, proj := range doc.Projects {
		m.Projects = append(m.Projects, ProjectEntry{
			Title:        proj.Title,
			Description:  proj.Description,
			Technologies: strings.Join(proj.Technologies, technologySeparator),
			Link:         proj.Link,
			DateRange:    formatDateRange(proj.StartDate, proj.EndDate, false),
		})
	}

	return m
}

// FormatDate renders a "YYYY-MM" date string as "Mon YYYY" (e.g. "Jan
// 2024"). Empty input renders as empty; input that is not a year-month
// string passes through unchanged rather than failing.
func FormatDate(yearMonth string) string {
	if yearMonth == "" {
		return ""
	}
	date, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return date.Format("Jan 2006")
}

// formatDateRange renders "start – end", with "Present" in place of the
// end date for current positions. Both dates empty renders as empty.
func formatDateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if current {
		to = "Present"
	}
	if from == "" && to == "" {
		return ""
	}
	return from + " – " + to
}
