// Package types provides the resume document model shared throughout the
// resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds the candidate's contact details. The four required
// fields are enforced at the editing boundary, not here; the document
// stores whatever it is given.
type ContactInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ProfessionalSummary holds the free-text summary paragraph.
type ProfessionalSummary struct {
	Summary string `json:"summary"`
}

// SkillItem is a single named skill with a proficiency level. IDs are
// assigned once at creation and never change. Skill names are unique
// within the list under case-insensitive comparison.
type SkillItem struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// ExperienceItem is a single work history entry. Achievements are trimmed
// and filtered before the document is persisted; empty entries never
// survive a section replace.
type ExperienceItem struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationItem is a single education entry. EndDate is open when Current
// is true.
type EducationItem struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// ProjectItem is a single project entry. Technologies behave as an ordered
// set: no duplicates after trimming.
type ProjectItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// ResumeDocument is the aggregate root: one resume per session. Dates are
// "YYYY-MM" strings throughout. The document is always replaced a whole
// section at a time; there is no partial-patch protocol.
type ResumeDocument struct {
	ContactInfo         ContactInfo         `json:"contactInfo"`
	ProfessionalSummary ProfessionalSummary `json:"professionalSummary"`
	Skills              []SkillItem         `json:"skills"`
	Experience          []ExperienceItem    `json:"experience"`
	Education           []EducationItem     `json:"education"`
	Projects            []ProjectItem       `json:"projects"`
}

// EmptyDocument returns a resume document with all scalar fields blank and
// all section lists empty.
func EmptyDocument() ResumeDocument {
	return ResumeDocument{
		Skills:     []SkillItem{},
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		Projects:   []ProjectItem{},
	}
}
