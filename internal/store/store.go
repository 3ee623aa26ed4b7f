// Package store holds the in-memory resume document and its durable copy.
package store

import (
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// StorageKey is the fixed, well-known key under which the serialized
// document persists.
const StorageKey = "resumeData"

// Store owns the current resume document snapshot. Mutators replace whole
// sections; persistence happens only through an explicit Save. The store
// assumes single-writer use and is not safe for concurrent access.
//
// Callers pre-validate section payloads (types.ValidateSkills and friends)
// before invoking a mutator; the store never holds an invalid section.
type Store struct {
	doc     types.ResumeDocument
	backend Backend
}

// New returns a store holding the empty document, backed by the given
// durable backend.
func New(backend Backend) *Store {
	return &Store{
		doc:     types.EmptyDocument(),
		backend: backend,
	}
}

// Document returns the current snapshot.
func (s *Store) Document() types.ResumeDocument {
	return s.doc
}

// SetContactInfo replaces the contact section.
func (s *Store) SetContactInfo(info types.ContactInfo) {
	s.doc.ContactInfo = info
}

// SetSummary replaces the professional summary section.
func (s *Store) SetSummary(summary types.ProfessionalSummary) {
	s.doc.ProfessionalSummary = summary
}

// SetSkills replaces the skills list. Order is preserved as given.
func (s *Store) SetSkills(skills []types.SkillItem) {
	s.doc.Skills = skills
}

// SetExperience replaces the experience list. Achievement entries are
// trimmed and empty ones dropped, so they are never persisted empty.
func (s *Store) SetExperience(experience []types.ExperienceItem) {
	s.doc.Experience = types.NormalizeExperience(experience)
}

// SetEducation replaces the education list.
func (s *Store) SetEducation(education []types.EducationItem) {
	s.doc.Education = education
}

// SetProjects replaces the projects list. Technology entries are trimmed.
func (s *Store) SetProjects(projects []types.ProjectItem) {
	s.doc.Projects = types.NormalizeProjects(projects)
}

// Save serializes the current snapshot to the durable backend under
// StorageKey.
func (s *Store) Save() error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}
	return s.backend.Write(StorageKey, data)
}

// Load reads the persisted document, if one exists, and replaces the
// in-memory snapshot. It returns whether a usable persisted copy was
// found. An absent key, an unreadable value, or a payload that fails the
// document schema all report false and leave the in-memory snapshot
// untouched; none of them is an error.
func (s *Store) Load() bool {
	data, found, err := s.backend.Read(StorageKey)
	if err != nil || !found {
		return false
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return false
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	s.doc = doc
	return true
}

// Clear resets the in-memory snapshot to the empty document and removes
// the durable copy.
func (s *Store) Clear() error {
	s.doc = types.EmptyDocument()
	return s.backend.Delete(StorageKey)
}
