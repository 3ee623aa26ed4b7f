package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/flow"
	"github.com/jonathan/resume-builder/internal/progress"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

// ContactRequest is the full replacement payload for the contact section.
// The four required fields and the loose email pattern are enforced here,
// at the editing boundary; the store itself accepts whatever it is given.
type ContactRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Validate validates the ContactRequest using the validator.
func (r *ContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SummaryRequest is the replacement payload for the professional summary.
// Length guidance (50-500 characters) is a form concern; the core stores
// whatever is given.
type SummaryRequest struct {
	Summary string `json:"summary"`
}

// SkillPayload is one skill in a skills replacement. Items without an ID
// are new; the server assigns one that never changes afterwards.
type SkillPayload struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
}

// SkillsRequest is the full replacement payload for the skills section.
type SkillsRequest struct {
	Skills []SkillPayload `json:"skills"`
}

// ExperiencePayload is one entry in an experience replacement.
type ExperiencePayload struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// ExperienceRequest is the full replacement payload for the experience
// section.
type ExperienceRequest struct {
	Experience []ExperiencePayload `json:"experience"`
}

// EducationPayload is one entry in an education replacement.
type EducationPayload struct {
	ID          string `json:"id,omitempty"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationRequest is the full replacement payload for the education
// section.
type EducationRequest struct {
	Education []EducationPayload `json:"education"`
}

// ProjectPayload is one entry in a projects replacement.
type ProjectPayload struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// ProjectsRequest is the full replacement payload for the projects
// section.
type ProjectsRequest struct {
	Projects []ProjectPayload `json:"projects"`
}

// ScoreRequest carries the optional job description for ATS scoring.
type ScoreRequest struct {
	JobDescription string `json:"jobDescription,omitempty"`
}

// ScoreResponse is the ATS scoring result.
type ScoreResponse struct {
	Score       int               `json:"score"`
	Breakdown   scoring.Breakdown `json:"breakdown"`
	Suggestions string            `json:"suggestions"`
}

// ProgressResponse reports per-section completeness and the overall
// percentage.
type ProgressResponse struct {
	Progress int             `json:"progress"`
	Sections map[string]bool `json:"sections"`
}

// StepsResponse reports the editing step sequence and position.
type StepsResponse struct {
	Steps      []string `json:"steps"`
	Active     int      `json:"active"`
	ActiveName string   `json:"activeName"`
}

// GoToRequest selects a step by index.
type GoToRequest struct {
	Step int `json:"step"`
}

// handleGetResume returns the current document snapshot
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleSetContact replaces the contact section
func (s *Server) handleSetContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contact info: "+err.Error())
		return
	}

	s.store.SetContactInfo(types.ContactInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		LinkedIn: req.LinkedIn,
		Website:  req.Website,
	})
	s.jsonResponse(w, http.StatusOK, s.store.Document().ContactInfo)
}

// handleSetSummary replaces the professional summary
func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.store.SetSummary(types.ProfessionalSummary{Summary: req.Summary})
	s.jsonResponse(w, http.StatusOK, s.store.Document().ProfessionalSummary)
}

// handleSetSkills replaces the skills list. Duplicate names under
// case-insensitive comparison are rejected with 409.
func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	validate := validator.New()
	skills := make([]types.SkillItem, 0, len(req.Skills))
	for i, p := range req.Skills {
		if err := validate.Struct(p); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid skill at index %d: %v", i, err))
			return
		}
		skills = append(skills, types.SkillItem{
			ID:    s.ensureID(p.ID),
			Name:  p.Name,
			Level: types.SkillLevel(p.Level),
		})
	}

	if err := types.ValidateSkills(skills); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.SetSkills(skills)
	s.jsonResponse(w, http.StatusOK, s.store.Document().Skills)
}

// handleSetExperience replaces the experience list
func (s *Server) handleSetExperience(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	validate := validator.New()
	experience := make([]types.ExperienceItem, 0, len(req.Experience))
	for i, p := range req.Experience {
		if err := validate.Struct(p); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid experience at index %d: %v", i, err))
			return
		}
		// An open-ended position has no end date requirement.
		if !p.Current && p.EndDate == "" {
			verr := &ErrValidation{Field: "endDate", Message: "required unless current is true"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		experience = append(experience, types.ExperienceItem{
			ID:           s.ensureID(p.ID),
			Company:      p.Company,
			Position:     p.Position,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Current:      p.Current,
			Description:  p.Description,
			Achievements: p.Achievements,
		})
	}

	s.store.SetExperience(experience)
	s.jsonResponse(w, http.StatusOK, s.store.Document().Experience)
}

// handleSetEducation replaces the education list
func (s *Server) handleSetEducation(w http.ResponseWriter, r *http.Request) {
	var req EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	validate := validator.New()
	education := make([]types.EducationItem, 0, len(req.Education))
	for i, p := range req.Education {
		if err := validate.Struct(p); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid education at index %d: %v", i, err))
			return
		}
		if !p.Current && p.EndDate == "" {
			verr := &ErrValidation{Field: "endDate", Message: "required unless current is true"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		education = append(education, types.EducationItem{
			ID:          s.ensureID(p.ID),
			Institution: p.Institution,
			Degree:      p.Degree,
			Field:       p.Field,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			Current:     p.Current,
			Description: p.Description,
		})
	}

	s.store.SetEducation(education)
	s.jsonResponse(w, http.StatusOK, s.store.Document().Education)
}

// handleSetProjects replaces the projects list. Duplicate technologies
// within a project are rejected with 409.
func (s *Server) handleSetProjects(w http.ResponseWriter, r *http.Request) {
	var req ProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	validate := validator.New()
	projects := make([]types.ProjectItem, 0, len(req.Projects))
	for i, p := range req.Projects {
		if err := validate.Struct(p); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid project at index %d: %v", i, err))
			return
		}
		projects = append(projects, types.ProjectItem{
			ID:           s.ensureID(p.ID),
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
		})
	}

	projects = types.NormalizeProjects(projects)
	if err := types.ValidateProjects(projects); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.SetProjects(projects)
	s.jsonResponse(w, http.StatusOK, s.store.Document().Projects)
}

// handleSave persists the current snapshot
func (s *Server) handleSave(w http.ResponseWriter, _ *http.Request) {
	if err := s.store.Save(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleLoad replaces the in-memory snapshot from durable storage.
// Absence of a saved copy is reported, not an error.
func (s *Server) handleLoad(w http.ResponseWriter, _ *http.Request) {
	found := s.store.Load()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"found":  found,
		"resume": s.store.Document(),
	})
}

// handleClear resets the document and removes the durable copy
func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear storage: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleProgress returns per-section completeness and overall progress
func (s *Server) handleProgress(w http.ResponseWriter, _ *http.Request) {
	doc := s.store.Document()
	sections := make(map[string]bool, len(progress.Sections))
	for _, section := range progress.Sections {
		sections[section] = progress.IsSectionComplete(section, doc)
	}
	s.jsonResponse(w, http.StatusOK, ProgressResponse{
		Progress: progress.CalculateProgress(doc),
		Sections: sections,
	})
}

// handleScore returns the ATS compatibility score. The request body is
// optional; without a job description the score uses the flat keyword
// credit.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	score, breakdown := scoring.CalculateScore(s.store.Document(), req.JobDescription)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Score:       score,
		Breakdown:   breakdown,
		Suggestions: scoring.Explain(breakdown),
	})
}

// handlePreview returns the rendered HTML for the current snapshot
func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	html, err := s.flow.Preview()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleExport prints the current snapshot to PDF. Export failure is the
// external service failing; the document state is unaffected.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.exportTimeout)
	defer cancel()

	pdf, err := s.flow.ExportPDF(ctx, nil)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "PDF export failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleSteps reports the step sequence and active position
func (s *Server) handleSteps(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, StepsResponse{
		Steps:      flow.Steps,
		Active:     s.flow.Active(),
		ActiveName: s.flow.ActiveName(),
	})
}

// handleStepNext advances to the next step
func (s *Server) handleStepNext(w http.ResponseWriter, _ *http.Request) {
	s.flow.Next()
	s.handleSteps(w, nil)
}

// handleStepPrev moves back one step
func (s *Server) handleStepPrev(w http.ResponseWriter, _ *http.Request) {
	s.flow.Prev()
	s.handleSteps(w, nil)
}

// handleStepGoTo jumps to a step by index
func (s *Server) handleStepGoTo(w http.ResponseWriter, r *http.Request) {
	var req GoToRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.flow.GoTo(req.Step); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.handleSteps(w, nil)
}

// ensureID keeps an existing item ID and assigns a fresh one to new items.
// IDs never change after creation.
func (s *Server) ensureID(id string) string {
	if id != "" {
		return id
	}
	return s.idGen.NewID()
}
