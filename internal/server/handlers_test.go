package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 0, StorageDir: t.TempDir()})
	require.NoError(t, err)
	return s
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodOptions, "/resume", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetResume_StartsEmpty(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/resume", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc types.ResumeDocument
	decodeBody(t, rec, &doc)
	assert.Empty(t, doc.ContactInfo.FullName)
	assert.Empty(t, doc.Skills)
}

func TestSetContact(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/contact",
		`{"fullName":"Jane Doe","email":"jane@example.com","phone":"555-0100","location":"Portland, OR","linkedin":"linkedin.com/in/janedoe"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/resume", "")
	var doc types.ResumeDocument
	decodeBody(t, rec, &doc)
	assert.Equal(t, "Jane Doe", doc.ContactInfo.FullName)
	assert.Equal(t, "linkedin.com/in/janedoe", doc.ContactInfo.LinkedIn)
}

func TestSetContact_InvalidEmail(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/contact",
		`{"fullName":"Jane Doe","email":"not-an-email","phone":"555","location":"PDX"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetContact_MissingRequiredField(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/contact",
		`{"fullName":"Jane Doe","email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetSummary(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/summary", `{"summary":"Engineer."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Engineer.", s.store.Document().ProfessionalSummary.Summary)
}

func TestSetSkills_AssignsIDs(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/skills",
		`{"skills":[{"name":"Go","level":"Expert"},{"id":"keep-me","name":"SQL","level":"Advanced"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	skills := s.store.Document().Skills
	require.Len(t, skills, 2)
	assert.NotEmpty(t, skills[0].ID)
	assert.Equal(t, "keep-me", skills[1].ID)
}

func TestSetSkills_DuplicateName(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/skills",
		`{"skills":[{"name":"JavaScript","level":"Expert"},{"name":"javascript","level":"Beginner"}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The replacement was rejected wholesale.
	assert.Empty(t, s.store.Document().Skills)
}

func TestSetSkills_InvalidLevel(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/skills",
		`{"skills":[{"name":"Go","level":"Wizard"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetExperience_EndDateRequiredUnlessCurrent(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/resume/experience",
		`{"experience":[{"company":"Acme","position":"Engineer","startDate":"2020-01"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPut, "/resume/experience",
		`{"experience":[{"company":"Acme","position":"Engineer","startDate":"2020-01","current":true}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, s.store.Document().Experience, 1)
	assert.True(t, s.store.Document().Experience[0].Current)
}

func TestSetExperience_TrimsAchievements(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/experience",
		`{"experience":[{"company":"Acme","position":"Engineer","startDate":"2020-01","current":true,"achievements":["  shipped it  ","   ",""]}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	exp := s.store.Document().Experience
	require.Len(t, exp, 1)
	assert.Equal(t, []string{"shipped it"}, exp[0].Achievements)
}

func TestSetProjects_DuplicateTechnology(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/projects",
		`{"projects":[{"title":"Tool","technologies":["Go"," Go "]}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, s.store.Document().Projects)
}

func TestSaveLoadClear(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPut, "/resume/summary", `{"summary":"Persisted."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/resume/save", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Overwrite in memory, then load the saved copy back.
	rec = doRequest(t, s, http.MethodPut, "/resume/summary", `{"summary":"Scratch."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/resume/load", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loadBody struct {
		Found  bool                 `json:"found"`
		Resume types.ResumeDocument `json:"resume"`
	}
	decodeBody(t, rec, &loadBody)
	assert.True(t, loadBody.Found)
	assert.Equal(t, "Persisted.", loadBody.Resume.ProfessionalSummary.Summary)

	rec = doRequest(t, s, http.MethodDelete, "/resume", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.store.Document().ProfessionalSummary.Summary)

	// Nothing persisted anymore.
	rec = doRequest(t, s, http.MethodPost, "/resume/load", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &loadBody)
	assert.False(t, loadBody.Found)
}

func TestProgress(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/resume/progress", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body ProgressResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, 0, body.Progress)
	assert.False(t, body.Sections["Contact"])

	rec = doRequest(t, s, http.MethodPut, "/resume/summary", `{"summary":"Done."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/resume/progress", "")
	decodeBody(t, rec, &body)
	assert.Equal(t, 17, body.Progress)
	assert.True(t, body.Sections["Summary"])
}

func TestScore_EmptyBody(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/resume/score", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body ScoreResponse
	decodeBody(t, rec, &body)
	// Empty document: only the flat keyword credit applies.
	assert.Equal(t, 5, body.Score)
	assert.NotEmpty(t, body.Suggestions)
}

func TestScore_WithJobDescription(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/skills",
		`{"skills":[{"name":"Kubernetes","level":"Advanced"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/resume/score",
		`{"jobDescription":"Looking for Kubernetes experience"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ScoreResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, 1.0, body.Breakdown.Keywords)
	assert.Equal(t, 3.0, body.Breakdown.Skills)
}

func TestPreview(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPut, "/resume/contact",
		`{"fullName":"Jane Doe","email":"jane@example.com","phone":"555","location":"PDX"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/resume/preview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestSteps(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/steps", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body StepsResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, 0, body.Active)
	assert.Equal(t, "Contact", body.ActiveName)
	assert.Len(t, body.Steps, 7)

	rec = doRequest(t, s, http.MethodPost, "/steps/next", "")
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body.Active)

	rec = doRequest(t, s, http.MethodPost, "/steps/goto", `{"step":6}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "Preview", body.ActiveName)

	rec = doRequest(t, s, http.MethodPost, "/steps/prev", "")
	decodeBody(t, rec, &body)
	assert.Equal(t, 5, body.Active)
}

func TestStepGoTo_OutOfRange(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/steps/goto", `{"step":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
