package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	return New(backend), dir
}

func sampleDocument() types.ResumeDocument {
	doc := types.EmptyDocument()
	doc.ContactInfo = types.ContactInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Location: "Portland, OR",
		LinkedIn: "linkedin.com/in/janedoe",
	}
	doc.ProfessionalSummary = types.ProfessionalSummary{Summary: "Backend engineer with a platform focus."}
	doc.Skills = []types.SkillItem{
		{ID: "s1", Name: "Go", Level: types.LevelExpert},
		{ID: "s2", Name: "PostgreSQL", Level: types.LevelAdvanced},
	}
	doc.Experience = []types.ExperienceItem{
		{
			ID: "e1", Company: "Acme", Position: "Software Engineer",
			StartDate: "2020-01", EndDate: "2023-06",
			Description:  "Built internal services.",
			Achievements: []string{"Shipped v2", "Cut costs 30%"},
		},
	}
	doc.Education = []types.EducationItem{
		{ID: "d1", Institution: "State University", Degree: "BSc", Field: "CS", StartDate: "2015-09", EndDate: "2019-06"},
	}
	doc.Projects = []types.ProjectItem{
		{ID: "p1", Title: "CLI Tool", Description: "A tool.", Technologies: []string{"Go", "Cobra"}},
	}
	return doc
}

func TestStore_StartsEmpty(t *testing.T) {
	st, _ := newTestStore(t)
	assert.Equal(t, types.EmptyDocument(), st.Document())
}

func TestStore_SetSkillsReplacesWholeSection(t *testing.T) {
	st, _ := newTestStore(t)

	first := []types.SkillItem{
		{ID: "s1", Name: "Go", Level: types.LevelExpert},
		{ID: "s2", Name: "Rust", Level: types.LevelBeginner},
	}
	st.SetSkills(first)
	assert.Equal(t, first, st.Document().Skills)

	// A later replace wins completely, independent of prior contents,
	// and order is preserved as given.
	second := []types.SkillItem{
		{ID: "s3", Name: "Python", Level: types.LevelAdvanced},
	}
	st.SetSkills(second)
	assert.Equal(t, second, st.Document().Skills)
}

func TestStore_SetExperienceNormalizesAchievements(t *testing.T) {
	st, _ := newTestStore(t)
	st.SetExperience([]types.ExperienceItem{
		{ID: "e1", Company: "Acme", Position: "Engineer", Achievements: []string{" a ", "", "b"}},
	})
	assert.Equal(t, []string{"a", "b"}, st.Document().Experience[0].Achievements)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	st, dir := newTestStore(t)
	doc := sampleDocument()

	st.SetContactInfo(doc.ContactInfo)
	st.SetSummary(doc.ProfessionalSummary)
	st.SetSkills(doc.Skills)
	st.SetExperience(doc.Experience)
	st.SetEducation(doc.Education)
	st.SetProjects(doc.Projects)
	require.NoError(t, st.Save())

	// A fresh store over the same directory sees the same document,
	// field for field.
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	loaded := New(backend)
	require.True(t, loaded.Load())
	assert.Equal(t, st.Document(), loaded.Document())
}

func TestStore_LoadAbsentReturnsFalse(t *testing.T) {
	st, _ := newTestStore(t)
	st.SetSummary(types.ProfessionalSummary{Summary: "unsaved edit"})

	assert.False(t, st.Load())
	// In-memory document is untouched
	assert.Equal(t, "unsaved edit", st.Document().ProfessionalSummary.Summary)
}

func TestStore_LoadCorruptPayloadReturnsFalse(t *testing.T) {
	st, dir := newTestStore(t)
	st.SetSummary(types.ProfessionalSummary{Summary: "keep me"})

	path := filepath.Join(dir, StorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.False(t, st.Load())
	assert.Equal(t, "keep me", st.Document().ProfessionalSummary.Summary)
}

func TestStore_LoadSchemaMismatchReturnsFalse(t *testing.T) {
	st, dir := newTestStore(t)

	// Valid JSON, but not a resume document shape.
	path := filepath.Join(dir, StorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 3, "payload": []}`), 0o644))

	assert.False(t, st.Load())
	assert.Equal(t, types.EmptyDocument(), st.Document())
}

func TestStore_ClearResetsAndRemovesDurableCopy(t *testing.T) {
	st, dir := newTestStore(t)
	st.SetContactInfo(sampleDocument().ContactInfo)
	require.NoError(t, st.Save())

	require.NoError(t, st.Clear())
	assert.Equal(t, types.EmptyDocument(), st.Document())

	_, err := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.True(t, os.IsNotExist(err))

	// Clearing again without a durable copy is not an error
	require.NoError(t, st.Clear())
}

func TestFileBackend_EmptyDirRejected(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)
}
