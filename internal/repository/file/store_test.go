package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-hr-screening/internal/domain"
	"go-hr-screening/internal/repository/file"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewStoreDefaults(t *testing.T) {
	store, err := file.NewStore("", validator.New())
	require.NoError(t, err)

	assert.Equal(t, "Tech Innovation Inc.", store.Company().Name)
	assert.NotEmpty(t, store.Jobs())
	assert.Equal(t, domain.DefaultScoringConfig(), store.Scoring())
	assert.NotEmpty(t, store.Vocabulary().Skills)
	assert.NoError(t, store.QuestionBank().Validate())
}

func TestNewStoreEmptyDirKeepsDefaults(t *testing.T) {
	store, err := file.NewStore(t.TempDir(), validator.New())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScoringConfig(), store.Scoring())
	assert.NotEmpty(t, store.Jobs())
}

func TestNewStoreOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "company.yaml", `
name: Acme Robotics
culture_keywords:
  ownership: 1.0
`)
	writeConfig(t, dir, "jobs.yaml", `
jobs:
  - title: Robotics Engineer
    required_skills:
      ROS: 0.6
      C++: 0.4
    min_experience_years: 3
    education_requirement: master
`)
	writeConfig(t, dir, "scoring.yaml", `
skill_weight: 0.4
experience_weight: 0.3
culture_weight: 0.2
education_weight: 0.1
pass_threshold: 85
interview_threshold: 65
focus_threshold: 70
`)

	store, err := file.NewStore(dir, validator.New())
	require.NoError(t, err)

	assert.Equal(t, "Acme Robotics", store.Company().Name)
	assert.Equal(t, 1.0, store.Company().CultureKeywords["ownership"])

	jobs := store.Jobs()
	require.Len(t, jobs, 1, "configured jobs replace the defaults")
	assert.Equal(t, "Robotics Engineer", jobs[0].Title)
	assert.Equal(t, domain.EducationMaster, jobs[0].RequiredEducation())

	assert.Equal(t, 0.4, store.Scoring().SkillWeight)
	assert.Equal(t, 85.0, store.Scoring().PassThreshold)

	// Sections without a file keep their defaults.
	assert.NotEmpty(t, store.Vocabulary().Skills)
	assert.NoError(t, store.QuestionBank().Validate())
}

func TestNewStoreRejectsBrokenConfig(t *testing.T) {
	t.Run("unreadable yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "scoring.yaml", "skill_weight: [not: closed")
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("weights not summing to one", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "scoring.yaml", `
skill_weight: 0.5
experience_weight: 0.5
culture_weight: 0.5
education_weight: 0.5
pass_threshold: 80
interview_threshold: 60
focus_threshold: 70
`)
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("duplicate job titles", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "jobs.yaml", `
jobs:
  - title: Web Engineer
    required_skills: {Go: 1.0}
  - title: web engineer
    required_skills: {Python: 1.0}
`)
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("unknown education requirement", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "jobs.yaml", `
jobs:
  - title: Alchemist
    education_requirement: wizardry
`)
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("non-positive skill weight", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "jobs.yaml", `
jobs:
  - title: Web Engineer
    required_skills: {Go: 0}
`)
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("question bank without baseline questions", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "questions.yaml", `
questions:
  - id: skill_first_01
    category: skill
    stage: first
    question: Walk me through a recent project.
`)
		_, err := file.NewStore(dir, validator.New())
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})
}

func TestStoreJobLookup(t *testing.T) {
	store, err := file.NewStore("", validator.New())
	require.NoError(t, err)

	job, err := store.Job("senior web engineer")
	require.NoError(t, err)
	assert.Equal(t, "Senior Web Engineer", job.Title)

	_, err = store.Job("Astronaut")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
