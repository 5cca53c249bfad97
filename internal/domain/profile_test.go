package domain_test

import (
	"testing"

	"go-hr-screening/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseEducationLevel(t *testing.T) {
	cases := map[string]domain.EducationLevel{
		"":            domain.EducationNone,
		"none":        domain.EducationNone,
		"something":   domain.EducationNone,
		"highschool":  domain.EducationHighSchool,
		"High School": domain.EducationHighSchool,
		"bachelor":    domain.EducationBachelor,
		"university":  domain.EducationBachelor,
		"master":      domain.EducationMaster,
		"graduate":    domain.EducationMaster,
		"doctorate":   domain.EducationDoctorate,
		"PhD":         domain.EducationDoctorate,
	}
	for in, want := range cases {
		assert.Equal(t, want, domain.ParseEducationLevel(in), in)
	}
}

func TestHighestEducationLevel(t *testing.T) {
	t.Run("picks the highest tier across lines", func(t *testing.T) {
		lines := []string{
			"Bachelor of Arts, Somewhere College",
			"Master of Science, Tokyo Institute",
			"High School Diploma",
		}
		assert.Equal(t, domain.EducationMaster, domain.HighestEducationLevel(lines))
	})

	t.Run("resolves mixed degree lines to the higher tier", func(t *testing.T) {
		lines := []string{"Master of Engineering, Kyoto University"}
		assert.Equal(t, domain.EducationMaster, domain.HighestEducationLevel(lines))
	})

	t.Run("japanese degree terms", func(t *testing.T) {
		assert.Equal(t, domain.EducationMaster, domain.HighestEducationLevel([]string{"東京大学大学院 修了"}))
		assert.Equal(t, domain.EducationBachelor, domain.HighestEducationLevel([]string{"早稲田大学 卒業"}))
	})

	t.Run("no recognizable degree", func(t *testing.T) {
		assert.Equal(t, domain.EducationNone, domain.HighestEducationLevel([]string{"Certificate of Attendance"}))
		assert.Equal(t, domain.EducationNone, domain.HighestEducationLevel(nil))
	})
}

func TestJobProfileRequiredEducation(t *testing.T) {
	job := domain.JobProfile{EducationRequirement: "master"}
	assert.Equal(t, domain.EducationMaster, job.RequiredEducation())

	assert.Equal(t, domain.EducationNone, domain.JobProfile{}.RequiredEducation())
}

func TestScoringConfigValidate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, domain.DefaultScoringConfig().Validate())
	})

	t.Run("weights off by more than tolerance", func(t *testing.T) {
		cfg := domain.DefaultScoringConfig()
		cfg.SkillWeight = 0.5
		assert.True(t, domain.IsConfigError(cfg.Validate()))
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := domain.DefaultScoringConfig()
		cfg.SkillWeight = -0.1
		cfg.ExperienceWeight = 0.7
		assert.Error(t, cfg.Validate())
	})

	t.Run("pass below interview threshold", func(t *testing.T) {
		cfg := domain.DefaultScoringConfig()
		cfg.PassThreshold = 50
		assert.Error(t, cfg.Validate())
	})
}
