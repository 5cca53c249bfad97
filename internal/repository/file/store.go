// Package file implements the read-only configuration store backing the
// screening engine: company profile, job profiles, scoring weights, the
// extraction vocabulary and the interview question bank. Everything is loaded
// once at startup from YAML files and held immutable for the process
// lifetime, which is what makes concurrent analyses lock-free.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hr-screening/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	companyFile   = "company.yaml"
	jobsFile      = "jobs.yaml"
	scoringFile   = "scoring.yaml"
	vocabFile     = "vocabulary.yaml"
	questionsFile = "questions.yaml"
)

// Store satisfies domain.ProfileRepository and additionally hands out the
// scoring config, vocabulary and question bank loaded alongside the profiles.
type Store struct {
	company domain.CompanyProfile
	jobs    []domain.JobProfile
	scoring domain.ScoringConfig
	vocab   domain.ExtractionVocabulary
	bank    domain.QuestionBank
}

type jobsDocument struct {
	Jobs []domain.JobProfile `mapstructure:"jobs"`
}

// NewStore loads the configuration directory. A missing file falls back to
// the compiled-in default for that section; a file that exists but fails to
// parse or validate aborts with a ConfigError. That split keeps "no config
// yet" working out of the box while refusing to run on a broken one.
func NewStore(dir string, validate *validator.Validate) (*Store, error) {
	s := &Store{
		company: DefaultCompanyProfile(),
		jobs:    DefaultJobProfiles(),
		scoring: domain.DefaultScoringConfig(),
		vocab:   DefaultVocabulary(),
		bank:    DefaultQuestionBank(),
	}

	if dir != "" {
		if err := loadSection(dir, companyFile, &s.company); err != nil {
			return nil, err
		}
		var doc jobsDocument
		doc.Jobs = s.jobs
		if err := loadSection(dir, jobsFile, &doc); err != nil {
			return nil, err
		}
		s.jobs = doc.Jobs
		if err := loadSection(dir, scoringFile, &s.scoring); err != nil {
			return nil, err
		}
		if err := loadSection(dir, vocabFile, &s.vocab); err != nil {
			return nil, err
		}
		if err := loadSection(dir, questionsFile, &s.bank); err != nil {
			return nil, err
		}
	}

	if err := s.validateAll(validate); err != nil {
		return nil, err
	}
	return s, nil
}

// loadSection reads one YAML file into target via viper. Absent files are
// skipped so the defaults survive.
func loadSection(dir, name string, target any) error {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return domain.NewConfigError(name, fmt.Sprintf("cannot read: %v", err))
	}
	if err := v.Unmarshal(target); err != nil {
		return domain.NewConfigError(name, fmt.Sprintf("cannot decode: %v", err))
	}
	return nil
}

var allowedEducationRequirements = map[string]bool{
	"": true, "none": true,
	"highschool": true, "high school": true,
	"bachelor": true, "university": true,
	"master": true, "graduate": true,
	"doctorate": true, "phd": true,
}

func (s *Store) validateAll(validate *validator.Validate) error {
	if err := validate.Struct(s.company); err != nil {
		return domain.NewConfigError(companyFile, err.Error())
	}
	if len(s.jobs) == 0 {
		return domain.NewConfigError(jobsFile, "at least one job profile is required")
	}
	seen := make(map[string]bool, len(s.jobs))
	for _, job := range s.jobs {
		if err := validate.Struct(job); err != nil {
			return domain.NewConfigError(jobsFile, err.Error())
		}
		key := strings.ToLower(job.Title)
		if seen[key] {
			return domain.NewConfigError(jobsFile, "duplicate job title: "+job.Title)
		}
		seen[key] = true
		if !allowedEducationRequirements[strings.ToLower(strings.TrimSpace(job.EducationRequirement))] {
			return domain.NewConfigError(jobsFile, fmt.Sprintf("job %q: unknown education requirement %q", job.Title, job.EducationRequirement))
		}
		for skill, weight := range job.RequiredSkills {
			if weight <= 0 {
				return domain.NewConfigError(jobsFile, fmt.Sprintf("job %q: skill %q must have a positive weight", job.Title, skill))
			}
		}
	}
	if err := s.scoring.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(s.vocab); err != nil {
		return domain.NewConfigError(vocabFile, err.Error())
	}
	return s.bank.Validate()
}

// Company returns the loaded company profile.
func (s *Store) Company() domain.CompanyProfile { return s.company }

// Job looks up a job profile by title, case-insensitive.
func (s *Store) Job(title string) (domain.JobProfile, error) {
	for _, job := range s.jobs {
		if strings.EqualFold(job.Title, title) {
			return job, nil
		}
	}
	return domain.JobProfile{}, domain.ErrNotFound
}

// Jobs returns the configured job profiles in file order.
func (s *Store) Jobs() []domain.JobProfile {
	out := make([]domain.JobProfile, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Scoring returns the loaded scoring configuration.
func (s *Store) Scoring() domain.ScoringConfig { return s.scoring }

// Vocabulary returns the extraction keyword tables.
func (s *Store) Vocabulary() domain.ExtractionVocabulary { return s.vocab }

// QuestionBank returns the interview question bank.
func (s *Store) QuestionBank() domain.QuestionBank { return s.bank }
