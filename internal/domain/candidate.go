package domain

// CandidateRecord is the structured view of one resume, produced once by the
// extractor and never mutated afterwards. Extraction is best-effort: fields
// the resume does not contain stay empty/zero instead of raising an error.
type CandidateRecord struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`      // first-seen order in the source text
	Certifications  []string `json:"certifications"` // sorted, deduplicated
	Skills          []string `json:"skills"`         // sorted, deduplicated
	RawText         string   `json:"-"`
}

// ExtractionVocabulary is the fixed keyword tables the extractor scans a
// resume against. It is configuration data, loaded once at startup; the
// vocabulary is not extensible at runtime.
type ExtractionVocabulary struct {
	Skills         []string `mapstructure:"skills" validate:"required,min=1"`
	Certifications []string `mapstructure:"certifications"`
	Degrees        []string `mapstructure:"degrees"`
}

type ExtractorUsecase interface {
	ExtractCandidate(rawText string) CandidateRecord
}
