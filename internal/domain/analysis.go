package domain

import (
	"context"
	"time"
)

// AnalysisResult is the full screening output for one resume. The engine
// holds no reference to it after returning; the caller owns it outright.
type AnalysisResult struct {
	ID           string              `json:"id,omitempty"`
	JobTitle     string              `json:"job_title,omitempty"`
	Stage        Stage               `json:"stage,omitempty"`
	Candidate    CandidateRecord     `json:"candidate"`
	Breakdown    ScoreBreakdown      `json:"breakdown"`
	Questions    []InterviewQuestion `json:"questions"`
	SpecialNotes []string            `json:"special_notes"`
	AnalyzedAt   time.Time           `json:"analyzed_at,omitempty"`
}

// AnalysisUsecase chains extraction, scoring, question selection and
// assembly. Assemble is pure bundling; Analyze additionally stamps identity
// and resolves the job title through the profile store.
type AnalysisUsecase interface {
	Analyze(ctx context.Context, rawText, jobTitle string, stage Stage) (*AnalysisResult, error)
	Assemble(candidate CandidateRecord, breakdown ScoreBreakdown, questions []InterviewQuestion, specialNotes []string) AnalysisResult
}
