package usecase

import (
	"context"
	"fmt"
	"time"

	"go-hr-screening/internal/domain"

	"github.com/google/uuid"
)

type analysisUsecase struct {
	extractor domain.ExtractorUsecase
	scorer    domain.ScoringUsecase
	interview domain.InterviewUsecase
	profiles  domain.ProfileRepository
}

// NewAnalysisUsecase wires the full pipeline: extract, evaluate, select
// questions, assemble.
func NewAnalysisUsecase(
	extractor domain.ExtractorUsecase,
	scorer domain.ScoringUsecase,
	interview domain.InterviewUsecase,
	profiles domain.ProfileRepository,
) domain.AnalysisUsecase {
	return &analysisUsecase{
		extractor: extractor,
		scorer:    scorer,
		interview: interview,
		profiles:  profiles,
	}
}

// Analyze runs one full screening pass over a decoded resume text. Each call
// is independent and stateless, so concurrent analyses need no coordination.
func (u *analysisUsecase) Analyze(ctx context.Context, rawText, jobTitle string, stage domain.Stage) (*domain.AnalysisResult, error) {
	if !stage.Valid() {
		return nil, domain.ErrInvalidStage
	}
	job, err := u.profiles.Job(jobTitle)
	if err != nil {
		return nil, fmt.Errorf("load job profile %q: %w", jobTitle, err)
	}
	company := u.profiles.Company()

	candidate := u.extractor.ExtractCandidate(rawText)
	breakdown := u.scorer.Evaluate(candidate, job, company)

	questions, err := u.interview.SelectQuestions(breakdown, stage, job)
	if err != nil {
		return nil, fmt.Errorf("select interview questions: %w", err)
	}
	notes := u.interview.SpecialNotes(candidate, breakdown)

	result := u.Assemble(candidate, breakdown, questions, notes)
	result.ID = uuid.NewString()
	result.JobTitle = job.Title
	result.Stage = stage
	result.AnalyzedAt = time.Now().UTC()
	return &result, nil
}

// Assemble bundles the pieces into one result record. It computes nothing:
// every field arrives exactly as produced upstream.
func (u *analysisUsecase) Assemble(candidate domain.CandidateRecord, breakdown domain.ScoreBreakdown, questions []domain.InterviewQuestion, specialNotes []string) domain.AnalysisResult {
	return domain.AnalysisResult{
		Candidate:    candidate,
		Breakdown:    breakdown,
		Questions:    questions,
		SpecialNotes: specialNotes,
	}
}
