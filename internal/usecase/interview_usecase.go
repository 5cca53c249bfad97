package usecase

import (
	"fmt"
	"strings"

	"go-hr-screening/internal/domain"
)

type interviewUsecase struct {
	bank domain.QuestionBank
}

// NewInterviewUsecase builds the question selector around a validated bank.
// Bank violations (no baseline for a stage, duplicate ids) are configuration
// errors and abort construction.
func NewInterviewUsecase(bank domain.QuestionBank) (domain.InterviewUsecase, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &interviewUsecase{bank: bank}, nil
}

// SelectQuestions picks the question set for one interview round: every weak
// category's questions first, in the fixed category order, then the stage's
// general baseline, deduplicated by question id. As long as the bank carries
// a baseline for the stage the result is never empty.
func (u *interviewUsecase) SelectQuestions(breakdown domain.ScoreBreakdown, stage domain.Stage, job domain.JobProfile) ([]domain.InterviewQuestion, error) {
	if !stage.Valid() {
		return nil, domain.ErrInvalidStage
	}

	selected := make([]domain.InterviewQuestion, 0, 8)
	seen := make(map[string]bool)
	appendAll := func(questions []domain.InterviewQuestion) {
		for _, q := range questions {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			selected = append(selected, q)
		}
	}

	weak := make(map[domain.Category]bool, len(breakdown.InterviewFocusAreas))
	for _, label := range breakdown.InterviewFocusAreas {
		if cat, ok := domain.CategoryFromFocusLabel(label); ok {
			weak[cat] = true
		}
	}
	for _, cat := range domain.ScoredCategories {
		if weak[cat] {
			appendAll(u.bank.ForCategoryStage(cat, stage))
		}
	}
	appendAll(u.bank.Baseline(stage))

	return selected, nil
}

// Hard floors below which a sub-score earns a warning note.
const (
	skillWarningFloor       = 60
	experienceWarningFloor  = 70
	experienceCriticalFloor = 30
	strongOverallBar        = 85
)

// SpecialNotes derives the free-text flags attached to the final report from
// the score breakdown and candidate record.
func (u *interviewUsecase) SpecialNotes(candidate domain.CandidateRecord, breakdown domain.ScoreBreakdown) []string {
	var notes []string

	if breakdown.SkillMatchScore < skillWarningFloor {
		notes = append(notes, "⚠️ Technical skills fall well short of the requirements. Probe concrete hands-on experience and willingness to learn.")
	}
	switch {
	case breakdown.ExperienceMatchScore < experienceCriticalFloor:
		notes = append(notes, "⚠️ Experience significantly below requirement. Verify whether the candidate can realistically close the gap.")
	case breakdown.ExperienceMatchScore < experienceWarningFloor:
		notes = append(notes, "⚠️ Experience is below the requirement. Assess the quality of past work and the candidate's learning curve.")
	}
	if breakdown.OverallScore > strongOverallBar {
		notes = append(notes, "✅ Strong overall evaluation. Consider whether broader responsibilities would suit this candidate.")
	}
	if len(candidate.Certifications) > 0 {
		notes = append(notes, fmt.Sprintf("📝 Certifications: %s. Gauge learning drive and depth of expertise.", strings.Join(candidate.Certifications, ", ")))
	}

	return notes
}
