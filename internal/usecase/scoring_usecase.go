package usecase

import (
	"math"
	"sort"
	"strings"

	"go-hr-screening/internal/domain"
)

// sortedKeys fixes the float accumulation order so evaluation stays
// bit-identical across runs regardless of map iteration order.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type scoringUsecase struct {
	cfg domain.ScoringConfig
}

// NewScoringUsecase builds the scoring engine. The config is validated here
// so weight misconfiguration fails at startup, not deep inside an evaluation.
func NewScoringUsecase(cfg domain.ScoringConfig) (domain.ScoringUsecase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &scoringUsecase{cfg: cfg}, nil
}

// Evaluate computes the four sub-scores and the weighted overall score. It is
// a pure function of its three inputs: no I/O, no shared state, identical
// output for identical input.
func (u *scoringUsecase) Evaluate(candidate domain.CandidateRecord, job domain.JobProfile, company domain.CompanyProfile) domain.ScoreBreakdown {
	breakdown := domain.ScoreBreakdown{
		SkillMatchScore:      skillMatchScore(candidate.Skills, job.RequiredSkills),
		ExperienceMatchScore: experienceMatchScore(candidate.ExperienceYears, job.MinExperienceYears),
		CultureFitScore:      cultureFitScore(candidate.RawText, company.CultureKeywords),
		EducationMatchScore:  educationMatchScore(candidate.Education, job.RequiredEducation()),
	}

	overall := breakdown.SkillMatchScore*u.cfg.SkillWeight +
		breakdown.ExperienceMatchScore*u.cfg.ExperienceWeight +
		breakdown.CultureFitScore*u.cfg.CultureWeight +
		breakdown.EducationMatchScore*u.cfg.EducationWeight
	// Round before the tier comparison so the reported score and the
	// recommendation can never disagree at a threshold boundary.
	breakdown.OverallScore = roundOneDecimal(overall)
	breakdown.Recommendation = u.recommend(breakdown.OverallScore)
	breakdown.InterviewFocusAreas = u.focusAreas(breakdown)

	return breakdown
}

// recommend maps the overall score to a tier. Lower bounds are inclusive:
// landing exactly on a threshold earns the better tier.
func (u *scoringUsecase) recommend(overall float64) domain.Recommendation {
	switch {
	case overall >= u.cfg.PassThreshold:
		return domain.RecommendationPass
	case overall >= u.cfg.InterviewThreshold:
		return domain.RecommendationInterview
	default:
		return domain.RecommendationReject
	}
}

// focusAreas lists every category scoring below the focus threshold, in the
// fixed category order.
func (u *scoringUsecase) focusAreas(breakdown domain.ScoreBreakdown) []string {
	var areas []string
	for _, cat := range domain.ScoredCategories {
		if breakdown.Score(cat) < u.cfg.FocusThreshold {
			areas = append(areas, cat.FocusLabel())
		}
	}
	return areas
}

// skillMatchScore is the weighted fraction of required skills the candidate
// has. No requirements means trivially satisfied.
func skillMatchScore(candidateSkills []string, required map[string]float64) float64 {
	if len(required) == 0 {
		return 100
	}
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = true
	}
	var total, matched float64
	for _, skill := range sortedKeys(required) {
		weight := required[skill]
		total += weight
		if have[strings.ToLower(skill)] {
			matched += weight
		}
	}
	if total <= 0 {
		return 100
	}
	return clampScore(matched / total * 100)
}

// experienceMatchScore is 100 when the requirement is met, otherwise a linear
// ramp toward it. A zero-year requirement is always satisfied.
func experienceMatchScore(years, minYears int) float64 {
	if minYears <= 0 || years >= minYears {
		return 100
	}
	return clampScore(float64(years) / float64(minYears) * 100)
}

// cultureFitScore is the weighted fraction of culture keywords appearing in
// the raw resume text, case-insensitive. Same empty-set convention as skills.
func cultureFitScore(rawText string, keywords map[string]float64) float64 {
	if len(keywords) == 0 {
		return 100
	}
	lower := strings.ToLower(rawText)
	var total, matched float64
	for _, keyword := range sortedKeys(keywords) {
		weight := keywords[keyword]
		total += weight
		if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
			matched += weight
		}
	}
	if total <= 0 {
		return 100
	}
	return clampScore(matched / total * 100)
}

// educationMatchScore compares the candidate's highest detected tier against
// the requirement: full marks at or above it, otherwise proportionally
// reduced one tier-step per tier short, floored at zero.
func educationMatchScore(education []string, required domain.EducationLevel) float64 {
	if required == domain.EducationNone {
		return 100
	}
	candidate := domain.HighestEducationLevel(education)
	if candidate >= required {
		return 100
	}
	return clampScore(float64(candidate) / float64(required) * 100)
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
