package domain

// Recommendation is the closed hiring-decision tier derived from the overall
// score. Kept as a typed constant set so scoring and question selection can
// never drift on spelling.
type Recommendation string

const (
	RecommendationPass      Recommendation = "pass"
	RecommendationInterview Recommendation = "interview"
	RecommendationReject    Recommendation = "reject"
)

// Category identifies one scored dimension of the evaluation, plus the
// general bucket used for baseline interview questions.
type Category string

const (
	CategorySkill      Category = "skill"
	CategoryExperience Category = "experience"
	CategoryCulture    Category = "culture"
	CategoryEducation  Category = "education"
	CategoryGeneral    Category = "general"
)

// ScoredCategories is the fixed evaluation order. Focus areas and question
// ordering both follow it.
var ScoredCategories = []Category{
	CategorySkill,
	CategoryExperience,
	CategoryCulture,
	CategoryEducation,
}

// FocusLabel is the human-readable label attached to a weak category.
var focusLabels = map[Category]string{
	CategorySkill:      "Technical skills and expertise",
	CategoryExperience: "Work experience and project track record",
	CategoryCulture:    "Culture and value fit",
	CategoryEducation:  "Educational background",
}

func (c Category) FocusLabel() string {
	if label, ok := focusLabels[c]; ok {
		return label
	}
	return string(c)
}

// CategoryFromFocusLabel inverts FocusLabel. Unknown labels return false.
func CategoryFromFocusLabel(label string) (Category, bool) {
	for cat, l := range focusLabels {
		if l == label {
			return cat, true
		}
	}
	return "", false
}

// ScoreBreakdown is the immutable result of one evaluation run. Every score
// is in [0,100]; the overall score is rounded to one decimal.
type ScoreBreakdown struct {
	SkillMatchScore      float64        `json:"skill_match_score"`
	ExperienceMatchScore float64        `json:"experience_match_score"`
	CultureFitScore      float64        `json:"culture_fit_score"`
	EducationMatchScore  float64        `json:"education_match_score"`
	OverallScore         float64        `json:"overall_score"`
	Recommendation       Recommendation `json:"recommendation"`
	InterviewFocusAreas  []string       `json:"interview_focus_areas"`
}

// Score returns the sub-score for a scored category.
func (b ScoreBreakdown) Score(c Category) float64 {
	switch c {
	case CategorySkill:
		return b.SkillMatchScore
	case CategoryExperience:
		return b.ExperienceMatchScore
	case CategoryCulture:
		return b.CultureFitScore
	case CategoryEducation:
		return b.EducationMatchScore
	default:
		return 0
	}
}

// ScoringConfig holds the weights and thresholds the scorer runs with.
// Weights must sum to 1.0; Validate rejects anything else before the engine
// is constructed, so a misconfiguration can never corrupt scores silently.
type ScoringConfig struct {
	SkillWeight        float64 `mapstructure:"skill_weight"`
	ExperienceWeight   float64 `mapstructure:"experience_weight"`
	CultureWeight      float64 `mapstructure:"culture_weight"`
	EducationWeight    float64 `mapstructure:"education_weight"`
	PassThreshold      float64 `mapstructure:"pass_threshold"`
	InterviewThreshold float64 `mapstructure:"interview_threshold"`
	FocusThreshold     float64 `mapstructure:"focus_threshold"`
}

// DefaultScoringConfig mirrors the documented defaults: 35/25/20/20 weights,
// pass at 80, interview at 60, focus below 70.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		SkillWeight:        0.35,
		ExperienceWeight:   0.25,
		CultureWeight:      0.20,
		EducationWeight:    0.20,
		PassThreshold:      80,
		InterviewThreshold: 60,
		FocusThreshold:     70,
	}
}

const weightSumTolerance = 1e-9

// Validate fails fast on weight or threshold misconfiguration.
func (c ScoringConfig) Validate() error {
	sum := c.SkillWeight + c.ExperienceWeight + c.CultureWeight + c.EducationWeight
	if sum < 1-weightSumTolerance || sum > 1+weightSumTolerance {
		return NewConfigError("scoring", "category weights must sum to 1.0")
	}
	for _, w := range []float64{c.SkillWeight, c.ExperienceWeight, c.CultureWeight, c.EducationWeight} {
		if w < 0 {
			return NewConfigError("scoring", "category weights must not be negative")
		}
	}
	if c.PassThreshold < c.InterviewThreshold {
		return NewConfigError("scoring", "pass threshold must not be below interview threshold")
	}
	if c.PassThreshold > 100 || c.InterviewThreshold < 0 || c.FocusThreshold < 0 || c.FocusThreshold > 100 {
		return NewConfigError("scoring", "thresholds must lie in [0,100]")
	}
	return nil
}

type ScoringUsecase interface {
	Evaluate(candidate CandidateRecord, job JobProfile, company CompanyProfile) ScoreBreakdown
}
