package domain

import "strings"

// Stage identifies the interview round. The set is closed; anything else is
// rejected with ErrInvalidStage rather than silently defaulted.
type Stage string

const (
	StageFirst  Stage = "first"
	StageSecond Stage = "second"
	StageFinal  Stage = "final"
)

// ParseStage accepts the canonical names plus the short forms older
// screening clients send ("1st", "2nd").
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "1st", "1":
		return StageFirst, nil
	case "second", "2nd", "2":
		return StageSecond, nil
	case "final":
		return StageFinal, nil
	default:
		return "", ErrInvalidStage
	}
}

// DurationMinutes is the planned length of the interview round.
func (s Stage) DurationMinutes() int {
	switch s {
	case StageFirst:
		return 60
	case StageSecond:
		return 90
	case StageFinal:
		return 45
	default:
		return 0
	}
}

func (s Stage) Valid() bool {
	return s == StageFirst || s == StageSecond || s == StageFinal
}

// Stages lists the valid rounds in order.
var Stages = []Stage{StageFirst, StageSecond, StageFinal}

// InterviewQuestion is one entry of the static question bank. Bank entries
// are reference data and never mutated.
type InterviewQuestion struct {
	ID                string   `json:"id" mapstructure:"id" validate:"required"`
	Category          Category `json:"category" mapstructure:"category" validate:"required"`
	Stage             Stage    `json:"stage" mapstructure:"stage" validate:"required"`
	Question          string   `json:"question" mapstructure:"question" validate:"required"`
	EvaluationPoints  []string `json:"evaluation_points" mapstructure:"evaluation_points"`
	GoodAnswerExample string   `json:"good_answer_example,omitempty" mapstructure:"good_answer_example"`
	RedFlags          []string `json:"red_flags,omitempty" mapstructure:"red_flags"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty" mapstructure:"follow_up_questions"`
	TimeLimitMinutes  *int     `json:"time_limit_minutes,omitempty" mapstructure:"time_limit_minutes"`
}

// QuestionBank holds every configured question, keyed logically by
// (category, stage). The general category per stage is the baseline set that
// is always asked.
type QuestionBank struct {
	Questions []InterviewQuestion `mapstructure:"questions"`
}

// ForCategoryStage returns the bank entries tagged with the given category
// and stage, in bank order.
func (b QuestionBank) ForCategoryStage(category Category, stage Stage) []InterviewQuestion {
	var out []InterviewQuestion
	for _, q := range b.Questions {
		if q.Category == category && q.Stage == stage {
			out = append(out, q)
		}
	}
	return out
}

// Baseline returns the stage's general questions.
func (b QuestionBank) Baseline(stage Stage) []InterviewQuestion {
	return b.ForCategoryStage(CategoryGeneral, stage)
}

// Validate enforces the bank preconditions: unique IDs, known categories and
// stages, and at least one baseline entry per stage. A violation is a
// configuration error surfaced at load time, never a runtime fault to hide.
func (b QuestionBank) Validate() error {
	if len(b.Questions) == 0 {
		return NewConfigError("questions", "question bank is empty")
	}
	known := map[Category]bool{
		CategorySkill: true, CategoryExperience: true, CategoryCulture: true,
		CategoryEducation: true, CategoryGeneral: true,
	}
	seen := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if q.ID == "" || q.Question == "" {
			return NewConfigError("questions", "every question needs an id and question text")
		}
		if seen[q.ID] {
			return NewConfigError("questions", "duplicate question id: "+q.ID)
		}
		seen[q.ID] = true
		if !known[q.Category] {
			return NewConfigError("questions", "unknown category for question "+q.ID+": "+string(q.Category))
		}
		if !q.Stage.Valid() {
			return NewConfigError("questions", "unknown stage for question "+q.ID+": "+string(q.Stage))
		}
	}
	for _, stage := range Stages {
		if len(b.Baseline(stage)) == 0 {
			return NewConfigError("questions", "no baseline (general) questions for stage "+string(stage))
		}
	}
	return nil
}

type InterviewUsecase interface {
	SelectQuestions(breakdown ScoreBreakdown, stage Stage, job JobProfile) ([]InterviewQuestion, error)
	SpecialNotes(candidate CandidateRecord, breakdown ScoreBreakdown) []string
}
