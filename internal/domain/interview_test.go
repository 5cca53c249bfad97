package domain_test

import (
	"testing"

	"go-hr-screening/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Stage
	}{
		{"first", domain.StageFirst},
		{"1st", domain.StageFirst},
		{"1", domain.StageFirst},
		{"  First ", domain.StageFirst},
		{"second", domain.StageSecond},
		{"2nd", domain.StageSecond},
		{"FINAL", domain.StageFinal},
	}
	for _, c := range cases {
		got, err := domain.ParseStage(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, in := range []string{"", "fourth", "3rd", "last"} {
		_, err := domain.ParseStage(in)
		assert.ErrorIs(t, err, domain.ErrInvalidStage, in)
	}
}

func TestStageDurations(t *testing.T) {
	assert.Equal(t, 60, domain.StageFirst.DurationMinutes())
	assert.Equal(t, 90, domain.StageSecond.DurationMinutes())
	assert.Equal(t, 45, domain.StageFinal.DurationMinutes())
	assert.Equal(t, 0, domain.Stage("fourth").DurationMinutes())
}

func bankOf(questions ...domain.InterviewQuestion) domain.QuestionBank {
	return domain.QuestionBank{Questions: questions}
}

func question(id string, cat domain.Category, stage domain.Stage) domain.InterviewQuestion {
	return domain.InterviewQuestion{ID: id, Category: cat, Stage: stage, Question: "q " + id}
}

func fullBaseline() []domain.InterviewQuestion {
	return []domain.InterviewQuestion{
		question("gen_1", domain.CategoryGeneral, domain.StageFirst),
		question("gen_2", domain.CategoryGeneral, domain.StageSecond),
		question("gen_3", domain.CategoryGeneral, domain.StageFinal),
	}
}

func TestQuestionBankValidate(t *testing.T) {
	t.Run("accepts complete bank", func(t *testing.T) {
		bank := bankOf(append(fullBaseline(),
			question("skill_1", domain.CategorySkill, domain.StageFirst),
		)...)
		assert.NoError(t, bank.Validate())
	})

	t.Run("rejects empty bank", func(t *testing.T) {
		assert.True(t, domain.IsConfigError(bankOf().Validate()))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		bank := bankOf(append(fullBaseline(),
			question("gen_1", domain.CategorySkill, domain.StageFirst),
		)...)
		assert.True(t, domain.IsConfigError(bank.Validate()))
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		bank := bankOf(append(fullBaseline(),
			question("x_1", domain.Category("trivia"), domain.StageFirst),
		)...)
		assert.True(t, domain.IsConfigError(bank.Validate()))
	})

	t.Run("rejects unknown stage", func(t *testing.T) {
		bank := bankOf(append(fullBaseline(),
			question("x_1", domain.CategorySkill, domain.Stage("fourth")),
		)...)
		assert.True(t, domain.IsConfigError(bank.Validate()))
	})

	t.Run("rejects missing baseline for a stage", func(t *testing.T) {
		bank := bankOf(
			question("gen_1", domain.CategoryGeneral, domain.StageFirst),
			question("gen_2", domain.CategoryGeneral, domain.StageSecond),
		)
		err := bank.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "final")
	})
}

func TestQuestionBankLookups(t *testing.T) {
	bank := bankOf(
		question("skill_1", domain.CategorySkill, domain.StageFirst),
		question("gen_1", domain.CategoryGeneral, domain.StageFirst),
		question("skill_2", domain.CategorySkill, domain.StageFirst),
		question("skill_3", domain.CategorySkill, domain.StageSecond),
	)

	got := bank.ForCategoryStage(domain.CategorySkill, domain.StageFirst)
	require.Len(t, got, 2)
	assert.Equal(t, "skill_1", got[0].ID, "bank order is preserved")
	assert.Equal(t, "skill_2", got[1].ID)

	baseline := bank.Baseline(domain.StageFirst)
	require.Len(t, baseline, 1)
	assert.Equal(t, "gen_1", baseline[0].ID)

	assert.Empty(t, bank.Baseline(domain.StageFinal))
}
