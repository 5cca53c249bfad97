package v1

import (
	"net/http"

	"go-hr-screening/internal/delivery/http/response"
	"go-hr-screening/internal/domain"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	bank domain.QuestionBank
}

func NewQuestionHandler(r *gin.RouterGroup, bank domain.QuestionBank) {
	handler := &QuestionHandler{bank: bank}

	questions := r.Group("/questions")
	{
		questions.GET("", handler.List)
	}
}

// List godoc
// @Summary      List interview questions
// @Description  List the configured question bank, optionally filtered by stage and/or category
// @Tags         questions
// @Produce      json
// @Param        stage     query     string  false  "Interview stage (first, second, final)"
// @Param        category  query     string  false  "Question category (skill, experience, culture, education, general)"
// @Success      200  {object}  response.Response{data=[]domain.InterviewQuestion}
// @Failure      400  {object}  response.Response
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions := h.bank.Questions

	if stageParam := c.Query("stage"); stageParam != "" {
		stage, err := domain.ParseStage(stageParam)
		if err != nil {
			c.Error(err)
			return
		}
		questions = filterQuestions(questions, func(q domain.InterviewQuestion) bool {
			return q.Stage == stage
		})
	}
	if category := c.Query("category"); category != "" {
		questions = filterQuestions(questions, func(q domain.InterviewQuestion) bool {
			return q.Category == domain.Category(category)
		})
	}

	response.Success(c, http.StatusOK, "Interview questions", questions)
}

func filterQuestions(in []domain.InterviewQuestion, keep func(domain.InterviewQuestion) bool) []domain.InterviewQuestion {
	out := make([]domain.InterviewQuestion, 0, len(in))
	for _, q := range in {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
