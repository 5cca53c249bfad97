package v1

import (
	"net/http"

	"go-hr-screening/config"
	"go-hr-screening/internal/delivery/http/middleware"
	"go-hr-screening/internal/delivery/http/response"
	"go-hr-screening/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AnalysisUC  domain.AnalysisUsecase
	InterviewUC domain.InterviewUsecase
	Profiles    domain.ProfileRepository
	Bank        domain.QuestionBank
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewAnalysisHandler(v1, deps.AnalysisUC, deps.Config)
	NewJobHandler(v1, deps.Profiles)
	NewQuestionHandler(v1, deps.Bank)

	return r
}
