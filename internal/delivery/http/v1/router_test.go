package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hr-screening/config"
	v1 "go-hr-screening/internal/delivery/http/v1"
	"go-hr-screening/internal/repository/file"
	"go-hr-screening/internal/usecase"
	"go-hr-screening/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	store, err := file.NewStore("", validator.New())
	require.NoError(t, err)

	extractor := usecase.NewExtractorUsecase(store.Vocabulary())
	scorer, err := usecase.NewScoringUsecase(store.Scoring())
	require.NoError(t, err)
	interview, err := usecase.NewInterviewUsecase(store.QuestionBank())
	require.NoError(t, err)
	analysis := usecase.NewAnalysisUsecase(extractor, scorer, interview, store)

	return v1.NewRouter(v1.RouterDeps{
		AnalysisUC:  analysis,
		InterviewUC: interview,
		Profiles:    store,
		Bank:        store.QuestionBank(),
		Config: &config.Config{
			Port:           "8080",
			FrontendURL:    "http://localhost:3000",
			MaxUploadBytes: 1 << 20,
		},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

const sampleResume = `Name: Hanako Yamada
Email: hanako@example.com

10 years of experience building web services with Python, JavaScript, React and AWS.
Strong believer in teamwork and continuous growth.

Education:
Bachelor of Engineering, Tokyo University
`

func TestAnalyzeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("json happy path", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/analyses", gin.H{
			"resume_text": sampleResume,
			"job_title":   "Senior Web Engineer",
			"stage":       "first",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				ID        string `json:"id"`
				JobTitle  string `json:"job_title"`
				Breakdown struct {
					OverallScore   float64 `json:"overall_score"`
					Recommendation string  `json:"recommendation"`
				} `json:"breakdown"`
				Questions []json.RawMessage `json:"questions"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.NotEmpty(t, envelope.Data.ID)
		assert.Equal(t, "Senior Web Engineer", envelope.Data.JobTitle)
		assert.NotEmpty(t, envelope.Data.Breakdown.Recommendation)
		assert.NotEmpty(t, envelope.Data.Questions)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/analyses", gin.H{"resume_text": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/analyses", gin.H{
			"resume_text": sampleResume,
			"job_title":   "Astronaut",
			"stage":       "first",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid stage", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/analyses", gin.H{
			"resume_text": sampleResume,
			"job_title":   "Senior Web Engineer",
			"stage":       "fourth",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stage short form accepted", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/analyses", gin.H{
			"resume_text": sampleResume,
			"job_title":   "Senior Web Engineer",
			"stage":       "1st",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestJobEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/jobs/senior%20web%20engineer", nil)
	assert.Equal(t, http.StatusOK, w.Code, "lookup is case-insensitive")

	w = doJSON(t, r, http.MethodGet, "/v1/jobs/astronaut", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/company", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuestionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/questions?stage=first", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []struct {
			Stage string `json:"stage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data)
	for _, q := range envelope.Data {
		assert.Equal(t, "first", q.Stage)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/questions?stage=fourth", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
