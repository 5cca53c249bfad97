package v1

import (
	"fmt"
	"net/http"
	"strings"

	"go-hr-screening/config"
	"go-hr-screening/internal/delivery/http/response"
	"go-hr-screening/internal/domain"
	"go-hr-screening/pkg/apperror"
	"go-hr-screening/pkg/document"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
	cfg        *config.Config
}

func NewAnalysisHandler(r *gin.RouterGroup, analysisUC domain.AnalysisUsecase, cfg *config.Config) {
	handler := &AnalysisHandler{analysisUC: analysisUC, cfg: cfg}

	analyses := r.Group("/analyses")
	{
		analyses.POST("", handler.Analyze)
	}
}

type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
	JobTitle   string `json:"job_title" binding:"required"`
	Stage      string `json:"stage" binding:"required"`
}

// Analyze godoc
// @Summary      Analyze a resume
// @Description  Score a resume against a configured job profile and generate the interview question set for a stage. Accepts JSON with raw text, or multipart form-data with a txt/pdf/docx file.
// @Tags         analyses
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        request  body      AnalyzeRequest  true  "Analysis request"
// @Success      200  {object}  response.Response{data=domain.AnalysisResult}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /analyses [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	rawText, jobTitle, stageInput, err := h.readRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	stage, err := domain.ParseStage(stageInput)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.analysisUC.Analyze(c, rawText, jobTitle, stage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis complete", result)
}

// readRequest supports both transports the screening UI sends: a JSON body
// with the decoded text, or a multipart upload that is decoded here before
// the engine ever sees it.
func (h *AnalysisHandler) readRequest(c *gin.Context) (rawText, jobTitle, stage string, err error) {
	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/") {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", "", "", apperror.BadRequest("resume_text, job_title and stage are required: " + err.Error())
		}
		return document.Normalize(req.ResumeText), req.JobTitle, req.Stage, nil
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return "", "", "", apperror.BadRequest("multipart requests need a 'resume' file field")
	}
	if fileHeader.Size > h.cfg.MaxUploadBytes {
		return "", "", "", apperror.RequestTooLarge(fmt.Sprintf("resume exceeds the %d byte upload limit", h.cfg.MaxUploadBytes))
	}
	if !document.Supported(fileHeader.Filename) {
		return "", "", "", apperror.BadRequest("unsupported file type; allowed: " + strings.Join(document.SupportedExtensions, ", "))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", "", "", apperror.BadRequest("cannot open uploaded file")
	}
	defer f.Close()

	data, err := document.ReadAll(f, h.cfg.MaxUploadBytes)
	if err != nil {
		return "", "", "", apperror.RequestTooLarge(err.Error())
	}
	text, err := document.ExtractText(fileHeader.Filename, data)
	if err != nil {
		return "", "", "", apperror.BadRequest("cannot extract text from upload: " + err.Error())
	}

	return text, c.PostForm("job_title"), c.PostForm("stage"), nil
}
