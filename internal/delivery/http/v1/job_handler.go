package v1

import (
	"net/http"

	"go-hr-screening/internal/delivery/http/response"
	"go-hr-screening/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	profiles domain.ProfileRepository
}

func NewJobHandler(r *gin.RouterGroup, profiles domain.ProfileRepository) {
	handler := &JobHandler{profiles: profiles}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:title", handler.GetDetails)
	}
	r.GET("/company", handler.GetCompany)
}

// List godoc
// @Summary      List job profiles
// @Description  List the configured job requirement profiles available for analysis
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobProfile}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Job profiles", h.profiles.Jobs())
}

// GetDetails godoc
// @Summary      Get one job profile
// @Tags         jobs
// @Produce      json
// @Param        title  path      string  true  "Job title"
// @Success      200  {object}  response.Response{data=domain.JobProfile}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{title} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.profiles.Job(c.Param("title"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job profile", job)
}

// GetCompany godoc
// @Summary      Get the company profile
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Router       /company [get]
func (h *JobHandler) GetCompany(c *gin.Context) {
	response.Success(c, http.StatusOK, "Company profile", h.profiles.Company())
}
