package v1

import (
	"net/http"

	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobRequirementHandler struct {
	jobUC domain.JobRequirementUsecase
}

func NewJobRequirementHandler(r *gin.RouterGroup, jobUC domain.JobRequirementUsecase) {
	handler := &JobRequirementHandler{jobUC: jobUC}

	jobs := r.Group("/job-requirements")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.PATCH("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequirementRequest struct {
	JobTitle       string                   `json:"job_title" binding:"required"`
	CompanyName    string                   `json:"company_name"`
	MinExperience  int                      `json:"min_experience" binding:"min=0"`
	MaxExperience  *int                     `json:"max_experience"`
	EducationLevel domain.EducationLevel    `json:"education_level"`
	Skills         []string                 `json:"skills" binding:"required,min=1"`
	SoftSkills     []string                 `json:"soft_skills"`
	Location       string                   `json:"location"`
	RemoteWork     bool                     `json:"remote_work"`
	SalaryMin      float64                  `json:"salary_min" binding:"min=0"`
	SalaryMax      float64                  `json:"salary_max" binding:"min=0"`
	Priority       domain.Priority          `json:"priority"`
	Status         domain.RequirementStatus `json:"status"`
}

func (r JobRequirementRequest) toDomain() *domain.JobRequirement {
	return &domain.JobRequirement{
		JobTitle:       r.JobTitle,
		CompanyName:    r.CompanyName,
		MinExperience:  r.MinExperience,
		MaxExperience:  r.MaxExperience,
		EducationLevel: r.EducationLevel,
		Skills:         r.Skills,
		SoftSkills:     r.SoftSkills,
		Location:       r.Location,
		RemoteWork:     r.RemoteWork,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Priority:       r.Priority,
		Status:         r.Status,
	}
}

// Create godoc
// @Summary      Create a job requirement
// @Description  Saves the requirements a recruiter is sourcing for
// @Tags         job-requirements
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequirementRequest  true  "Job requirement"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /job-requirements [post]
func (h *JobRequirementHandler) Create(c *gin.Context) {
	var req JobRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJobRequirement(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job requirement created", job)
}

// List godoc
// @Summary      List job requirements
// @Tags         job-requirements
// @Produce      json
// @Param        sort   query     string  false  "Sort field, prefix with - for descending (default -created_date)"
// @Param        limit  query     int     false  "Maximum number of records"
// @Success      200    {object}  response.Response
// @Router       /job-requirements [get]
func (h *JobRequirementHandler) List(c *gin.Context) {
	sort, limit, err := parseListParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.ListJobRequirements(c.Request.Context(), sort, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job requirements", jobs)
}

// Get godoc
// @Summary      Get a job requirement
// @Tags         job-requirements
// @Produce      json
// @Param        id   path      string  true  "Job requirement ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-requirements/{id} [get]
func (h *JobRequirementHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJobRequirement(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job requirement", job)
}

// Update godoc
// @Summary      Update a job requirement
// @Description  Only the supplied fields change
// @Tags         job-requirements
// @Accept       json
// @Produce      json
// @Param        id     path      string                      true  "Job requirement ID"
// @Param        patch  body      domain.JobRequirementPatch  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /job-requirements/{id} [patch]
func (h *JobRequirementHandler) Update(c *gin.Context) {
	var patch domain.JobRequirementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJobRequirement(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job requirement updated", job)
}

// Delete godoc
// @Summary      Delete a job requirement
// @Description  Succeeds whether or not the record exists
// @Tags         job-requirements
// @Param        id   path  string  true  "Job requirement ID"
// @Success      204
// @Router       /job-requirements/{id} [delete]
func (h *JobRequirementHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJobRequirement(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
