package v1

import (
	"net/http"
	"strconv"

	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/query"
	"go-talent-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	exportUC    domain.ExportUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, exportUC domain.ExportUsecase, exportLimit gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC, exportUC: exportUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.Query)
		candidates.GET("/top", handler.Top)
		candidates.GET("/filter-options", handler.FilterOptions)
		candidates.GET("/export", exportLimit, handler.Export)
		candidates.GET("/:id", handler.Get)
		candidates.PATCH("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create a candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateProfile  true  "Candidate"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var candidate domain.CandidateProfile
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	saved, err := h.candidateUC.CreateCandidate(c.Request.Context(), &candidate)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", saved)
}

// Query godoc
// @Summary      Search and filter candidates
// @Description  Filters compose with AND; skills match when any candidate skill contains any requested skill
// @Tags         candidates
// @Produce      json
// @Param        job_requirement_id  query     string  false  "Only candidates found for this job"
// @Param        q                   query     string  false  "Free text over name, title, company and skills"
// @Param        min_score           query     int     false  "Minimum match score"
// @Param        experience          query     string  false  "Experience range, e.g. 3-5 or 10+"
// @Param        location            query     string  false  "Location substring"
// @Param        skills              query     string  false  "Comma-separated skills"
// @Param        sort_by             query     string  false  "match_score, experience or name"
// @Success      200                 {object}  response.Response
// @Failure      400                 {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) Query(c *gin.Context) {
	q, err := parseCandidateQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.candidateUC.QueryCandidates(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates", result)
}

// Top godoc
// @Summary      Top candidates
// @Description  Up to five candidates scoring above 80, best first
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates/top [get]
func (h *CandidateHandler) Top(c *gin.Context) {
	top, err := h.candidateUC.TopCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Top candidates", top)
}

// FilterOptions godoc
// @Summary      Filter options for the results page
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates/filter-options [get]
func (h *CandidateHandler) FilterOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Filter options", query.Options())
}

// Export godoc
// @Summary      Export candidates
// @Description  Downloads the filtered candidates as CSV or Excel. Omit fields for the default selection.
// @Tags         candidates
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fields   query     string  false  "Comma-separated export field ids"
// @Param        format   query     string  false  "csv (default) or xlsx"
// @Param        dialect  query     string  false  "json (quote every cell) or standard"
// @Param        ...      query     string  false  "Same filters as GET /candidates"
// @Success      200      {file}    binary
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /candidates/export [get]
func (h *CandidateHandler) Export(c *gin.Context) {
	q, err := parseCandidateQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	req := domain.ExportRequest{
		Query:   q,
		Format:  domain.ExportFormat(c.DefaultQuery("format", string(domain.FormatCSV))),
		Dialect: domain.ExportDialect(c.Query("dialect")),
	}
	// A present but empty fields parameter is an empty selection
	if values, ok := c.GetQueryArray("fields"); ok {
		req.Fields = splitList(values)
		if req.Fields == nil {
			req.Fields = []string{}
		}
	}

	file, err := h.exportUC.ExportCandidates(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Get godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "Candidate ID"
// @Param        patch  body      domain.CandidatePatch  true  "Fields to change"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Param        id  path  string  true  "Candidate ID"
// @Success      204
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
