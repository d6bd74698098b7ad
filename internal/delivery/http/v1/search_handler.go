package v1

import (
	"net/http"

	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(r *gin.RouterGroup, searchUC domain.SearchUsecase, startLimit gin.HandlerFunc) {
	handler := &SearchHandler{searchUC: searchUC}

	searches := r.Group("/searches")
	{
		searches.POST("", startLimit, handler.Start)
		searches.GET("/:id", handler.Get)
	}
}

// Start godoc
// @Summary      Start a candidate search
// @Description  Saves the job requirement and sources candidates in the background. Poll GET /searches/{id} for progress.
// @Tags         searches
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequirementRequest  true  "Job requirement"
// @Success      202  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /searches [post]
func (h *SearchHandler) Start(c *gin.Context) {
	var req JobRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	session, err := h.searchUC.StartSearch(c.Request.Context(), req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Location", "/v1/searches/"+session.ID)
	response.Success(c, http.StatusAccepted, "Search started", session)
}

// Get godoc
// @Summary      Search progress
// @Tags         searches
// @Produce      json
// @Param        id   path      string  true  "Search ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /searches/{id} [get]
func (h *SearchHandler) Get(c *gin.Context) {
	session, err := h.searchUC.GetSearch(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, session.StageLabel, session)
}
