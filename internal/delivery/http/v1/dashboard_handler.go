package v1

import (
	"net/http"

	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	r.GET("/dashboard", handler.Overview)
}

// Overview godoc
// @Summary      Dashboard overview
// @Description  Stats, recent searches, top candidates and the activity feed
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardUC.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard", overview)
}
