package v1

import (
	"net/http"

	"go-talent-dashboard/config"
	"go-talent-dashboard/internal/delivery/http/middleware"
	"go-talent-dashboard/internal/delivery/http/response"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	JobRequirementUC domain.JobRequirementUsecase
	CandidateUC      domain.CandidateUsecase
	ExportUC         domain.ExportUsecase
	SearchUC         domain.SearchUsecase
	DashboardUC      domain.DashboardUsecase
	HealthUC         usecase.HealthUsecase
	AccessLog        *zap.Logger     // nil disables access logging
	Redis            *goredis.Client // shared rate limit counters; nil counts in memory
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	isProduction := deps.Config.GinMode == gin.ReleaseMode

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, isProduction)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if deps.AccessLog != nil {
		r.Use(middleware.AccessLog(deps.AccessLog))
	}
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "Storage unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewJobRequirementHandler(v1, deps.JobRequirementUC)
	workLimit := middleware.NewRateLimiter(middleware.SearchRateLimitConfig(deps.Config.RateLimitPerMinute), deps.Redis).Middleware()

	NewCandidateHandler(v1, deps.CandidateUC, deps.ExportUC, workLimit)
	NewSearchHandler(v1, deps.SearchUC, workLimit)
	NewDashboardHandler(v1, deps.DashboardUC)

	return r
}
