package router

import (
	"ces/internal/api"
	"ces/internal/audit"
	"ces/internal/handlers"
	"ces/internal/middleware"
	"ces/internal/session"
	"ces/pkg/config"
	"ces/pkg/jwt"
	"ces/pkg/response"
	"ces/pkg/transport"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies 路由依赖
type Dependencies struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Transport  transport.Transport
	JWTManager *jwt.JWTManager
	Revoker    session.Revoker
	Recorder   audit.Recorder
}

// SetupRouter 设置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Revoker == nil {
		deps.Revoker = session.NopRevoker{}
	}
	if deps.Recorder == nil {
		deps.Recorder = audit.NopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler(deps.Logger))
	router.Use(middleware.SetupCORS(deps.Config.CORS))
	router.Use(middleware.RequestID())

	registerRoutes(router, deps)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine, deps Dependencies) {
	auth := middleware.NewAuthMiddleware(deps.JWTManager, deps.Revoker, deps.Logger)

	api := router.Group("/api/v1")
	{
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		authHandler := handlers.NewAuthHandler(deps.Revoker, deps.Logger)
		authGroup := api.Group("/auth", auth.RequireLogin())
		{
			authGroup.GET("/me", authHandler.Me)
			authGroup.POST("/logout", authHandler.Logout)
		}

		tenantHandler := newTenantHandler(deps)
		tenants := api.Group("/tenants", auth.RequireLogin())
		{
			tenants.GET("", tenantHandler.GetAll)
		}

		companyHandler := newCompanyHandler(deps)
		companies := api.Group("/companies", auth.RequireLogin())
		{
			companies.GET("", companyHandler.GetAll)
			companies.POST("", companyHandler.Create)
			companies.PUT("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Delete)
		}

		gridHandler := newGridHandler(deps)
		grids := api.Group("/grids", auth.RequireLogin())
		{
			grids.GET("", gridHandler.GetAll)
			grids.POST("", gridHandler.Create)
			grids.PUT("/:id", gridHandler.Update)
			grids.DELETE("/:id", gridHandler.Delete)
		}

		operationLogHandler := handlers.NewOperationLogHandler(deps.Recorder, deps.Logger)
		api.GET("/operation-logs", auth.RequireLogin(), operationLogHandler.GetAll)
	}
}

func newTenantHandler(deps Dependencies) *handlers.TenantHandler {
	return handlers.NewTenantHandler(api.NewTenantAPI(deps.Transport), deps.Logger)
}

func newCompanyHandler(deps Dependencies) *handlers.CompanyHandler {
	return handlers.NewCompanyHandler(api.NewCompanyAPI(deps.Transport), deps.Recorder, deps.Logger)
}

func newGridHandler(deps Dependencies) *handlers.GridHandler {
	return handlers.NewGridHandler(api.NewGridAPI(deps.Transport), deps.Recorder, deps.Logger)
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "CES-Console",
		"version":   "1.0.0",
	}
	response.Success(c, data)
}

func ping(c *gin.Context) {
	response.SuccessWithMessage(c, "pong", nil)
}
