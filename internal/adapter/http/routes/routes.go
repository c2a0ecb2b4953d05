package routes

import (
	"net/http"
	"time"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/core/port"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/middlewares"
	"taskapp/pkg/telemetry"

	"github.com/gin-gonic/gin"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *logging.Logger, cache port.CacheRepository) *gin.Engine {
	return SetupRouterWithConfig(handlers, metrics, logger, cache, config.GetDefaultConfig())
}

func SetupRouterWithConfig(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger *logging.Logger, cache port.CacheRepository, cfg *config.AppConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	middlewares.SetupGinMiddleware(router, logger.ServiceName(), metrics, logger, cache, cfg)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupHealthRoutes(router)

	if handlers.UserHandler != nil {
		setupUserRoutes(router, handlers.UserHandler)
	}

	if handlers.TaskHandler != nil {
		setupTaskRoutes(router, handlers.TaskHandler)
	}

	return router
}

func setupHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func setupUserRoutes(router *gin.Engine, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}

func setupTaskRoutes(router *gin.Engine, taskHandler *handler.TaskHandler) {
	tasks := router.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.PATCH("/:id/complete", taskHandler.CompleteTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	setupHealthRoutes(router)

	if handlers.UserHandler != nil {
		setupUserRoutes(router, handlers.UserHandler)
	}

	if handlers.TaskHandler != nil {
		setupTaskRoutes(router, handlers.TaskHandler)
	}

	return router
}
