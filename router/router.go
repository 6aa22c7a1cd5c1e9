package router

import (
	"net/http"
	"time"

	"menucatalog/api"
	"menucatalog/config"
	_ "menucatalog/docs"
	"menucatalog/middleware"
	"menucatalog/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// liveness check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server Menu Catalog Online!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	menuHandler := api.NewMenuHandler(service.NewDescriber(cfg))
	exportHandler := api.NewExportHandler()

	menu := r.Group("/menu")
	{
		// fixed paths first, so they are never captured by :id
		menu.GET("/search", menuHandler.List)
		menu.GET("/group-by-category", menuHandler.GroupByCategory)
		menu.GET("/export/csv", exportHandler.ExportCSV)
		menu.GET("/export/excel", exportHandler.ExportExcel)

		menu.GET("", menuHandler.List)
		menu.GET("/:id", menuHandler.Get)

		// mutating routes, optionally rate limited
		writes := menu.Group("")
		if cfg.RateLimit.Enabled {
			window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			writes.Use(middleware.WriteRateLimit(cfg.RateLimit.MaxRequests, window))
		}
		writes.POST("", menuHandler.Create)
		writes.PUT("/:id", menuHandler.Update)
		writes.DELETE("/:id", menuHandler.Delete)
	}

	return r
}

// CORSMiddleware allows cross-origin access from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
