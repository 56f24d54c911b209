package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pulsefeed/pulsefeed/internal/api/handlers"
	"github.com/pulsefeed/pulsefeed/internal/middleware"
	"github.com/pulsefeed/pulsefeed/internal/models"
)

// SetupRouter wires the HTTP surface around the assembled pipelines.
func SetupRouter(h *handlers.TrendingHandler) *gin.Engine {
	registerValidators()

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestTiming())
	r.Use(middleware.ExtractUser())

	api := r.Group("/api/v1")
	{
		trending := api.Group("/trending")
		{
			trending.GET("", h.GetTrending)
			trending.POST("/refresh", h.RefreshTrending)
			trending.GET("/search", h.SearchNews)
			trending.POST("/save", h.SaveArticle)
			trending.GET("/saved", h.GetSaved)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// registerValidators adds the "category" rule used by article binding.
// "Error" is accepted so degraded articles stay saveable.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c := fl.Field().String()
		return c == models.CategoryError || models.IsValidCategory(c)
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
