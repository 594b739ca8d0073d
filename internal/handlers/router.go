package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rewardstracker/internal/middleware"
)

// NewRouter builds the signup API routes on a new Gin engine.
func NewRouter(signup *SignupHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/signup", signup.Signup)
	api.GET("/accounts/:id", signup.GetAccount)

	return router
}
