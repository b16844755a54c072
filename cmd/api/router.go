package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		authors := v1.Group("/authors")
		{
			authors.POST("", c.AuthorHandler.Create)
			authors.PUT("/:id", c.AuthorHandler.Update)
		}

		books := v1.Group("/books")
		{
			books.POST("", c.BookHandler.Create)
			books.PUT("/:id", c.BookHandler.Update)
			books.GET("", c.BookHandler.FindByAuthor)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		cacheStatus := "up"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   http.StatusText(status),
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
