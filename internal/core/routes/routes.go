package routes

import (
	"time"

	"github.com/smhardwarepst-collab/inventaris-backend/internal/core/container"
	"github.com/smhardwarepst-collab/inventaris-backend/internal/middleware"
	"github.com/smhardwarepst-collab/inventaris-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router)
	c.UserHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, c *container.Container) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())
	protectedRoutes.Use(middleware.TimeoutMiddleware(10 * time.Second))

	c.UserHandler.RegisterProtectedRoutes(protectedRoutes)
	c.CategoryHandler.RegisterRoutes(protectedRoutes)
	c.ItemHandler.RegisterRoutes(protectedRoutes)
	c.StatsHandler.RegisterRoutes(protectedRoutes)

	if c.SheetsHandler != nil {
		c.SheetsHandler.RegisterRoutes(protectedRoutes)
	}
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
}
