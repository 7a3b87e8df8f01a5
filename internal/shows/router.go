package shows

import (
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/middleware"
	"comedyslots/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupShowRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Any signed-in user can browse the calendar
	showRoutes := router.Group("/shows")
	showRoutes.Use(middleware.JWTAuthWithConfig(cfg))
	{
		showRoutes.GET("", controller.ListShows)
		showRoutes.GET("/:id", controller.GetShow)
		showRoutes.POST("", middleware.RequireRoles(users.RolePromoter), controller.CreateShow)
	}

	promoterRoutes := router.Group("/promoter/shows")
	promoterRoutes.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireRoles(users.RolePromoter))
	{
		promoterRoutes.GET("", controller.ListMyShows)
	}
}
