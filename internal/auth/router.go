package auth

import (
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router mounts signup, login and token endpoints under /auth.
type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

func (authRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authRouter.controller.Register)
		auth.POST("/login", authRouter.controller.Login)
		auth.POST("/refresh", authRouter.controller.RefreshToken)
		auth.POST("/logout", authRouter.controller.Logout)

		auth.GET("/me", middleware.JWTAuthWithConfig(authRouter.config), authRouter.controller.GetMe)
	}
}
