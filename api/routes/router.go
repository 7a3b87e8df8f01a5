// api/routes/router.go
package routes

import (
	"context"
	"net/http"
	"time"

	"comedyslots/docs"
	"comedyslots/internal/auth"
	"comedyslots/internal/bookings"
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/database"
	"comedyslots/internal/shows"
	"comedyslots/pkg/cache"
	"comedyslots/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthChecker is anything the health endpoint should report on.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier bookings.Notifier
	log      *logger.Logger

	showService    shows.Service // injected into bookings as the listing cache
	bookingService bookings.Service
}

// NewRouter creates a new router instance. notifier may be nil.
func NewRouter(cfg *config.Config, db *database.DB, notifier bookings.Notifier, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
		log:      log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	docs.SwaggerInfo.BasePath = r.config.GetAPIBasePath()
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// shows before bookings: bookings invalidate show listings
		r.setupShowRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// Shutdown waits for in-flight booking notifications.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.bookingService == nil {
		return nil
	}
	return r.bookingService.Shutdown(ctx)
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		checks := gin.H{}
		healthy := true

		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}

		if checker, ok := r.notifier.(HealthChecker); ok {
			if err := checker.HealthCheck(c.Request.Context()); err != nil {
				checks["notifications"] = err.Error()
				healthy = false
			} else {
				checks["notifications"] = "ok"
			}
		}

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"checks":    checks,
			"timestamp": time.Now(),
			"service":   "comedy-slots",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		transport := "none"
		if t, ok := r.notifier.(interface{ Transport() string }); ok {
			transport = t.Transport()
		}
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"redis_cache":   r.db.Redis != nil,
			"notifications": transport,
			"timestamp":     time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.PostgreSQL)
	authService := auth.NewService(authRepo, r.config, r.log)
	authController := auth.NewController(authService)

	auth.NewRouter(authController, r.config).SetupRoutes(rg)
}

func (r *Router) setupShowRoutes(rg *gin.RouterGroup) {
	showRepo := shows.NewRepository(r.db.PostgreSQL)
	showService := shows.NewService(showRepo, r.log)

	if r.db.Redis != nil {
		showService.SetCacheService(cache.NewService(r.db.Redis, r.log))
	}
	r.showService = showService

	shows.SetupShowRoutes(rg, shows.NewController(showService), r.config)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.PostgreSQL)
	bookingService := bookings.NewService(bookingRepo, r.notifier, r.log, r.config.Notifications.DispatchTimeout)

	if r.showService != nil {
		bookingService.SetShowCache(r.showService)
	}
	r.bookingService = bookingService

	bookings.SetupBookingRoutes(rg, bookings.NewController(bookingService), r.config)
}
