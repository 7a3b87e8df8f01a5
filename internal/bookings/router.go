package bookings

import (
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/middleware"
	"comedyslots/internal/users"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(cfg))
	{
		bookings.POST("", middleware.RequireRoles(users.RoleComedian), controller.RequestBooking)
		bookings.GET("", controller.ListMyBookings)
		bookings.GET("/:id", controller.GetBooking)
		bookings.PATCH("/:id/status", controller.UpdateStatus)
		bookings.POST("/:id/cancel", controller.CancelBooking)
	}

	promoter := rg.Group("/promoter/bookings")
	promoter.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireRoles(users.RolePromoter))
	{
		promoter.GET("", controller.ListManagedBookings)
	}
}

// Route definitions for reference:
//
// POST   /api/v1/bookings                  - Request a slot (COMEDIAN). Body: { "show_id": "<uuid>" }
// GET    /api/v1/bookings?status=PENDING   - The caller's own bookings, newest first
// GET    /api/v1/bookings/:id              - A booking, visible to its requester and the show's promoter
// PATCH  /api/v1/bookings/:id/status       - Body: { "status": "APPROVED" | "REJECTED" | "CANCELLED" }
// POST   /api/v1/bookings/:id/cancel       - Requester withdraws a pending or approved booking
// GET    /api/v1/promoter/bookings         - Bookings across the promoter's shows (PROMOTER)
//
// Status changes:
// PENDING  -> APPROVED   show owner, only while approved < max_slots
// PENDING  -> REJECTED   show owner
// PENDING  -> CANCELLED  requester
// APPROVED -> CANCELLED  requester
// REJECTED and CANCELLED are terminal.
