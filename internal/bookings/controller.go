package bookings

import (
	"net/http"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/middleware"
	"comedyslots/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// RequestBooking handles POST /api/v1/bookings
//
// @Summary Request a slot on a show
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Show to book"
// @Success 201 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "DUPLICATE_BOOKING, SHOW_FULL or VALIDATION_FAILED"
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Failure 403 {object} response.StandardApiResponse{errors=response.ErrorBody} "FORBIDDEN"
// @Failure 404 {object} response.StandardApiResponse{errors=response.ErrorBody} "SHOW_NOT_FOUND"
// @Router /bookings [post]
func (ctrl *Controller) RequestBooking(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid request body", map[string]any{"body": err.Error()}))
		return
	}
	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		response.RespondError(c, apperrors.Validation("Invalid show ID", map[string]any{"show_id": req.ShowID}))
		return
	}

	booking, err := ctrl.service.RequestBooking(c.Request.Context(), identity, showID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking requested successfully", booking.ToResponse(), nil)
}

// UpdateStatus handles PATCH /api/v1/bookings/:id/status
//
// @Summary Approve, reject or cancel a booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "INVALID_TRANSITION, SHOW_FULL or VALIDATION_FAILED"
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Failure 404 {object} response.StandardApiResponse{errors=response.ErrorBody} "BOOKING_NOT_FOUND"
// @Router /bookings/{id}/status [patch]
func (ctrl *Controller) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid request body", map[string]any{"body": err.Error()}))
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		response.RespondError(c, apperrors.Validation("Invalid status", map[string]any{"status": req.Status}))
		return
	}

	booking, err := ctrl.service.SetBookingStatus(c.Request.Context(), identity, bookingID, status)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking status updated successfully", booking.ToResponse(), nil)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
//
// @Summary Cancel the caller's booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "INVALID_TRANSITION"
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Failure 404 {object} response.StandardApiResponse{errors=response.ErrorBody} "BOOKING_NOT_FOUND"
// @Router /bookings/{id}/cancel [post]
func (ctrl *Controller) CancelBooking(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.service.CancelBooking(c.Request.Context(), identity, bookingID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking.ToResponse(), nil)
}

// GetBooking handles GET /api/v1/bookings/:id
//
// @Summary Get a booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Failure 404 {object} response.StandardApiResponse{errors=response.ErrorBody} "BOOKING_NOT_FOUND"
// @Router /bookings/{id} [get]
func (ctrl *Controller) GetBooking(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), identity, bookingID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking.ToResponse(), nil)
}

// ListMyBookings handles GET /api/v1/bookings
//
// @Summary List the caller's bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED, CANCELLED)
// @Success 200 {object} response.StandardApiResponse{data=PaginatedBookings}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Router /bookings [get]
func (ctrl *Controller) ListMyBookings(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid query parameters", map[string]any{"query": err.Error()}))
		return
	}

	bookings, err := ctrl.service.ListMyBookings(c.Request.Context(), identity, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

// ListManagedBookings handles GET /api/v1/promoter/bookings
//
// @Summary List bookings on the caller's shows
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED, CANCELLED)
// @Success 200 {object} response.StandardApiResponse{data=PaginatedBookings}
// @Failure 403 {object} response.StandardApiResponse{errors=response.ErrorBody} "FORBIDDEN"
// @Router /promoter/bookings [get]
func (ctrl *Controller) ListManagedBookings(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid query parameters", map[string]any{"query": err.Error()}))
		return
	}

	bookings, err := ctrl.service.ListManagedBookings(c.Request.Context(), identity, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("Invalid booking ID", map[string]any{"id": c.Param("id")}))
		return uuid.Nil, false
	}
	return id, true
}
