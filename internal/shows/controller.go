package shows

import (
	"net/http"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/middleware"
	"comedyslots/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateShow(c *gin.Context)
	GetShow(c *gin.Context)
	ListShows(c *gin.Context)
	ListMyShows(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// @Summary Create a show
// @Tags shows
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateShowRequest true "Show details"
// @Success 201 {object} response.StandardApiResponse{data=ShowResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Failure 403 {object} response.StandardApiResponse{errors=response.ErrorBody} "FORBIDDEN"
// @Router /shows [post]
func (ctrl *controller) CreateShow(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.RespondError(c, apperrors.Unauthorized())
		return
	}

	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid request body", map[string]any{"body": err.Error()}))
		return
	}

	show, err := ctrl.service.CreateShow(c.Request.Context(), identity, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show created successfully", show, nil)
}

// @Summary Get a show
// @Tags shows
// @Security BearerAuth
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} response.StandardApiResponse{data=ShowResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Failure 404 {object} response.StandardApiResponse{errors=response.ErrorBody} "SHOW_NOT_FOUND"
// @Router /shows/{id} [get]
func (ctrl *controller) GetShow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apperrors.Validation("Invalid show ID", map[string]any{"id": c.Param("id")}))
		return
	}

	show, err := ctrl.service.GetShow(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Show retrieved successfully", show, nil)
}

// @Summary List upcoming shows
// @Tags shows
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param date_from query string false "Earliest start, RFC 3339 or YYYY-MM-DD"
// @Param date_to query string false "Latest start, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} response.StandardApiResponse{data=PaginatedShows}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Router /shows [get]
func (ctrl *controller) ListShows(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.Validation("Invalid query parameters", map[string]any{"query": err.Error()}))
		return
	}

	shows, err := ctrl.service.ListShows(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved successfully", shows, nil)
}

// @Summary List the caller's shows
// @Tags shows
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param date_from query string false "Earliest start, RFC 3339 or YYYY-MM-DD"
// @Param date_to query string false "Latest start, RFC 3339 or YYYY-MM-DD"
// @Success 200 {object} response.StandardApiResponse{data=PaginatedShows}
// @Failure 403 {object} response.StandardApiResponse{errors=response.ErrorBody} "FORBIDDEN"
// @Router /promoter/shows [get]
func (ctrl *controller) ListMyShows(c *gin.Context) {
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

	shows, err := ctrl.service.ListPromoterShows(c.Request.Context(), identity, query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved successfully", shows, nil)
}
