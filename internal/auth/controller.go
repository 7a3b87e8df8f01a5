package auth

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/middleware"
	"comedyslots/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Controller{
		service:   service,
		validator: v,
	}
}

// @Summary Register a comedian or promoter
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Signup details"
// @Success 201 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Failure 409 {object} response.StandardApiResponse{errors=response.ErrorBody} "CONFLICT"
// @Router /auth/register [post]
func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Register(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "User registered successfully", resp, nil)
}

// @Summary Exchange credentials for tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 400 {object} response.StandardApiResponse{errors=response.ErrorBody} "VALIDATION_FAILED"
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Router /auth/login [post]
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if !c.bind(ctx, &req) {
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Login successful", resp, nil)
}

// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.StandardApiResponse{data=TokenPair}
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Router /auth/refresh [post]
func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if !c.bind(ctx, &req) {
		return
	}

	pair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Token refreshed successfully", pair, nil)
}

// Logout is stateless: tokens simply expire.
//
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /auth/logout [post]
func (c *Controller) Logout(ctx *gin.Context) {
	response.RespondJSON(ctx, "success", http.StatusOK, "Logged out successfully", nil, nil)
}

// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.StandardApiResponse{data=UserResponse}
// @Failure 401 {object} response.StandardApiResponse{errors=response.ErrorBody} "UNAUTHORIZED"
// @Router /auth/me [get]
func (c *Controller) GetMe(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		response.RespondError(ctx, apperrors.Unauthorized())
		return
	}

	profile, err := c.service.GetProfile(ctx.Request.Context(), identity.ID)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "User data retrieved successfully", profile, nil)
}

// bind decodes and validates the JSON body, writing a VALIDATION_FAILED response on failure.
func (c *Controller) bind(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		response.RespondError(ctx, apperrors.Validation("Invalid request body", map[string]any{"body": err.Error()}))
		return false
	}

	if err := c.validator.Struct(dst); err != nil {
		details := map[string]any{}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				details[fe.Field()] = fieldMessage(fe)
			}
		} else {
			details["body"] = err.Error()
		}
		response.RespondError(ctx, apperrors.Validation("Validation failed", details))
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
