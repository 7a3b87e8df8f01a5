package response

import (
	"net/http"

	"comedyslots/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError writes err using the status code of its kind. Errors that are not
// AppErrors are reported as a generic internal error.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	code := appErr.HTTPStatus
	if code == 0 {
		code = http.StatusInternalServerError
	}

	_ = c.Error(err)
	RespondJSON(c, "error", code, appErr.Message, nil, ErrorBody{
		Kind:    string(appErr.Kind),
		Details: appErr.Details,
	})
}
