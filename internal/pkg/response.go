package pkg

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/omnidash/omnidash/internal/domain"
)

// Response is the standard JSON envelope for /api/v1 responses.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ValidationErrorResponse is the envelope for query-binding failures,
// carrying per-field messages.
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// Success sends a 200 envelope with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Error sends a JSON error envelope. *domain.AppError statuses and messages
// are preserved; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "internal error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	c.JSON(status, Response{
		Code:    status,
		Message: msg,
		Data:    nil,
	})
}

// BindQuery binds the request's query parameters into obj and validates it.
// On failure it sends a 400 response and returns false. Usage in handlers:
//
//	if !pkg.BindQuery(c, &req) { return }
func BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		sendBindingError(c, err)
		return false
	}
	return true
}

// sendBindingError answers a 400. Validator failures are broken out per
// field; other binding failures (for example a non-numeric page) are sent
// as a plain message.
func sendBindingError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, Response{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
		return
	}

	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[strings.ToLower(fe.Field())] = msg
	}

	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "validation error",
		Errors:  fieldErrors,
	})
}
