package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	raw, _ := c.Get("trace_id")
	traceID, _ := raw.(string)
	return traceID
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps sentinel errors from the service layer onto HTTP
// responses. Anything unmapped is treated as an internal error and logged.
func HandleServiceError(c *gin.Context, err error) {
	var code int
	var message string

	switch {
	case errors.Is(err, ErrInvalidInput):
		code, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidPage):
		code, message = http.StatusBadRequest, "Page must be greater than 0"
	case errors.Is(err, ErrInvalidPageSize):
		code, message = http.StatusBadRequest, "Page size must be between 1 and 100"
	case errors.Is(err, ErrInvalidCredentials):
		code, message = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, ErrTripNotOwned):
		code, message = http.StatusForbidden, "Trip belongs to another account"
	case errors.Is(err, ErrAccountNotFound):
		code, message = http.StatusNotFound, "Account not found"
	case errors.Is(err, ErrTripNotFound):
		code, message = http.StatusNotFound, "Trip not found"
	case errors.Is(err, ErrRouteNotFound):
		code, message = http.StatusNotFound, "Route option not found"
	case errors.Is(err, ErrEmailAlreadyExists):
		code, message = http.StatusConflict, "Email already registered"
	case errors.Is(err, ErrUnroutableTrip):
		code, message = http.StatusUnprocessableEntity, "Trip cannot be routed"
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		code, message = http.StatusBadGateway, "AI provider returned an unexpected response"
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err))
		code, message = http.StatusInternalServerError, "Internal server error"
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		code, message = http.StatusInternalServerError, "Internal server error"
	}

	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}
