package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error kinds shared by every service. Match with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExternal     = errors.New("external capability failure")
	ErrPersistence  = errors.New("persistence failure")
)

// AppError carries a client-safe message, its kind and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newAppError(kind error, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func ValidationError(msg string) error { return newAppError(ErrValidation, msg, nil) }

func UnauthorizedError(msg string) error { return newAppError(ErrUnauthorized, msg, nil) }

func ForbiddenError(msg string) error { return newAppError(ErrForbidden, msg, nil) }

func NotFoundError(msg string) error { return newAppError(ErrNotFound, msg, nil) }

func ConflictError(msg string) error { return newAppError(ErrConflict, msg, nil) }

func ExternalError(msg string, err error) error { return newAppError(ErrExternal, msg, err) }

func PersistenceError(msg string, err error) error { return newAppError(ErrPersistence, msg, err) }

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusFor maps an error to the HTTP status it should be reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrExternal):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err using the shared error envelope. Internal causes are
// logged, never sent to the client.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := "Internal Server Error"
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, zap.String("path", c.FullPath()), zap.Error(err))
		CaptureError(err, map[string]interface{}{"path": c.FullPath()})
	}
	c.JSON(status, ErrorResponse{Message: message})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				CaptureError(fmt.Errorf("panic: %v", err), map[string]interface{}{"path": c.FullPath()})

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
