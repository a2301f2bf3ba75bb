package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Every body carries a
// message field the client surfaces directly. Unrecognized errors become a
// 500 with the underlying error text attached, matching the long-standing
// behavior of forwarding the driver message.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrUnknownStream):
		if message == "" {
			message = err.Error()
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		if message == "" {
			message = "User already exists"
		}
		c.JSON(http.StatusConflict, dto.NewErrorResponse(message))
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		if message == "" {
			message = "Resource not found"
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database error: "+err.Error()))
	}
}
