package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}

// WriteError maps a service error to its HTTP status. The taxonomy:
// validation and conflict -> 400, permission -> 403, not found -> 404,
// anything else -> 500. Known uniqueness violations surface as 400
// conflicts rather than opaque internal errors.
func WriteError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Errors: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Errors: err.Error()})
	case apperrors.IsPermission(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Errors: err.Error()})
	case apperrors.IsNotFound(err), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Errors: err.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, ErrorResponse{Errors: "A record with these values already exists."})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Errors: err.Error()})
	}
}

// AbortError is WriteError for middleware paths.
func AbortError(c *gin.Context, err error) {
	WriteError(c, err)
	c.Abort()
}
