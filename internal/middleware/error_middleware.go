package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campushub/portal/internal/app/models/dto"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the standard error envelope.
// Everything in the validation-failure class comes back as a 4xx with no
// state mutated; unknown errors are the only 500s.
func HandleAPIError(c *gin.Context, err error) {
	var code dto.ErrorCode
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status, code, message = http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status, code = http.StatusForbidden, dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrMedicineNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrOutOfStock):
		status, code = http.StatusConflict, dto.ErrorCodeOutOfStock
	case errors.Is(err, apperrors.ErrInvalidTransition):
		status, code = http.StatusBadRequest, dto.ErrorCodeInvalidTransition
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		status, code, message = http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}

	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
