package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/SiddharthManjul/vailes-NFT/internal/api/shared/errors"
	"github.com/SiddharthManjul/vailes-NFT/internal/domain"
	"github.com/SiddharthManjul/vailes-NFT/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondDomainError maps a registry error to its HTTP shape. Unknown errors
// fall through to a 500 with the given message.
func respondDomainError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(statusForAPIError(apiErr), apiErr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrBaseTokenNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateDerivative):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(err.Error()))
	default:
		respondInternalError(c, err, message)
	}
}

func statusForAPIError(apiErr *apierrors.APIError) int {
	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apierrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
