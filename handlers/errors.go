// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/database/repository"
	"github.com/phucnvzeud/center-x-sub000/scheduling"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// respondError maps service errors onto HTTP statuses. Validation failures are
// 400, missing aggregates 404, rejected transitions 422 and lost optimistic
// writes 409; anything else is an opaque 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *scheduling.ValidationError
		notFoundErr   *scheduling.NotFoundError
		transitionErr *scheduling.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": transitionErr.Error()})
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "schedule was modified concurrently, retry the request"})
	default:
		utils.GetLogger().Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseDate parses a calendar date in YYYY-MM-DD form.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &scheduling.ValidationError{Message: "invalid date, expected YYYY-MM-DD: " + value}
	}
	return t, nil
}
