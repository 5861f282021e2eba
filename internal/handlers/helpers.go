package handlers

import (
	"errors"
	"net/http"

	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures onto the wire contract: 404 for missing
// referenced entities, 400 for constraint violations, 500 otherwise. Bodies
// are always plain {"message": ...}.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
