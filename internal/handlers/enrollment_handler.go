package handlers

import (
	"net/http"

	"course-service/internal/middleware"
	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	Service *service.EnrollmentService
}

func NewEnrollmentHandler(s *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{Service: s}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var body struct {
		CourseID string `json:"courseId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	enrollment, err := h.Service.Enroll(c.Request.Context(), body.CourseID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	enrollments, err := h.Service.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
