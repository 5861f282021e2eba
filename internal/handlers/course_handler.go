package handlers

import (
	"net/http"

	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	Service     *service.CourseService
	Enrollments *service.EnrollmentService
}

func NewCourseHandler(s *service.CourseService, e *service.EnrollmentService) *CourseHandler {
	return &CourseHandler{Service: s, Enrollments: e}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Service.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseDetail answers the course with its ordered sections and videos.
func (h *CourseHandler) GetCourseDetail(c *gin.Context) {
	detail, err := h.Service.GetCourseDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CourseHandler) EnrollmentCount(c *gin.Context) {
	count, err := h.Enrollments.CountActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
