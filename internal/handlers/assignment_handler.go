package handlers

import (
	"net/http"

	"course-service/internal/middleware"
	"course-service/internal/models"
	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(s *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var assignment models.Assignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.CreateAssignment(c.Request.Context(), &assignment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) ListByCourse(c *gin.Context) {
	assignments, err := h.Service.ListByCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// Submit grades the caller's answers and answers the computed score along
// with the stored submission.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	var body struct {
		Answers []models.Answer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	submission, err := h.Service.Submit(c.Request.Context(), c.Param("assignmentId"), middleware.UserID(c), body.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"score": submission.Score, "submission": submission})
}

func (h *AssignmentHandler) ListMySubmissions(c *gin.Context) {
	submissions, err := h.Service.ListSubmissionsForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}
