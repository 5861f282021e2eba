package handlers

import (
	"net/http"
	"time"

	"course-service/internal/middleware"
	"course-service/internal/models"
	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

// TeacherHandler serves the instructor-only authoring routes. The teacher
// role check happens in middleware before any of these run.
type TeacherHandler struct {
	Courses *service.CourseService
	Content *service.ContentService
}

func NewTeacherHandler(courses *service.CourseService, content *service.ContentService) *TeacherHandler {
	return &TeacherHandler{Courses: courses, Content: content}
}

func (h *TeacherHandler) ListCourses(c *gin.Context) {
	courses, err := h.Courses.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *TeacherHandler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		badRequest(c, err)
		return
	}
	course.Instructor = middleware.UserID(c)
	if err := h.Courses.CreateCourse(c.Request.Context(), &course); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *TeacherHandler) DeleteCourse(c *gin.Context) {
	if err := h.Courses.DeleteCourse(c.Request.Context(), c.Param("courseId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

func (h *TeacherHandler) CreateSection(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	section, err := h.Content.AddSection(c.Request.Context(), c.Param("courseId"), body.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (h *TeacherHandler) ListSections(c *gin.Context) {
	sections, err := h.Content.Sections(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (h *TeacherHandler) AddVideo(c *gin.Context) {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Duration    int    `json:"duration"`
		Resolution  string `json:"resolution"`
		SectionID   string `json:"sectionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	video := &models.Video{
		Title:       body.Title,
		Description: body.Description,
		URL:         body.URL,
		Duration:    body.Duration,
		Resolution:  body.Resolution,
		SectionID:   body.SectionID,
	}
	video, err := h.Content.AddVideo(c.Request.Context(), c.Param("courseId"), video)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

func (h *TeacherHandler) ListVideos(c *gin.Context) {
	videos, err := h.Content.Videos(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *TeacherHandler) AddDeadline(c *gin.Context) {
	var body struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	deadline := &models.Deadline{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
	}
	deadline, err := h.Content.AddDeadline(c.Request.Context(), c.Param("courseId"), deadline)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deadline)
}

func (h *TeacherHandler) ListDeadlines(c *gin.Context) {
	deadlines, err := h.Content.Deadlines(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deadlines)
}
