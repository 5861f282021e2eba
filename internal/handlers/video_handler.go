package handlers

import (
	"net/http"

	"course-service/internal/middleware"
	"course-service/internal/service"

	"github.com/gin-gonic/gin"
)

// VideoHandler serves the learner-facing watch-state routes.
type VideoHandler struct {
	Service *service.ProgressService
}

func NewVideoHandler(s *service.ProgressService) *VideoHandler {
	return &VideoHandler{Service: s}
}

func (h *VideoHandler) UpdateProgress(c *gin.Context) {
	var body struct {
		WatchedSeconds int  `json:"watchedSeconds"`
		Completed      bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	progress, err := h.Service.UpsertProgress(c.Request.Context(), middleware.UserID(c), c.Param("videoId"), body.WatchedSeconds, body.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *VideoHandler) GetProgress(c *gin.Context) {
	progress, err := h.Service.GetProgress(c.Request.Context(), middleware.UserID(c), c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *VideoHandler) TotalTime(c *gin.Context) {
	total, err := h.Service.TotalWatchedSeconds(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalSeconds": total})
}

// CourseVideos lists the course's videos in order with the caller's
// progress joined in; unwatched videos carry progress: null.
func (h *VideoHandler) CourseVideos(c *gin.Context) {
	videos, err := h.Service.VideosWithProgress(c.Request.Context(), c.Param("courseId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}
