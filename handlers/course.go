// File: handlers/course.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/models"
	courseService "github.com/phucnvzeud/center-x-sub000/services/course"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// CourseHandler exposes course and course-session endpoints.
type CourseHandler struct {
	Service courseService.CourseService
}

type createCourseRequest struct {
	Name               string                  `json:"name" binding:"required"`
	Language           string                  `json:"language"`
	Level              string                  `json:"level"`
	TeacherName        string                  `json:"teacherName"`
	BranchID           string                  `json:"branchId"`
	StartDate          string                  `json:"startDate" binding:"required"` // YYYY-MM-DD
	Recurrence         []models.RecurrenceSlot `json:"recurrence" binding:"required"`
	TargetSessionCount int                     `json:"targetSessionCount" binding:"required"`
	HolidayExceptions  []string                `json:"holidayExceptions"`
}

func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid course create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	exceptions := make([]time.Time, 0, len(req.HolidayExceptions))
	for _, raw := range req.HolidayExceptions {
		d, err := parseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		exceptions = append(exceptions, d)
	}

	course := &models.Course{
		Name:        req.Name,
		Language:    req.Language,
		Level:       req.Level,
		TeacherName: req.TeacherName,
		BranchID:    req.BranchID,
		Schedule: models.Schedule{
			StartDate:          startDate,
			Recurrence:         req.Recurrence,
			TargetSessionCount: req.TargetSessionCount,
			HolidayExceptions:  exceptions,
		},
	}
	created, err := h.Service.CreateCourse(c.Request.Context(), course)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	course, err := h.Service.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) ListCoursesHandler(c *gin.Context) {
	courses, err := h.Service.ListCourses(c.Request.Context(), c.Query("branchId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	var update models.CourseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	course, err := h.Service.UpdateCourse(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	if err := h.Service.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

func (h *CourseHandler) GetSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.GetSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *CourseHandler) UpdateSessionHandler(c *gin.Context) {
	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	result, err := h.Service.UpdateSession(c.Request.Context(), c.Param("id"), c.Param("sessionId"), req, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type customSessionRequest struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Notes string `json:"notes"`
}

func (h *CourseHandler) AddCustomSessionHandler(c *gin.Context) {
	var req customSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.Service.AddCustomSession(c.Request.Context(), c.Param("id"), date, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *CourseHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Request.Context(), c.Param("id"), c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

func (h *CourseHandler) ProgressHandler(c *gin.Context) {
	stats, err := h.Service.Progress(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
