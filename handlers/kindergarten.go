// File: handlers/kindergarten.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phucnvzeud/center-x-sub000/models"
	kindergartenService "github.com/phucnvzeud/center-x-sub000/services/kindergarten"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// KindergartenHandler exposes kindergarten class and class-session endpoints.
type KindergartenHandler struct {
	Service kindergartenService.KindergartenService
}

type createClassRequest struct {
	Name               string                  `json:"name" binding:"required"`
	SchoolID           string                  `json:"schoolId"`
	Room               string                  `json:"room"`
	TeacherName        string                  `json:"teacherName"`
	StartDate          string                  `json:"startDate" binding:"required"` // YYYY-MM-DD
	Recurrence         []models.RecurrenceSlot `json:"recurrence" binding:"required"`
	TargetSessionCount int                     `json:"targetSessionCount" binding:"required"`
	HolidayExceptions  []string                `json:"holidayExceptions"`
}

func (h *KindergartenHandler) CreateClassHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid class create request", zap.Error(err))
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

	class := &models.KindergartenClass{
		Name:        req.Name,
		SchoolID:    req.SchoolID,
		Room:        req.Room,
		TeacherName: req.TeacherName,
		Schedule: models.Schedule{
			StartDate:          startDate,
			Recurrence:         req.Recurrence,
			TargetSessionCount: req.TargetSessionCount,
			HolidayExceptions:  exceptions,
		},
	}
	created, err := h.Service.CreateClass(c.Request.Context(), class)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *KindergartenHandler) GetClassHandler(c *gin.Context) {
	class, err := h.Service.GetClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *KindergartenHandler) ListClassesHandler(c *gin.Context) {
	classes, err := h.Service.ListClasses(c.Request.Context(), c.Query("schoolId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

func (h *KindergartenHandler) UpdateClassHandler(c *gin.Context) {
	var update models.KindergartenClassUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	class, err := h.Service.UpdateClass(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *KindergartenHandler) DeleteClassHandler(c *gin.Context) {
	if err := h.Service.DeleteClass(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

func (h *KindergartenHandler) GetSessionsHandler(c *gin.Context) {
	sessions, err := h.Service.GetSessions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *KindergartenHandler) UpdateSessionHandler(c *gin.Context) {
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

func (h *KindergartenHandler) AddCustomSessionHandler(c *gin.Context) {
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

func (h *KindergartenHandler) DeleteSessionHandler(c *gin.Context) {
	if err := h.Service.DeleteSession(c.Request.Context(), c.Param("id"), c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

func (h *KindergartenHandler) ProgressHandler(c *gin.Context) {
	stats, err := h.Service.Progress(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
