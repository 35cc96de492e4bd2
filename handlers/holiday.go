// File: handlers/holiday.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	holidayService "github.com/phucnvzeud/center-x-sub000/services/holidays"
	"github.com/phucnvzeud/center-x-sub000/utils"
)

// HolidayHandler exposes the global holiday calendar endpoints.
type HolidayHandler struct {
	Service holidayService.HolidayService
}

type createHolidayRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Name string `json:"name" binding:"required"`
}

func (h *HolidayHandler) CreateHolidayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid holiday create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	holiday, err := h.Service.CreateHoliday(c.Request.Context(), date, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, holiday)
}

func (h *HolidayHandler) ListHolidaysHandler(c *gin.Context) {
	holidays, err := h.Service.ListHolidays(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": holidays})
}

func (h *HolidayHandler) DeleteHolidayHandler(c *gin.Context) {
	if err := h.Service.DeleteHoliday(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted"})
}

// CheckHolidaysHandler reports which holidays fall inside an inclusive date
// range, e.g. GET /holidays/check?start=2024-04-29&end=2024-05-03.
func (h *HolidayHandler) CheckHolidaysHandler(c *gin.Context) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		respondError(c, err)
		return
	}
	holidays, err := h.Service.CheckDateRange(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidays": holidays, "count": len(holidays)})
}

// ApplyHolidayHandler fans a holiday out to every schedule owner. With
// ?async=true the batch is queued and the call returns immediately; results
// are fetched later from the results endpoint.
func (h *HolidayHandler) ApplyHolidayHandler(c *gin.Context) {
	holidayID := c.Param("id")

	if c.Query("async") == "true" {
		if err := h.Service.EnqueueApply(c.Request.Context(), holidayID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "Holiday application enqueued", "holidayId": holidayID})
		return
	}

	results, err := h.Service.ApplyToAllOwners(c.Request.Context(), holidayID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidayId": holidayID, "results": results})
}

func (h *HolidayHandler) ApplyResultsHandler(c *gin.Context) {
	results, err := h.Service.ApplyResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holidayId": c.Param("id"), "results": results})
}
