package handlers

import (
	"net/http"
	"time"

	"task-tracker-api/internal/logging"
	"task-tracker-api/internal/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// GetWeekCalendar handles GET /api/calendar/week?start_date=YYYY-MM-DD
// Returns the tasks whose due_date falls in [start_date, start_date+7d).
// AddDate handles month and year rollover, so a start date near the end
// of a month produces a correct window.
func (h *Handler) GetWeekCalendar(c *gin.Context) {
	weekStart, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}
	weekEnd := weekStart.AddDate(0, 0, 7)

	// due_date is stored as YYYY-MM-DD, so string comparison orders the
	// same way as the dates themselves.
	tasks := []models.Task{}
	err = h.db.
		Where("due_date >= ? AND due_date < ?", weekStart.Format(dateLayout), weekEnd.Format(dateLayout)).
		Limit(maxListSize).
		Find(&tasks).Error
	if err != nil {
		logging.Logger.Errorf("calendar week query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start": weekStart.Format(dateLayout),
		"tasks":      tasks,
	})
}
