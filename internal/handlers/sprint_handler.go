package handlers

import (
	"errors"
	"net/http"
	"time"

	"task-tracker-api/internal/logging"
	"task-tracker-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSprintRequest represents the request payload for creating a
// sprint. Like projects, sprint updates re-bind this shape wholesale:
// absent optional fields reset (status back to planning, dates cleared).
type CreateSprintRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	ProjectID   string              `json:"project_id" binding:"required"`
	Status      models.SprintStatus `json:"status" binding:"omitempty,oneof=planning active completed"`
	StartDate   string              `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string              `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Goal        string              `json:"goal"`
}

// CreateSprint handles POST /api/sprints
func (h *Handler) CreateSprint(c *gin.Context) {
	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.SprintPlanning
	}

	now := time.Now().UTC()
	sprint := models.Sprint{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Goal:        req.Goal,
		CreatedDate: now,
		UpdatedDate: now,
	}

	if err := h.db.Create(&sprint).Error; err != nil {
		logging.Logger.Errorf("create sprint failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create sprint",
		})
		return
	}

	h.hub.Publish("sprint_created", "sprint", sprint.ID)

	c.JSON(http.StatusOK, sprint)
}

// GetSprints handles GET /api/sprints
// Optional query param project_id narrows the result by equality.
func (h *Handler) GetSprints(c *gin.Context) {
	query := h.db.Model(&models.Sprint{})
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	sprints := []models.Sprint{}
	if err := query.Limit(maxListSize).Find(&sprints).Error; err != nil {
		logging.Logger.Errorf("list sprints failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch sprints",
		})
		return
	}

	c.JSON(http.StatusOK, sprints)
}

// GetSprintByID handles GET /api/sprints/:id
func (h *Handler) GetSprintByID(c *gin.Context) {
	sprintID := c.Param("id")

	var sprint models.Sprint
	if err := h.db.Where("id = ?", sprintID).First(&sprint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		} else {
			logging.Logger.Errorf("fetch sprint %s failed: %v", sprintID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sprint"})
		}
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// UpdateSprint handles PUT /api/sprints/:id
// Wholesale update, same semantics as projects.
func (h *Handler) UpdateSprint(c *gin.Context) {
	sprintID := c.Param("id")

	var sprint models.Sprint
	if err := h.db.Where("id = ?", sprintID).First(&sprint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		} else {
			logging.Logger.Errorf("fetch sprint %s failed: %v", sprintID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sprint"})
		}
		return
	}

	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	status := req.Status
	if status == "" {
		status = models.SprintPlanning
	}

	sprint.Name = req.Name
	sprint.Description = req.Description
	sprint.ProjectID = req.ProjectID
	sprint.Status = status
	sprint.StartDate = req.StartDate
	sprint.EndDate = req.EndDate
	sprint.Goal = req.Goal
	sprint.UpdatedDate = time.Now().UTC()

	if err := h.db.Save(&sprint).Error; err != nil {
		logging.Logger.Errorf("update sprint %s failed: %v", sprintID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update sprint",
		})
		return
	}

	h.hub.Publish("sprint_updated", "sprint", sprint.ID)

	c.JSON(http.StatusOK, sprint)
}

// DeleteSprint handles DELETE /api/sprints/:id
// Tasks referencing the sprint keep their sprint_id; references are
// advisory and never enforced.
func (h *Handler) DeleteSprint(c *gin.Context) {
	sprintID := c.Param("id")

	var sprint models.Sprint
	if err := h.db.Where("id = ?", sprintID).First(&sprint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		} else {
			logging.Logger.Errorf("fetch sprint %s failed: %v", sprintID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sprint"})
		}
		return
	}

	if err := h.db.Delete(&sprint).Error; err != nil {
		logging.Logger.Errorf("delete sprint %s failed: %v", sprintID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete sprint",
		})
		return
	}

	h.hub.Publish("sprint_deleted", "sprint", sprintID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Sprint deleted successfully",
		"id":      sprintID,
	})
}
