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

// CreateProjectRequest represents the request payload for creating a
// project. The same shape is re-bound on PUT: project updates are
// wholesale, so absent optional fields reset to their defaults.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateProject handles POST /api/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	color := req.Color
	if color == "" {
		color = models.DefaultProjectColor
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		CreatedDate: now,
		UpdatedDate: now,
	}

	if err := h.db.Create(&project).Error; err != nil {
		logging.Logger.Errorf("create project failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create project",
		})
		return
	}

	h.hub.Publish("project_created", "project", project.ID)

	c.JSON(http.StatusOK, project)
}

// GetProjects handles GET /api/projects
func (h *Handler) GetProjects(c *gin.Context) {
	projects := []models.Project{}
	if err := h.db.Limit(maxListSize).Find(&projects).Error; err != nil {
		logging.Logger.Errorf("list projects failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch projects",
		})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProjectByID handles GET /api/projects/:id
func (h *Handler) GetProjectByID(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logging.Logger.Errorf("fetch project %s failed: %v", projectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /api/projects/:id
// Wholesale update: every mutable field takes the payload value, so a
// payload lacking description or color clears/defaults it rather than
// preserving the stored value. id and created_date are untouched.
func (h *Handler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logging.Logger.Errorf("fetch project %s failed: %v", projectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	color := req.Color
	if color == "" {
		color = models.DefaultProjectColor
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Color = color
	project.UpdatedDate = time.Now().UTC()

	if err := h.db.Save(&project).Error; err != nil {
		logging.Logger.Errorf("update project %s failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update project",
		})
		return
	}

	h.hub.Publish("project_updated", "project", project.ID)

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
// The project's existence is checked first, then its tasks, sprints and
// the project itself are removed inside one transaction so a crash can
// never leave a half-finished cascade behind.
func (h *Handler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	var project models.Project
	if err := h.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logging.Logger.Errorf("fetch project %s failed: %v", projectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Sprint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		logging.Logger.Errorf("cascade delete project %s failed: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete project",
		})
		return
	}

	h.hub.Publish("project_deleted", "project", projectID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Project and associated tasks deleted successfully",
		"id":      projectID,
	})
}
