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

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority    models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID   string              `json:"project_id"`
	SprintID    string              `json:"sprint_id"`
	AssignedTo  string              `json:"assigned_to"`
	DueDate     string              `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	StoryPoints *int                `json:"story_points"`
}

// UpdateTaskRequest represents the request payload for updating a task.
// All fields are pointers: only the fields present in the payload are
// applied to the stored task.
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	ProjectID   *string              `json:"project_id"`
	SprintID    *string              `json:"sprint_id"`
	AssignedTo  *string              `json:"assigned_to"`
	DueDate     *string              `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	StoryPoints *int                 `json:"story_points"`
}

// CreateTask handles POST /api/tasks
// Builds a full task from the payload plus a generated id and timestamps.
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Set default values if not provided
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		ProjectID:   req.ProjectID,
		SprintID:    req.SprintID,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		StoryPoints: req.StoryPoints,
		CreatedDate: now,
		UpdatedDate: now,
	}

	if err := h.db.Create(&task).Error; err != nil {
		logging.Logger.Errorf("create task failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create task",
		})
		return
	}

	h.hub.Publish("task_created", "task", task.ID)

	c.JSON(http.StatusOK, task)
}

// GetTasks handles GET /api/tasks
// Optional query params project_id and sprint_id narrow the result by
// equality; the result is capped at 1000 records in store order.
func (h *Handler) GetTasks(c *gin.Context) {
	query := h.db.Model(&models.Task{})
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if sprintID := c.Query("sprint_id"); sprintID != "" {
		query = query.Where("sprint_id = ?", sprintID)
	}

	tasks := []models.Task{}
	if err := query.Limit(maxListSize).Find(&tasks).Error; err != nil {
		logging.Logger.Errorf("list tasks failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles GET /api/tasks/:id
func (h *Handler) GetTaskByID(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := h.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logging.Logger.Errorf("fetch task %s failed: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Partial update: only the fields present in the payload are applied,
// everything else keeps its stored value. updated_date always refreshes.
func (h *Handler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := h.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logging.Logger.Errorf("fetch task %s failed: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Update fields if provided
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.ProjectID != nil {
		task.ProjectID = *req.ProjectID
	}
	if req.SprintID != nil {
		task.SprintID = *req.SprintID
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.StoryPoints != nil {
		task.StoryPoints = req.StoryPoints
	}
	task.UpdatedDate = time.Now().UTC()

	if err := h.db.Save(&task).Error; err != nil {
		logging.Logger.Errorf("update task %s failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update task",
		})
		return
	}

	h.hub.Publish("task_updated", "task", task.ID)

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	var task models.Task
	if err := h.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			logging.Logger.Errorf("fetch task %s failed: %v", taskID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if err := h.db.Delete(&task).Error; err != nil {
		logging.Logger.Errorf("delete task %s failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete task",
		})
		return
	}

	h.hub.Publish("task_deleted", "task", taskID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}
