package routes

import (
	"net/http"
	"time"

	"task-tracker-api/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes assembles the GIN engine: CORS, health check and the
// /api entity routes backed by the given handler.
func SetupRoutes(h *handlers.Handler) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := ginRouter.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC(),
			})
		})

		// Task endpoints
		api.GET("/tasks", h.GetTasks)
		api.GET("/tasks/:id", h.GetTaskByID)
		api.POST("/tasks", h.CreateTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.DELETE("/tasks/:id", h.DeleteTask)

		// Project endpoints
		api.GET("/projects", h.GetProjects)
		api.GET("/projects/:id", h.GetProjectByID)
		api.POST("/projects", h.CreateProject)
		api.PUT("/projects/:id", h.UpdateProject)
		api.DELETE("/projects/:id", h.DeleteProject)

		// Sprint endpoints
		api.GET("/sprints", h.GetSprints)
		api.GET("/sprints/:id", h.GetSprintByID)
		api.POST("/sprints", h.CreateSprint)
		api.PUT("/sprints/:id", h.UpdateSprint)
		api.DELETE("/sprints/:id", h.DeleteSprint)

		// Calendar endpoint
		api.GET("/calendar/week", h.GetWeekCalendar)

		// Realtime change feed
		api.GET("/ws", h.WebSocket)
	}

	return ginRouter
}
