package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task represents a task in the system.
// due_date is kept as a YYYY-MM-DD string so the calendar-week query can
// compare dates lexicographically.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'todo'"`
	Priority    TaskPriority `json:"priority" gorm:"not null;default:'medium'"`
	ProjectID   string       `json:"project_id" gorm:"column:project_id;index"`
	SprintID    string       `json:"sprint_id" gorm:"column:sprint_id;index"`
	AssignedTo  string       `json:"assigned_to" gorm:"column:assigned_to"`
	DueDate     string       `json:"due_date" gorm:"column:due_date"`
	StoryPoints *int         `json:"story_points" gorm:"column:story_points"`
	CreatedDate time.Time    `json:"created_date" gorm:"column:created_date"`
	UpdatedDate time.Time    `json:"updated_date" gorm:"column:updated_date"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
