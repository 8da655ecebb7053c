package models

import (
	"time"
)

// SprintStatus represents the status of a sprint
type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// Sprint represents a sprint belonging to a project.
// project_id is a plain reference; existence of the project is not
// enforced at write time.
type Sprint struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	ProjectID   string       `json:"project_id" gorm:"column:project_id;index;not null"`
	Status      SprintStatus `json:"status" gorm:"not null;default:'planning'"`
	StartDate   string       `json:"start_date" gorm:"column:start_date"`
	EndDate     string       `json:"end_date" gorm:"column:end_date"`
	Goal        string       `json:"goal"`
	CreatedDate time.Time    `json:"created_date" gorm:"column:created_date"`
	UpdatedDate time.Time    `json:"updated_date" gorm:"column:updated_date"`
}

// TableName specifies the table name for Sprint Model
func (Sprint) TableName() string {
	return "sprints"
}
