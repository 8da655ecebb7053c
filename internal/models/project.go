package models

import (
	"time"
)

// DefaultProjectColor is applied when a create payload omits the color.
const DefaultProjectColor = "#8B5CF6"

// Project represents a project grouping tasks and sprints.
// Deleting a project cascades to its tasks and sprints.
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Color       string    `json:"color" gorm:"not null;default:'#8B5CF6'"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date"`
	UpdatedDate time.Time `json:"updated_date" gorm:"column:updated_date"`
}

// TableName specifies the table name for Project Model
func (Project) TableName() string {
	return "projects"
}
