package handlers

import (
	"task-tracker-api/internal/realtime"

	"gorm.io/gorm"
)

// maxListSize caps every list endpoint.
const maxListSize = 1000

// Handler bundles the dependencies shared by all request handlers: the
// database handle and the realtime hub. Both are injected so tests can
// substitute an in-memory database.
type Handler struct {
	db  *gorm.DB
	hub *realtime.Hub
}

// New creates a Handler backed by the given database and hub.
func New(db *gorm.DB, hub *realtime.Hub) *Handler {
	return &Handler{db: db, hub: hub}
}
