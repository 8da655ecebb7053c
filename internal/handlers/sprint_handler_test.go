package handlers

import (
	"net/http"
	"testing"

	"task-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateSprint_Defaults(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
		"name":       "Sprint 1",
		"project_id": "p-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Sprint
	decodeInto(t, w, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.SprintPlanning, created.Status)
	require.Equal(t, "p-1", created.ProjectID)
	require.True(t, created.CreatedDate.Equal(created.UpdatedDate))
}

func TestCreateSprint_RequiresProjectID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
		"name": "orphan sprint",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateSprint_RejectsInvalidStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
		"name":       "Sprint X",
		"project_id": "p-1",
		"status":     "paused",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetSprints_FilterByProject(t *testing.T) {
	r := newTestRouter(t)

	mk := func(name, projectID string) models.Sprint {
		w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
			"name":       name,
			"project_id": projectID,
		})
		require.Equal(t, http.StatusOK, w.Code)
		var sprint models.Sprint
		decodeInto(t, w, &sprint)
		return sprint
	}

	a := mk("a", "p-1")
	mk("b", "p-2")

	w := doJSON(t, r, http.MethodGet, "/api/sprints?project_id=p-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sprints []models.Sprint
	decodeInto(t, w, &sprints)
	require.Len(t, sprints, 1)
	require.Equal(t, a.ID, sprints[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/sprints", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &sprints)
	require.Len(t, sprints, 2)
}

func TestGetSprintByID_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sprints/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSprint_WholesaleResetsAbsentFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
		"name":       "Sprint 2",
		"project_id": "p-1",
		"status":     "active",
		"goal":       "Ship the beta",
		"start_date": "2025-04-01",
		"end_date":   "2025-04-14",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created models.Sprint
	decodeInto(t, w, &created)
	require.Equal(t, models.SprintActive, created.Status)

	// Payload lacks status, goal and dates: all reset to defaults/empty
	w = doJSON(t, r, http.MethodPut, "/api/sprints/"+created.ID, map[string]any{
		"name":       "Sprint 2 renamed",
		"project_id": "p-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Sprint
	decodeInto(t, w, &updated)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Sprint 2 renamed", updated.Name)
	require.Equal(t, models.SprintPlanning, updated.Status)
	require.Equal(t, "", updated.Goal)
	require.Equal(t, "", updated.StartDate)
	require.Equal(t, "", updated.EndDate)
}

func TestUpdateSprint_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/sprints/"+uuid.NewString(), map[string]any{
		"name":       "ghost",
		"project_id": "p-1",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSprint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sprints", map[string]any{
		"name":       "short lived",
		"project_id": "p-1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created models.Sprint
	decodeInto(t, w, &created)

	w = doJSON(t, r, http.MethodDelete, "/api/sprints/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/sprints/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/sprints/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
