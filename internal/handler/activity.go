package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
)

type createActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type activityResponse struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type activityGroupResponse struct {
	Date       string             `json:"date"`
	Activities []activityResponse `json:"activities"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]activityResponse{"activity": activityToResponse(activity)})
}

// ListActivities handles GET /trips/{tripID}/activities.
// The response groups activities by calendar day and includes one group
// per day of the trip, empty days included.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	groups, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]activityGroupResponse, len(groups))
	for i, g := range groups {
		group := activityGroupResponse{
			Date:       g.Date.Format("2006-01-02"),
			Activities: make([]activityResponse, len(g.Activities)),
		}
		for j, a := range g.Activities {
			group.Activities[j] = activityToResponse(a)
		}
		out[i] = group
	}

	respondJSON(w, http.StatusOK, map[string][]activityGroupResponse{"activities": out})
}

func activityToResponse(a domain.Activity) activityResponse {
	return activityResponse{ID: a.ID, TripID: a.TripID, Title: a.Title, OccursAt: a.OccursAt}
}
