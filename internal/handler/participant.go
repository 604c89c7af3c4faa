package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rmaia/planner/internal/domain"
)

type confirmParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	participants, err := s.participants.ListByTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = participantToResponse(p)
	}

	respondJSON(w, http.StatusOK, map[string][]participantResponse{"participants": out})
}

// ConfirmParticipant handles PATCH /participants/{participantID}/confirm.
// Confirming twice is allowed and returns the already confirmed participant.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "participantID")
	if err != nil {
		respondBadRequest(w, r, err)
		return
	}

	var req confirmParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err)
		return
	}

	participant, err := s.participants.Confirm(r.Context(), id, req.Name, req.Email)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]participantResponse{"participant": participantToResponse(participant)})
}

func participantToResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID,
		TripID:      p.TripID,
		Name:        p.Name,
		Email:       p.Email,
		IsConfirmed: p.IsConfirmed,
	}
}
