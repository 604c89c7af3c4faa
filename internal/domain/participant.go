package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a guest invited to a trip by email.
// A participant starts unconfirmed; confirming fills in Name and flips
// IsConfirmed. Confirming twice is idempotent.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
