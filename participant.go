package splitex

import "github.com/google/uuid"

// Participant is a member of the group. The id is opaque, unique, and
// immutable once created; everything else refers to participants by id.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultParticipants returns the participant set used to seed a brand new
// ledger when no stored state exists.
func DefaultParticipants() []Participant {
	return []Participant{
		{ID: "1", Name: "Anna"},
		{ID: "2", Name: "Bartosz"},
		{ID: "3", Name: "Celina"},
		{ID: "4", Name: "Daniel"},
	}
}

// newID generates a fresh unique entity id.
func newID() string { return uuid.NewString() }
