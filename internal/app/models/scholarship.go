package models

import (
	"time"

	"github.com/google/uuid"
)

// Scholarship defines a scholarship listing based on the 'scholarships' table.
type Scholarship struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Link        string    `json:"link" db:"link"`
	AddedBy     uuid.UUID `json:"addedBy" db:"added_by"`
	// AdderName is joined from profiles.full_name on list queries.
	AdderName string    `json:"adderName" db:"adder_name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OwnerID returns the owning principal identifier.
func (s *Scholarship) OwnerID() uuid.UUID { return s.AddedBy }
