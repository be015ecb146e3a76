package models

import (
	"time"

	"github.com/google/uuid"
)

// Resource defines a learning material based on the 'resources' table.
type Resource struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Link        string    `json:"link" db:"link"`
	UploadedBy  uuid.UUID `json:"uploadedBy" db:"uploaded_by"`
	// UploaderName is joined from profiles.full_name on list queries.
	UploaderName string    `json:"uploaderName" db:"uploader_name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// OwnerID returns the owning principal identifier.
func (r *Resource) OwnerID() uuid.UUID { return r.UploadedBy }
