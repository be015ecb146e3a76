package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	ProfileRepository     *ProfileRepository
	ResourceRepository    *ResourceRepository
	ScholarshipRepository *ScholarshipRepository
	TimetableRepository   *TimetableRepository
	TokenRepository       *TokenRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfileRepository:     NewProfileRepository(db),
		ResourceRepository:    NewResourceRepository(db),
		ScholarshipRepository: NewScholarshipRepository(db),
		TimetableRepository:   NewTimetableRepository(db),
		TokenRepository:       NewTokenRepository(db),
	}
}
