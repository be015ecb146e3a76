package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505")))
	assert.True(t, IsForeignKeyViolation(pgError("23503")))
	assert.True(t, IsPermissionDenied(pgError("42501")))

	// Codes never cross-match.
	assert.False(t, IsUniqueViolation(pgError("23503")))
	assert.False(t, IsForeignKeyViolation(pgError("42501")))
	assert.False(t, IsPermissionDenied(pgError("23505")))
}

func TestClassifiersMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("error executing query: %w", pgError("42501"))
	assert.True(t, IsPermissionDenied(wrapped))
}

func TestClassifiersRejectNonPgErrors(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsPermissionDenied(err))
	assert.False(t, IsPermissionDenied(nil))
}
