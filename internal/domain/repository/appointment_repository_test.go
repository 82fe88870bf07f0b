package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsOverlapConflict(t *testing.T) {
	exclusion := &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}
	assert.True(t, IsOverlapConflict(exclusion))
	assert.True(t, IsOverlapConflict(fmt.Errorf("create appointment: %w", exclusion)))

	assert.False(t, IsOverlapConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsOverlapConflict(errors.New("connection refused")))
	assert.False(t, IsOverlapConflict(nil))
}
