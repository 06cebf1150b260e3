package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/medchart/medchart-api/internal/store"
)

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		ConstraintName: constraint,
		Message:        "constraint violation",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := MapError(sql.ErrNoRows)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("wrapped no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		err := MapError(fmt.Errorf("query failed: %w", sql.ErrNoRows))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		err := MapError(pgError(uniqueViolationCode, "users_username_key"))
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("foreign key violation maps to invalid entity with constraint name", func(t *testing.T) {
		t.Parallel()
		err := MapError(pgError(foreignKeyViolationCode, "vitals_patient_id_fkey"))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "vitals_patient_id_fkey")
	})

	t.Run("other pg errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := pgError("42P01", "")
		err := MapError(original)
		assert.Equal(t, error(original), err)
	})

	t.Run("plain errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		original := errors.New("connection reset")
		assert.Equal(t, original, MapError(original))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode, "users_email_key")))
	assert.True(t, IsUniqueViolation(
		fmt.Errorf("insert failed: %w", pgError(uniqueViolationCode, ""))))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode, "")))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(pgError(foreignKeyViolationCode, "vitals_patient_id_fkey")))
	assert.False(t, IsForeignKeyViolation(pgError(uniqueViolationCode, "")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestViolatedConstraint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "users_username_key",
		violatedConstraint(pgError(uniqueViolationCode, "users_username_key")))
	assert.Equal(t, "users_email_key",
		violatedConstraint(fmt.Errorf("wrapped: %w", pgError(uniqueViolationCode, "users_email_key"))))
	assert.Equal(t, "", violatedConstraint(errors.New("not a pg error")))
}
