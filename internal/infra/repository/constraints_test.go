package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/workhub/workhub-api/internal/domain/marketplace"
)

func TestConstraintDetection(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(nil))

	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})))
	assert.True(t, isForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23503"}), domain.ErrReferenceMissing)

	boom := errors.New("boom")
	assert.Equal(t, boom, translate(boom))
}
