package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	domainerrors "linkforge/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintUsersEmail}
	wrapped := errors.Wrap(unique, "insert user")

	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
	assert.Equal(t, constraintUsersEmail, violatedConstraint(wrapped))
	assert.Empty(t, violatedConstraint(errors.New("boom")))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, isCheckConstraintViolation(unique))
}

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: domainerrors.ErrTransientStore},
		{name: "bad conn", err: errors.Wrap(driver.ErrBadConn, "query"), want: domainerrors.ErrTransientStore},
		{name: "not null", err: &pgconn.PgError{Code: pgNotNullViolation}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError(tt.err, "failed")
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}

	var dbErr *domainerrors.DatabaseExecuteError
	got := storeError(errors.New("syntax error"), "failed")
	assert.True(t, errors.As(got, &dbErr))
	assert.Equal(t, "failed", dbErr.Details())
}
