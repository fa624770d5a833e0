package postgres

import (
	"context"
	"database/sql/driver"
	"net"

	domainerrors "linkforge/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Unique constraint names created by the migrations
const (
	constraintUsersEmail    = "uq_users_email"
	constraintUsersUsername = "uq_users_username"
	constraintProfilesOwner = "uq_profiles_owner_id"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgCheckViolation
}

// violatedConstraint returns the name of the constraint that rejected the statement.
func violatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

// isTransient reports whether err is a timeout or a lost connection rather
// than a rejection by the database.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// storeError classifies a failed statement. Timeouts and connection failures
// become ErrTransientStore, everything else a DatabaseExecuteError.
func storeError(err error, details string) error {
	if isTransient(err) {
		return errors.Wrap(domainerrors.ErrTransientStore, details+": "+err.Error())
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return errors.Wrap(domainerrors.ErrValidationFailed, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
