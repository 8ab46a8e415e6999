package repos

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

// sqliteUniquePattern matches SQLite's unique violation text, e.g.
// "UNIQUE constraint failed: customers.email".
var sqliteUniquePattern = regexp.MustCompile(`UNIQUE constraint failed: ([a-z_]+)\.([a-z_]+)`)

// Translate maps raw store failures into domain errors so callers never see
// driver-specific constraint noise. Unique violations carry the derived
// "A <record> already exists with that <field>" message.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Wrap(domain.CodeNotFound, op, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.Wrap(domain.CodeInternal, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505": // unique_violation
			if table, column, ok := parsePgUnique(pgErr); ok {
				return domain.ConflictError(op, UniqueViolationMessage(table, column), err)
			}
			return domain.Wrap(domain.CodeConflict, op, err)
		case "23503": // foreign_key_violation
			return domain.Wrap(domain.CodeValidation, op, err)
		}
		return domain.Wrap(domain.CodeInternal, op, err)
	}

	if m := sqliteUniquePattern.FindStringSubmatch(err.Error()); m != nil {
		return domain.ConflictError(op, UniqueViolationMessage(m[1], m[2]), err)
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return domain.Wrap(domain.CodeValidation, op, err)
	}

	return domain.Wrap(domain.CodeInternal, op, err)
}

// parsePgUnique recovers (table, column) from a postgres unique violation.
// GORM names unique indexes idx_<table>_<column> and unique constraints
// uni_<table>_<column>.
func parsePgUnique(pgErr *pgconn.PgError) (string, string, bool) {
	table := strings.TrimSpace(pgErr.TableName)
	name := strings.TrimSpace(pgErr.ConstraintName)
	if table == "" || name == "" {
		return "", "", false
	}
	for _, prefix := range []string{"idx_", "uni_"} {
		name = strings.TrimPrefix(name, prefix)
	}
	column := name
	if strings.HasPrefix(name, table+"_") {
		column = strings.TrimPrefix(name, table+"_")
	}
	return table, column, true
}

// UniqueViolationMessage derives the client-facing conflict message from the
// violated table and column, e.g. ("menu_categories", "name") becomes
// "A menu category already exists with that name".
func UniqueViolationMessage(table, column string) string {
	singular := table
	switch {
	case strings.HasSuffix(table, "ies"):
		singular = table[:len(table)-3] + "y"
	case strings.HasSuffix(table, "s"):
		singular = table[:len(table)-1]
	}
	record := strings.ReplaceAll(singular, "_", " ")
	return fmt.Sprintf("A %s already exists with that %s", record, column)
}
