package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// mapError translates driver constraint errors into messages a user can
// act on, falling back to the raw error.
func mapError(err error) error {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return err
	}

	switch serr.ExtendedCode {
	case sqlite3.ErrConstraintNotNull:
		if col := constraintColumn(serr.Error()); col != "" {
			return fmt.Errorf("required field %q is missing: %w", col, err)
		}
		return fmt.Errorf("a required field is missing: %w", err)
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		if col := constraintColumn(serr.Error()); col != "" {
			return fmt.Errorf("duplicate value for %q: %w", col, err)
		}
		return fmt.Errorf("duplicate value: %w", err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("referenced record does not exist: %w", err)
	}
	return err
}

// constraintColumn extracts the column name from a constraint message
// like "NOT NULL constraint failed: journal_entries.description".
func constraintColumn(msg string) string {
	i := strings.LastIndex(msg, ": ")
	if i < 0 {
		return ""
	}
	qualified := msg[i+2:]
	j := strings.LastIndex(qualified, ".")
	if j < 0 || j == len(qualified)-1 {
		return ""
	}
	return qualified[j+1:]
}
