package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by deletes and lookups that matched no row.
	ErrNotFound = gorm.ErrRecordNotFound

	ErrAthleteExists        = errors.New("athlete already exists")
	ErrDuplicateSession     = errors.New("training session already exists for this athlete, date and sport")
	ErrAthleteNotRegistered = errors.New("athlete is not registered")

	// ErrCreateFailed covers every insert failure that is not a key conflict.
	ErrCreateFailed = errors.New("could not create record")
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintPrimaryKey
	constraintForeignKey
)

// classifyConstraint reports which constraint, if any, rejected a write.
// The sqlite3 extended result code names the constraint directly; GORM's
// translated errors are accepted for dialectors that translate first.
func classifyConstraint(err error) constraintKind {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return constraintPrimaryKey
		case sqlite3.ErrConstraintForeignKey:
			return constraintForeignKey
		}
		return constraintNone
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintPrimaryKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey
	}
	return constraintNone
}
