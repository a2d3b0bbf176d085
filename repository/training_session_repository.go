package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/camden-git/trainingbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrainingSessionRepository handles database operations for TrainingSession entities
type TrainingSessionRepository struct {
	DB *gorm.DB
}

// NewTrainingSessionRepository creates a new instance of TrainingSessionRepository
func NewTrainingSessionRepository(db *gorm.DB) *TrainingSessionRepository {
	return &TrainingSessionRepository{DB: db}
}

// Create inserts a new session. The two key conflicts are reported apart:
// ErrDuplicateSession for the composite primary key, ErrAthleteNotRegistered
// for the foreign key. Anything else is ErrCreateFailed.
func (r *TrainingSessionRepository) Create(session *models.TrainingSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: session %s: %w", ErrCreateFailed, session.Key(), err)
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(session).Error
	})
	if err == nil {
		return nil
	}

	switch classifyConstraint(err) {
	case constraintPrimaryKey:
		return fmt.Errorf("%w: %s", ErrDuplicateSession, session.Key())
	case constraintForeignKey:
		return fmt.Errorf("%w: %s", ErrAthleteNotRegistered, session.AthleteFullName)
	default:
		return fmt.Errorf("%w: session %s: %w", ErrCreateFailed, session.Key(), err)
	}
}

// ListAll retrieves all training sessions in storage order
func (r *TrainingSessionRepository) ListAll() ([]models.TrainingSession, error) {
	sessions := []models.TrainingSession{}
	if err := r.DB.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list training sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes the one session matching all three key columns
func (r *TrainingSessionRepository) Delete(key models.SessionKey) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	where, args, err := sessionKeyPredicate(key)
	if err != nil {
		return fmt.Errorf("failed to build SQL for session %s: %w", key, err)
	}

	var rowsAffected int64
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(where, args...).Delete(&models.TrainingSession{})
		rowsAffected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", key, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func sessionKeyPredicate(key models.SessionKey) (string, []interface{}, error) {
	return sq.Eq{
		"athlete_full_name": key.AthleteFullName,
		"session_date":      key.SessionDate,
		"sport":             key.Sport,
	}.ToSql()
}
