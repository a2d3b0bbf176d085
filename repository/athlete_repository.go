package repository

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/camden-git/trainingbackend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AthleteRepository handles database operations for Athlete entities
type AthleteRepository struct {
	DB *gorm.DB
}

// NewAthleteRepository creates a new instance of AthleteRepository
func NewAthleteRepository(db *gorm.DB) *AthleteRepository {
	return &AthleteRepository{DB: db}
}

// Create inserts a new athlete. A name that is already registered yields
// ErrAthleteExists; every other failure yields ErrCreateFailed.
func (r *AthleteRepository) Create(athlete *models.Athlete) error {
	if err := athlete.Validate(); err != nil {
		return fmt.Errorf("%w: athlete %s: %w", ErrCreateFailed, athlete.FullName, err)
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(athlete).Error
	})
	if err == nil {
		return nil
	}
	if classifyConstraint(err) == constraintPrimaryKey {
		return fmt.Errorf("%w: %s", ErrAthleteExists, athlete.FullName)
	}
	return fmt.Errorf("%w: athlete %s: %w", ErrCreateFailed, athlete.FullName, err)
}

// ListAll retrieves all athletes in storage order
func (r *AthleteRepository) ListAll() ([]models.Athlete, error) {
	athletes := []models.Athlete{}
	if err := r.DB.Find(&athletes).Error; err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	return athletes, nil
}

// GetWithSessions retrieves an athlete by name, preloading TrainingSessions
func (r *AthleteRepository) GetWithSessions(fullName string) (*models.Athlete, error) {
	var athlete models.Athlete
	err := r.DB.Preload("TrainingSessions").Take(&athlete, "full_name = ?", fullName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get athlete %s: %w", fullName, err)
	}
	if athlete.TrainingSessions == nil {
		athlete.TrainingSessions = []models.TrainingSession{}
	}
	return &athlete, nil
}

// Delete removes an athlete by name. The foreign key cascade removes the
// athlete's sessions inside the same transaction; their count is returned.
func (r *AthleteRepository) Delete(fullName string) (int64, error) {
	var cascaded int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		where, args, err := sq.Eq{"athlete_full_name": fullName}.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build SQL for session count: %w", err)
		}
		if err := tx.Model(&models.TrainingSession{}).Where(where, args...).Count(&cascaded).Error; err != nil {
			return fmt.Errorf("failed to count sessions of athlete %s: %w", fullName, err)
		}

		result := tx.Where("full_name = ?", fullName).Delete(&models.Athlete{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete athlete %s: %w", fullName, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cascaded, nil
}
