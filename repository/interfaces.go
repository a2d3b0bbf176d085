package repository

import (
	"github.com/camden-git/trainingbackend/models"
)

// AthleteRepositoryInterface defines the methods for athlete data operations
type AthleteRepositoryInterface interface {
	Create(athlete *models.Athlete) error
	ListAll() ([]models.Athlete, error)
	GetWithSessions(fullName string) (*models.Athlete, error)
	Delete(fullName string) (int64, error)
}

// TrainingSessionRepositoryInterface defines the methods for training session data operations
type TrainingSessionRepositoryInterface interface {
	Create(session *models.TrainingSession) error
	ListAll() ([]models.TrainingSession, error)
	Delete(key models.SessionKey) error
}
