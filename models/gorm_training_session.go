package models

import "fmt"

// TrainingSession represents one exercise event of an athlete, using GORM.
// It corresponds to the 'treino' table. The primary key is the triple
// (athlete_full_name, session_date, sport).
type TrainingSession struct {
	AthleteFullName string     `gorm:"primaryKey;size:50;not null" json:"athlete_full_name" validate:"notblank,max=50"`
	SessionDate     Date       `gorm:"primaryKey;type:date;not null" json:"session_date" validate:"required"`
	Sport           string     `gorm:"primaryKey;size:50;not null" json:"sport" validate:"notblank,max=50"`
	Duration        *TimeOfDay `gorm:"type:time" json:"duration"`
	Calories        *int       `json:"calories" validate:"omitempty,gte=0"`
	HeartRateBPM    *int       `gorm:"column:heart_rate_bpm" json:"heart_rate_bpm" validate:"omitempty,gte=0"`

	Athlete *Athlete `gorm:"foreignKey:AthleteFullName;references:FullName;constraint:OnDelete:CASCADE" json:"-" validate:"-"` // Belongs to Athlete
}

// TableName explicitly sets the table name for GORM.
func (TrainingSession) TableName() string {
	return "treino"
}

// Key returns the composite primary key of the session.
func (s *TrainingSession) Key() SessionKey {
	return SessionKey{
		AthleteFullName: s.AthleteFullName,
		SessionDate:     s.SessionDate,
		Sport:           s.Sport,
	}
}

// Validate checks the key fields and the optional measurements.
func (s *TrainingSession) Validate() error {
	return validateStruct(s)
}

// SessionKey identifies exactly one training session.
type SessionKey struct {
	AthleteFullName string `json:"athlete_full_name" validate:"notblank,max=50"`
	SessionDate     Date   `json:"session_date" validate:"required"`
	Sport           string `json:"sport" validate:"notblank,max=50"`
}

func (k SessionKey) Validate() error {
	return validateStruct(k)
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.AthleteFullName, k.SessionDate, k.Sport)
}
