package models

// MaxNameLength bounds every VARCHAR(50) column (athlete names and sports).
const MaxNameLength = 50

// Athlete represents a person whose training is tracked, using GORM.
// It corresponds to the 'esportista' table. FullName is the natural primary key.
type Athlete struct {
	FullName string   `gorm:"primaryKey;size:50;not null" json:"full_name" validate:"notblank,max=50"`
	Age      int      `gorm:"not null" json:"age" validate:"gte=0"`
	Height   *float64 `json:"height" validate:"omitempty,gte=0"`
	Weight   *float64 `json:"weight" validate:"omitempty,gte=0"`

	// Relationships
	// deleting an athlete removes all of its sessions in the same statement
	TrainingSessions []TrainingSession `gorm:"foreignKey:AthleteFullName;references:FullName;constraint:OnDelete:CASCADE" json:"training_sessions,omitempty" validate:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Athlete) TableName() string {
	return "esportista"
}

// Validate checks the fields the schema cannot enforce on its own.
func (a *Athlete) Validate() error {
	return validateStruct(a)
}
