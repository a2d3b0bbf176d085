package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/camden-git/trainingbackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthleteCreateAndList(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, athletes, "empty list must be an empty slice")
	assert.Empty(t, athletes)

	in := &models.Athlete{FullName: "João Pedro Xavier Freitas", Age: 26, Height: floatPtr(1.80), Weight: floatPtr(75.0)}
	require.NoError(t, repo.Create(in))

	athletes, err = repo.ListAll()
	require.NoError(t, err)
	require.Len(t, athletes, 1)

	got := athletes[0]
	assert.Equal(t, "João Pedro Xavier Freitas", got.FullName)
	assert.Equal(t, 26, got.Age)
	require.NotNil(t, got.Height)
	assert.InDelta(t, 1.80, *got.Height, 1e-9)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 75.0, *got.Weight, 1e-9)
	assert.Empty(t, got.TrainingSessions)
}

func TestAthleteCreateOptionalFieldsStayNull(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Nil(t, athletes[0].Height)
	assert.Nil(t, athletes[0].Weight)
}

func TestAthleteCreateDuplicate(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))

	err := repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 41})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAthleteExists)
	assert.NotErrorIs(t, err, ErrCreateFailed)

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, 30, athletes[0].Age, "the first record must be untouched")
}

func TestAthleteCreateInvalidIsGenericFailure(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))

	err := repo.Create(&models.Athlete{FullName: strings.Repeat("a", models.MaxNameLength+1), Age: 30})
	assert.ErrorIs(t, err, ErrCreateFailed)

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, athletes)
}

func TestAthleteCreateStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAthleteRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 30})
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.NotErrorIs(t, err, ErrAthleteExists)
}

func TestAthleteDelete(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))

	require.NoError(t, repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))
	require.NoError(t, repo.Create(&models.Athlete{FullName: "Bruno Costa", Age: 22}))

	cascaded, err := repo.Delete("Ana Silva")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cascaded)

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, "Bruno Costa", athletes[0].FullName)
}

func TestAthleteDeleteNotFound(t *testing.T) {
	repo := NewAthleteRepository(setupTestDB(t))
	require.NoError(t, repo.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))

	_, err := repo.Delete("Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	athletes, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, athletes, 1, "a miss must leave the store unchanged")
}

func TestAthleteDeleteCascadesSessions(t *testing.T) {
	db := setupTestDB(t)
	athletes := NewAthleteRepository(db)
	sessions := NewTrainingSessionRepository(db)

	require.NoError(t, athletes.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))
	require.NoError(t, athletes.Create(&models.Athlete{FullName: "Bruno Costa", Age: 22}))

	for i, sport := range []string{"Corrida", "Natação", "Ciclismo"} {
		require.NoError(t, sessions.Create(&models.TrainingSession{
			AthleteFullName: "Ana Silva",
			SessionDate:     day(2024, time.April, 14+i),
			Sport:           sport,
		}))
	}
	require.NoError(t, sessions.Create(&models.TrainingSession{
		AthleteFullName: "Bruno Costa",
		SessionDate:     day(2024, time.April, 14),
		Sport:           "Corrida",
	}))

	cascaded, err := athletes.Delete("Ana Silva")
	require.NoError(t, err)
	assert.Equal(t, int64(3), cascaded)

	remaining, err := sessions.ListAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Bruno Costa", remaining[0].AthleteFullName)
}

func TestAthleteGetWithSessions(t *testing.T) {
	db := setupTestDB(t)
	athletes := NewAthleteRepository(db)
	sessions := NewTrainingSessionRepository(db)

	require.NoError(t, athletes.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))

	got, err := athletes.GetWithSessions("Ana Silva")
	require.NoError(t, err)
	assert.NotNil(t, got.TrainingSessions)
	assert.Empty(t, got.TrainingSessions)

	require.NoError(t, sessions.Create(&models.TrainingSession{
		AthleteFullName: "Ana Silva",
		SessionDate:     day(2024, time.April, 14),
		Sport:           "Corrida",
		Calories:        intPtr(300),
	}))

	got, err = athletes.GetWithSessions("Ana Silva")
	require.NoError(t, err)
	require.Len(t, got.TrainingSessions, 1)
	assert.Equal(t, "Corrida", got.TrainingSessions[0].Sport)
	assert.Equal(t, day(2024, time.April, 14), got.TrainingSessions[0].SessionDate)

	_, err = athletes.GetWithSessions("Nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

// Ana Silva / Corrida / 2024-04-14: deleting the athlete empties both tables.
func TestAthleteLifecycleExample(t *testing.T) {
	db := setupTestDB(t)
	athletes := NewAthleteRepository(db)
	sessions := NewTrainingSessionRepository(db)

	require.NoError(t, athletes.Create(&models.Athlete{FullName: "Ana Silva", Age: 30}))
	require.NoError(t, sessions.Create(&models.TrainingSession{
		AthleteFullName: "Ana Silva",
		SessionDate:     day(2024, time.April, 14),
		Sport:           "Corrida",
		Calories:        intPtr(300),
	}))

	_, err := athletes.Delete("Ana Silva")
	require.NoError(t, err)

	remainingSessions, err := sessions.ListAll()
	require.NoError(t, err)
	assert.Empty(t, remainingSessions)

	remainingAthletes, err := athletes.ListAll()
	require.NoError(t, err)
	assert.Empty(t, remainingAthletes)
}
