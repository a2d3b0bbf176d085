package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/camden-git/trainingbackend/database"
	"github.com/camden-git/trainingbackend/models"
	"github.com/camden-git/trainingbackend/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	handler  http.Handler
	db       *gorm.DB
	registry *prometheus.Registry
}

// newTestEnv builds the full router over a real SQLite file.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "database", "test.sqlite3")
	db, err := database.InitGormDB(dbPath, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseGormDB(db) })

	sqlDB, err := db.DB()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	h, err := NewRouter(RouterDeps{
		Athletes:       repository.NewAthleteRepository(db),
		Sessions:       repository.NewTrainingSessionRepository(db),
		DB:             sqlDB,
		Registry:       reg,
		AllowedOrigins: []string{"*"},
	})
	require.NoError(t, err)

	return &testEnv{handler: h, db: db, registry: reg}
}

// newStubRouter builds the router over in-memory fakes.
func newStubRouter(t *testing.T, athletes repository.AthleteRepositoryInterface, sessions repository.TrainingSessionRepositoryInterface, db Pinger) http.Handler {
	t.Helper()
	if athletes == nil {
		athletes = &stubAthleteRepo{}
	}
	if sessions == nil {
		sessions = &stubSessionRepo{}
	}
	if db == nil {
		db = stubPinger{}
	}
	h, err := NewRouter(RouterDeps{
		Athletes: athletes,
		Sessions: sessions,
		DB:       db,
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return h
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), "body: %s", rec.Body.String())
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) APIErrorDetail {
	t.Helper()
	var resp APIErrorResponse
	decodeResponse(t, rec, &resp)
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0]
}

type stubAthleteRepo struct {
	athletes  []models.Athlete
	createErr error
	listErr   error
	getErr    error
	deleteErr error
	deleted   int64
}

func (s *stubAthleteRepo) Create(a *models.Athlete) error { return s.createErr }

func (s *stubAthleteRepo) ListAll() ([]models.Athlete, error) {
	return s.athletes, s.listErr
}

func (s *stubAthleteRepo) GetWithSessions(fullName string) (*models.Athlete, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &models.Athlete{FullName: fullName}, nil
}

func (s *stubAthleteRepo) Delete(fullName string) (int64, error) {
	return s.deleted, s.deleteErr
}

type stubSessionRepo struct {
	sessions  []models.TrainingSession
	createErr error
	listErr   error
	deleteErr error
	lastKey   models.SessionKey
}

func (s *stubSessionRepo) Create(ts *models.TrainingSession) error { return s.createErr }

func (s *stubSessionRepo) ListAll() ([]models.TrainingSession, error) {
	return s.sessions, s.listErr
}

func (s *stubSessionRepo) Delete(key models.SessionKey) error {
	s.lastKey = key
	return s.deleteErr
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

var errStoreDown = errors.New("database is locked")
