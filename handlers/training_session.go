package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/camden-git/trainingbackend/models"
	"github.com/camden-git/trainingbackend/repository"
)

type TrainingSessionHandler struct {
	Repo repository.TrainingSessionRepositoryInterface
}

func NewTrainingSessionHandler(repo repository.TrainingSessionRepositoryInterface) *TrainingSessionHandler {
	return &TrainingSessionHandler{Repo: repo}
}

type SessionCreatePayload struct {
	AthleteFullName string            `json:"athlete_full_name"`
	SessionDate     *models.Date      `json:"session_date"`
	Sport           string            `json:"sport"`
	Duration        *models.TimeOfDay `json:"duration"`
	Calories        *int              `json:"calories"`
	HeartRateBPM    *int              `json:"heart_rate_bpm"`
}

type SessionListResponse struct {
	Sessions []models.TrainingSession `json:"sessions"`
}

type SessionDeletedResponse struct {
	Message         string      `json:"message"`
	AthleteFullName string      `json:"athlete_full_name"`
	SessionDate     models.Date `json:"session_date"`
	Sport           string      `json:"sport"`
}

// ListSessions godoc
// @Summary List all training sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} SessionListResponse
// @Router /api/sessions [get]
func (sh *TrainingSessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := sh.Repo.ListAll()
	if err != nil {
		log.Printf("Error listing training sessions: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to retrieve training sessions")
		return
	}
	if sessions == nil {
		sessions = []models.TrainingSession{}
	}
	writeJSON(w, http.StatusOK, SessionListResponse{Sessions: sessions})
}

// CreateSession godoc
// @Summary Register a training session for an existing athlete
// @Tags sessions
// @Accept json
// @Produce json
// @Success 201 {object} models.TrainingSession
// @Failure 400 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Router /api/sessions [post]
func (sh *TrainingSessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreatePayload
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	var missing []string
	if strings.TrimSpace(req.AthleteFullName) == "" {
		missing = append(missing, "athlete_full_name")
	}
	if req.SessionDate == nil || req.SessionDate.IsZero() {
		missing = append(missing, "session_date")
	}
	if strings.TrimSpace(req.Sport) == "" {
		missing = append(missing, "sport")
	}
	if len(missing) > 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing required field(s): "+strings.Join(missing, ", "))
		return
	}

	session := &models.TrainingSession{
		AthleteFullName: req.AthleteFullName,
		SessionDate:     *req.SessionDate,
		Sport:           req.Sport,
		Duration:        req.Duration,
		Calories:        req.Calories,
		HeartRateBPM:    req.HeartRateBPM,
	}
	if err := session.Validate(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	err := sh.Repo.Create(session)
	if err != nil {
		key := session.Key()
		switch {
		case errors.Is(err, repository.ErrDuplicateSession):
			log.Printf("Training session %s already exists", key)
			WriteAPIError(w, http.StatusConflict, CodeDuplicateSession, "A session of this sport is already registered for the athlete on that date")
		case errors.Is(err, repository.ErrAthleteNotRegistered):
			log.Printf("Training session %s rejected: athlete not registered", key)
			WriteAPIError(w, http.StatusConflict, CodeAthleteNotRegistered, fmt.Sprintf("Athlete %s was not registered beforehand", session.AthleteFullName))
		default:
			log.Printf("Error creating training session %s: %v", key, err)
			WriteAPIError(w, http.StatusBadRequest, CodeCreateFailed, fmt.Sprintf("Could not register the session of %s", session.AthleteFullName))
		}
		return
	}

	log.Printf("Registered training session %s", session.Key())
	writeJSON(w, http.StatusCreated, session)
}

// DeleteSession godoc
// @Summary Delete one training session by its composite key
// @Tags sessions
// @Produce json
// @Param athlete query string true "Athlete full name"
// @Param date query string true "Session date, DD/MM/YYYY or YYYY-MM-DD"
// @Param sport query string true "Sport"
// @Success 200 {object} SessionDeletedResponse
// @Failure 404 {object} APIErrorResponse
// @Router /api/sessions [delete]
func (sh *TrainingSessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	athlete := q.Get("athlete")
	rawDate := q.Get("date")
	sport := q.Get("sport")

	if strings.TrimSpace(athlete) == "" || strings.TrimSpace(rawDate) == "" || strings.TrimSpace(sport) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Query parameters athlete, date and sport are required")
		return
	}

	date, err := models.ParseDate(rawDate)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	key := models.SessionKey{AthleteFullName: athlete, SessionDate: date, Sport: sport}
	if err := sh.Repo.Delete(key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("Delete training session %s: not registered", key)
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Session is not registered")
		} else {
			log.Printf("Error deleting training session %s: %v", key, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to delete training session")
		}
		return
	}

	log.Printf("Deleted training session %s", key)
	writeJSON(w, http.StatusOK, SessionDeletedResponse{
		Message:         "Session deleted",
		AthleteFullName: key.AthleteFullName,
		SessionDate:     key.SessionDate,
		Sport:           key.Sport,
	})
}
