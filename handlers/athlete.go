package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/camden-git/trainingbackend/models"
	"github.com/camden-git/trainingbackend/repository"
	"github.com/go-chi/chi/v5"
)

type AthleteHandler struct {
	Repo repository.AthleteRepositoryInterface
}

func NewAthleteHandler(repo repository.AthleteRepositoryInterface) *AthleteHandler {
	return &AthleteHandler{Repo: repo}
}

type AthleteCreatePayload struct {
	FullName string   `json:"full_name"`
	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
}

type AthleteListResponse struct {
	Athletes []models.Athlete `json:"athletes"`
}

type AthleteSessionsResponse struct {
	Athlete  models.Athlete           `json:"athlete"`
	Sessions []models.TrainingSession `json:"sessions"`
}

type AthleteDeletedResponse struct {
	Message  string `json:"message"`
	FullName string `json:"full_name"`
}

// ListAthletes godoc
// @Summary List all athletes
// @Tags athletes
// @Produce json
// @Success 200 {object} AthleteListResponse
// @Router /api/athletes [get]
func (ah *AthleteHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	athletes, err := ah.Repo.ListAll()
	if err != nil {
		log.Printf("Error listing athletes: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to retrieve athletes")
		return
	}
	if athletes == nil {
		athletes = []models.Athlete{}
	}
	writeJSON(w, http.StatusOK, AthleteListResponse{Athletes: athletes})
}

// CreateAthlete godoc
// @Summary Register a new athlete
// @Tags athletes
// @Accept json
// @Produce json
// @Success 201 {object} models.Athlete
// @Failure 400 {object} APIErrorResponse
// @Failure 409 {object} APIErrorResponse
// @Router /api/athletes [post]
func (ah *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req AthleteCreatePayload
	if err := decodeJSON(w, r, &req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.FullName) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing required field: full_name")
		return
	}
	if req.Age == nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing required field: age")
		return
	}

	athlete := &models.Athlete{
		FullName: req.FullName,
		Age:      *req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
	}
	if err := athlete.Validate(); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	err := ah.Repo.Create(athlete)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAthleteExists):
			log.Printf("Athlete '%s' already exists: %v", athlete.FullName, err)
			WriteAPIError(w, http.StatusConflict, CodeAthleteExists, fmt.Sprintf("Athlete %s already exists", athlete.FullName))
		default:
			log.Printf("Error creating athlete '%s': %v", athlete.FullName, err)
			WriteAPIError(w, http.StatusBadRequest, CodeCreateFailed, fmt.Sprintf("Could not register athlete %s", athlete.FullName))
		}
		return
	}

	log.Printf("Registered athlete '%s'", athlete.FullName)
	writeJSON(w, http.StatusCreated, athlete)
}

// GetAthleteSessions godoc
// @Summary Get an athlete with all of their training sessions
// @Tags athletes
// @Produce json
// @Success 200 {object} AthleteSessionsResponse
// @Failure 404 {object} APIErrorResponse
// @Router /api/athletes/{full_name}/sessions [get]
func (ah *AthleteHandler) GetAthleteSessions(w http.ResponseWriter, r *http.Request) {
	fullName, ok := fullNameParam(w, r)
	if !ok {
		return
	}

	athlete, err := ah.Repo.GetWithSessions(fullName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Athlete is not registered")
		} else {
			log.Printf("Error getting athlete '%s': %v", fullName, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to retrieve athlete")
		}
		return
	}

	sessions := athlete.TrainingSessions
	if sessions == nil {
		sessions = []models.TrainingSession{}
	}
	athlete.TrainingSessions = nil
	writeJSON(w, http.StatusOK, AthleteSessionsResponse{Athlete: *athlete, Sessions: sessions})
}

// DeleteAthlete godoc
// @Summary Delete an athlete and, by cascade, all of their training sessions
// @Tags athletes
// @Produce json
// @Success 200 {object} AthleteDeletedResponse
// @Failure 404 {object} APIErrorResponse
// @Router /api/athletes/{full_name} [delete]
func (ah *AthleteHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	fullName, ok := fullNameParam(w, r)
	if !ok {
		return
	}

	cascaded, err := ah.Repo.Delete(fullName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("Delete athlete '%s': not registered", fullName)
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Athlete is not registered")
		} else {
			log.Printf("Error deleting athlete '%s': %v", fullName, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to delete athlete")
		}
		return
	}

	log.Printf("Deleted athlete '%s' and %d training session(s)", fullName, cascaded)
	writeJSON(w, http.StatusOK, AthleteDeletedResponse{Message: "Athlete deleted", FullName: fullName})
}

// fullNameParam reads {full_name}. chi matches on the raw path when the
// request carried escapes that differ from the default encoding.
func fullNameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	fullName := chi.URLParam(r, "full_name")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(fullName)
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Invalid athlete name in path")
			return "", false
		}
		fullName = unescaped
	}
	if strings.TrimSpace(fullName) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidRequest, "Missing athlete name")
		return "", false
	}
	return fullName, true
}
