package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"kickabout_server/models"
	"kickabout_server/services"
	"kickabout_server/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// MatchController handles HTTP requests for match operations
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// joinError maps a participation-rule violation to an HTTP status.
func joinError(err error) (int, bool) {
	switch {
	case errors.Is(err, models.ErrMatchNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, models.ErrCreatorJoin),
		errors.Is(err, models.ErrAlreadyJoined),
		errors.Is(err, models.ErrMatchFull):
		return http.StatusBadRequest, true
	}
	return 0, false
}

// CreateMatch creates a new match.
func (c *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := c.MatchService.CreateMatch(r.Context(), req)
	if err != nil {
		log.Printf("Error creating match: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to create match")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, match)
}

// ListAvailable returns matches that still need players.
func (c *MatchController) ListAvailable(w http.ResponseWriter, r *http.Request) {
	matches, err := c.MatchService.ListAvailable(r.Context())
	if err != nil {
		log.Printf("Error fetching available matches: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch matches")
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	utils.WriteJSON(w, http.StatusOK, matches)
}

// GetMatch returns a single match by ID.
func (c *MatchController) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	match, err := c.MatchService.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrMatchNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error fetching match %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch match")
		return
	}
	utils.WriteJSON(w, http.StatusOK, match)
}

// JoinMatch adds the requesting user to a match.
func (c *MatchController) JoinMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var req models.ParticipationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := c.MatchService.JoinMatch(r.Context(), matchID, req.UserID)
	if err != nil {
		if status, ok := joinError(err); ok {
			utils.WriteError(w, status, err.Error())
			return
		}
		log.Printf("Error joining match %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to join match")
		return
	}
	utils.WriteJSON(w, http.StatusOK, match)
}

// QuitMatch removes the requesting user from a match.
func (c *MatchController) QuitMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	var req models.ParticipationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := c.MatchService.QuitMatch(r.Context(), matchID, req.UserID)
	if err != nil {
		if errors.Is(err, models.ErrMatchNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error quitting match %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to quit the match")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Successfully quit the match",
		"match":   match,
	})
}

// MyMatches lists matches created by a user.
func (c *MatchController) MyMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := c.MatchService.ListByCreator(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching matches for creator %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch matches")
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}
	utils.WriteJSON(w, http.StatusOK, matches)
}

// Participants lists a match's participants as full user records.
func (c *MatchController) Participants(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	if _, err := uuid.Parse(matchID); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	participants, err := c.MatchService.Participants(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrMatchNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error fetching participants for %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch participants")
		return
	}
	utils.WriteJSON(w, http.StatusOK, participants)
}

// DeleteMatch removes a match by ID.
func (c *MatchController) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	if err := c.MatchService.DeleteMatch(r.Context(), matchID); err != nil {
		if errors.Is(err, models.ErrMatchNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error deleting match %s: %v", matchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete match")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Match deleted successfully"})
}
