package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"kickabout_server/models"
	"kickabout_server/services"
	"kickabout_server/utils"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UserController handles requests related to accounts
type UserController struct {
	UserService  *services.UserService
	MatchService *services.MatchService
}

// NewUserController creates a new instance of UserController
func NewUserController(userService *services.UserService, matchService *services.MatchService) *UserController {
	return &UserController{UserService: userService, MatchService: matchService}
}

// Register creates a new account.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := c.UserService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Error registering user: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "an error occurred during registration")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Account created successfully!",
		"user":    user,
	})
}

// Login authenticates an account and returns a signed token.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := c.UserService.Authenticate(r.Context(), req.EmailID, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrBadCredential) {
			utils.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("Error logging in: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// ListUsers returns all accounts without password hashes.
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.UserService.ListUsers(r.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

// GetUser returns a single account by ID.
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := c.UserService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateProfile modifies an account's profile fields.
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error updating user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

// DeleteUser removes an account.
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := c.UserService.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error deleting user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// JoinedMatches lists the matches the user participates in.
func (c *UserController) JoinedMatches(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := c.MatchService.ListJoined(r.Context(), userID)
	if err != nil {
		log.Printf("Error fetching joined matches for %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch joined matches")
		return
	}
	if len(matches) == 0 {
		utils.WriteError(w, http.StatusNotFound, "no joined matches found for this user")
		return
	}
	utils.WriteJSON(w, http.StatusOK, matches)
}
