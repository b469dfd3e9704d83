package models

import (
	"errors"
	"time"
)

// Request schemas for the HTTP API. Each carries an explicit Validate so
// malformed input is rejected before any store access.

type RegisterRequest struct {
	FullName  string `json:"fullname"`
	EmailID   string `json:"email"`
	Password  string `json:"password"`
	Birthdate string `json:"birthdate"`
	Level     string `json:"level"`
}

func (r *RegisterRequest) Validate() error {
	if r.FullName == "" || r.EmailID == "" || r.Password == "" || r.Birthdate == "" {
		return errors.New("fullname, email, password and birthdate are required")
	}
	if !ValidLevel(r.Level) {
		return ErrInvalidLevel
	}
	return nil
}

type LoginRequest struct {
	EmailID  string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.EmailID == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// UpdateProfileRequest carries the mutable profile fields. Password is
// optional; when present it is re-hashed before persistence.
type UpdateProfileRequest struct {
	FullName  string `json:"fullname"`
	EmailID   string `json:"email"`
	Birthdate string `json:"birthdate"`
	Password  string `json:"password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.FullName == "" && r.EmailID == "" && r.Birthdate == "" && r.Password == "" {
		return errors.New("no fields to update")
	}
	return nil
}

type CreateMatchRequest struct {
	Location      string `json:"location"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PlayersNeeded int    `json:"playersNeeded"`
	CreatorID     string `json:"creatorId"`
	CreatorName   string `json:"creatorName"`
}

func (r *CreateMatchRequest) Validate() error {
	if r.CreatorID == "" {
		return errors.New("creator ID is required")
	}
	if r.Location == "" || r.Date == "" || r.Time == "" {
		return errors.New("location, date and time are required")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return errors.New("time must be in HH:MM format")
	}
	if r.PlayersNeeded < 0 {
		return errors.New("playersNeeded cannot be negative")
	}
	return nil
}

// ToMatch builds the match record seeded with the creator as the first
// participant. A zero capacity falls back to the default.
func (r *CreateMatchRequest) ToMatch(matchID string) Match {
	needed := r.PlayersNeeded
	if needed == 0 {
		needed = DefaultPlayersNeeded
	}
	return Match{
		MatchID:         matchID,
		Location:        r.Location,
		Date:            r.Date,
		Time:            r.Time,
		PlayersNeeded:   needed,
		InitialCapacity: needed,
		CreatorID:       r.CreatorID,
		CreatorName:     r.CreatorName,
		Participants:    []string{r.CreatorID},
	}
}

// ParticipationRequest identifies the user joining or quitting a match.
type ParticipationRequest struct {
	UserID string `json:"userId"`
}

func (r *ParticipationRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("userId is required")
	}
	return nil
}
