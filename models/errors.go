package models

import "errors"

// Domain errors surfaced by the services. Controllers map these to HTTP
// statuses; anything else collapses to a generic 500.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("an account with this email already exists")
	ErrInvalidLevel  = errors.New("invalid level, choose between Good, Medium, or Mediocre")
	ErrBadCredential = errors.New("invalid email or password")

	ErrMatchNotFound = errors.New("match not found")
	ErrCreatorJoin   = errors.New("you cannot join a match you created")
	ErrAlreadyJoined = errors.New("you have already joined this match")
	ErrMatchFull     = errors.New("match is full, no more players can join")

	ErrNoPhoto = errors.New("no profile photo to delete")
)
