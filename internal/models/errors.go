package models

import "errors"

// Constructor validation errors
var (
	ErrEmptyName     = errors.New("player name must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
	ErrInvalidRole   = errors.New("unknown player role")
)
