package repository

import "errors"

// ErrNotFound is returned when a requested record is not found in the repository.
// This abstracts away the underlying storage implementation from the service layer.
var ErrNotFound = errors.New("record not found")

// Roster errors surfaced by the transactional vote methods. They are sentinels
// so services can map them to their own error vocabulary without string matching.
var (
	ErrGameFull     = errors.New("game roster is full")
	ErrAlreadyVoted = errors.New("player already on the roster")
	ErrNotVoted     = errors.New("player not on the roster")
)
