package services

// Service errors
var (
	ErrEmptyPlayerName     = &ServiceError{Message: "player name must not be empty"}
	ErrInvalidRating       = &ServiceError{Message: "rating must be between 1 and 10"}
	ErrInvalidRole         = &ServiceError{Message: "unknown player role"}
	ErrDuplicateName       = &ServiceError{Message: "a player with that name is already registered"}
	ErrPlayerNotFound      = &ServiceError{Message: "player not found"}
	ErrGameNotFound        = &ServiceError{Message: "game not found"}
	ErrInvalidGameDate     = &ServiceError{Message: "game date is required"}
	ErrInvalidMaxPlayers   = &ServiceError{Message: "max players must be at least 2"}
	ErrInvalidGameType     = &ServiceError{Message: "unknown game type"}
	ErrGameFull            = &ServiceError{Message: "game roster is full"}
	ErrAlreadyVoted        = &ServiceError{Message: "player is already on the roster"}
	ErrNotVoted            = &ServiceError{Message: "player is not on the roster"}
	ErrInvalidTeamCount    = &ServiceError{Message: "team count must be at least 2"}
	ErrInsufficientPlayers = &ServiceError{Message: "not enough players for the requested number of teams"}
	ErrPlayerNotOnTeam     = &ServiceError{Message: "player is not on the source team"}
	ErrInvalidTeamIndex    = &ServiceError{Message: "team index out of range"}
	ErrInvalidCaptain      = &ServiceError{Message: "captain must be a member of the team"}
	ErrTeamNameRequired    = &ServiceError{Message: "every team needs a name"}
	ErrDuplicateTeamName   = &ServiceError{Message: "team names must be unique"}
	ErrTeamShape           = &ServiceError{Message: "one name and one captain required per team"}
	ErrTooFewTeams         = &ServiceError{Message: "a match needs at least two teams"}
	ErrUnknownWinner       = &ServiceError{Message: "winner must match exactly one of the recorded teams"}
	ErrMatchNotFound       = &ServiceError{Message: "match not found"}
	ErrBaseURLNotSet       = &ServiceError{Message: "base_url not configured"}
	ErrInvalidSnapshot     = &ServiceError{Message: "invalid snapshot document"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
