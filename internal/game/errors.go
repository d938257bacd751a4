package game

import "errors"

var (
	// Lobby errors
	ErrRoomFull           = errors.New("room is full")
	ErrGameAlreadyStarted = errors.New("game has already started")
	ErrNotEnoughPlayers   = errors.New("need at least 4 players to start")
	ErrDuplicateName      = errors.New("a player with that name already exists in the room")

	// Action errors. A rejected action leaves room state untouched.
	ErrPhaseViolation      = errors.New("action is not valid in the current phase")
	ErrUnauthorizedActor   = errors.New("player is not allowed to perform this action")
	ErrInvalidTarget       = errors.New("referenced player, location, or card does not exist")
	ErrDuplicateSubmission = errors.New("cards were already submitted for this mission")
	ErrCapacityExceeded    = errors.New("hand size limit exceeded")
	ErrGameEnded           = errors.New("game has ended")
)
