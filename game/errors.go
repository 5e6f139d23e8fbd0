package game

import "errors"

var (
	ErrInvalidConfig          = errors.New("invalid-config")
	ErrRoomNotFound           = errors.New("room-not-found")
	ErrRoomFull               = errors.New("room-full")
	ErrDuplicateUsername      = errors.New("duplicate-username")
	ErrNotHost                = errors.New("not-host")
	ErrInsufficientPlayers    = errors.New("insufficient-players")
	ErrInvalidTarget          = errors.New("invalid-target")
	ErrStaleQuestion          = errors.New("stale-question")
	ErrIllegalStateTransition = errors.New("illegal-state-transition")
)

var ErrSendBufferFull = errors.New("send-buffer-full")

// errorMessages maps each error kind to the human readable text sent to the
// originating connection.
var errorMessages = map[string]string{
	ErrInvalidConfig.Error():          "The room configuration is invalid",
	ErrRoomNotFound.Error():           "No room exists with that id",
	ErrRoomFull.Error():               "The room is already full",
	ErrDuplicateUsername.Error():      "That username is already taken in this room",
	ErrNotHost.Error():                "Only the host can do that",
	ErrInsufficientPlayers.Error():    "At least two players are needed to start",
	ErrInvalidTarget.Error():          "That player cannot be targeted",
	ErrStaleQuestion.Error():          "That question is no longer active",
	ErrIllegalStateTransition.Error(): "That action is not allowed right now",
}

func errorMessageFor(err error) string {
	if msg, ok := errorMessages[err.Error()]; ok {
		return msg
	}
	return "Something went wrong"
}
