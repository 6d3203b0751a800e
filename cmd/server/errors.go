package main

import "fmt"

// Error codes for rejected intents.
const (
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeGameCompleted     = "GAME_COMPLETED"
	CodeInvalidPosition   = "INVALID_POSITION"
	CodeInvalidDirection  = "INVALID_DIRECTION"
	CodeInvalidDifficulty = "INVALID_DIFFICULTY"
	CodeInvalidSize       = "INVALID_SIZE"
)

// GameError represents a game logic error
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func newGameError(code, format string, v ...interface{}) *GameError {
	return &GameError{Code: code, Message: fmt.Sprintf(format, v...)}
}
