package protocol

import (
	"github.com/gridforge/puzzle-minigame-engine/internal/maze"
	"github.com/gridforge/puzzle-minigame-engine/internal/pathgrid"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type PathGameStarted struct {
	SessionID string              `json:"sessionId"`
	Grid      pathgrid.GridConfig `json:"grid"`
	TimeLimit int                 `json:"timeLimit"`
}

type TileChanged struct {
	SessionID string            `json:"sessionId"`
	Action    string            `json:"action"`
	Tile      pathgrid.GridTile `json:"tile"`
	Moves     int               `json:"moves"`
}

type PathValidated struct {
	SessionID string              `json:"sessionId"`
	IsValid   bool                `json:"isValid"`
	Path      []pathgrid.Position `json:"path"`
	Message   string              `json:"message"`
}

type PathGameCompleted struct {
	SessionID      string                  `json:"sessionId"`
	Score          pathgrid.ScoreBreakdown `json:"score"`
	TotalMoves     int                     `json:"totalMoves"`
	ElapsedSeconds int                     `json:"elapsedSeconds"`
}

type MazeGameStarted struct {
	SessionID string    `json:"sessionId"`
	Maze      maze.Grid `json:"maze"`
	TimeLimit int       `json:"timeLimit"`
	MoveLimit int       `json:"moveLimit"`
}

type TokenMoved struct {
	SessionID string        `json:"sessionId"`
	Position  maze.Position `json:"position"`
	KeyHeld   bool          `json:"keyHeld"`
	Moves     int           `json:"moves"`
}

type TokenReset struct {
	SessionID string        `json:"sessionId"`
	Position  maze.Position `json:"position"`
	KeyHeld   bool          `json:"keyHeld"`
	Moves     int           `json:"moves"`
	Restarts  int           `json:"restarts"`
}

type KeyCollected struct {
	SessionID string        `json:"sessionId"`
	Position  maze.Position `json:"position"`
	Moves     int           `json:"moves"`
}

type MazeGameCompleted struct {
	SessionID      string              `json:"sessionId"`
	Score          maze.ScoreBreakdown `json:"score"`
	TotalMoves     int                 `json:"totalMoves"`
	Restarts       int                 `json:"restarts"`
	ElapsedSeconds int                 `json:"elapsedSeconds"`
}

type ErrorOccurred struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
