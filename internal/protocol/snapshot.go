package protocol

import (
	"github.com/gridforge/puzzle-minigame-engine/internal/maze"
	"github.com/gridforge/puzzle-minigame-engine/internal/pathgrid"
)

const ProtocolVersion = "1"

// GameSnapshot is the full serialized view of one session. Exactly one of
// Grid or Maze is set, matching Kind. The embedded value objects are plain
// data and pass through the persistence layer as an opaque blob.
type GameSnapshot struct {
	SessionID       string               `json:"sessionId"`
	Kind            string               `json:"kind"`
	Grid            *pathgrid.GridConfig `json:"grid,omitempty"`
	Maze            *maze.Grid           `json:"maze,omitempty"`
	TokenPosition   *maze.Position       `json:"tokenPosition,omitempty"`
	KeyHeld         bool                 `json:"keyHeld"`
	Moves           int                  `json:"moves"`
	Restarts        int                  `json:"restarts"`
	TimeLimit       int                  `json:"timeLimit"`
	Completed       bool                 `json:"completed"`
	ProtocolVersion string               `json:"protocolVersion"`
}
