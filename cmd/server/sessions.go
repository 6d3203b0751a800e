package main

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gridforge/puzzle-minigame-engine/internal/maze"
	"github.com/gridforge/puzzle-minigame-engine/internal/pathgrid"
	"github.com/gridforge/puzzle-minigame-engine/internal/protocol"
	"github.com/gridforge/puzzle-minigame-engine/internal/tiles"
)

const (
	GameKindPathFinder = "path_finder"
	GameKindKeyFinder  = "key_finder"

	minGridSize = 3
	maxGridSize = 15
)

// PathSession is one live path-finder round.
type PathSession struct {
	ID        string
	Grid      *pathgrid.GridConfig
	Moves     int
	TimeLimit int
	StartedAt time.Time
	Completed bool
	Score     *pathgrid.ScoreBreakdown
}

// MazeSession is one live key-finder round. Token, KeyHeld and the counters
// are the caller-side state the core's advisory CanMove leaves to us.
type MazeSession struct {
	ID        string
	Maze      *maze.Grid
	Token     maze.Position
	KeyHeld   bool
	Moves     int
	Restarts  int
	MoveLimit int
	TimeLimit int
	StartedAt time.Time
	Completed bool
	Score     *maze.ScoreBreakdown
}

// PathOutcome reports the result of a validate intent.
type PathOutcome struct {
	Result         pathgrid.ValidationResult `json:"result"`
	Completed      bool                      `json:"completed"`
	Score          *pathgrid.ScoreBreakdown  `json:"score,omitempty"`
	Moves          int                       `json:"moves"`
	ElapsedSeconds int                       `json:"elapsedSeconds"`
}

// Maze move event kinds.
const (
	MazeEventMoved        = "moved"
	MazeEventWallHit      = "wall_hit"
	MazeEventKeyCollected = "key_collected"
	MazeEventCompleted    = "completed"
)

// MazeMoveOutcome reports the result of a move intent after the wall-hit
// policy has been applied.
type MazeMoveOutcome struct {
	Event          string               `json:"event"`
	Position       maze.Position        `json:"position"`
	KeyHeld        bool                 `json:"keyHeld"`
	Moves          int                  `json:"moves"`
	Restarts       int                  `json:"restarts"`
	Score          *maze.ScoreBreakdown `json:"score,omitempty"`
	ElapsedSeconds int                  `json:"elapsedSeconds"`
}

// SessionManager owns all live game sessions.
type SessionManager struct {
	mutex        sync.RWMutex
	pathSessions map[string]*PathSession
	mazeSessions map[string]*MazeSession
	rng          *rand.Rand
	logger       Logger
	timeLimit    int
	now          func() time.Time
}

// NewSessionManager creates a new session manager. pathTimeLimit is the
// per-round clock, in seconds, applied to path-finder sessions.
func NewSessionManager(logger Logger, pathTimeLimit int) *SessionManager {
	return &SessionManager{
		pathSessions: make(map[string]*PathSession),
		mazeSessions: make(map[string]*MazeSession),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       logger,
		timeLimit:    pathTimeLimit,
		now:          time.Now,
	}
}

// StartPathGame generates a fresh grid and registers a session for it.
func (sm *SessionManager) StartPathGame(size, level int) (*PathSession, *GameError) {
	if size < minGridSize || size > maxGridSize {
		return nil, newGameError(CodeInvalidSize, "grid size %d outside %d..%d", size, minGridSize, maxGridSize)
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	grid := pathgrid.Generate(sm.rng, size, level)
	session := &PathSession{
		ID:        uuid.NewString(),
		Grid:      &grid,
		TimeLimit: sm.timeLimit,
		StartedAt: sm.now(),
	}
	sm.pathSessions[session.ID] = session
	sm.logger.Printf("path game %s started: size=%d level=%d optimalMoves=%d", session.ID, size, level, grid.OptimalMoves)
	return session, nil
}

// RotateTile advances one tile by 90° and counts the move.
func (sm *SessionManager) RotateTile(sessionID string, row, col int) (*pathgrid.GridTile, int, *GameError) {
	return sm.mutateTile(sessionID, row, col, pathgrid.RotateTile)
}

// FlipTile mirrors one tile per its shape's flip rule and counts the move.
func (sm *SessionManager) FlipTile(sessionID string, row, col int) (*pathgrid.GridTile, int, *GameError) {
	return sm.mutateTile(sessionID, row, col, pathgrid.FlipTile)
}

func (sm *SessionManager) mutateTile(sessionID string, row, col int, transform func(pathgrid.GridTile) pathgrid.GridTile) (*pathgrid.GridTile, int, *GameError) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, ok := sm.pathSessions[sessionID]
	if !ok {
		return nil, 0, newGameError(CodeSessionNotFound, "no path game %s", sessionID)
	}
	if session.Completed {
		return nil, 0, newGameError(CodeGameCompleted, "path game %s is already completed", sessionID)
	}
	pos := pathgrid.Position{Row: row, Col: col}
	tile := session.Grid.TileAt(pos)
	if tile == nil {
		return nil, 0, newGameError(CodeInvalidPosition, "(%d,%d) outside %dx%d grid", row, col, session.Grid.Size, session.Grid.Size)
	}
	if pos == session.Grid.Start || pos == session.Grid.End {
		return nil, 0, newGameError(CodeInvalidPosition, "(%d,%d) is a fixed endpoint tile", row, col)
	}

	updated := transform(*tile)
	session.Grid.Tiles[row][col] = updated
	session.Moves++
	return &updated, session.Moves, nil
}

// ValidatePath re-runs reachability over the session's grid. The first
// valid result completes the session and computes its score.
func (sm *SessionManager) ValidatePath(sessionID string) (*PathOutcome, *GameError) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, ok := sm.pathSessions[sessionID]
	if !ok {
		return nil, newGameError(CodeSessionNotFound, "no path game %s", sessionID)
	}

	result := pathgrid.Validate(session.Grid)
	outcome := &PathOutcome{Result: result, Moves: session.Moves}
	if result.IsValid && !session.Completed {
		session.Completed = true
		elapsed := int(sm.now().Sub(session.StartedAt).Seconds())
		score := pathgrid.Score(elapsed, session.TimeLimit, session.Moves, session.Grid.OptimalMoves)
		session.Score = &score
		outcome.Completed = true
		outcome.Score = &score
		outcome.ElapsedSeconds = elapsed
		sm.logger.Printf("path game %s completed: moves=%d elapsed=%ds score=%d", sessionID, session.Moves, elapsed, score.FinalScore)
	}
	return outcome, nil
}

// StartMazeGame generates a solvable maze and registers a session for it.
func (sm *SessionManager) StartMazeGame(difficulty string) (*MazeSession, *GameError) {
	switch maze.Difficulty(difficulty) {
	case maze.DifficultyEasy, maze.DifficultyMedium, maze.DifficultyHard:
	default:
		return nil, newGameError(CodeInvalidDifficulty, "unknown difficulty %q", difficulty)
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	cfg := maze.ConfigFor(maze.Difficulty(difficulty))
	grid := maze.Generate(sm.rng, maze.Difficulty(difficulty))
	session := &MazeSession{
		ID:        uuid.NewString(),
		Maze:      &grid,
		Token:     grid.Start,
		MoveLimit: int(float64(grid.OptimalPathLength) * cfg.MovesMultiplier),
		TimeLimit: cfg.TimeLimit,
		StartedAt: sm.now(),
	}
	sm.mazeSessions[session.ID] = session
	sm.logger.Printf("maze game %s started: difficulty=%s size=%d optimalPath=%d", session.ID, difficulty, grid.Size, grid.OptimalPathLength)
	return session, nil
}

// MoveToken applies one step. A rejected step costs a move, sends the token
// back to start, drops the key, and counts a restart. Reaching the exit
// with the key in hand completes the session and computes its score.
func (sm *SessionManager) MoveToken(sessionID, direction string) (*MazeMoveOutcome, *GameError) {
	dir := tiles.Direction(direction)
	if !dir.IsValid() {
		return nil, newGameError(CodeInvalidDirection, "unknown direction %q", direction)
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, ok := sm.mazeSessions[sessionID]
	if !ok {
		return nil, newGameError(CodeSessionNotFound, "no maze game %s", sessionID)
	}
	if session.Completed {
		return nil, newGameError(CodeGameCompleted, "maze game %s is already completed", sessionID)
	}

	session.Moves++
	check := maze.CanMove(session.Token, dir, session.Maze)
	if !check.CanMove {
		session.Token = session.Maze.Start
		session.KeyHeld = false
		session.Restarts++
		return &MazeMoveOutcome{
			Event:    MazeEventWallHit,
			Position: session.Token,
			Moves:    session.Moves,
			Restarts: session.Restarts,
		}, nil
	}

	session.Token = *check.NewPosition
	outcome := &MazeMoveOutcome{
		Event:    MazeEventMoved,
		Position: session.Token,
		KeyHeld:  session.KeyHeld,
		Moves:    session.Moves,
		Restarts: session.Restarts,
	}

	switch session.Maze.CellAt(session.Token) {
	case maze.CellKey:
		if !session.KeyHeld {
			session.KeyHeld = true
			outcome.KeyHeld = true
			outcome.Event = MazeEventKeyCollected
		}
	case maze.CellExit:
		if session.KeyHeld {
			session.Completed = true
			elapsed := int(sm.now().Sub(session.StartedAt).Seconds())
			score := maze.Score(elapsed, session.TimeLimit, session.Moves, session.Maze.OptimalPathLength, session.Restarts)
			session.Score = &score
			outcome.Event = MazeEventCompleted
			outcome.Score = &score
			outcome.ElapsedSeconds = elapsed
			sm.logger.Printf("maze game %s completed: moves=%d restarts=%d elapsed=%ds score=%d",
				sessionID, session.Moves, session.Restarts, elapsed, score.FinalScore)
		}
	}
	return outcome, nil
}

// Snapshot returns the full serialized view of a session of either kind.
func (sm *SessionManager) Snapshot(sessionID string) (*protocol.GameSnapshot, *GameError) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if session, ok := sm.pathSessions[sessionID]; ok {
		return &protocol.GameSnapshot{
			SessionID:       session.ID,
			Kind:            GameKindPathFinder,
			Grid:            session.Grid,
			Moves:           session.Moves,
			TimeLimit:       session.TimeLimit,
			Completed:       session.Completed,
			ProtocolVersion: protocol.ProtocolVersion,
		}, nil
	}
	if session, ok := sm.mazeSessions[sessionID]; ok {
		token := session.Token
		return &protocol.GameSnapshot{
			SessionID:       session.ID,
			Kind:            GameKindKeyFinder,
			Maze:            session.Maze,
			TokenPosition:   &token,
			KeyHeld:         session.KeyHeld,
			Moves:           session.Moves,
			Restarts:        session.Restarts,
			TimeLimit:       session.TimeLimit,
			Completed:       session.Completed,
			ProtocolVersion: protocol.ProtocolVersion,
		}, nil
	}
	return nil, newGameError(CodeSessionNotFound, "no game %s", sessionID)
}

// Abandon drops a session of either kind.
func (sm *SessionManager) Abandon(sessionID string) *GameError {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if _, ok := sm.pathSessions[sessionID]; ok {
		delete(sm.pathSessions, sessionID)
		return nil
	}
	if _, ok := sm.mazeSessions[sessionID]; ok {
		delete(sm.mazeSessions, sessionID)
		return nil
	}
	return newGameError(CodeSessionNotFound, "no game %s", sessionID)
}
