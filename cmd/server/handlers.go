package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gridforge/puzzle-minigame-engine/internal/protocol"
)

// APIHandler serves the JSON API. Every state change it applies is also
// broadcast as a patch on the websocket stream.
type APIHandler struct {
	sessions *SessionManager
	hub      Broadcaster
	logger   Logger
	defaults Config
}

func NewAPIHandler(sessions *SessionManager, hub Broadcaster, logger Logger, defaults Config) *APIHandler {
	return &APIHandler{sessions: sessions, hub: hub, logger: logger, defaults: defaults}
}

// Routes mounts the API on a chi router.
func (h *APIHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", h.Health)
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/path", h.StartPathGame)
		r.Post("/maze", h.StartMazeGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetSnapshot)
			r.Delete("/", h.AbandonGame)
			r.Post("/rotate", h.RotateTile)
			r.Post("/flip", h.FlipTile)
			r.Post("/validate", h.ValidatePath)
			r.Post("/move", h.MoveToken)
		})
	})
	return r
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandler) StartPathGame(w http.ResponseWriter, r *http.Request) {
	req := protocol.RequestNewPathGame{Size: h.defaults.DefaultGridSize, Level: h.defaults.DefaultLevel}
	if !decodeBody(w, r, &req) {
		return
	}
	session, gameErr := h.sessions.StartPathGame(req.Size, req.Level)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	h.hub.BroadcastEvent("PathGameStarted", protocol.PathGameStarted{
		SessionID: session.ID,
		Grid:      *session.Grid,
		TimeLimit: session.TimeLimit,
	})
	snapshot, gameErr := h.sessions.Snapshot(session.ID)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

func (h *APIHandler) StartMazeGame(w http.ResponseWriter, r *http.Request) {
	var req protocol.RequestNewMazeGame
	if !decodeBody(w, r, &req) {
		return
	}
	session, gameErr := h.sessions.StartMazeGame(req.Difficulty)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	h.hub.BroadcastEvent("MazeGameStarted", protocol.MazeGameStarted{
		SessionID: session.ID,
		Maze:      *session.Maze,
		TimeLimit: session.TimeLimit,
		MoveLimit: session.MoveLimit,
	})
	snapshot, gameErr := h.sessions.Snapshot(session.ID)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

func (h *APIHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, gameErr := h.sessions.Snapshot(chi.URLParam(r, "id"))
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *APIHandler) AbandonGame(w http.ResponseWriter, r *http.Request) {
	if gameErr := h.sessions.Abandon(chi.URLParam(r, "id")); gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) RotateTile(w http.ResponseWriter, r *http.Request) {
	h.mutateTile(w, r, "rotate")
}

func (h *APIHandler) FlipTile(w http.ResponseWriter, r *http.Request) {
	h.mutateTile(w, r, "flip")
}

func (h *APIHandler) mutateTile(w http.ResponseWriter, r *http.Request, action string) {
	sessionID := chi.URLParam(r, "id")
	var req protocol.RequestRotateTile
	if !decodeBody(w, r, &req) {
		return
	}

	mutate := h.sessions.RotateTile
	if action == "flip" {
		mutate = h.sessions.FlipTile
	}
	tile, moves, gameErr := mutate(sessionID, req.Row, req.Col)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}

	patch := protocol.TileChanged{SessionID: sessionID, Action: action, Tile: *tile, Moves: moves}
	h.hub.BroadcastEvent("TileChanged", patch)
	writeJSON(w, http.StatusOK, patch)
}

func (h *APIHandler) ValidatePath(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	outcome, gameErr := h.sessions.ValidatePath(sessionID)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}

	h.hub.BroadcastEvent("PathValidated", protocol.PathValidated{
		SessionID: sessionID,
		IsValid:   outcome.Result.IsValid,
		Path:      outcome.Result.Path,
		Message:   outcome.Result.Message,
	})
	if outcome.Completed {
		h.hub.BroadcastEvent("PathGameCompleted", protocol.PathGameCompleted{
			SessionID:      sessionID,
			Score:          *outcome.Score,
			TotalMoves:     outcome.Moves,
			ElapsedSeconds: outcome.ElapsedSeconds,
		})
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h *APIHandler) MoveToken(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	var req protocol.RequestMazeMove
	if !decodeBody(w, r, &req) {
		return
	}

	outcome, gameErr := h.sessions.MoveToken(sessionID, req.Direction)
	if gameErr != nil {
		writeGameError(w, gameErr)
		return
	}
	broadcastMazeOutcome(h.hub, sessionID, outcome)
	writeJSON(w, http.StatusOK, outcome)
}

// broadcastMazeOutcome translates a move outcome into its patch. Shared
// with the websocket intent loop.
func broadcastMazeOutcome(hub Broadcaster, sessionID string, outcome *MazeMoveOutcome) {
	switch outcome.Event {
	case MazeEventWallHit:
		hub.BroadcastEvent("TokenReset", protocol.TokenReset{
			SessionID: sessionID,
			Position:  outcome.Position,
			KeyHeld:   outcome.KeyHeld,
			Moves:     outcome.Moves,
			Restarts:  outcome.Restarts,
		})
	case MazeEventKeyCollected:
		hub.BroadcastEvent("KeyCollected", protocol.KeyCollected{
			SessionID: sessionID,
			Position:  outcome.Position,
			Moves:     outcome.Moves,
		})
	case MazeEventCompleted:
		hub.BroadcastEvent("MazeGameCompleted", protocol.MazeGameCompleted{
			SessionID:      sessionID,
			Score:          *outcome.Score,
			TotalMoves:     outcome.Moves,
			Restarts:       outcome.Restarts,
			ElapsedSeconds: outcome.ElapsedSeconds,
		})
	default:
		hub.BroadcastEvent("TokenMoved", protocol.TokenMoved{
			SessionID: sessionID,
			Position:  outcome.Position,
			KeyHeld:   outcome.KeyHeld,
			Moves:     outcome.Moves,
		})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, protocol.ErrorOccurred{Code: "BAD_REQUEST", Message: err.Error()})
		return false
	}
	return true
}

func writeGameError(w http.ResponseWriter, gameErr *GameError) {
	status := http.StatusBadRequest
	if gameErr.Code == CodeSessionNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, protocol.ErrorOccurred{Code: gameErr.Code, Message: gameErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
