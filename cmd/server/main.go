package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/gridforge/puzzle-minigame-engine/internal/protocol"
	"github.com/gridforge/puzzle-minigame-engine/internal/ws"
)

func main() {
	config, err := LoadConfig("config.toml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()
	hub := ws.NewHub()
	sessions := NewSessionManager(logger, config.PathTimeLimitSeconds)
	api := NewAPIHandler(sessions, hub, logger, config)

	mux := http.NewServeMux()
	mux.Handle("/", api.Routes())
	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				dispatchIntent(env, sessions, hub, config)
			}
		}(conn)
	})

	logger.Printf("listening on :%s", config.Port)
	log.Fatal(http.ListenAndServe(":"+config.Port, mux))
}

// dispatchIntent applies one websocket intent and broadcasts the resulting
// patches. Malformed or rejected intents produce an ErrorOccurred patch,
// never a dropped connection.
func dispatchIntent(env protocol.IntentEnvelope, sessions *SessionManager, hub Broadcaster, config Config) {
	switch env.Type {
	case "RequestNewPathGame":
		req := protocol.RequestNewPathGame{Size: config.DefaultGridSize, Level: config.DefaultLevel}
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		session, gameErr := sessions.StartPathGame(req.Size, req.Level)
		if gameErr != nil {
			broadcastError(hub, gameErr)
			return
		}
		hub.BroadcastEvent("PathGameStarted", protocol.PathGameStarted{
			SessionID: session.ID,
			Grid:      *session.Grid,
			TimeLimit: session.TimeLimit,
		})

	case "RequestRotateTile", "RequestFlipTile":
		var req protocol.RequestRotateTile
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		action := "rotate"
		mutate := sessions.RotateTile
		if env.Type == "RequestFlipTile" {
			action = "flip"
			mutate = sessions.FlipTile
		}
		tile, moves, gameErr := mutate(req.SessionID, req.Row, req.Col)
		if gameErr != nil {
			broadcastError(hub, gameErr)
			return
		}
		hub.BroadcastEvent("TileChanged", protocol.TileChanged{
			SessionID: req.SessionID,
			Action:    action,
			Tile:      *tile,
			Moves:     moves,
		})

	case "RequestValidatePath":
		var req protocol.RequestValidatePath
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		outcome, gameErr := sessions.ValidatePath(req.SessionID)
		if gameErr != nil {
			broadcastError(hub, gameErr)
			return
		}
		hub.BroadcastEvent("PathValidated", protocol.PathValidated{
			SessionID: req.SessionID,
			IsValid:   outcome.Result.IsValid,
			Path:      outcome.Result.Path,
			Message:   outcome.Result.Message,
		})
		if outcome.Completed {
			hub.BroadcastEvent("PathGameCompleted", protocol.PathGameCompleted{
				SessionID:      req.SessionID,
				Score:          *outcome.Score,
				TotalMoves:     outcome.Moves,
				ElapsedSeconds: outcome.ElapsedSeconds,
			})
		}

	case "RequestNewMazeGame":
		var req protocol.RequestNewMazeGame
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		session, gameErr := sessions.StartMazeGame(req.Difficulty)
		if gameErr != nil {
			broadcastError(hub, gameErr)
			return
		}
		hub.BroadcastEvent("MazeGameStarted", protocol.MazeGameStarted{
			SessionID: session.ID,
			Maze:      *session.Maze,
			TimeLimit: session.TimeLimit,
			MoveLimit: session.MoveLimit,
		})

	case "RequestMazeMove":
		var req protocol.RequestMazeMove
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		outcome, gameErr := sessions.MoveToken(req.SessionID, req.Direction)
		if gameErr != nil {
			broadcastError(hub, gameErr)
			return
		}
		broadcastMazeOutcome(hub, req.SessionID, outcome)

	case "RequestAbandonGame":
		var req protocol.RequestAbandonGame
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return
		}
		if gameErr := sessions.Abandon(req.SessionID); gameErr != nil {
			broadcastError(hub, gameErr)
		}
	}
}

func broadcastError(hub Broadcaster, gameErr *GameError) {
	hub.BroadcastEvent("ErrorOccurred", protocol.ErrorOccurred{Code: gameErr.Code, Message: gameErr.Message})
}
