package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridforge/puzzle-minigame-engine/internal/protocol"
)

type MockBroadcaster struct {
	events []string
}

func (m *MockBroadcaster) BroadcastEvent(eventType string, payload any) {
	m.events = append(m.events, eventType)
}

func newTestServer(t *testing.T) (*httptest.Server, *MockBroadcaster) {
	t.Helper()
	sm, _ := newTestManager(t)
	hub := &MockBroadcaster{}
	api := NewAPIHandler(sm, hub, &MockLogger{}, defaultConfig())
	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)
	return server, hub
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestStartPathGameEndpoint(t *testing.T) {
	server, hub := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/games/path", protocol.RequestNewPathGame{Size: 5, Level: 1})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	snap := decodeJSON[protocol.GameSnapshot](t, resp)
	if snap.Kind != GameKindPathFinder || snap.Grid == nil || snap.Grid.Size != 5 {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(hub.events) != 1 || hub.events[0] != "PathGameStarted" {
		t.Errorf("broadcasts = %v", hub.events)
	}
}

func TestStartMazeGameEndpoint(t *testing.T) {
	server, hub := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/games/maze", protocol.RequestNewMazeGame{Difficulty: "hard"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	snap := decodeJSON[protocol.GameSnapshot](t, resp)
	if snap.Kind != GameKindKeyFinder || snap.Maze == nil || snap.Maze.Size != 12 {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(hub.events) != 1 || hub.events[0] != "MazeGameStarted" {
		t.Errorf("broadcasts = %v", hub.events)
	}

	resp = postJSON(t, server.URL+"/api/games/maze", protocol.RequestNewMazeGame{Difficulty: "bogus"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad difficulty status = %d", resp.StatusCode)
	}
	errBody := decodeJSON[protocol.ErrorOccurred](t, resp)
	if errBody.Code != CodeInvalidDifficulty {
		t.Errorf("error = %+v", errBody)
	}
}

func TestRotateEndpoint(t *testing.T) {
	server, hub := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/games/path", protocol.RequestNewPathGame{Size: 5, Level: 1})
	snap := decodeJSON[protocol.GameSnapshot](t, resp)

	url := fmt.Sprintf("%s/api/games/%s/rotate", server.URL, snap.SessionID)
	resp = postJSON(t, url, protocol.RequestRotateTile{Row: 2, Col: 1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	patch := decodeJSON[protocol.TileChanged](t, resp)
	if patch.Action != "rotate" || patch.Moves != 1 {
		t.Errorf("patch = %+v", patch)
	}
	if len(hub.events) != 2 || hub.events[1] != "TileChanged" {
		t.Errorf("broadcasts = %v", hub.events)
	}

	resp = postJSON(t, url, protocol.RequestRotateTile{Row: 99, Col: 0})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("out-of-bounds status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSnapshotEndpointUnknownSession(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/games/doesnotexist/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestMoveEndpoint(t *testing.T) {
	server, hub := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/games/maze", protocol.RequestNewMazeGame{Difficulty: "easy"})
	snap := decodeJSON[protocol.GameSnapshot](t, resp)

	// The start cell sits on the left edge, so a left move is always a
	// wall hit that resets the token.
	url := fmt.Sprintf("%s/api/games/%s/move", server.URL, snap.SessionID)
	resp = postJSON(t, url, protocol.RequestMazeMove{Direction: "left"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	outcome := decodeJSON[MazeMoveOutcome](t, resp)
	if outcome.Event != MazeEventWallHit || outcome.Restarts != 1 {
		t.Errorf("outcome = %+v", outcome)
	}
	if hub.events[len(hub.events)-1] != "TokenReset" {
		t.Errorf("broadcasts = %v", hub.events)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
