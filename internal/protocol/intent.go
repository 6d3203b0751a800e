package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RequestNewPathGame struct {
	Size  int `json:"size"`
	Level int `json:"level"`
}

type RequestRotateTile struct {
	SessionID string `json:"sessionId"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

type RequestFlipTile struct {
	SessionID string `json:"sessionId"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

type RequestValidatePath struct {
	SessionID string `json:"sessionId"`
}

type RequestNewMazeGame struct {
	Difficulty string `json:"difficulty"`
}

type RequestMazeMove struct {
	SessionID string `json:"sessionId"`
	Direction string `json:"direction"`
}

type RequestAbandonGame struct {
	SessionID string `json:"sessionId"`
}
