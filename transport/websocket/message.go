package websocket

import (
	"encoding/json"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outbound struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

func encode(event string, payload any) ([]byte, error) {
	return json.Marshal(outbound{Event: event, Payload: payload})
}
