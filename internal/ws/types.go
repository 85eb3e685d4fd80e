package ws

import (
	"encoding/json"
)

// MessageType discriminates the websocket envelope.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every websocket frame. The payload shape
// depends on the type: a wire move for "move", a full game state for
// "gameState", a quoted string for "error".
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
