package entity

// Client -> server events.
const (
	EventJoinGame          = "joinGame"
	EventReadyForNextRound = "readyForNextRound"
)

// Events used in both directions.
const (
	EventDrawing     = "drawing"
	EventClearCanvas = "clearCanvas"
	EventChatMessage = "chatMessage"
)

// Server -> client events.
const (
	EventGameState     = "gameState"
	EventUpdatePlayers = "updatePlayers"
	EventNewRound      = "newRound"
	EventTimer         = "timer"
	EventRoundEnd      = "roundEnd"
)

type ChatMessage struct {
	Username        string `json:"username"`
	Message         string `json:"message"`
	IsSystemMessage bool   `json:"isSystemMessage"`
	IsCorrectGuess  bool   `json:"isCorrectGuess"`
}

const SystemUsername = "System"

func NewSystemMessage(message string) ChatMessage {
	return ChatMessage{
		Username:        SystemUsername,
		Message:         message,
		IsSystemMessage: true,
	}
}

// NewRound is sent per connection: Word is empty for everyone except the drawer.
type NewRound struct {
	DrawerID string `json:"drawerId"`
	Word     string `json:"word"`
	Time     int    `json:"time"`
}

type RoundEnd struct {
	Winner *Player `json:"winner,omitempty"`
	Word   string  `json:"word"`
}
