package entity

import "time"

type EndReason string

const (
	EndReasonAllGuessed EndReason = "all_guessed"
	EndReasonTimeout    EndReason = "timeout"
	EndReasonDrawerLeft EndReason = "drawer_left"
	EndReasonNoGuessers EndReason = "no_guessers"
)

// RoundResult is the archived outcome of one round.
type RoundResult struct {
	Room    string    `json:"room"`
	Round   uint64    `json:"round"`
	Drawer  string    `json:"drawer"`
	Word    string    `json:"word"`
	Winner  string    `json:"winner,omitempty"`
	Reason  EndReason `json:"reason"`
	Scores  []Player  `json:"scores"`
	EndedAt time.Time `json:"ended_at"`
}

// RoomInfo is the public description of a room.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
	Phase   Phase  `json:"phase"`
}
