package entity

// Player is a participant of a room. ID is the connection id, Username is for display only.
type Player struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// AddScore never lowers the score.
func (that *Player) AddScore(points int) {
	if points > 0 {
		that.Score += points
	}
}

func (that *Player) Clone() *Player {
	if that == nil {
		return nil
	}

	clone := *that

	return &clone
}
