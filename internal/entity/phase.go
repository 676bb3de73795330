package entity

import "fmt"

type Phase string

const (
	PhaseLobby    Phase = "Lobby"
	PhaseWaiting  Phase = "Waiting"
	PhaseGame     Phase = "Game"
	PhaseRoundEnd Phase = "RoundEnd"
)

func (that Phase) IsGame() bool {
	return that == PhaseGame
}

func (that Phase) IsRoundEnd() bool {
	return that == PhaseRoundEnd
}

// CanTransitionTo reports whether the room state machine allows moving from that to next.
// Any phase may fall back to Lobby when the last player leaves.
func (that Phase) CanTransitionTo(next Phase) bool {
	if next == PhaseLobby {
		return true
	}

	switch that {
	case PhaseLobby:
		return next == PhaseWaiting
	case PhaseWaiting:
		return next == PhaseGame
	case PhaseGame:
		return next == PhaseRoundEnd
	case PhaseRoundEnd:
		return next == PhaseWaiting
	default:
		return false
	}
}

func (that Phase) String() string {
	return string(that)
}

func (that Phase) Validate() error {
	switch that {
	case PhaseLobby, PhaseWaiting, PhaseGame, PhaseRoundEnd:
		return nil
	default:
		return fmt.Errorf("unknown phase %q", string(that))
	}
}
