package guess

import (
	"slices"
	"strings"
)

// Policy is the scoring knob set. With TimeScaled the award shrinks with the time left,
// never below MinAward.
type Policy struct {
	Award      int
	TimeScaled bool
	MinAward   int
}

type Result struct {
	// Accepted is false when the message was not treated as a guess at all.
	Accepted  bool
	IsCorrect bool
	Award     int
}

// Round is the guessing state of one round: the secret word, the drawer and who solved it, in order.
type Round struct {
	word     string
	drawerID string
	solved   []string
}

func NewRound(word, drawerID string) *Round {
	return &Round{
		word:     Normalize(word),
		drawerID: drawerID,
	}
}

func (that *Round) Word() string {
	return that.word
}

func (that *Round) DrawerID() string {
	return that.drawerID
}

func (that *Round) HasSolved(playerID string) bool {
	return slices.Contains(that.solved, playerID)
}

// Solved returns solver ids, fastest first.
func (that *Round) Solved() []string {
	return slices.Clone(that.solved)
}

// Insider reports whether the player already knows the word.
func (that *Round) Insider(playerID string) bool {
	return playerID == that.drawerID || that.HasSolved(playerID)
}

// AllSolved reports whether every non-drawer in players has solved. A round without guessers is never solved.
func (that *Round) AllSolved(players []string) bool {
	guessers := 0

	for _, id := range players {
		if id == that.drawerID {
			continue
		}

		guessers++

		if !that.HasSolved(id) {
			return false
		}
	}

	return guessers > 0
}

// Reveals reports whether the message would give the word away.
func (that *Round) Reveals(raw string) bool {
	return that.word != "" && strings.Contains(Normalize(raw), that.word)
}

type Evaluator struct {
	policy Policy
}

func NewEvaluator(policy Policy) *Evaluator {
	return &Evaluator{policy: policy}
}

// Evaluate checks a chat message against the round's word. The drawer and players who already
// solved are never evaluated, so their messages stay plain chat.
func (that *Evaluator) Evaluate(round *Round, playerID, raw string, remaining, total int) Result {
	if round == nil || round.Insider(playerID) {
		return Result{}
	}

	if Normalize(raw) != round.word {
		return Result{Accepted: true}
	}

	round.solved = append(round.solved, playerID)

	return Result{
		Accepted:  true,
		IsCorrect: true,
		Award:     that.award(remaining, total),
	}
}

func (that *Evaluator) award(remaining, total int) int {
	if !that.policy.TimeScaled || total <= 0 {
		return that.policy.Award
	}

	remaining = min(max(remaining, 0), total)

	return max(that.policy.MinAward, that.policy.Award*remaining/total)
}
