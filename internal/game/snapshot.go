package game

import (
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

// Snapshot is the plain JSON form of a whole round, written to the
// persistence store after every mutation and restored on reload.
type Snapshot struct {
	Phase       Phase            `json:"phase"`
	Size        catalog.GameSize `json:"size,omitempty"`
	Players     []Player         `json:"players,omitempty"`
	HiderID     string           `json:"hiderId,omitempty"`
	HiderMoving bool             `json:"hiderMoving,omitempty"`
	Deck        *deck.Snapshot   `json:"deck,omitempty"`
	Curses      []curse.Active   `json:"curses,omitempty"`
	Questions   []question.Asked `json:"questions,omitempty"`
	Result      *Result          `json:"result,omitempty"`
}

// Snapshot captures the full round state.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       r.phase,
		Size:        r.size,
		Players:     r.Players(),
		HiderID:     r.hiderID,
		HiderMoving: r.hiderMoving,
		Result:      r.result,
	}
	if r.deck != nil {
		ds := r.deck.Snapshot()
		s.Deck = &ds
	}
	if r.curses != nil {
		s.Curses = r.curses.Snapshot()
	}
	if r.questions != nil {
		s.Questions = r.questions.History()
	}
	return s
}

// RestoreRound rebuilds a round from a snapshot. A zero-value snapshot
// restores to a blank setup-phase round, so missing persisted data loads as
// a well-defined initial state.
func RestoreRound(s Snapshot, opts ...Option) *Round {
	r := NewRound(opts...)
	r.phase = s.Phase
	if r.phase == "" {
		r.phase = PhaseSetup
	}
	r.size = s.Size
	r.players = append([]Player(nil), s.Players...)
	r.hiderID = s.HiderID
	r.hiderMoving = s.HiderMoving
	r.result = s.Result
	if s.Deck != nil {
		r.deck = deck.Restore(*s.Deck, r.rng)
		r.curses = curse.Restore(s.Curses)
		r.questions = question.Restore(s.Questions, r.rng)
	}
	return r
}
