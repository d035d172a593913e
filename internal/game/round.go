// Package game owns the round lifecycle: the phase state machine, the player
// roster, and the resolution of card effects against the deck, the curse
// tracker, and the question log. All operations are synchronous and take any
// needed "now" as a parameter; the package never reads a clock or spawns a
// timer.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state for action")
	ErrInvalidPhase     = errors.New("card cannot be played in this phase")
	ErrQuestionsBlocked = errors.New("an active curse blocks questions")
)

type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseHiding   Phase = "hiding"
	PhaseSeeking  Phase = "seeking"
	PhaseEndGame  Phase = "endgame"
	PhaseComplete Phase = "complete"
)

const (
	minPlayers    = 2
	maxPlayers    = 4
	baseHandLimit = 6
)

// Player is one roster entry. The current hider holds the hand; everyone
// else seeks.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result is the frozen outcome of a completed round: the minute value of the
// cards still in the hider's hand, scored at the round's game size.
type Result struct {
	TimeBonusMinutes int             `json:"timeBonusMinutes"`
	TrapMinutes      int             `json:"trapMinutes"`
	TotalMinutes     int             `json:"totalMinutes"`
	Cards            []deck.Instance `json:"cards"`
}

// Round is one full game round. Not safe for concurrent use; the caller
// serializes access (one mutex per live session at the transport layer).
type Round struct {
	rng         *rand.Rand
	phase       Phase
	size        catalog.GameSize
	players     []Player
	hiderID     string
	hiderMoving bool
	deck        *deck.Deck
	curses      *curse.Tracker
	questions   *question.Log
	result      *Result
}

// Option configures a Round at construction.
type Option func(*Round)

// WithRand injects the random source used for card draws and question picks.
// Tests pass a seeded source for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(r *Round) { r.rng = rng }
}

// NewRound creates a round in the setup phase with an empty roster.
func NewRound(opts ...Option) *Round {
	r := &Round{phase: PhaseSetup}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

func (r *Round) Phase() Phase               { return r.phase }
func (r *Round) GameSize() catalog.GameSize { return r.size }
func (r *Round) HiderID() string            { return r.hiderID }
func (r *Round) HiderMoving() bool          { return r.hiderMoving }
func (r *Round) Deck() *deck.Deck           { return r.deck }
func (r *Round) Curses() *curse.Tracker     { return r.curses }
func (r *Round) Questions() *question.Log   { return r.questions }

// Players returns the roster in join order.
func (r *Round) Players() []Player {
	return append([]Player(nil), r.players...)
}

// Seekers returns the roster minus the current hider.
func (r *Round) Seekers() []Player {
	var out []Player
	for _, p := range r.players {
		if p.ID != r.hiderID {
			out = append(out, p)
		}
	}
	return out
}

// Result returns the frozen round result once the round is complete.
func (r *Round) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// AddPlayer appends a player to the roster. Valid only during setup; the
// roster holds at most four players.
func (r *Round) AddPlayer(name string) (Player, error) {
	if r.phase != PhaseSetup {
		return Player{}, ErrInvalidState
	}
	if len(r.players) >= maxPlayers {
		return Player{}, ErrInvalidState
	}
	p := Player{ID: uuid.NewString(), Name: name}
	r.players = append(r.players, p)
	return p, nil
}

// RemovePlayer drops a player from the roster. Valid only during setup.
func (r *Round) RemovePlayer(id string) error {
	if r.phase != PhaseSetup {
		return ErrInvalidState
	}
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// StartRound moves setup → hiding: picks the hider, fixes the game size, and
// initializes the deck, curse tracker, and question log. Requires at least
// two players and a hider who is one of them.
func (r *Round) StartRound(hiderID string, size catalog.GameSize, now time.Time) error {
	if r.phase != PhaseSetup {
		return ErrInvalidState
	}
	if len(r.players) < minPlayers || !size.Valid() {
		return ErrInvalidState
	}
	found := false
	for _, p := range r.players {
		if p.ID == hiderID {
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidState
	}

	r.hiderID = hiderID
	r.size = size
	r.deck = deck.New(baseHandLimit, r.rng)
	r.curses = curse.NewTracker()
	r.questions = question.NewLog(r.rng)
	r.phase = PhaseHiding
	return nil
}

// BeginSeeking moves hiding → seeking, typically when the hiding-period
// timer elapses. The timer itself lives outside the engine.
func (r *Round) BeginSeeking() error {
	if r.phase != PhaseHiding {
		return ErrInvalidState
	}
	r.phase = PhaseSeeking
	return nil
}

// EnterEndGame moves seeking → endgame.
func (r *Round) EnterEndGame() error {
	if r.phase != PhaseSeeking {
		return ErrInvalidState
	}
	r.phase = PhaseEndGame
	return nil
}

// CompleteRound moves endgame → complete and freezes the round result: the
// summed minute value of the time bonuses (and triggered traps) still in
// hand, scored at the round's game size.
func (r *Round) CompleteRound() (Result, error) {
	if r.phase != PhaseEndGame {
		return Result{}, ErrInvalidState
	}
	res := Result{Cards: r.deck.Hand()}
	for _, inst := range res.Cards {
		def, ok := catalog.CardByID(inst.CardID)
		if !ok {
			continue
		}
		switch def.Type {
		case catalog.TypeTimeBonus:
			res.TimeBonusMinutes += def.BonusMinutes.For(r.size)
		case catalog.TypeTimeTrap:
			res.TrapMinutes += def.TriggeredMinutes.For(r.size)
		}
	}
	res.TotalMinutes = res.TimeBonusMinutes + res.TrapMinutes
	r.result = &res
	r.phase = PhaseComplete
	return res, nil
}

// StartMove raises the hider-is-moving flag. Only meaningful while seeking or
// in the endgame; the Move powerup resolution calls this after the hand has
// been discarded. The hiding clock freeze it implies is signaled to the
// caller, not owned here.
func (r *Round) StartMove() error {
	if r.phase != PhaseSeeking && r.phase != PhaseEndGame {
		return ErrInvalidState
	}
	r.hiderMoving = true
	return nil
}

// ConfirmNewZone clears the hider-is-moving flag once the hider has settled
// into the new zone.
func (r *Round) ConfirmNewZone() error {
	if !r.hiderMoving {
		return ErrInvalidState
	}
	r.hiderMoving = false
	return nil
}

// Reset returns the round to a blank setup phase from any state, clearing the
// roster, deck, curses, and question log. Idempotent.
func (r *Round) Reset() {
	r.phase = PhaseSetup
	r.size = ""
	r.players = nil
	r.hiderID = ""
	r.hiderMoving = false
	r.deck = nil
	r.curses = nil
	r.questions = nil
	r.result = nil
}

// active reports whether a deck-holding phase is underway.
func (r *Round) active() bool {
	switch r.phase {
	case PhaseHiding, PhaseSeeking, PhaseEndGame:
		return true
	}
	return false
}

// DrawCards draws up to n cards into the hider's hand, truncated to the hand
// limit and the undrawn pool.
func (r *Round) DrawCards(n int) (deck.DrawResult, error) {
	if !r.active() {
		return deck.DrawResult{}, ErrInvalidState
	}
	return r.deck.Draw(n), nil
}

// DiscardCard moves one card from hand to the discard pile.
func (r *Round) DiscardCard(instanceID string) error {
	if !r.active() {
		return ErrInvalidState
	}
	return r.deck.Discard(instanceID)
}

// AddCard manually enters a card into the hand, outside the fixed deck —
// expansion content like time traps, or physically gained cards.
func (r *Round) AddCard(cardID string) (deck.Instance, error) {
	if !r.active() {
		return deck.Instance{}, ErrInvalidState
	}
	def, ok := catalog.CardByID(cardID)
	if !ok {
		return deck.Instance{}, ErrNotFound
	}
	return r.deck.AddToHand(def), nil
}

// TimeBonusTotal is the running minute value of the time bonuses currently in
// hand. The frozen value is computed by CompleteRound.
func (r *Round) TimeBonusTotal() int {
	if r.deck == nil {
		return 0
	}
	total := 0
	for _, inst := range r.deck.Hand() {
		def, ok := catalog.CardByID(inst.CardID)
		if ok && def.Type == catalog.TypeTimeBonus {
			total += def.BonusMinutes.For(r.size)
		}
	}
	return total
}

// CheckCurseExpiries clears curses whose expiry has passed and returns the
// newly cleared ones. Safe to call on any polling cadence.
func (r *Round) CheckCurseExpiries(now time.Time) []curse.Active {
	if r.curses == nil {
		return nil
	}
	return r.curses.CheckExpiries(now)
}

// ClearCurse manually clears an active curse after the seekers resolve it.
func (r *Round) ClearCurse(cardID string, now time.Time) error {
	if r.curses == nil {
		return ErrInvalidState
	}
	return r.curses.ClearManually(cardID, now)
}

// AskQuestion records a seeker question as pending. Rejected while a
// questions-blocking curse is active, and outside the seeking/endgame phases.
func (r *Round) AskQuestion(questionID string, now time.Time) error {
	if r.phase != PhaseSeeking && r.phase != PhaseEndGame {
		return ErrInvalidState
	}
	if r.curses.BlockingQuestions() {
		return ErrQuestionsBlocked
	}
	q, ok := catalog.QuestionByID(questionID)
	if !ok {
		return ErrNotFound
	}
	cat, ok := catalog.CategoryByID(q.CategoryID)
	if !ok || !cat.AvailableIn(r.size) {
		return ErrNotFound
	}
	return r.questions.Ask(q, now)
}

// AnswerOutcome reports the card reward of an answered question: the cards
// drawn and how many of them the hider may keep — the rest must be discarded
// by follow-up calls.
type AnswerOutcome struct {
	Question  question.Asked  `json:"question"`
	Drawn     []deck.Instance `json:"drawn"`
	Short     bool            `json:"short"`
	KeepCount int             `json:"keepCount"`
}

// AnswerQuestion marks the pending question answered and draws the category's
// card reward.
func (r *Round) AnswerQuestion(now time.Time) (AnswerOutcome, error) {
	if !r.active() {
		return AnswerOutcome{}, ErrInvalidState
	}
	pending := r.questions.Pending()
	if pending == nil {
		return AnswerOutcome{}, question.ErrNonePending
	}
	cat, ok := catalog.CategoryByID(pending.CategoryID)
	if !ok {
		return AnswerOutcome{}, ErrNotFound
	}
	asked, err := r.questions.Answer(now)
	if err != nil {
		return AnswerOutcome{}, err
	}
	res := r.deck.Draw(cat.CardsDraw)
	return AnswerOutcome{
		Question:  asked,
		Drawn:     res.Drawn,
		Short:     res.Short,
		KeepCount: cat.CardsKeep,
	}, nil
}

// VetoQuestion marks the pending question vetoed with no card reward. Used
// both for out-of-band vetoes and by the Veto powerup.
func (r *Round) VetoQuestion(now time.Time) (question.Asked, error) {
	if !r.active() {
		return question.Asked{}, ErrInvalidState
	}
	return r.questions.Veto(now)
}
