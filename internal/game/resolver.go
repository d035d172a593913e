package game

import (
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

// PowerupOptions carries the per-kind choices a powerup play needs: which
// hand cards to discard for the discard/draw powerups, which hand card to
// copy for Duplicate.
type PowerupOptions struct {
	DiscardIDs        []string `json:"discardIds,omitempty"`
	DuplicateTargetID string   `json:"duplicateTargetId,omitempty"`
}

// PowerupOutcome reports what a resolved powerup did. Only the fields
// relevant to the played kind are set.
type PowerupOutcome struct {
	Kind           catalog.PowerupKind `json:"kind"`
	Drawn          []deck.Instance     `json:"drawn,omitempty"`
	Short          bool                `json:"short,omitempty"`
	Duplicated     *deck.Instance      `json:"duplicated,omitempty"`
	HandLimit      int                 `json:"handLimit,omitempty"`
	MoveStarted    bool                `json:"moveStarted,omitempty"`
	VetoedQuestion *question.Asked     `json:"vetoedQuestion,omitempty"`
	NewQuestionID  string              `json:"newQuestionId,omitempty"`
}

// PlayPowerup resolves a powerup from the hider's hand. Every branch
// validates its inputs before any pool is touched, so a failed play leaves
// the hand, deck, and question log exactly as they were.
func (r *Round) PlayPowerup(instanceID string, opts PowerupOptions, now time.Time) (PowerupOutcome, error) {
	if !r.active() {
		return PowerupOutcome{}, ErrInvalidState
	}
	inst, ok := r.deck.InHand(instanceID)
	if !ok {
		return PowerupOutcome{}, deck.ErrNotFound
	}
	def, ok := catalog.CardByID(inst.CardID)
	if !ok || def.Type != catalog.TypePowerup {
		return PowerupOutcome{}, ErrInvalidState
	}
	if r.phase == PhaseEndGame && !def.EndgamePlayable {
		return PowerupOutcome{}, ErrInvalidPhase
	}

	out := PowerupOutcome{Kind: def.Powerup}
	switch def.Powerup {
	case catalog.PowerupVeto:
		if r.questions.Pending() == nil {
			return PowerupOutcome{}, question.ErrNonePending
		}
		r.mustPlay(instanceID)
		asked, _ := r.questions.Veto(now)
		out.VetoedQuestion = &asked

	case catalog.PowerupRandomize:
		pending := r.questions.Pending()
		if pending == nil {
			return PowerupOutcome{}, question.ErrNonePending
		}
		replacement, ok := r.questions.PickRandomUnasked(pending.CategoryID, r.size)
		if !ok {
			return PowerupOutcome{}, question.ErrNotFound
		}
		r.mustPlay(instanceID)
		_ = r.questions.ReplacePending(replacement)
		out.NewQuestionID = replacement.ID

	case catalog.PowerupDiscard1Draw2:
		if err := r.validateDiscards(instanceID, opts.DiscardIDs, 1); err != nil {
			return PowerupOutcome{}, err
		}
		r.mustPlay(instanceID)
		res, _ := r.deck.DiscardAndDraw(opts.DiscardIDs, 2)
		out.Drawn, out.Short = res.Drawn, res.Short

	case catalog.PowerupDiscard2Draw3:
		if err := r.validateDiscards(instanceID, opts.DiscardIDs, 2); err != nil {
			return PowerupOutcome{}, err
		}
		r.mustPlay(instanceID)
		res, _ := r.deck.DiscardAndDraw(opts.DiscardIDs, 3)
		out.Drawn, out.Short = res.Drawn, res.Short

	case catalog.PowerupDrawExpand:
		r.mustPlay(instanceID)
		r.deck.ExpandHandLimit()
		res := r.deck.Draw(1)
		out.Drawn, out.Short = res.Drawn, res.Short
		out.HandLimit = r.deck.HandLimit()

	case catalog.PowerupDuplicate:
		if opts.DuplicateTargetID == "" || opts.DuplicateTargetID == instanceID {
			return PowerupOutcome{}, ErrInvalidState
		}
		target, ok := r.deck.InHand(opts.DuplicateTargetID)
		if !ok {
			return PowerupOutcome{}, deck.ErrNotFound
		}
		targetDef, ok := catalog.CardByID(target.CardID)
		if !ok {
			return PowerupOutcome{}, ErrNotFound
		}
		// The powerup is played first, so the copy never pushes the hand
		// past its limit.
		r.mustPlay(instanceID)
		copyInst := r.deck.AddToHand(targetDef)
		out.Duplicated = &copyInst

	case catalog.PowerupMove:
		// The moving sub-state only exists while seeking; the endgame case
		// is already rejected above via the endgame-playable flag.
		if r.phase != PhaseSeeking {
			return PowerupOutcome{}, ErrInvalidPhase
		}
		r.mustPlay(instanceID)
		r.deck.DiscardHand()
		r.hiderMoving = true
		out.MoveStarted = true

	default:
		return PowerupOutcome{}, ErrInvalidState
	}

	return out, nil
}

// PlayCurse casts a curse from the hider's hand: the blocking flags are
// copied from the definition and, for curses with a duration, an absolute
// expiry is scheduled at the round's game-size scaling. Rejected with
// curse.ErrConflict — hand untouched — while another blocking curse is
// active.
func (r *Round) PlayCurse(instanceID string, now time.Time) (curse.Active, error) {
	if !r.active() {
		return curse.Active{}, ErrInvalidState
	}
	inst, ok := r.deck.InHand(instanceID)
	if !ok {
		return curse.Active{}, deck.ErrNotFound
	}
	def, ok := catalog.CardByID(inst.CardID)
	if !ok || def.Type != catalog.TypeCurse {
		return curse.Active{}, ErrInvalidState
	}
	if r.phase == PhaseEndGame && !def.EndgamePlayable {
		return curse.Active{}, ErrInvalidPhase
	}

	active, err := r.curses.Activate(def, r.size, now)
	if err != nil {
		return curse.Active{}, err
	}
	r.mustPlay(instanceID)
	return active, nil
}

// validateDiscards checks a discard/draw powerup's named cards: exactly want
// of them, all distinct, all currently in hand, and never the powerup itself.
func (r *Round) validateDiscards(powerupID string, ids []string, want int) error {
	if len(ids) != want {
		return ErrInvalidState
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == powerupID || seen[id] {
			return ErrInvalidState
		}
		seen[id] = true
		if _, ok := r.deck.InHand(id); !ok {
			return deck.ErrNotFound
		}
	}
	return nil
}

// mustPlay spends a card already verified to be in hand.
func (r *Round) mustPlay(instanceID string) {
	if _, err := r.deck.Play(instanceID); err != nil {
		// Presence was checked by the caller under the same lock.
		panic("game: played card vanished from hand")
	}
}
