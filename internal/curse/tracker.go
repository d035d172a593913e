// Package curse tracks the curses currently weighing on the seekers. The
// tracker owns no clock: callers pass "now" into activation and expiry checks,
// and decide the polling cadence themselves.
package curse

import (
	"errors"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

var (
	ErrConflict = errors.New("a blocking curse is already active")
	ErrNotFound = errors.New("curse not active")
)

type ClearReason string

const (
	ClearedManually ClearReason = "manual"
	ClearedExpired  ClearReason = "expired"
)

// Active is one activated curse. Blocking flags are copied from the
// definition at activation time; ExpiresAt is set only for curses that
// declare a duration.
type Active struct {
	CardID          string      `json:"cardId"`
	ActivatedAt     time.Time   `json:"activatedAt"`
	BlocksQuestions bool        `json:"blocksQuestions"`
	BlocksTransit   bool        `json:"blocksTransit"`
	ExpiresAt       *time.Time  `json:"expiresAt,omitempty"`
	ClearedAt       *time.Time  `json:"clearedAt,omitempty"`
	ClearReason     ClearReason `json:"clearReason,omitempty"`
}

func (a Active) cleared() bool { return a.ClearedAt != nil }

func (a Active) blocking() bool {
	return !a.cleared() && (a.BlocksQuestions || a.BlocksTransit)
}

// Tracker owns the activation history of a round. Cleared curses stay in the
// list for the record; queries only consider uncleared entries.
type Tracker struct {
	curses []Active
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Activate records a new active curse. A curse that would set a blocking flag
// is rejected with ErrConflict while any other blocking curse is active — the
// rulebook allows at most one curse blocking questions or transit at a time.
func (t *Tracker) Activate(def catalog.Card, size catalog.GameSize, now time.Time) (Active, error) {
	if (def.BlocksQuestions || def.BlocksTransit) && t.hasBlocking() {
		return Active{}, ErrConflict
	}
	for _, c := range t.curses {
		if c.CardID == def.ID && !c.cleared() {
			return Active{}, ErrConflict
		}
	}

	a := Active{
		CardID:          def.ID,
		ActivatedAt:     now,
		BlocksQuestions: def.BlocksQuestions,
		BlocksTransit:   def.BlocksTransit,
	}
	if def.DurationMinutes != nil {
		exp := now.Add(time.Duration(def.DurationMinutes.For(size)) * time.Minute)
		a.ExpiresAt = &exp
	}
	t.curses = append(t.curses, a)
	return a, nil
}

// CheckExpiries clears every active curse whose expiry is at or before now
// and returns the newly cleared ones. Idempotent: a second call with the same
// now changes nothing.
func (t *Tracker) CheckExpiries(now time.Time) []Active {
	var expired []Active
	for i := range t.curses {
		c := &t.curses[i]
		if c.cleared() || c.ExpiresAt == nil || c.ExpiresAt.After(now) {
			continue
		}
		at := now
		c.ClearedAt = &at
		c.ClearReason = ClearedExpired
		expired = append(expired, *c)
	}
	return expired
}

// ClearManually clears the named active curse, used when the seekers resolve
// it out of band (completing the challenge, paying the penalty).
func (t *Tracker) ClearManually(cardID string, now time.Time) error {
	for i := range t.curses {
		c := &t.curses[i]
		if c.CardID == cardID && !c.cleared() {
			at := now
			c.ClearedAt = &at
			c.ClearReason = ClearedManually
			return nil
		}
	}
	return ErrNotFound
}

// Active returns the uncleared curses in activation order.
func (t *Tracker) Active() []Active {
	var out []Active
	for _, c := range t.curses {
		if !c.cleared() {
			out = append(out, c)
		}
	}
	return out
}

// BlockingQuestions reports whether any active curse blocks questions.
func (t *Tracker) BlockingQuestions() bool {
	for _, c := range t.curses {
		if !c.cleared() && c.BlocksQuestions {
			return true
		}
	}
	return false
}

// BlockingTransit reports whether any active curse blocks transit.
func (t *Tracker) BlockingTransit() bool {
	for _, c := range t.curses {
		if !c.cleared() && c.BlocksTransit {
			return true
		}
	}
	return false
}

func (t *Tracker) hasBlocking() bool {
	for _, c := range t.curses {
		if c.blocking() {
			return true
		}
	}
	return false
}

// Snapshot returns the full activation history, cleared entries included.
func (t *Tracker) Snapshot() []Active {
	return append([]Active(nil), t.curses...)
}

// Restore rebuilds a tracker from a snapshot.
func Restore(curses []Active) *Tracker {
	return &Tracker{curses: append([]Active(nil), curses...)}
}
