// Package deck owns the disjoint card pools of a round (undrawn, hand,
// discard, played) and the primitive mutations on them. Every instance lives
// in exactly one pool at any time. Operations validate before they mutate, so
// a failed call leaves the pools untouched.
package deck

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

var ErrNotFound = errors.New("card not in hand")

// Instance is one physical card: a unique ID plus a reference to its
// definition. Many instances may share a definition.
type Instance struct {
	ID     string           `json:"id"`
	CardID string           `json:"cardId"`
	Type   catalog.CardType `json:"type"`
}

// DrawResult reports what a draw produced. Short is set when fewer cards than
// requested were moved to the hand — because the undrawn pool ran out or the
// hand limit was reached. Running short is informational, not an error.
type DrawResult struct {
	Drawn []Instance `json:"drawn"`
	Short bool       `json:"short"`
}

// Deck holds the pools for one round. Not safe for concurrent use; callers
// serialize access.
type Deck struct {
	rng       *rand.Rand
	undrawn   []Instance
	hand      []Instance
	discard   []Instance
	played    []Instance
	handLimit int

	// fixedTotal is the instance count at initialization. duplicates counts
	// instances manufactured afterwards (Duplicate powerup, manual entry);
	// they are supernumerary:
	// undrawn+hand+discard+played == fixedTotal+duplicates.
	fixedTotal int
	duplicates int
}

// New builds the undrawn pool for a fresh round: one instance per unit of
// quantity for every definition. Time traps carry quantity 0 and are excluded.
func New(handLimit int, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng, handLimit: handLimit}
	for _, c := range catalog.Cards() {
		for i := 0; i < c.Quantity; i++ {
			d.undrawn = append(d.undrawn, newInstance(c))
		}
	}
	d.fixedTotal = len(d.undrawn)
	return d
}

func newInstance(c catalog.Card) Instance {
	return Instance{ID: uuid.NewString(), CardID: c.ID, Type: c.Type}
}

// Draw moves up to n instances, chosen uniformly at random without
// replacement, from the undrawn pool to the hand. The count is truncated to
// whatever fits under the hand limit and to whatever the pool still holds.
func (d *Deck) Draw(n int) DrawResult {
	take := n
	if room := d.handLimit - len(d.hand); take > room {
		take = room
	}
	if take > len(d.undrawn) {
		take = len(d.undrawn)
	}
	if take < 0 {
		take = 0
	}

	drawn := make([]Instance, 0, take)
	for i := 0; i < take; i++ {
		j := d.rng.Intn(len(d.undrawn))
		card := d.undrawn[j]
		d.undrawn[j] = d.undrawn[len(d.undrawn)-1]
		d.undrawn = d.undrawn[:len(d.undrawn)-1]
		d.hand = append(d.hand, card)
		drawn = append(drawn, card)
	}
	return DrawResult{Drawn: drawn, Short: take < n}
}

// Discard moves one instance from the hand to the discard pile.
func (d *Deck) Discard(instanceID string) error {
	card, err := d.removeFromHand(instanceID)
	if err != nil {
		return err
	}
	d.discard = append(d.discard, card)
	return nil
}

// Play removes an instance from the hand without adding it to the discard
// pile — the card is spent by its own effect. Spent cards are retained in a
// played pile so no instance is ever lost from the accounting.
func (d *Deck) Play(instanceID string) (Instance, error) {
	card, err := d.removeFromHand(instanceID)
	if err != nil {
		return Instance{}, err
	}
	d.played = append(d.played, card)
	return card, nil
}

// DiscardAndDraw discards every named instance, then draws drawCount new
// cards. All-or-nothing: if any named instance is not in hand (or named
// twice), nothing moves.
func (d *Deck) DiscardAndDraw(instanceIDs []string, drawCount int) (DrawResult, error) {
	seen := make(map[string]bool, len(instanceIDs))
	for _, id := range instanceIDs {
		if seen[id] {
			return DrawResult{}, ErrNotFound
		}
		seen[id] = true
		if _, ok := d.InHand(id); !ok {
			return DrawResult{}, ErrNotFound
		}
	}
	for _, id := range instanceIDs {
		card, _ := d.removeFromHand(id)
		d.discard = append(d.discard, card)
	}
	return d.Draw(drawCount), nil
}

// DiscardHand moves the entire hand to the discard pile and returns the
// discarded instances. Used by the Move powerup after the powerup itself has
// been played.
func (d *Deck) DiscardHand() []Instance {
	discarded := d.hand
	d.discard = append(d.discard, discarded...)
	d.hand = nil
	return discarded
}

// AddToHand manufactures a fresh instance of def and places it directly in
// the hand, bypassing the undrawn pool. The instance is supernumerary and
// does not count against the fixed deck total. Callers are expected to have
// freed a hand slot first (the Duplicate powerup is played before its copy is
// added), so the hand limit is not re-checked here.
func (d *Deck) AddToHand(def catalog.Card) Instance {
	card := newInstance(def)
	d.hand = append(d.hand, card)
	d.duplicates++
	return card
}

// ExpandHandLimit raises the hand limit by one for the rest of the round.
func (d *Deck) ExpandHandLimit() {
	d.handLimit++
}

// InHand returns the instance with the given ID if it is currently in hand.
func (d *Deck) InHand(instanceID string) (Instance, bool) {
	for _, c := range d.hand {
		if c.ID == instanceID {
			return c, true
		}
	}
	return Instance{}, false
}

func (d *Deck) removeFromHand(instanceID string) (Instance, error) {
	for i, c := range d.hand {
		if c.ID == instanceID {
			d.hand = append(d.hand[:i], d.hand[i+1:]...)
			return c, nil
		}
	}
	return Instance{}, ErrNotFound
}

// Hand returns a copy of the current hand.
func (d *Deck) Hand() []Instance {
	out := make([]Instance, len(d.hand))
	copy(out, d.hand)
	return out
}

// DiscardPile returns a copy of the discard pile.
func (d *Deck) DiscardPile() []Instance {
	out := make([]Instance, len(d.discard))
	copy(out, d.discard)
	return out
}

// Played returns a copy of the spent-card pile.
func (d *Deck) Played() []Instance {
	out := make([]Instance, len(d.played))
	copy(out, d.played)
	return out
}

func (d *Deck) HandLimit() int    { return d.handLimit }
func (d *Deck) UndrawnCount() int { return len(d.undrawn) }
func (d *Deck) HandCount() int    { return len(d.hand) }
func (d *Deck) DiscardCount() int { return len(d.discard) }
func (d *Deck) PlayedCount() int  { return len(d.played) }
func (d *Deck) Duplicates() int   { return d.duplicates }

// FixedTotal is the instance count of the initialized deck, excluding
// supernumerary duplicates.
func (d *Deck) FixedTotal() int { return d.fixedTotal }
