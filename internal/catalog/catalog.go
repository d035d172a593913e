// Package catalog defines the static card and question definitions the game
// engine consumes by ID. It has zero external dependencies — everything here
// is pure Go and immutable at runtime.
package catalog

// GameSize scales minute-valued fields and available content. Selected once
// at round setup and immutable for the round.
type GameSize string

const (
	SizeSmall  GameSize = "small"
	SizeMedium GameSize = "medium"
	SizeLarge  GameSize = "large"
)

// Valid reports whether s is one of the three known sizes.
func (s GameSize) Valid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

type CardType string

const (
	TypeTimeBonus CardType = "time_bonus"
	TypePowerup   CardType = "powerup"
	TypeCurse     CardType = "curse"
	TypeTimeTrap  CardType = "time_trap"
)

type PowerupKind string

const (
	PowerupVeto          PowerupKind = "veto"
	PowerupRandomize     PowerupKind = "randomize"
	PowerupDiscard1Draw2 PowerupKind = "discard1_draw2"
	PowerupDiscard2Draw3 PowerupKind = "discard2_draw3"
	PowerupDrawExpand    PowerupKind = "draw_expand"
	PowerupDuplicate     PowerupKind = "duplicate"
	PowerupMove          PowerupKind = "move"
)

// Minutes holds a minute value for each game size.
type Minutes struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
}

// For returns the value scaled to the given size. Unknown sizes fall back to
// the small value.
func (m Minutes) For(size GameSize) int {
	switch size {
	case SizeMedium:
		return m.Medium
	case SizeLarge:
		return m.Large
	default:
		return m.Small
	}
}

// Card is a flat tagged record: Type is the discriminant and only the fields
// relevant to that type are set. Many instances in a deck may share one Card.
type Card struct {
	ID          string   `json:"id"`
	Type        CardType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`

	// time_bonus
	Tier         int     `json:"tier,omitempty"`
	BonusMinutes Minutes `json:"bonusMinutes,omitzero"`

	// powerup
	Powerup PowerupKind `json:"powerup,omitempty"`

	// curse
	CastingCost     string   `json:"castingCost,omitempty"`
	BlocksQuestions bool     `json:"blocksQuestions,omitempty"`
	BlocksTransit   bool     `json:"blocksTransit,omitempty"`
	PenaltyMinutes  *Minutes `json:"penaltyMinutes,omitempty"`
	DurationMinutes *Minutes `json:"durationMinutes,omitempty"`

	// time_trap
	TriggeredMinutes Minutes `json:"triggeredMinutes,omitzero"`

	// Quantity is how many instances of this card the initial deck holds.
	// Curses carry quantity 1; time traps quantity 0 (expansion-only).
	Quantity int `json:"quantity"`

	// EndgamePlayable marks powerups and curses that may still be played
	// once the round enters the end-game phase.
	EndgamePlayable bool `json:"endgamePlayable,omitempty"`
}

var cardsByID = func() map[string]Card {
	m := make(map[string]Card, len(cards))
	for _, c := range cards {
		m[c.ID] = c
	}
	return m
}()

// CardByID returns the card definition for id.
func CardByID(id string) (Card, bool) {
	c, ok := cardsByID[id]
	return c, ok
}

// CardsByType returns all card definitions of the given type, in seed order.
func CardsByType(t CardType) []Card {
	var out []Card
	for _, c := range cards {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Cards returns every card definition in seed order.
func Cards() []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// TimeBonusValue returns the bonus minutes for a time-bonus tier at the given
// game size, or 0 for an unknown tier.
func TimeBonusValue(tier int, size GameSize) int {
	for _, c := range cards {
		if c.Type == TypeTimeBonus && c.Tier == tier {
			return c.BonusMinutes.For(size)
		}
	}
	return 0
}

// DeckSize returns the total number of instances an initial deck holds.
// The composition is size-independent; sizes scale minute values, not counts.
func DeckSize() int {
	total := 0
	for _, c := range cards {
		total += c.Quantity
	}
	return total
}
