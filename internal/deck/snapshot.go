package deck

import "math/rand"

// Snapshot is the plain JSON form of a deck, suitable for the key/value
// persistence store.
type Snapshot struct {
	Undrawn    []Instance `json:"undrawn"`
	Hand       []Instance `json:"hand"`
	Discard    []Instance `json:"discard"`
	Played     []Instance `json:"played"`
	HandLimit  int        `json:"handLimit"`
	FixedTotal int        `json:"fixedTotal"`
	Duplicates int        `json:"duplicates"`
}

// Snapshot captures the full deck state.
func (d *Deck) Snapshot() Snapshot {
	return Snapshot{
		Undrawn:    append([]Instance(nil), d.undrawn...),
		Hand:       append([]Instance(nil), d.hand...),
		Discard:    append([]Instance(nil), d.discard...),
		Played:     append([]Instance(nil), d.played...),
		HandLimit:  d.handLimit,
		FixedTotal: d.fixedTotal,
		Duplicates: d.duplicates,
	}
}

// Restore rebuilds a deck from a snapshot.
func Restore(s Snapshot, rng *rand.Rand) *Deck {
	return &Deck{
		rng:        rng,
		undrawn:    append([]Instance(nil), s.Undrawn...),
		hand:       append([]Instance(nil), s.Hand...),
		discard:    append([]Instance(nil), s.Discard...),
		played:     append([]Instance(nil), s.Played...),
		handLimit:  s.HandLimit,
		fixedTotal: s.FixedTotal,
		duplicates: s.Duplicates,
	}
}
