// Package question records which questions the seekers have asked and how
// each one resolved. At most one question is pending at a time; the pending
// question is the one card effects like Veto and Randomize act on.
package question

import (
	"errors"
	"math/rand"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

var (
	ErrNotFound    = errors.New("question not found")
	ErrPending     = errors.New("a question is already pending")
	ErrNonePending = errors.New("no question is pending")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
	StatusVetoed   Status = "vetoed"
)

// Asked is one entry in the log.
type Asked struct {
	QuestionID string     `json:"questionId"`
	CategoryID string     `json:"categoryId"`
	Status     Status     `json:"status"`
	AskedAt    time.Time  `json:"askedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

// Log tracks asked questions for one round.
type Log struct {
	rng   *rand.Rand
	asked []Asked
}

func NewLog(rng *rand.Rand) *Log {
	return &Log{rng: rng}
}

// Ask records a question as pending. A question may be asked at most once per
// round, and only one question may be pending at a time.
func (l *Log) Ask(q catalog.Question, now time.Time) error {
	if l.Pending() != nil {
		return ErrPending
	}
	for _, a := range l.asked {
		if a.QuestionID == q.ID {
			return ErrPending
		}
	}
	l.asked = append(l.asked, Asked{
		QuestionID: q.ID,
		CategoryID: q.CategoryID,
		Status:     StatusPending,
		AskedAt:    now,
	})
	return nil
}

// Answer marks the pending question answered and returns its entry.
func (l *Log) Answer(now time.Time) (Asked, error) {
	return l.resolve(StatusAnswered, now)
}

// Veto marks the pending question vetoed. Vetoed questions grant no cards.
func (l *Log) Veto(now time.Time) (Asked, error) {
	return l.resolve(StatusVetoed, now)
}

func (l *Log) resolve(status Status, now time.Time) (Asked, error) {
	for i := range l.asked {
		if l.asked[i].Status == StatusPending {
			l.asked[i].Status = status
			at := now
			l.asked[i].ResolvedAt = &at
			return l.asked[i], nil
		}
	}
	return Asked{}, ErrNonePending
}

// ReplacePending swaps the pending question for another one in the same
// category without resolving it — the Randomize powerup. The replacement
// keeps the original asked-at time.
func (l *Log) ReplacePending(q catalog.Question) error {
	for i := range l.asked {
		if l.asked[i].Status == StatusPending {
			l.asked[i].QuestionID = q.ID
			l.asked[i].CategoryID = q.CategoryID
			return nil
		}
	}
	return ErrNonePending
}

// Pending returns the pending entry, or nil.
func (l *Log) Pending() *Asked {
	for i := range l.asked {
		if l.asked[i].Status == StatusPending {
			return &l.asked[i]
		}
	}
	return nil
}

// PickRandomUnasked returns a uniformly random question from the category
// that has not been asked this round. The pending question counts as asked.
func (l *Log) PickRandomUnasked(categoryID string, size catalog.GameSize) (catalog.Question, bool) {
	used := make(map[string]bool, len(l.asked))
	for _, a := range l.asked {
		used[a.QuestionID] = true
	}
	var pool []catalog.Question
	for _, q := range catalog.QuestionsByCategory(categoryID, size) {
		if !used[q.ID] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return catalog.Question{}, false
	}
	return pool[l.rng.Intn(len(pool))], true
}

// History returns every entry in ask order.
func (l *Log) History() []Asked {
	return append([]Asked(nil), l.asked...)
}

// Restore rebuilds a log from its history.
func Restore(asked []Asked, rng *rand.Rand) *Log {
	return &Log{rng: rng, asked: append([]Asked(nil), asked...)}
}
