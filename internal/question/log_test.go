package question

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

func mustQuestion(t *testing.T, id string) catalog.Question {
	t.Helper()
	q, ok := catalog.QuestionByID(id)
	if !ok {
		t.Fatalf("question %s missing from catalog", id)
	}
	return q
}

func newTestLog() *Log {
	return NewLog(rand.New(rand.NewSource(1)))
}

func TestAskAndAnswer(t *testing.T) {
	l := newTestLog()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	if err := l.Ask(mustQuestion(t, "q-radar-half"), now); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	pending := l.Pending()
	if pending == nil || pending.QuestionID != "q-radar-half" || pending.Status != StatusPending {
		t.Fatalf("Pending = %+v", pending)
	}

	asked, err := l.Answer(now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if asked.Status != StatusAnswered || asked.ResolvedAt == nil {
		t.Errorf("answered entry = %+v", asked)
	}
	if l.Pending() != nil {
		t.Error("question still pending after answer")
	}
}

func TestOnePendingAtATime(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()

	if err := l.Ask(mustQuestion(t, "q-radar-half"), now); err != nil {
		t.Fatal(err)
	}
	if err := l.Ask(mustQuestion(t, "q-photo-sky"), now); !errors.Is(err, ErrPending) {
		t.Fatalf("second Ask = %v, want ErrPending", err)
	}
}

func TestNoReasks(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()

	l.Ask(mustQuestion(t, "q-radar-half"), now)
	l.Answer(now)

	if err := l.Ask(mustQuestion(t, "q-radar-half"), now); err == nil {
		t.Fatal("re-asking an answered question succeeded")
	}
}

func TestVeto(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()

	if _, err := l.Veto(now); !errors.Is(err, ErrNonePending) {
		t.Fatalf("Veto with nothing pending = %v, want ErrNonePending", err)
	}

	l.Ask(mustQuestion(t, "q-photo-sky"), now)
	asked, err := l.Veto(now)
	if err != nil {
		t.Fatalf("Veto: %v", err)
	}
	if asked.Status != StatusVetoed {
		t.Errorf("vetoed entry status = %s", asked.Status)
	}
}

func TestReplacePending(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()

	l.Ask(mustQuestion(t, "q-radar-half"), now)
	original := *l.Pending()

	if err := l.ReplacePending(mustQuestion(t, "q-radar-one")); err != nil {
		t.Fatalf("ReplacePending: %v", err)
	}
	pending := l.Pending()
	if pending.QuestionID != "q-radar-one" {
		t.Errorf("pending = %s, want q-radar-one", pending.QuestionID)
	}
	if !pending.AskedAt.Equal(original.AskedAt) {
		t.Error("replacement did not keep the original asked-at time")
	}
}

func TestPickRandomUnaskedSkipsHistory(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()

	// Exhaust all but one radar question.
	for _, id := range []string{"q-radar-quarter", "q-radar-half", "q-radar-one"} {
		if err := l.Ask(mustQuestion(t, id), now); err != nil {
			t.Fatal(err)
		}
		l.Answer(now)
	}

	q, ok := l.PickRandomUnasked("radar", catalog.SizeSmall)
	if !ok || q.ID != "q-radar-three" {
		t.Fatalf("PickRandomUnasked = %+v, %v; want q-radar-three", q, ok)
	}

	l.Ask(q, now)
	l.Answer(now)
	if _, ok := l.PickRandomUnasked("radar", catalog.SizeSmall); ok {
		t.Error("PickRandomUnasked found a question in an exhausted category")
	}
}

func TestRestoreKeepsPending(t *testing.T) {
	l := newTestLog()
	now := time.Now().UTC()
	l.Ask(mustQuestion(t, "q-radar-half"), now)

	restored := Restore(l.History(), rand.New(rand.NewSource(2)))
	if p := restored.Pending(); p == nil || p.QuestionID != "q-radar-half" {
		t.Fatalf("restored pending = %+v", restored.Pending())
	}
}
