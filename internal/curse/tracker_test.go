package curse

import (
	"errors"
	"testing"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

func mustCard(t *testing.T, id string) catalog.Card {
	t.Helper()
	def, ok := catalog.CardByID(id)
	if !ok {
		t.Fatalf("card %s missing from catalog", id)
	}
	return def
}

func TestActivate(t *testing.T) {
	tr := NewTracker()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	a, err := tr.Activate(mustCard(t, "cu-u-turn"), catalog.SizeSmall, now)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if a.CardID != "cu-u-turn" || a.ExpiresAt != nil {
		t.Errorf("Active = %+v", a)
	}
	if got := tr.Active(); len(got) != 1 {
		t.Errorf("Active() = %d entries, want 1", len(got))
	}
}

func TestBlockingCurseConflict(t *testing.T) {
	tr := NewTracker()
	now := time.Now().UTC()

	if _, err := tr.Activate(mustCard(t, "cu-zoologist"), catalog.SizeSmall, now); err != nil {
		t.Fatalf("first blocking curse: %v", err)
	}
	if !tr.BlockingQuestions() {
		t.Fatal("BlockingQuestions false after question-blocking activation")
	}

	// A second blocking curse of either flavor is rejected.
	if _, err := tr.Activate(mustCard(t, "cu-luxury-car"), catalog.SizeSmall, now); !errors.Is(err, ErrConflict) {
		t.Fatalf("second blocking curse = %v, want ErrConflict", err)
	}

	// Non-blocking curses still go through.
	if _, err := tr.Activate(mustCard(t, "cu-u-turn"), catalog.SizeSmall, now); err != nil {
		t.Fatalf("non-blocking curse during block: %v", err)
	}

	// Clearing the blocker frees the slot.
	if err := tr.ClearManually("cu-zoologist", now); err != nil {
		t.Fatalf("ClearManually: %v", err)
	}
	if _, err := tr.Activate(mustCard(t, "cu-luxury-car"), catalog.SizeSmall, now); err != nil {
		t.Fatalf("blocking curse after clear: %v", err)
	}
	if !tr.BlockingTransit() {
		t.Error("BlockingTransit false after transit-blocking activation")
	}
}

func TestDuplicateActiveCurseRejected(t *testing.T) {
	tr := NewTracker()
	now := time.Now().UTC()

	if _, err := tr.Activate(mustCard(t, "cu-u-turn"), catalog.SizeSmall, now); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Activate(mustCard(t, "cu-u-turn"), catalog.SizeSmall, now); !errors.Is(err, ErrConflict) {
		t.Fatalf("re-activating active curse = %v, want ErrConflict", err)
	}
}

func TestExpiry(t *testing.T) {
	tr := NewTracker()
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// Water weight runs 10 minutes at the small size.
	a, err := tr.Activate(mustCard(t, "cu-water-weight"), catalog.SizeSmall, start)
	if err != nil {
		t.Fatal(err)
	}
	if a.ExpiresAt == nil || !a.ExpiresAt.Equal(start.Add(10*time.Minute)) {
		t.Fatalf("ExpiresAt = %v", a.ExpiresAt)
	}

	if cleared := tr.CheckExpiries(start.Add(9 * time.Minute)); len(cleared) != 0 {
		t.Fatalf("cleared %d curses before expiry", len(cleared))
	}

	cleared := tr.CheckExpiries(start.Add(10 * time.Minute))
	if len(cleared) != 1 || cleared[0].ClearReason != ClearedExpired {
		t.Fatalf("at expiry: cleared=%v", cleared)
	}
	if got := tr.Active(); len(got) != 0 {
		t.Errorf("Active() = %d after expiry", len(got))
	}

	// Idempotent.
	if cleared := tr.CheckExpiries(start.Add(11 * time.Minute)); len(cleared) != 0 {
		t.Errorf("second sweep cleared %d curses", len(cleared))
	}
}

func TestExpiryScalesWithGameSize(t *testing.T) {
	tr := NewTracker()
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	a, err := tr.Activate(mustCard(t, "cu-water-weight"), catalog.SizeLarge, start)
	if err != nil {
		t.Fatal(err)
	}
	if a.ExpiresAt == nil || !a.ExpiresAt.Equal(start.Add(40*time.Minute)) {
		t.Fatalf("large-size ExpiresAt = %v, want start+40m", a.ExpiresAt)
	}
}

func TestClearManuallyUnknown(t *testing.T) {
	tr := NewTracker()
	if err := tr.ClearManually("cu-u-turn", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ClearManually on empty tracker = %v, want ErrNotFound", err)
	}
}

func TestSnapshotKeepsClearedHistory(t *testing.T) {
	tr := NewTracker()
	now := time.Now().UTC()
	tr.Activate(mustCard(t, "cu-u-turn"), catalog.SizeSmall, now)
	tr.ClearManually("cu-u-turn", now)

	restored := Restore(tr.Snapshot())
	if snap := restored.Snapshot(); len(snap) != 1 || snap[0].ClearReason != ClearedManually {
		t.Fatalf("restored history = %+v", restored.Snapshot())
	}
	if got := restored.Active(); len(got) != 0 {
		t.Errorf("restored Active() = %d, want 0", len(got))
	}
}
