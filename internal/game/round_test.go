package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestRound(t *testing.T) (*Round, []Player) {
	t.Helper()
	r := NewRound(WithRand(rand.New(rand.NewSource(1))))
	var players []Player
	for _, name := range []string{"ada", "grace"} {
		p, err := r.AddPlayer(name)
		if err != nil {
			t.Fatalf("AddPlayer(%s): %v", name, err)
		}
		players = append(players, p)
	}
	return r, players
}

// seekingRound returns a started round advanced to the seeking phase.
func seekingRound(t *testing.T) (*Round, []Player) {
	t.Helper()
	r, players := newTestRound(t)
	if err := r.StartRound(players[0].ID, catalog.SizeSmall, testNow); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if err := r.BeginSeeking(); err != nil {
		t.Fatalf("BeginSeeking: %v", err)
	}
	return r, players
}

func TestRosterLimits(t *testing.T) {
	r := NewRound(WithRand(rand.New(rand.NewSource(1))))
	for i, name := range []string{"a", "b", "c", "d"} {
		if _, err := r.AddPlayer(name); err != nil {
			t.Fatalf("AddPlayer #%d: %v", i+1, err)
		}
	}
	if _, err := r.AddPlayer("e"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("fifth AddPlayer = %v, want ErrInvalidState", err)
	}

	players := r.Players()
	if err := r.RemovePlayer(players[1].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	if len(r.Players()) != 3 {
		t.Errorf("roster = %d after removal, want 3", len(r.Players()))
	}
	if err := r.RemovePlayer("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemovePlayer(missing) = %v, want ErrNotFound", err)
	}
}

func TestStartRoundValidation(t *testing.T) {
	r := NewRound(WithRand(rand.New(rand.NewSource(1))))
	p, _ := r.AddPlayer("solo")

	if err := r.StartRound(p.ID, catalog.SizeSmall, testNow); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("StartRound with one player = %v, want ErrInvalidState", err)
	}

	r.AddPlayer("second")
	if err := r.StartRound("missing", catalog.SizeSmall, testNow); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("StartRound with unknown hider = %v, want ErrInvalidState", err)
	}
	if err := r.StartRound(p.ID, catalog.GameSize("galactic"), testNow); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("StartRound with bad size = %v, want ErrInvalidState", err)
	}

	if err := r.StartRound(p.ID, catalog.SizeSmall, testNow); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	if r.Phase() != PhaseHiding || r.HiderID() != p.ID || r.Deck() == nil {
		t.Fatalf("after start: phase=%s hider=%s", r.Phase(), r.HiderID())
	}
	if got := len(r.Seekers()); got != 1 {
		t.Errorf("Seekers() = %d, want 1", got)
	}
}

func TestPhaseTransitions(t *testing.T) {
	r, players := newTestRound(t)

	if err := r.BeginSeeking(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("BeginSeeking in setup = %v", err)
	}
	if err := r.EnterEndGame(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("EnterEndGame in setup = %v", err)
	}
	if _, err := r.CompleteRound(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("CompleteRound in setup = %v", err)
	}

	if err := r.StartRound(players[0].ID, catalog.SizeSmall, testNow); err != nil {
		t.Fatal(err)
	}
	if err := r.EnterEndGame(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("EnterEndGame while hiding = %v", err)
	}
	if err := r.BeginSeeking(); err != nil {
		t.Fatal(err)
	}
	if err := r.EnterEndGame(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.CompleteRound(); err != nil {
		t.Fatal(err)
	}
	if r.Phase() != PhaseComplete {
		t.Fatalf("phase = %s, want complete", r.Phase())
	}
}

func TestCompleteRoundScoresHand(t *testing.T) {
	r, _ := seekingRound(t)

	// A known hand: one tier-5 bonus and one triggered trap, small scaling.
	if _, err := r.AddCard("tb-5"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddCard("tt-tripwire"); err != nil {
		t.Fatal(err)
	}
	if got := r.TimeBonusTotal(); got != 10 {
		t.Errorf("TimeBonusTotal = %d, want 10", got)
	}

	if err := r.EnterEndGame(); err != nil {
		t.Fatal(err)
	}
	res, err := r.CompleteRound()
	if err != nil {
		t.Fatalf("CompleteRound: %v", err)
	}
	if res.TimeBonusMinutes != 10 || res.TrapMinutes != 5 || res.TotalMinutes != 15 {
		t.Fatalf("Result = %+v", res)
	}

	frozen, ok := r.Result()
	if !ok || frozen.TotalMinutes != 15 {
		t.Fatalf("frozen Result = %+v, %v", frozen, ok)
	}
}

func TestMoveFlow(t *testing.T) {
	r, players := newTestRound(t)
	if err := r.StartRound(players[0].ID, catalog.SizeSmall, testNow); err != nil {
		t.Fatal(err)
	}

	if err := r.StartMove(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("StartMove while hiding = %v", err)
	}
	if err := r.ConfirmNewZone(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("ConfirmNewZone while stationary = %v", err)
	}

	r.BeginSeeking()
	if err := r.StartMove(); err != nil {
		t.Fatalf("StartMove: %v", err)
	}
	if !r.HiderMoving() {
		t.Fatal("HiderMoving false after StartMove")
	}
	if err := r.ConfirmNewZone(); err != nil {
		t.Fatalf("ConfirmNewZone: %v", err)
	}
	if r.HiderMoving() {
		t.Fatal("HiderMoving still set after confirmation")
	}
}

func TestResetFromAnyPhase(t *testing.T) {
	r, _ := seekingRound(t)
	r.DrawCards(3)

	r.Reset()
	if r.Phase() != PhaseSetup || len(r.Players()) != 0 || r.Deck() != nil {
		t.Fatalf("after reset: phase=%s players=%d", r.Phase(), len(r.Players()))
	}

	// Idempotent.
	r.Reset()
	if r.Phase() != PhaseSetup {
		t.Fatal("second reset changed phase")
	}
}

func TestAskQuestionRules(t *testing.T) {
	r, players := newTestRound(t)
	if err := r.AskQuestion("q-radar-half", testNow); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("AskQuestion in setup = %v", err)
	}

	if err := r.StartRound(players[0].ID, catalog.SizeSmall, testNow); err != nil {
		t.Fatal(err)
	}
	if err := r.AskQuestion("q-radar-half", testNow); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("AskQuestion while hiding = %v", err)
	}

	r.BeginSeeking()
	if err := r.AskQuestion("no-such-question", testNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown question = %v", err)
	}
	// Tentacles questions are not part of small games.
	if err := r.AskQuestion("q-tentacle-museum", testNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("tentacles in small game = %v", err)
	}
	if err := r.AskQuestion("q-radar-half", testNow); err != nil {
		t.Fatalf("AskQuestion: %v", err)
	}
}

func TestAskQuestionBlockedByCurse(t *testing.T) {
	r, _ := seekingRound(t)

	inst, err := r.AddCard("cu-zoologist")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.PlayCurse(inst.ID, testNow); err != nil {
		t.Fatalf("PlayCurse: %v", err)
	}

	if err := r.AskQuestion("q-radar-half", testNow); !errors.Is(err, ErrQuestionsBlocked) {
		t.Fatalf("AskQuestion under block = %v, want ErrQuestionsBlocked", err)
	}

	if err := r.ClearCurse("cu-zoologist", testNow); err != nil {
		t.Fatal(err)
	}
	if err := r.AskQuestion("q-radar-half", testNow); err != nil {
		t.Fatalf("AskQuestion after clear: %v", err)
	}
}

func TestAnswerQuestionDrawsCategoryReward(t *testing.T) {
	r, _ := seekingRound(t)

	if _, err := r.AnswerQuestion(testNow); !errors.Is(err, question.ErrNonePending) {
		t.Fatalf("AnswerQuestion with nothing pending = %v", err)
	}

	if err := r.AskQuestion("q-match-street", testNow); err != nil {
		t.Fatal(err)
	}
	out, err := r.AnswerQuestion(testNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("AnswerQuestion: %v", err)
	}
	// Matching draws three, keeps one.
	if len(out.Drawn) != 3 || out.KeepCount != 1 || out.Short {
		t.Fatalf("AnswerOutcome = %+v", out)
	}
	if out.Question.Status != question.StatusAnswered {
		t.Errorf("question status = %s", out.Question.Status)
	}
	if r.Deck().HandCount() != 3 {
		t.Errorf("hand = %d after reward, want 3", r.Deck().HandCount())
	}
}

func TestSnapshotRestoreRoundtrip(t *testing.T) {
	r, _ := seekingRound(t)
	r.DrawCards(4)
	r.AskQuestion("q-radar-half", testNow)

	restored := RestoreRound(r.Snapshot(), WithRand(rand.New(rand.NewSource(2))))
	if restored.Phase() != PhaseSeeking || restored.HiderID() != r.HiderID() {
		t.Fatalf("restored phase=%s hider=%s", restored.Phase(), restored.HiderID())
	}
	if restored.Deck().HandCount() != 4 {
		t.Errorf("restored hand = %d, want 4", restored.Deck().HandCount())
	}
	if p := restored.Questions().Pending(); p == nil || p.QuestionID != "q-radar-half" {
		t.Errorf("restored pending = %+v", p)
	}
	if len(restored.Players()) != 2 {
		t.Errorf("restored roster = %d", len(restored.Players()))
	}
}

func TestRestoreZeroSnapshot(t *testing.T) {
	r := RestoreRound(Snapshot{})
	if r.Phase() != PhaseSetup || r.Deck() != nil {
		t.Fatalf("zero snapshot restored to phase=%s", r.Phase())
	}
}
