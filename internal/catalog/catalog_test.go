package catalog

import "testing"

func TestDeckComposition(t *testing.T) {
	counts := map[CardType]int{}
	for _, c := range cards {
		counts[c.Type] += c.Quantity
	}

	if got := counts[TypeTimeBonus]; got != 55 {
		t.Errorf("time bonus quantity = %d, want 55", got)
	}
	if got := counts[TypePowerup]; got != 21 {
		t.Errorf("powerup quantity = %d, want 21", got)
	}
	if got := counts[TypeCurse]; got != 24 {
		t.Errorf("curse quantity = %d, want 24", got)
	}
	if got := counts[TypeTimeTrap]; got != 0 {
		t.Errorf("time trap quantity = %d, want 0 (never shuffled in)", got)
	}
	if got := DeckSize(); got != 100 {
		t.Errorf("DeckSize() = %d, want 100", got)
	}
}

func TestCursesAreSingletons(t *testing.T) {
	for _, c := range CardsByType(TypeCurse) {
		if c.Quantity != 1 {
			t.Errorf("curse %s quantity = %d, want 1", c.ID, c.Quantity)
		}
	}
}

func TestTimeBonusValueScalesWithSize(t *testing.T) {
	tests := []struct {
		tier int
		size GameSize
		want int
	}{
		{1, SizeSmall, 2},
		{1, SizeLarge, 10},
		{3, SizeMedium, 15},
		{5, SizeLarge, 60},
	}
	for _, tt := range tests {
		if got := TimeBonusValue(tt.tier, tt.size); got != tt.want {
			t.Errorf("TimeBonusValue(%d, %s) = %d, want %d", tt.tier, tt.size, got, tt.want)
		}
	}
	if got := TimeBonusValue(99, SizeSmall); got != 0 {
		t.Errorf("TimeBonusValue(99, small) = %d, want 0", got)
	}
}

func TestBlockingCurseFlags(t *testing.T) {
	var questions, transit int
	for _, c := range CardsByType(TypeCurse) {
		if c.BlocksQuestions {
			questions++
		}
		if c.BlocksTransit {
			transit++
		}
		if c.BlocksQuestions && c.BlocksTransit {
			t.Errorf("curse %s sets both blocking flags", c.ID)
		}
	}
	if questions != 4 {
		t.Errorf("question-blocking curses = %d, want 4", questions)
	}
	if transit != 3 {
		t.Errorf("transit-blocking curses = %d, want 3", transit)
	}
}

func TestCardByID(t *testing.T) {
	c, ok := CardByID("pw-veto")
	if !ok || c.Powerup != PowerupVeto {
		t.Fatalf("CardByID(pw-veto) = %+v, %v", c, ok)
	}
	if _, ok := CardByID("no-such-card"); ok {
		t.Fatal("CardByID returned ok for unknown id")
	}
}

func TestTentaclesExcludedFromSmallGames(t *testing.T) {
	cat, ok := CategoryByID("tentacles")
	if !ok {
		t.Fatal("tentacles category missing")
	}
	if cat.AvailableIn(SizeSmall) {
		t.Error("tentacles available in small games")
	}
	if !cat.AvailableIn(SizeMedium) || !cat.AvailableIn(SizeLarge) {
		t.Error("tentacles missing from medium or large games")
	}
	if qs := QuestionsByCategory("tentacles", SizeSmall); qs != nil {
		t.Errorf("QuestionsByCategory(tentacles, small) = %d questions, want none", len(qs))
	}
}

func TestEveryQuestionHasKnownCategory(t *testing.T) {
	for _, q := range questions {
		if _, ok := CategoryByID(q.CategoryID); !ok {
			t.Errorf("question %s references unknown category %s", q.ID, q.CategoryID)
		}
	}
}
