package catalog

// The hider's deck. Quantities follow the printed game: 55 time bonuses,
// 21 powerups, and one copy of each of the 24 curses — 100 cards in the
// small-size deck. Time traps ship outside the deck and only reach a hand
// through manual entry.
var cards = []Card{
	// Time bonuses, five tiers.
	{ID: "tb-1", Type: TypeTimeBonus, Name: "Time Bonus I", Tier: 1,
		BonusMinutes: Minutes{Small: 2, Medium: 5, Large: 10}, Quantity: 20},
	{ID: "tb-2", Type: TypeTimeBonus, Name: "Time Bonus II", Tier: 2,
		BonusMinutes: Minutes{Small: 4, Medium: 10, Large: 20}, Quantity: 14},
	{ID: "tb-3", Type: TypeTimeBonus, Name: "Time Bonus III", Tier: 3,
		BonusMinutes: Minutes{Small: 6, Medium: 15, Large: 30}, Quantity: 10},
	{ID: "tb-4", Type: TypeTimeBonus, Name: "Time Bonus IV", Tier: 4,
		BonusMinutes: Minutes{Small: 8, Medium: 20, Large: 40}, Quantity: 7},
	{ID: "tb-5", Type: TypeTimeBonus, Name: "Time Bonus V", Tier: 5,
		BonusMinutes: Minutes{Small: 10, Medium: 25, Large: 60}, Quantity: 4},

	// Powerups.
	{ID: "pw-veto", Type: TypePowerup, Name: "Veto", Powerup: PowerupVeto,
		Description: "Cancel the seekers' current question. You receive no cards for it.",
		Quantity:    4, EndgamePlayable: true},
	{ID: "pw-randomize", Type: TypePowerup, Name: "Randomize", Powerup: PowerupRandomize,
		Description: "Swap the current question for a random unasked question from the same category.",
		Quantity:    4, EndgamePlayable: true},
	{ID: "pw-discard1", Type: TypePowerup, Name: "Discard 1, Draw 2", Powerup: PowerupDiscard1Draw2,
		Description: "Discard one other card from your hand, then draw two. Keep everything you draw.",
		Quantity:    4, EndgamePlayable: true},
	{ID: "pw-discard2", Type: TypePowerup, Name: "Discard 2, Draw 3", Powerup: PowerupDiscard2Draw3,
		Description: "Discard two other cards from your hand, then draw three. Keep everything you draw.",
		Quantity:    2, EndgamePlayable: true},
	{ID: "pw-expand", Type: TypePowerup, Name: "Draw 1, Expand 1", Powerup: PowerupDrawExpand,
		Description: "Draw a card. Your hand limit is raised by one for the rest of the round.",
		Quantity:    2},
	{ID: "pw-duplicate", Type: TypePowerup, Name: "Duplicate", Powerup: PowerupDuplicate,
		Description: "Copy another card in your hand. The copy goes straight to your hand.",
		Quantity:    3, EndgamePlayable: true},
	{ID: "pw-move", Type: TypePowerup, Name: "Move", Powerup: PowerupMove,
		Description: "Discard your entire hand and relocate to a new hiding zone. The hiding clock is frozen until you confirm the new zone.",
		Quantity:    2},

	// Curses, one copy each.
	{ID: "cu-zoologist", Type: TypeCurse, Name: "Curse of the Zoologist",
		Description: "Seekers must photograph a wild animal before asking another question.",
		CastingCost: "Photograph a wild animal yourself", BlocksQuestions: true,
		EndgamePlayable: true, Quantity: 1},
	{ID: "cu-unguided-tourist", Type: TypeCurse, Name: "Curse of the Unguided Tourist",
		Description: "Seekers must visit the nearest tourist attraction before using transit.",
		CastingCost: "Name three local attractions", BlocksTransit: true, Quantity: 1},
	{ID: "cu-endless-tumble", Type: TypeCurse, Name: "Curse of the Endless Tumble",
		Description:    "Seekers must roll a die to 6 before moving on.",
		CastingCost:    "Roll a die, take the penalty",
		PenaltyMinutes: &Minutes{Small: 4, Medium: 10, Large: 20}, Quantity: 1},
	{ID: "cu-hidden-hangman", Type: TypeCurse, Name: "Curse of the Hidden Hangman",
		Description: "Seekers must win a game of hangman before asking another question.",
		CastingCost: "Pick a five-letter word", BlocksQuestions: true, Quantity: 1},
	{ID: "cu-overflowing-chalice", Type: TypeCurse, Name: "Curse of the Overflowing Chalice",
		Description: "The next question the seekers ask grants you an extra card draw.",
		CastingCost: "Discard a card", EndgamePlayable: true, Quantity: 1},
	{ID: "cu-mediocre-agent", Type: TypeCurse, Name: "Curse of the Mediocre Travel Agent",
		Description: "Seekers must detour through a location of your choosing.",
		CastingCost: "Pick a location you have visited this round", Quantity: 1},
	{ID: "cu-luxury-car", Type: TypeCurse, Name: "Curse of the Luxury Car",
		Description: "Seekers may not board transit until they photograph a luxury car.",
		CastingCost: "Photograph any car", BlocksTransit: true, Quantity: 1},
	{ID: "cu-u-turn", Type: TypeCurse, Name: "Curse of the U-Turn",
		Description: "Seekers must reverse their last transit leg.",
		CastingCost: "Reveal your nearest station", Quantity: 1},
	{ID: "cu-bridge-troll", Type: TypeCurse, Name: "Curse of the Bridge Troll",
		Description: "Seekers must cross a bridge on foot before continuing.",
		CastingCost: "Be within sight of water", Quantity: 1},
	{ID: "cu-water-weight", Type: TypeCurse, Name: "Curse of the Water Weight",
		Description:     "Each seeker must carry a filled water bottle for the duration.",
		CastingCost:     "Drink a glass of water",
		DurationMinutes: &Minutes{Small: 10, Medium: 20, Large: 40}, Quantity: 1},
	{ID: "cu-jammed-door", Type: TypeCurse, Name: "Curse of the Jammed Door",
		Description:     "Seekers may not pass through the next door they reach for the duration.",
		CastingCost:     "Discard two cards",
		DurationMinutes: &Minutes{Small: 5, Medium: 10, Large: 20}, Quantity: 1},
	{ID: "cu-cairn", Type: TypeCurse, Name: "Curse of the Cairn",
		Description: "Seekers must build a stack of five stones before asking another question.",
		CastingCost: "Build your own stack first", BlocksQuestions: true, Quantity: 1},
	{ID: "cu-urban-explorer", Type: TypeCurse, Name: "Curse of the Urban Explorer",
		Description: "Seekers may only use streets they have not walked this round.",
		CastingCost: "Name the street you are hiding on to yourself", Quantity: 1},
	{ID: "cu-impressionable-consumer", Type: TypeCurse, Name: "Curse of the Impressionable Consumer",
		Description: "Seekers must buy something from the next shop they pass.",
		CastingCost: "Spend nothing for the rest of the round", Quantity: 1},
	{ID: "cu-egg-partner", Type: TypeCurse, Name: "Curse of the Egg Partner",
		Description: "Seekers must carry an uncracked egg until the end of the round.",
		CastingCost: "Obtain an egg for the seekers", Quantity: 1},
	{ID: "cu-distant-cuisine", Type: TypeCurse, Name: "Curse of the Distant Cuisine",
		Description: "Seekers must eat at a restaurant serving foreign cuisine before transit.",
		CastingCost: "Name five foreign dishes", BlocksTransit: true, Quantity: 1},
	{ID: "cu-right-turn", Type: TypeCurse, Name: "Curse of the Right Turn",
		Description:     "Seekers may only turn right for the duration.",
		CastingCost:     "Discard a card",
		DurationMinutes: &Minutes{Small: 8, Medium: 15, Large: 30}, Quantity: 1},
	{ID: "cu-labyrinth", Type: TypeCurse, Name: "Curse of the Labyrinth",
		Description: "Seekers must solve a maze you draw before continuing.",
		CastingCost: "Draw the maze within two minutes", Quantity: 1},
	{ID: "cu-bird-guide", Type: TypeCurse, Name: "Curse of the Bird Guide",
		Description: "Seekers must film a bird for thirty uninterrupted seconds.",
		CastingCost: "Spot a bird yourself", EndgamePlayable: true, Quantity: 1},
	{ID: "cu-spotty-memory", Type: TypeCurse, Name: "Curse of the Spotty Memory",
		Description: "Seekers lose access to one already-answered question category.",
		CastingCost: "Discard a time bonus", Quantity: 1},
	{ID: "cu-gamblers-feet", Type: TypeCurse, Name: "Curse of the Gambler's Feet",
		Description:     "Seekers must roll a die before each turn; on 1-2 they stand still for a minute.",
		CastingCost:     "Roll the die once yourself",
		DurationMinutes: &Minutes{Small: 10, Medium: 25, Large: 45}, Quantity: 1},
	{ID: "cu-ransom-note", Type: TypeCurse, Name: "Curse of the Ransom Note",
		Description: "Your next answer is delivered as a ransom note cut from found text.",
		CastingCost: "Assemble the note", EndgamePlayable: true, Quantity: 1},
	{ID: "cu-drained-brain", Type: TypeCurse, Name: "Curse of the Drained Brain",
		Description:     "Seekers may not ask questions for the duration.",
		CastingCost:     "Discard your highest time bonus",
		BlocksQuestions: true,
		DurationMinutes: &Minutes{Small: 5, Medium: 12, Large: 25}, Quantity: 1},
	{ID: "cu-slow-march", Type: TypeCurse, Name: "Curse of the Slow March",
		Description:    "Seekers must walk heel-to-toe whenever they are within a station.",
		CastingCost:    "Walk heel-to-toe while casting",
		PenaltyMinutes: &Minutes{Small: 3, Medium: 8, Large: 15}, Quantity: 1},

	// Time traps — expansion content, never shuffled into the deck.
	{ID: "tt-tripwire", Type: TypeTimeTrap, Name: "Tripwire",
		Description:      "If the seekers trigger this trap, the hider banks the triggered bonus.",
		TriggeredMinutes: Minutes{Small: 5, Medium: 12, Large: 25}},
	{ID: "tt-decoy", Type: TypeTimeTrap, Name: "Decoy",
		Description:      "A planted false trail. Banks its bonus when the seekers follow it.",
		TriggeredMinutes: Minutes{Small: 8, Medium: 18, Large: 35}},
}
