package catalog

// Category describes a trackable question category: how many cards the hider
// draws when a question in it is answered, how many of those are kept, and
// which game sizes include it.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CardsDraw int        `json:"cardsDraw"`
	CardsKeep int        `json:"cardsKeep"`
	Sizes     []GameSize `json:"sizes"`
}

// AvailableIn reports whether the category is part of a game of the given size.
func (c Category) AvailableIn(size GameSize) bool {
	for _, s := range c.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Question is a single entry the seekers may ask, keyed by ID. The engine is
// agnostic to question content; text exists for the UI.
type Question struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Text       string `json:"text"`
}

var allSizes = []GameSize{SizeSmall, SizeMedium, SizeLarge}

var categories = []Category{
	{ID: "radar", Name: "Radar", CardsDraw: 2, CardsKeep: 1, Sizes: allSizes},
	{ID: "thermometer", Name: "Thermometer", CardsDraw: 2, CardsKeep: 1, Sizes: allSizes},
	{ID: "matching", Name: "Matching", CardsDraw: 3, CardsKeep: 1, Sizes: allSizes},
	{ID: "measuring", Name: "Measuring", CardsDraw: 3, CardsKeep: 1, Sizes: allSizes},
	{ID: "photo", Name: "Photo", CardsDraw: 1, CardsKeep: 1, Sizes: allSizes},
	{ID: "tentacles", Name: "Tentacles", CardsDraw: 4, CardsKeep: 2,
		Sizes: []GameSize{SizeMedium, SizeLarge}},
}

var questions = []Question{
	{ID: "q-radar-quarter", CategoryID: "radar", Text: "Are you within a quarter mile of me?"},
	{ID: "q-radar-half", CategoryID: "radar", Text: "Are you within half a mile of me?"},
	{ID: "q-radar-one", CategoryID: "radar", Text: "Are you within one mile of me?"},
	{ID: "q-radar-three", CategoryID: "radar", Text: "Are you within three miles of me?"},

	{ID: "q-thermo-short", CategoryID: "thermometer", Text: "After we move a quarter mile, are we hotter or colder?"},
	{ID: "q-thermo-long", CategoryID: "thermometer", Text: "After we move one mile, are we hotter or colder?"},

	{ID: "q-match-street", CategoryID: "matching", Text: "Does your street name match ours in first letter?"},
	{ID: "q-match-transit", CategoryID: "matching", Text: "Is your nearest transit line the same as ours?"},
	{ID: "q-match-parity", CategoryID: "matching", Text: "Is your nearest address number odd like ours?"},
	{ID: "q-match-zone", CategoryID: "matching", Text: "Are you in the same map zone as us?"},

	{ID: "q-measure-station", CategoryID: "measuring", Text: "Are you closer to a train station than we are?"},
	{ID: "q-measure-park", CategoryID: "measuring", Text: "Are you closer to a park than we are?"},
	{ID: "q-measure-water", CategoryID: "measuring", Text: "Are you closer to a body of water than we are?"},
	{ID: "q-measure-library", CategoryID: "measuring", Text: "Are you closer to a library than we are?"},

	{ID: "q-photo-sky", CategoryID: "photo", Text: "Send a photo of the sky from where you are."},
	{ID: "q-photo-street", CategoryID: "photo", Text: "Send a photo of the nearest street sign."},
	{ID: "q-photo-feet", CategoryID: "photo", Text: "Send a photo of the ground at your feet."},

	{ID: "q-tentacle-museum", CategoryID: "tentacles", Text: "Name the nearest museum; valid only within one mile."},
	{ID: "q-tentacle-zoo", CategoryID: "tentacles", Text: "Name the nearest zoo; valid only within five miles."},
	{ID: "q-tentacle-cinema", CategoryID: "tentacles", Text: "Name the nearest cinema; valid only within one mile."},
	{ID: "q-tentacle-hospital", CategoryID: "tentacles", Text: "Name the nearest hospital; valid only within two miles."},
}

var questionsByID = func() map[string]Question {
	m := make(map[string]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()

// Categories returns all question categories in seed order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID returns the category definition for id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// QuestionByID returns the question definition for id.
func QuestionByID(id string) (Question, bool) {
	q, ok := questionsByID[id]
	return q, ok
}

// QuestionsByCategory returns the questions of a category that are available
// at the given game size. An empty slice means the category is excluded.
func QuestionsByCategory(categoryID string, size GameSize) []Question {
	cat, ok := CategoryByID(categoryID)
	if !ok || !cat.AvailableIn(size) {
		return nil
	}
	var out []Question
	for _, q := range questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out
}
