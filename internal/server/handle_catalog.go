package server

import (
	"net/http"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
)

type CardCatalogResponse struct {
	DeckSize int            `json:"deckSize"`
	Cards    []catalog.Card `json:"cards"`
}

func handleCardCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CardCatalogResponse{
			DeckSize: catalog.DeckSize(),
			Cards:    catalog.Cards(),
		})
	}
}

type QuestionCategoryView struct {
	Category  catalog.Category   `json:"category"`
	Questions []catalog.Question `json:"questions"`
}

// handleQuestionCatalog lists the ask-able questions, grouped by category.
// An optional size query narrows the list to the categories available at
// that game size.
func handleQuestionCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size := catalog.GameSize(r.URL.Query().Get("size"))
		if size == "" {
			// Every category is available at the large size.
			size = catalog.SizeLarge
		}
		if !size.Valid() {
			writeError(w, http.StatusBadRequest, "unknown game size")
			return
		}

		var out []QuestionCategoryView
		for _, cat := range catalog.Categories() {
			if !cat.AvailableIn(size) {
				continue
			}
			out = append(out, QuestionCategoryView{
				Category:  cat,
				Questions: catalog.QuestionsByCategory(cat.ID, size),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
