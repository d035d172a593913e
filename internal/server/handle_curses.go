package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
)

type CursesResponse struct {
	Active           []curse.Active `json:"active"`
	QuestionsBlocked bool           `json:"questionsBlocked"`
	TransitBlocked   bool           `json:"transitBlocked"`
}

func handleListCurses(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		var cleared []curse.Active
		var resp CursesResponse
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			cleared = round.CheckCurseExpiries(time.Now().UTC())
			if c := round.Curses(); c != nil {
				resp.Active = c.Active()
				resp.QuestionsBlocked = c.BlockingQuestions()
				resp.TransitBlocked = c.BlockingTransit()
			}
			return nil
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		for _, c := range cleared {
			broker.Publish(sess.id, SSEEvent{Type: "curse_cleared", CardID: c.CardID})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// handleClearCurse marks a curse resolved by the seekers, ahead of any
// scheduled expiry.
func handleClearCurse(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID := chi.URLParam(r, "cardID")

		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			return round.ClearCurse(cardID, time.Now().UTC())
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "curse_cleared", CardID: cardID})
		w.WriteHeader(http.StatusNoContent)
	}
}
