package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
)

type DrawCardsRequest struct {
	Count int `json:"count"`
}

type DrawCardsResponse struct {
	Drawn []CardView `json:"drawn"`
	Short bool       `json:"short"`
}

func handleDrawCards(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DrawCardsRequest
		if err := readJSON(r, &req); err != nil || req.Count < 1 {
			writeError(w, http.StatusBadRequest, "count must be at least 1")
			return
		}

		sess := sessionFrom(r)
		var res deck.DrawResult
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			res, err = round.DrawCards(req.Count)
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "cards_drawn", Count: len(res.Drawn)})
		writeJSON(w, http.StatusOK, DrawCardsResponse{Drawn: cardViews(res.Drawn), Short: res.Short})
	}
}

func handleDiscardCard(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instanceID := chi.URLParam(r, "instanceID")

		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			return round.DiscardCard(instanceID)
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "card_discarded"})
		w.WriteHeader(http.StatusNoContent)
	}
}

type AddCardRequest struct {
	CardID string `json:"cardId"`
}

// handleAddCard enters a card into the hand outside the fixed deck, for
// expansion content like time traps handed over physically.
func handleAddCard(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddCardRequest
		if err := readJSON(r, &req); err != nil || req.CardID == "" {
			writeError(w, http.StatusBadRequest, "cardId is required")
			return
		}

		sess := sessionFrom(r)
		var inst deck.Instance
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			inst, err = round.AddCard(req.CardID)
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "card_added", CardID: inst.CardID})
		writeJSON(w, http.StatusCreated, cardViews([]deck.Instance{inst})[0])
	}
}

type PlayCardRequest struct {
	DiscardIDs        []string `json:"discardIds,omitempty"`
	DuplicateTargetID string   `json:"duplicateTargetId,omitempty"`
}

type PlayCardResponse struct {
	Type    catalog.CardType     `json:"type"`
	Powerup *game.PowerupOutcome `json:"powerup,omitempty"`
	Curse   *curse.Active        `json:"curse,omitempty"`
}

// handlePlayCard resolves a card from the hand, dispatching on its type:
// powerups resolve their effect, curses activate against the seekers. Time
// bonuses and traps are never played; they sit in hand until the round ends.
func handlePlayCard(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instanceID := chi.URLParam(r, "instanceID")

		var req PlayCardRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		sess := sessionFrom(r)
		now := time.Now().UTC()
		var resp PlayCardResponse
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			d := round.Deck()
			if d == nil {
				return game.ErrInvalidState
			}
			inst, ok := d.InHand(instanceID)
			if !ok {
				return deck.ErrNotFound
			}
			resp.Type = inst.Type
			switch inst.Type {
			case catalog.TypePowerup:
				out, err := round.PlayPowerup(instanceID, game.PowerupOptions{
					DiscardIDs:        req.DiscardIDs,
					DuplicateTargetID: req.DuplicateTargetID,
				}, now)
				if err != nil {
					return err
				}
				resp.Powerup = &out
			case catalog.TypeCurse:
				active, err := round.PlayCurse(instanceID, now)
				if err != nil {
					return err
				}
				resp.Curse = &active
			default:
				return game.ErrInvalidState
			}
			return nil
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		event := SSEEvent{Type: "card_played"}
		if resp.Curse != nil {
			event.Type = "curse_activated"
			event.CardID = resp.Curse.CardID
		}
		broker.Publish(sess.id, event)
		writeJSON(w, http.StatusOK, resp)
	}
}
