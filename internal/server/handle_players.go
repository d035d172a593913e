package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
)

type AddPlayerRequest struct {
	Name string `json:"name"`
}

func handleAddPlayer(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddPlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		sess := sessionFrom(r)
		var player game.Player
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			player, err = round.AddPlayer(req.Name)
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "player_joined", PlayerName: player.Name})
		writeJSON(w, http.StatusCreated, player)
	}
}

func handleRemovePlayer(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			return round.RemovePlayer(playerID)
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "player_left"})
		w.WriteHeader(http.StatusNoContent)
	}
}
