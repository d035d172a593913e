package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEngineError maps engine sentinel errors to HTTP statuses: unknown
// entities are 404, rejected state transitions and rule conflicts are 409.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound),
		errors.Is(err, deck.ErrNotFound),
		errors.Is(err, curse.ErrNotFound),
		errors.Is(err, question.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrInvalidPhase),
		errors.Is(err, game.ErrQuestionsBlocked),
		errors.Is(err, curse.ErrConflict),
		errors.Is(err, question.ErrPending),
		errors.Is(err, question.ErrNonePending):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
