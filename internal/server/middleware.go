package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeySession ctxKey = iota

func gameMiddleware(games *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.ToUpper(chi.URLParam(r, "gameID"))
			if id == "" {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}

			sess, err := games.Get(r.Context(), id)
			if errors.Is(err, ErrGameNotFound) {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hostAuthMiddleware(hosts *HostStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "host token required")
				return
			}

			sess := sessionFrom(r)
			valid, err := hosts.VerifyToken(r.Context(), sess.id, token)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !valid {
				writeError(w, http.StatusUnauthorized, "invalid host token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionFrom(r *http.Request) *session {
	return r.Context().Value(ctxKeySession).(*session)
}
