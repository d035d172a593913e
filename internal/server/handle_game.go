package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/catalog"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/curse"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/deck"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

type CreateGameRequest struct {
	PIN string `json:"pin,omitempty"`
}

type CreateGameResponse struct {
	GameID    string `json:"gameId"`
	HostToken string `json:"hostToken"`
	JoinURL   string `json:"joinUrl"`
}

func handleCreateGame(games *Registry, hosts *HostStore, publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		sess, err := games.Create(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		token := newHostToken()
		if err := hosts.CreateHost(r.Context(), sess.id, token, strings.TrimSpace(req.PIN)); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, CreateGameResponse{
			GameID:    sess.id,
			HostToken: token,
			JoinURL:   joinURL(publicURL, sess.id),
		})
	}
}

type ClaimRequest struct {
	PIN string `json:"pin"`
}

type ClaimResponse struct {
	HostToken string `json:"hostToken"`
}

// handleClaimGame re-issues the host token to a device that knows the
// game's PIN, so the host can continue a round from a new phone.
func handleClaimGame(hosts *HostStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest
		if err := readJSON(r, &req); err != nil || req.PIN == "" {
			writeError(w, http.StatusBadRequest, "pin is required")
			return
		}

		sess := sessionFrom(r)
		token, err := hosts.Claim(r.Context(), sess.id, req.PIN)
		if errors.Is(err, ErrGameNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			writeError(w, http.StatusUnauthorized, "wrong pin")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, ClaimResponse{HostToken: token})
	}
}

// CardView is a hand or discard entry joined with its catalog definition.
type CardView struct {
	InstanceID  string           `json:"instanceId"`
	CardID      string           `json:"cardId"`
	Name        string           `json:"name"`
	Type        catalog.CardType `json:"type"`
	Description string           `json:"description,omitempty"`
}

func cardViews(instances []deck.Instance) []CardView {
	views := make([]CardView, 0, len(instances))
	for _, inst := range instances {
		v := CardView{InstanceID: inst.ID, CardID: inst.CardID, Type: inst.Type}
		if def, ok := catalog.CardByID(inst.CardID); ok {
			v.Name = def.Name
			v.Description = def.Description
		}
		views = append(views, v)
	}
	return views
}

type GameStateResponse struct {
	GameID           string           `json:"gameId"`
	Phase            game.Phase       `json:"phase"`
	Size             catalog.GameSize `json:"size,omitempty"`
	Players          []game.Player    `json:"players"`
	HiderID          string           `json:"hiderId,omitempty"`
	HiderMoving      bool             `json:"hiderMoving"`
	Hand             []CardView       `json:"hand,omitempty"`
	HandLimit        int              `json:"handLimit,omitempty"`
	UndrawnCount     int              `json:"undrawnCount,omitempty"`
	DiscardCount     int              `json:"discardCount,omitempty"`
	TimeBonusMinutes int              `json:"timeBonusMinutes"`
	ActiveCurses     []curse.Active   `json:"activeCurses,omitempty"`
	QuestionsBlocked bool             `json:"questionsBlocked"`
	TransitBlocked   bool             `json:"transitBlocked"`
	PendingQuestion  *question.Asked  `json:"pendingQuestion,omitempty"`
	Result           *game.Result     `json:"result,omitempty"`
}

func stateOf(id string, round *game.Round) GameStateResponse {
	resp := GameStateResponse{
		GameID:           id,
		Phase:            round.Phase(),
		Size:             round.GameSize(),
		Players:          round.Players(),
		HiderID:          round.HiderID(),
		HiderMoving:      round.HiderMoving(),
		TimeBonusMinutes: round.TimeBonusTotal(),
	}
	if d := round.Deck(); d != nil {
		resp.Hand = cardViews(d.Hand())
		resp.HandLimit = d.HandLimit()
		resp.UndrawnCount = d.UndrawnCount()
		resp.DiscardCount = d.DiscardCount()
	}
	if c := round.Curses(); c != nil {
		resp.ActiveCurses = c.Active()
		resp.QuestionsBlocked = c.BlockingQuestions()
		resp.TransitBlocked = c.BlockingTransit()
	}
	if q := round.Questions(); q != nil {
		if p := q.Pending(); p != nil {
			cp := *p
			resp.PendingQuestion = &cp
		}
	}
	if res, ok := round.Result(); ok {
		resp.Result = &res
	}
	return resp
}

// handleGameState sweeps curse expiries before reporting, so a poll is all
// it takes for a timed curse to fall off.
func handleGameState(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		var cleared []curse.Active
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			cleared = round.CheckCurseExpiries(time.Now().UTC())
			return nil
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		for _, c := range cleared {
			broker.Publish(sess.id, SSEEvent{Type: "curse_cleared", CardID: c.CardID})
		}

		var resp GameStateResponse
		sess.view(func(round *game.Round) {
			resp = stateOf(sess.id, round)
		})
		writeJSON(w, http.StatusOK, resp)
	}
}

type StartRoundRequest struct {
	HiderID string           `json:"hiderId"`
	Size    catalog.GameSize `json:"size"`
}

func handleStartRound(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartRoundRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			return round.StartRound(req.HiderID, req.Size, time.Now().UTC())
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "round_started", Phase: game.PhaseHiding})
		var resp GameStateResponse
		sess.view(func(round *game.Round) { resp = stateOf(sess.id, round) })
		writeJSON(w, http.StatusOK, resp)
	}
}

// handlePhase serves the simple transitions that take no request body.
func handlePhase(games *Registry, broker *Broker, fn func(*game.Round) error, event string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, fn)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		var resp GameStateResponse
		sess.view(func(round *game.Round) { resp = stateOf(sess.id, round) })
		broker.Publish(sess.id, SSEEvent{Type: event, Phase: resp.Phase})
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCompleteRound(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		var result game.Result
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			result, err = round.CompleteRound()
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "round_complete", Phase: game.PhaseComplete, Count: result.TotalMinutes})
		writeJSON(w, http.StatusOK, result)
	}
}

func handleResetRound(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			round.Reset()
			return nil
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "round_reset", Phase: game.PhaseSetup})
		var resp GameStateResponse
		sess.view(func(round *game.Round) { resp = stateOf(sess.id, round) })
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleConfirmZone(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			return round.ConfirmNewZone()
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "zone_confirmed"})
		var resp GameStateResponse
		sess.view(func(round *game.Round) { resp = stateOf(sess.id, round) })
		writeJSON(w, http.StatusOK, resp)
	}
}

func joinURL(publicURL, gameID string) string {
	return strings.TrimSuffix(publicURL, "/") + "/join/" + gameID
}
