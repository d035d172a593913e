package server

import (
	"net/http"
	"time"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

type AskQuestionRequest struct {
	QuestionID string `json:"questionId"`
}

func handleAskQuestion(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskQuestionRequest
		if err := readJSON(r, &req); err != nil || req.QuestionID == "" {
			writeError(w, http.StatusBadRequest, "questionId is required")
			return
		}

		sess := sessionFrom(r)
		var pending question.Asked
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			if err := round.AskQuestion(req.QuestionID, time.Now().UTC()); err != nil {
				return err
			}
			pending = *round.Questions().Pending()
			return nil
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "question_asked", QuestionID: req.QuestionID})
		writeJSON(w, http.StatusOK, pending)
	}
}

type AnswerQuestionResponse struct {
	Question  question.Asked `json:"question"`
	Drawn     []CardView     `json:"drawn"`
	Short     bool           `json:"short"`
	KeepCount int            `json:"keepCount"`
}

// handleAnswerQuestion resolves the pending question as answered and draws
// the category's card reward into the hider's hand. The hider keeps
// keepCount of the drawn cards and discards the rest through the discard
// endpoint.
func handleAnswerQuestion(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		var out game.AnswerOutcome
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			out, err = round.AnswerQuestion(time.Now().UTC())
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "question_answered", QuestionID: out.Question.QuestionID})
		writeJSON(w, http.StatusOK, AnswerQuestionResponse{
			Question:  out.Question,
			Drawn:     cardViews(out.Drawn),
			Short:     out.Short,
			KeepCount: out.KeepCount,
		})
	}
}

// handleVetoQuestion resolves the pending question as vetoed, with no card
// reward. The Veto powerup goes through card play instead; this endpoint
// covers the out-of-band refusals the rules allow.
func handleVetoQuestion(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		var asked question.Asked
		err := games.update(r.Context(), sess, func(round *game.Round) error {
			var err error
			asked, err = round.VetoQuestion(time.Now().UTC())
			return err
		})
		if err != nil {
			writeEngineError(w, err)
			return
		}

		broker.Publish(sess.id, SSEEvent{Type: "question_vetoed", QuestionID: asked.QuestionID})
		writeJSON(w, http.StatusOK, asked)
	}
}

func handleQuestionHistory(games *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		var history []question.Asked
		sess.view(func(round *game.Round) {
			if q := round.Questions(); q != nil {
				history = q.History()
			}
		})
		if history == nil {
			history = []question.Asked{}
		}
		writeJSON(w, http.StatusOK, history)
	}
}
