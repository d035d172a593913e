package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, spaDir, publicURL string) {
	games := NewRegistry(db)
	hosts := NewHostStore(db)
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Hide and Seek API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Static rule content, no game context needed.
	r.Get("/api/catalog/cards", handleCardCatalog())
	r.Get("/api/catalog/questions", handleQuestionCatalog())

	r.Post("/api/games", handleCreateGame(games, hosts, publicURL))

	// Per-game routes — {gameID} resolved by gameMiddleware.
	r.Route("/api/games/{gameID}", func(r chi.Router) {
		r.Use(gameMiddleware(games))

		// Open to every device in the session.
		r.Post("/claim", handleClaimGame(hosts))
		r.Get("/qr", handleJoinQR(publicURL))
		r.Get("/state", handleGameState(games, broker))
		r.Get("/events", handleEvents(broker))
		r.Get("/curses", handleListCurses(games, broker))
		r.Get("/questions", handleQuestionHistory(games))

		// Mutations require the host token.
		r.Group(func(r chi.Router) {
			r.Use(hostAuthMiddleware(hosts))

			r.Post("/players", handleAddPlayer(games, broker))
			r.Delete("/players/{playerID}", handleRemovePlayer(games, broker))

			r.Post("/start", handleStartRound(games, broker))
			r.Post("/seeking", handlePhase(games, broker, (*game.Round).BeginSeeking, "phase_changed"))
			r.Post("/endgame", handlePhase(games, broker, (*game.Round).EnterEndGame, "phase_changed"))
			r.Post("/complete", handleCompleteRound(games, broker))
			r.Post("/reset", handleResetRound(games, broker))
			r.Post("/zone/confirm", handleConfirmZone(games, broker))

			r.Post("/cards/draw", handleDrawCards(games, broker))
			r.Post("/cards/add", handleAddCard(games, broker))
			r.Post("/cards/{instanceID}/discard", handleDiscardCard(games, broker))
			r.Post("/cards/{instanceID}/play", handlePlayCard(games, broker))

			r.Post("/curses/{cardID}/clear", handleClearCurse(games, broker))

			r.Post("/questions/ask", handleAskQuestion(games, broker))
			r.Post("/questions/answer", handleAnswerQuestion(games, broker))
			r.Post("/questions/veto", handleVetoQuestion(games, broker))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
