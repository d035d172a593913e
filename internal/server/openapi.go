package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/code-po8/jet-lag-stillwater-sub002/internal/game"
	"github.com/code-po8/jet-lag-stillwater-sub002/internal/question"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Hide and Seek API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the hide-and-seek companion: deck, curses, questions, and round state.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/catalog/cards
	getCards, _ := r.NewOperationContext(http.MethodGet, "/api/catalog/cards")
	getCards.SetSummary("Card catalog")
	getCards.SetDescription("Lists every card definition and the fixed deck size.")
	getCards.AddRespStructure(CardCatalogResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCards)

	// GET /api/catalog/questions
	getQuestions, _ := r.NewOperationContext(http.MethodGet, "/api/catalog/questions")
	getQuestions.SetSummary("Question catalog")
	getQuestions.SetDescription("Lists ask-able questions grouped by category, optionally filtered by game size.")
	getQuestions.AddRespStructure([]QuestionCategoryView{}, openapi.WithHTTPStatus(http.StatusOK))
	getQuestions.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getQuestions)

	// POST /api/games
	postGames, _ := r.NewOperationContext(http.MethodPost, "/api/games")
	postGames.SetSummary("Create game")
	postGames.SetDescription("Creates a new game session and returns the host token and join link. An optional PIN allows reclaiming the token later.")
	postGames.AddReqStructure(CreateGameRequest{})
	postGames.AddRespStructure(CreateGameResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(postGames)

	// POST /api/games/{gameID}/claim
	postClaim, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/claim")
	postClaim.SetSummary("Claim host token")
	postClaim.SetDescription("Re-issues the host token to a device that knows the game's PIN.")
	postClaim.AddReqStructure(ClaimRequest{})
	postClaim.AddRespStructure(ClaimResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postClaim.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postClaim)

	// GET /api/games/{gameID}/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the full round state: phase, roster, hand, curses, pending question, and result.")
	getState.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getState)

	// GET /api/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream for real-time game updates.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/games/{gameID}/qr
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/qr")
	getQR.SetSummary("Join QR code")
	getQR.SetDescription("Renders the join link as a QR code PNG.")
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/png"))
	_ = r.AddOperation(getQR)

	// POST /api/games/{gameID}/players
	postPlayers, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/players")
	postPlayers.SetSummary("Add player")
	postPlayers.SetDescription("Adds a player to the roster during setup. Requires the host token.")
	postPlayers.AddReqStructure(AddPlayerRequest{})
	postPlayers.AddRespStructure(game.Player{}, openapi.WithHTTPStatus(http.StatusCreated))
	postPlayers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPlayers)

	// POST /api/games/{gameID}/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/start")
	postStart.SetSummary("Start round")
	postStart.SetDescription("Moves setup to hiding: picks the hider, fixes the game size, and builds the deck.")
	postStart.AddReqStructure(StartRoundRequest{})
	postStart.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postStart)

	// POST /api/games/{gameID}/complete
	postComplete, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/complete")
	postComplete.SetSummary("Complete round")
	postComplete.SetDescription("Moves endgame to complete and freezes the hiding-time result.")
	postComplete.AddRespStructure(game.Result{}, openapi.WithHTTPStatus(http.StatusOK))
	postComplete.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postComplete)

	// POST /api/games/{gameID}/cards/draw
	postDraw, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/cards/draw")
	postDraw.SetSummary("Draw cards")
	postDraw.SetDescription("Draws up to count cards into the hider's hand, truncated to the hand limit.")
	postDraw.AddReqStructure(DrawCardsRequest{})
	postDraw.AddRespStructure(DrawCardsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postDraw.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postDraw)

	// POST /api/games/{gameID}/cards/{instanceID}/play
	postPlay, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/cards/{instanceID}/play")
	postPlay.SetSummary("Play card")
	postPlay.SetDescription("Resolves a powerup or activates a curse from the hider's hand.")
	postPlay.AddReqStructure(PlayCardRequest{})
	postPlay.AddRespStructure(PlayCardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postPlay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	postPlay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postPlay)

	// POST /api/games/{gameID}/questions/ask
	postAsk, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/questions/ask")
	postAsk.SetSummary("Ask question")
	postAsk.SetDescription("Records a seeker question as pending. Rejected while a blocking curse is active.")
	postAsk.AddReqStructure(AskQuestionRequest{})
	postAsk.AddRespStructure(question.Asked{}, openapi.WithHTTPStatus(http.StatusOK))
	postAsk.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAsk)

	// POST /api/games/{gameID}/questions/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/questions/answer")
	postAnswer.SetSummary("Answer question")
	postAnswer.SetDescription("Marks the pending question answered and draws the category's card reward.")
	postAnswer.AddRespStructure(AnswerQuestionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, err := json.Marshal(spec)

	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
