package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rummyledger/internal/api/apierr"
	"github.com/mcoot/rummyledger/internal/api/request"
	"github.com/mcoot/rummyledger/internal/api/response"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/services/ledger"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	ledger *ledger.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(l *ledger.Service) *GameHandler {
	return &GameHandler{
		ledger: l,
	}
}

// Create handles POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.ledger.Create(r.Context(), req.Settings, req.Hands, req.FinalResult)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// List handles GET /games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GamesFromModel(h.ledger.ListAll()))
}

// Get handles GET /games/{gameId}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["gameId"])

	game, err := h.ledger.Get(id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// ListForPlayer handles GET /users/{userId}/games
func (h *GameHandler) ListForPlayer(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["userId"])

	response.JSON(w, http.StatusOK, response.GamesFromModel(h.ledger.ListForPlayer(id)))
}
