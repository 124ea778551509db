package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rummyledger/internal/api/apierr"
	"github.com/mcoot/rummyledger/internal/api/request"
	"github.com/mcoot/rummyledger/internal/api/response"
	"github.com/mcoot/rummyledger/internal/model"
	"github.com/mcoot/rummyledger/internal/services/registry"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	registry *registry.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(reg *registry.Service) *PlayerHandler {
	return &PlayerHandler{
		registry: reg,
	}
}

// Create handles POST /users
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.registry.Create(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /users
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PlayersFromModel(h.registry.List()))
}

// Get handles GET /users/{userId}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["userId"])

	player, err := h.registry.Get(id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PUT /users/{userId}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["userId"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.registry.Update(r.Context(), id, req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /users/{userId}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["userId"])

	if err := h.registry.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
