package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dailygrid/dailygrid/internal/api/response"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/storage"
)

// PlayerHandler handles player lookup endpoints
type PlayerHandler struct {
	storage storage.Store
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(store storage.Store) *PlayerHandler {
	return &PlayerHandler{storage: store}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.storage.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Player, 0, len(players))
	for _, p := range players {
		resp = append(resp, response.PlayerFromModel(p))
	}

	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/players/{playerId}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["playerId"])

	player, err := h.storage.GetPlayer(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
