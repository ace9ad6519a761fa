package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.Players.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, players)
}

func (h *Handlers) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, BadRequest("Missing name parameter"))
		return
	}

	player, err := h.Players.Get(r.Context(), name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, player)
}

func (h *Handlers) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Players.Add(r.Context(), req.Name, req.Rating, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, player)
}

func (h *Handlers) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, BadRequest("Missing name parameter"))
		return
	}

	var req PlayerUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Players.Update(r.Context(), name, req.Rating, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, player)
}

func (h *Handlers) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, BadRequest("Missing name parameter"))
		return
	}

	if err := h.Players.Delete(r.Context(), name); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}
