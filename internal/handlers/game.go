package handlers

import (
	"net/http"

	"github.com/asimraja/crease/internal/models"
)

func (h *Handlers) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.Games.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, games)
}

func (h *Handlers) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Games.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, game)
}

func (h *Handlers) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req GameCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Games.Create(r.Context(), models.Game{
		Date:       req.Date,
		Time:       req.Time,
		Location:   req.Location,
		Type:       req.Type,
		MaxPlayers: req.MaxPlayers,
		CreatedBy:  req.CreatedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, game)
}

func (h *Handlers) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Games.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req RosterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Games.Join(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, game)
}

func (h *Handlers) handleCancelGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req RosterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Games.Cancel(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, game)
}

func (h *Handlers) handleGameJoinQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Games.GenerateJoinQR(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}
