package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) handleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Matches.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, matches)
}

func (h *Handlers) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, BadRequest("Missing id parameter"))
		return
	}

	match, err := h.Matches.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, match)
}

func (h *Handlers) handleRecordMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	match, err := h.Matches.Record(r.Context(), req.GameID, req.Date, req.Teams, req.Winner)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, match)
}

func (h *Handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Leaderboard.Build(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rows)
}
