package handlers

import (
	"net/http"
)

func (h *Handlers) handleGenerateTeams(w http.ResponseWriter, r *http.Request) {
	var req TeamGenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	teams, err := h.Teams.Generate(r.Context(), req.Players, req.TeamCount)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

func (h *Handlers) handleMoveTeamPlayer(w http.ResponseWriter, r *http.Request) {
	var req TeamMoveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	teams, err := h.Teams.Move(req.Teams, req.Player, req.From, req.To)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

func (h *Handlers) handleFinalizeTeams(w http.ResponseWriter, r *http.Request) {
	var req TeamFinalizeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	teams, err := h.Teams.Finalize(req.Teams, req.Names, req.Captains)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}
