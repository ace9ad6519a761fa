package handlers

import "net/http"

func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	baseURL, _ := h.Settings.GetBaseURL(ctx)
	leagueName, _ := h.Settings.GetLeagueName(ctx)

	respondOK(w, SettingsResponse{
		BaseURL:    baseURL,
		LeagueName: leagueName,
	})
}

func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	if req.BaseURL != "" {
		if err := h.Settings.SetBaseURL(ctx, req.BaseURL); err != nil {
			respondError(w, err)
			return
		}
	}
	if req.LeagueName != "" {
		if err := h.Settings.SetLeagueName(ctx, req.LeagueName); err != nil {
			respondError(w, err)
			return
		}
	}

	h.handleGetSettings(w, r)
}

func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Settings.GetStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}
