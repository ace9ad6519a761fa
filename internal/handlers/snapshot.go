package handlers

import (
	"io"
	"net/http"
)

// handleExportSnapshot serves the whole league as a downloadable JSON document
func (h *Handlers) handleExportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := h.Snapshots.ExportJSON(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="crease-snapshot.json"`)
	w.Write(data)
}

// handleImportSnapshot replaces the league from an uploaded JSON document
func (h *Handlers) handleImportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, BadRequest("Failed to read request body"))
		return
	}
	if len(data) == 0 {
		respondError(w, BadRequest("Request body is empty"))
		return
	}

	if err := h.Snapshots.ImportJSON(r.Context(), data); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Snapshot imported")
}
