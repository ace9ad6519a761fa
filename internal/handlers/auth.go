package handlers

import (
	"net/http"

	"github.com/asimraja/crease/internal/auth"
)

// handleLogin processes a JSON login request and sets the session cookie
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Username == "" {
		respondError(w, BadRequest("Username is required"))
		return
	}

	token, role, ok := h.Auth.Login(req.Username, req.Password)
	if !ok {
		respondError(w, Unauthorized("Invalid credentials"))
		return
	}

	auth.SetSessionCookie(w, token)
	respondOK(w, LoginResponse{Username: req.Username, Role: role})
}

// handleLogout invalidates the session and clears the cookie
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleSession reports the current session, if any
func (h *Handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.Auth.SessionFromRequest(r)
	if !ok {
		respondError(w, Unauthorized("Not logged in"))
		return
	}
	respondOK(w, SessionResponse{Username: session.Username, Role: session.Role})
}
