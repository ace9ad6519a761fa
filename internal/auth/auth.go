// Package auth provides password login, in-memory session tracking and
// role-gated middleware. Roles are ordered: a master admin can do anything an
// admin can, an admin anything a player can.
package auth

import (
	"context"
	"crypto/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName    = "crease_session"
	SessionExpiry = 24 * time.Hour
)

// Roles, weakest first
const (
	RolePlayer      = "player"
	RoleAdmin       = "admin"
	RoleMasterAdmin = "master_admin"
)

var roleRank = map[string]int{
	RolePlayer:      1,
	RoleAdmin:       2,
	RoleMasterAdmin: 3,
}

// Cricket-themed words for password generation
var creaseWords = []string{
	"wicket", "yorker", "googly", "bouncer", "cover",
	"slip", "gully", "crease", "stump", "bail",
	"over", "maiden", "single", "boundary", "six",
	"spin", "swing", "pitch", "innings",
}

type contextKey string

const sessionContextKey contextKey = "auth_session"

// Session is a logged-in identity. Username is whatever the caller logged in
// as; for players that is their registered name.
type Session struct {
	Username string
	Role     string
	Expiry   time.Time
}

// Auth handles login and session validation for all three roles
type Auth struct {
	passwords map[string]string // role -> password
	sessions  map[string]Session
	mu        sync.RWMutex
}

// New creates a new Auth instance with per-role passwords
func New(masterPassword, adminPassword, playerPassword string) *Auth {
	return &Auth{
		passwords: map[string]string{
			RoleMasterAdmin: masterPassword,
			RoleAdmin:       adminPassword,
			RolePlayer:      playerPassword,
		},
		sessions: make(map[string]Session),
	}
}

// GeneratePassword creates a random 3-word password
func GeneratePassword() string {
	words := make([]string, 3)
	for i := range words {
		idx := randomInt(len(creaseWords))
		words[i] = creaseWords[idx]
	}
	return strings.Join(words, "-")
}

// Login validates the password against the role ladder and returns a session
// token plus the granted role. The strongest role whose password matches wins,
// so the master password always grants master access.
func (a *Auth) Login(username, password string) (token, role string, ok bool) {
	for _, r := range []string{RoleMasterAdmin, RoleAdmin, RolePlayer} {
		if a.passwords[r] != "" && password == a.passwords[r] {
			role = r
			break
		}
	}
	if role == "" {
		return "", "", false
	}

	token = uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = Session{
		Username: username,
		Role:     role,
		Expiry:   time.Now().Add(SessionExpiry),
	}
	a.mu.Unlock()

	return token, role, true
}

// Logout invalidates a session token
func (a *Auth) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// ValidateSession returns the session for a token if it is still live
func (a *Auth) ValidateSession(token string) (Session, bool) {
	a.mu.RLock()
	session, exists := a.sessions[token]
	a.mu.RUnlock()

	if !exists {
		return Session{}, false
	}

	if time.Now().After(session.Expiry) {
		a.mu.Lock()
		delete(a.sessions, token)
		a.mu.Unlock()
		return Session{}, false
	}

	return session, true
}

// SessionFromRequest extracts and validates the session cookie
func (a *Auth) SessionFromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return a.ValidateSession(cookie.Value)
}

// RequireRole gates an API route behind a minimum role, returning 401 for
// missing sessions and 403 for live sessions below the required role. The
// session is placed on the request context for handlers that need the
// caller's identity.
func (a *Auth) RequireRole(minRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := a.SessionFromRequest(r)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
				return
			}
			if roleRank[session.Role] < roleRank[minRole] {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"code":"FORBIDDEN","error":"Insufficient role for this operation"}`))
				return
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireRole
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// randomInt returns a random int in [0, max)
func randomInt(max int) int {
	bytes := make([]byte, 1)
	rand.Read(bytes)
	return int(bytes[0]) % max
}
