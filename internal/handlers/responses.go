package handlers

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionResponse is the response for a session check
type SessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SettingsResponse is the response for settings
type SettingsResponse struct {
	BaseURL    string `json:"base_url"`
	LeagueName string `json:"league_name"`
}
