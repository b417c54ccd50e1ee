package models

// User is the profile attached to an authenticated session. Profiles are
// constructed deterministically from the username at login; there is no
// remote identity provider behind them.
type User struct {
	Username    string           `json:"username"`
	Avatar      string           `json:"avatar,omitempty"`
	Email       string           `json:"email,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
}

// UserPreferences holds per-user display preferences.
type UserPreferences struct {
	DarkMode        bool     `json:"darkMode"`
	FavoriteRockets []string `json:"favoriteRockets"`
}
