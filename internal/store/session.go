package store

import (
	"strings"
	"sync"

	"github.com/spacedex/spacedex/internal/models"
	"github.com/spacedex/spacedex/pkg/logger"
)

// InvalidCredentialsMessage is the user-visible login failure message. The
// wording is part of the contract and covered by tests.
const InvalidCredentialsMessage = "Invalid credentials. Try username: any, password: password"

// mockPassword is the stand-in credential check: any non-empty username with
// exactly this password authenticates. Swapping in a real identity provider
// means replacing Login behind the same contract.
const mockPassword = "password"

const defaultAvatarURL = "https://api.dicebear.com/9.x/pixel-art/svg"

// sessionState is the persisted shape of the auth-storage blob. Transient
// fields (the last error) are deliberately not part of it.
type sessionState struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *models.User `json:"user"`
}

// SessionStore holds the authenticated session. Only IsAuthenticated and the
// user profile survive a restart; the last login error does not.
type SessionStore struct {
	mu        sync.RWMutex
	blobs     *BlobStore
	log       logger.Logger
	state     sessionState
	lastError string
}

// NewSessionStore creates the session store, restoring any persisted session.
func NewSessionStore(blobs *BlobStore, log logger.Logger) (*SessionStore, error) {
	s := &SessionStore{blobs: blobs, log: log}
	if _, err := blobs.Load(AuthBlobName, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// Login checks the mock credential rule and establishes a session on success.
// It returns whether the login succeeded; on failure the reason is available
// through Err, it is never returned as an error. The remember flag is
// accepted for contract compatibility; the session is persisted either way.
func (s *SessionStore) Login(username, password string, remember bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == "" || password != mockPassword {
		s.lastError = InvalidCredentialsMessage
		s.log.Debug("Login rejected", "username", username)
		return false
	}

	s.lastError = ""
	s.state = sessionState{
		IsAuthenticated: true,
		User: &models.User{
			Username: username,
			Avatar:   defaultAvatarURL,
			Email:    strings.ToLower(username) + "@example.com",
			Preferences: &models.UserPreferences{
				DarkMode:        false,
				FavoriteRockets: []string{},
			},
		},
	}
	s.persist()
	s.log.Info("User logged in", "username", username)
	return true
}

// Logout clears the session. Favorites are owned by their own store and are
// intentionally left untouched.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = sessionState{}
	s.lastError = ""
	s.persist()
}

// IsAuthenticated reports whether a session is active.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// User returns a copy of the current profile, or nil without a session.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	if s.state.User.Preferences != nil {
		prefs := *s.state.User.Preferences
		prefs.FavoriteRockets = append([]string{}, s.state.User.Preferences.FavoriteRockets...)
		user.Preferences = &prefs
	}
	return &user
}

// Err returns the last login failure message, empty when the last attempt
// succeeded or none was made.
func (s *SessionStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearErr discards the last login failure message.
func (s *SessionStore) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// UpdatePreferences replaces the profile preferences of the logged-in user.
// Without a session this is a no-op.
func (s *SessionStore) UpdatePreferences(prefs models.UserPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return
	}
	s.state.User.Preferences = &prefs
	s.persist()
}

// persist writes the auth blob; callers hold the lock.
func (s *SessionStore) persist() {
	if err := s.blobs.Save(AuthBlobName, s.state); err != nil {
		s.log.Error("Failed to persist session", "error", err)
	}
}
