package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacedex/spacedex/internal/models"
	"github.com/spacedex/spacedex/pkg/logger"
)

func prefsFixture() models.UserPreferences {
	return models.UserPreferences{DarkMode: true, FavoriteRockets: []string{"r1"}}
}

func newTestBlobStore(t *testing.T) *BlobStore {
	t.Helper()

	blobs, err := OpenBlobStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { blobs.Close() })

	return blobs
}

func newTestSessionStore(t *testing.T, blobs *BlobStore) *SessionStore {
	t.Helper()

	session, err := NewSessionStore(blobs, logger.NewNop())
	require.NoError(t, err)
	return session
}

func TestLoginAcceptsAnyUsernameWithMockPassword(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))

	ok := session.Login("Astronaut", "password", false)

	require.True(t, ok)
	assert.True(t, session.IsAuthenticated())
	assert.Empty(t, session.Err())

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "Astronaut", user.Username)
	assert.Equal(t, "astronaut@example.com", user.Email)
	assert.Equal(t, defaultAvatarURL, user.Avatar)
	require.NotNil(t, user.Preferences)
	assert.False(t, user.Preferences.DarkMode)
	assert.Empty(t, user.Preferences.FavoriteRockets)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{"Wrong Password", "astronaut", "hunter2"},
		{"Empty Password", "astronaut", ""},
		{"Empty Username", "", "password"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok := session.Login(tc.username, tc.password, false)

			assert.False(t, ok)
			assert.False(t, session.IsAuthenticated())
			assert.Equal(t, InvalidCredentialsMessage, session.Err())
		})
	}
}

func TestLoginClearsPreviousError(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))

	session.Login("astronaut", "wrong", false)
	require.NotEmpty(t, session.Err())

	session.Login("astronaut", "password", false)
	assert.Empty(t, session.Err())
}

func TestClearErr(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))

	session.Login("astronaut", "wrong", false)
	session.ClearErr()

	assert.Empty(t, session.Err())
}

func TestLogoutClearsSessionOnly(t *testing.T) {
	blobs := newTestBlobStore(t)
	session := newTestSessionStore(t, blobs)
	favorites, err := NewFavoritesStore(blobs, logger.NewNop())
	require.NoError(t, err)

	session.Login("astronaut", "password", false)
	favorites.AddLaunch("l1")

	session.Logout()

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	// Favorites survive logout
	assert.True(t, favorites.IsFavoriteLaunch("l1"))
}

func TestSessionSurvivesRestart(t *testing.T) {
	blobs := newTestBlobStore(t)

	first := newTestSessionStore(t, blobs)
	first.Login("astronaut", "password", false)
	first.Login("astronaut", "wrong", false) // leaves a transient error behind

	reopened := newTestSessionStore(t, blobs)

	assert.True(t, reopened.IsAuthenticated())
	require.NotNil(t, reopened.User())
	assert.Equal(t, "astronaut", reopened.User().Username)
	// The transient error is not part of the persisted blob
	assert.Empty(t, reopened.Err())
}

func TestUpdatePreferences(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))
	session.Login("astronaut", "password", false)

	session.UpdatePreferences(prefsFixture())

	user := session.User()
	require.NotNil(t, user.Preferences)
	assert.True(t, user.Preferences.DarkMode)
	assert.Equal(t, []string{"r1"}, user.Preferences.FavoriteRockets)
}

func TestUpdatePreferencesWithoutSessionIsNoop(t *testing.T) {
	session := newTestSessionStore(t, newTestBlobStore(t))

	session.UpdatePreferences(prefsFixture())

	assert.Nil(t, session.User())
}
