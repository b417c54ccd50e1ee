package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleColorScheme(t *testing.T) {
	ui := NewUIStore()

	assert.Equal(t, "light", ui.ColorScheme())
	assert.Equal(t, "dark", ui.ToggleColorScheme())
	assert.Equal(t, "light", ui.ToggleColorScheme())
}

func TestNotificationsAreFIFO(t *testing.T) {
	ui := NewUIStore()

	ui.AddNotification("first", SeverityInfo, time.Minute)
	ui.AddNotification("second", SeverityError, time.Minute)
	ui.AddNotification("third", SeveritySuccess, time.Minute)

	notifications := ui.Notifications()
	require.Len(t, notifications, 3)
	assert.Equal(t, "first", notifications[0].Message)
	assert.Equal(t, "second", notifications[1].Message)
	assert.Equal(t, "third", notifications[2].Message)
}

func TestNotificationDefaults(t *testing.T) {
	ui := NewUIStore()

	n := ui.AddNotification("hello", SeverityWarning, 0)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, SeverityWarning, n.Type)
	assert.EqualValues(t, DefaultNotificationTimeout.Milliseconds(), n.Timeout)
}

func TestNotificationAutoExpires(t *testing.T) {
	ui := NewUIStore()

	ui.AddNotification("short lived", SeverityInfo, 20*time.Millisecond)
	require.Len(t, ui.Notifications(), 1)

	assert.Eventually(t, func() bool {
		return len(ui.Notifications()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRemoveNotification(t *testing.T) {
	ui := NewUIStore()

	n := ui.AddNotification("dismiss me", SeverityInfo, time.Minute)
	keep := ui.AddNotification("keep me", SeverityInfo, time.Minute)

	ui.RemoveNotification(n.ID)

	notifications := ui.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, keep.ID, notifications[0].ID)
}

func TestClearNotifications(t *testing.T) {
	ui := NewUIStore()

	ui.AddNotification("one", SeverityInfo, time.Minute)
	ui.AddNotification("two", SeverityInfo, time.Minute)
	ui.ClearNotifications()

	assert.Empty(t, ui.Notifications())
}

func TestMobileMenu(t *testing.T) {
	ui := NewUIStore()

	assert.False(t, ui.IsMobileMenuOpen())
	assert.True(t, ui.ToggleMobileMenu())
	ui.CloseMobileMenu()
	assert.False(t, ui.IsMobileMenuOpen())
}
