package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// DefaultNotificationTimeout is how long a notification lives when the
// caller does not pick a timeout.
const DefaultNotificationTimeout = 4000 * time.Millisecond

// Notification is one transient message. Notifications form a FIFO list and
// each auto-expires after its timeout.
type Notification struct {
	ID      string   `json:"id"`
	Message string   `json:"message"`
	Type    Severity `json:"type"`
	Timeout int64    `json:"timeout,omitempty"` // milliseconds
}

// UIStore holds the ephemeral interface state: color scheme, notification
// queue and the mobile-menu flag. Nothing in here is ever persisted.
type UIStore struct {
	mu             sync.Mutex
	colorScheme    string
	notifications  []Notification
	timers         map[string]*time.Timer
	mobileMenuOpen bool
}

// NewUIStore creates the UI store with the light scheme and no notifications.
func NewUIStore() *UIStore {
	return &UIStore{
		colorScheme: "light",
		timers:      make(map[string]*time.Timer),
	}
}

// ColorScheme returns "light" or "dark".
func (s *UIStore) ColorScheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorScheme
}

// ToggleColorScheme flips between light and dark.
func (s *UIStore) ToggleColorScheme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.colorScheme == "light" {
		s.colorScheme = "dark"
	} else {
		s.colorScheme = "light"
	}
	return s.colorScheme
}

// AddNotification appends a notification to the queue and schedules its
// expiry. A zero timeout uses DefaultNotificationTimeout.
func (s *UIStore) AddNotification(message string, severity Severity, timeout time.Duration) Notification {
	if timeout <= 0 {
		timeout = DefaultNotificationTimeout
	}

	n := Notification{
		ID:      uuid.NewString(),
		Message: message,
		Type:    severity,
		Timeout: timeout.Milliseconds(),
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.timers[n.ID] = time.AfterFunc(timeout, func() {
		s.RemoveNotification(n.ID)
	})
	s.mu.Unlock()

	return n
}

// RemoveNotification drops a notification by id, cancelling its expiry timer.
func (s *UIStore) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// ClearNotifications drops the whole queue.
func (s *UIStore) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.notifications = nil
}

// Notifications returns a copy of the queue in arrival order.
func (s *UIStore) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification{}, s.notifications...)
}

// IsMobileMenuOpen reports the mobile-menu flag.
func (s *UIStore) IsMobileMenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobileMenuOpen
}

// ToggleMobileMenu flips the mobile-menu flag.
func (s *UIStore) ToggleMobileMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileMenuOpen = !s.mobileMenuOpen
	return s.mobileMenuOpen
}

// CloseMobileMenu clears the mobile-menu flag.
func (s *UIStore) CloseMobileMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileMenuOpen = false
}

func (s *UIStore) removeLocked(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}
