package models

// Launchpad represents a launch site from the SpaceX v4 API.
// The remote source guarantees launch_successes <= launch_attempts.
type Launchpad struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	FullName        string          `json:"full_name"`
	Locality        string          `json:"locality"`
	Region          string          `json:"region"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	LaunchAttempts  int             `json:"launch_attempts"`
	LaunchSuccesses int             `json:"launch_successes"`
	Details         string          `json:"details"`
	Status          string          `json:"status"`
	Images          LaunchpadImages `json:"images"`
}

// LaunchpadImages holds the site photos.
type LaunchpadImages struct {
	Large []string `json:"large"`
}
