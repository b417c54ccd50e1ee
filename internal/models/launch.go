package models

import "time"

// Launch represents a single spaceflight mission as served by the SpaceX v4 API.
// Records are read-only projections of the remote source and are never mutated.
type Launch struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DateUTC      time.Time   `json:"date_utc"`
	DateLocal    string      `json:"date_local"`
	Success      *bool       `json:"success"` // nil while the outcome is unknown
	Details      *string     `json:"details"`
	FlightNumber int         `json:"flight_number"`
	Upcoming     bool        `json:"upcoming"`
	Rocket       string      `json:"rocket"`    // Rocket id
	Crew         []string    `json:"crew"`      // Crew ids, possibly empty
	Payloads     []string    `json:"payloads"`  // Payload ids, possibly empty
	Launchpad    string      `json:"launchpad"` // Launchpad id
	Links        LaunchLinks `json:"links"`
}

// LaunchLinks groups the media references attached to a launch.
type LaunchLinks struct {
	Patch     PatchLinks  `json:"patch"`
	Webcast   *string     `json:"webcast"`
	Article   *string     `json:"article"`
	Wikipedia *string     `json:"wikipedia"`
	Flickr    FlickrLinks `json:"flickr"`
}

// PatchLinks holds the mission patch images in two sizes.
type PatchLinks struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// FlickrLinks holds the flickr image URLs in two sizes.
type FlickrLinks struct {
	Small    []string `json:"small"`
	Original []string `json:"original"`
}

// Launch status labels derived from the upcoming/success pair.
const (
	LaunchStatusUpcoming = "upcoming"
	LaunchStatusSuccess  = "success"
	LaunchStatusFailed   = "failed"
	LaunchStatusUnknown  = "unknown"
)

// Status derives a display status label. Upcoming wins over the success flag,
// and a launch that already happened with no recorded outcome is "unknown".
func (l *Launch) Status() string {
	if l.Upcoming {
		return LaunchStatusUpcoming
	}
	if l.Success == nil {
		return LaunchStatusUnknown
	}
	if *l.Success {
		return LaunchStatusSuccess
	}
	return LaunchStatusFailed
}
