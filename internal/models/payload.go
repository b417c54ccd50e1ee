package models

// Payload represents a payload manifest entry from the SpaceX v4 API.
type Payload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	MassKg    *float64 `json:"mass_kg"`
	MassLbs   *float64 `json:"mass_lbs"`
	Orbit     *string  `json:"orbit"`
	Customers []string `json:"customers"`
}
