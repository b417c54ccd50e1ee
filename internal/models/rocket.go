package models

// Rocket represents a rocket spec sheet from the SpaceX v4 API.
type Rocket struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Active         bool      `json:"active"`
	Stages         int       `json:"stages"`
	Boosters       int       `json:"boosters"`
	CostPerLaunch  int64     `json:"cost_per_launch"`
	SuccessRatePct float64   `json:"success_rate_pct"`
	FirstFlight    string    `json:"first_flight"`
	Country        string    `json:"country"`
	Company        string    `json:"company"`
	Height         Dimension `json:"height"`
	Diameter       Dimension `json:"diameter"`
	Mass           Mass      `json:"mass"`
	Description    string    `json:"description"`
	Wikipedia      string    `json:"wikipedia"`
	FlickrImages   []string  `json:"flickr_images"`
}

// Dimension is a length in both metric and imperial units.
type Dimension struct {
	Meters float64 `json:"meters"`
	Feet   float64 `json:"feet"`
}

// Mass is a weight in both metric and imperial units.
type Mass struct {
	Kg float64 `json:"kg"`
	Lb float64 `json:"lb"`
}
