package models

// Crew represents a crew member from the SpaceX v4 API. Launches is a
// back-reference to missions the member flew on; the remote source does not
// guarantee it is mutually consistent with Launch.Crew and neither do we.
type Crew struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Agency    string   `json:"agency"`
	Image     string   `json:"image"`
	Wikipedia string   `json:"wikipedia"`
	Launches  []string `json:"launches"`
	Status    string   `json:"status"`
}
