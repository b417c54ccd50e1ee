package api

import (
	"errors"
	"strconv"

	"github.com/spacedex/spacedex/internal/catalog"
	"github.com/spacedex/spacedex/internal/models"
)

// loginRequest is the POST /login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// validateLoginRequest ensures a login request carries both credentials.
// Whether they are correct is the session store's call, not ours.
func validateLoginRequest(req loginRequest) error {
	if req.Username == "" {
		return errors.New("missing or empty username")
	}
	if req.Password == "" {
		return errors.New("missing or empty password")
	}
	return nil
}

// preferencesRequest is the PUT /preferences body.
type preferencesRequest struct {
	DarkMode        bool     `json:"darkMode"`
	FavoriteRockets []string `json:"favoriteRockets"`
}

func prefsFromRequest(req preferencesRequest) models.UserPreferences {
	return models.UserPreferences{
		DarkMode:        req.DarkMode,
		FavoriteRockets: req.FavoriteRockets,
	}
}

// listQuery is the parsed GET /launches query string. Presence flags keep
// "absent" distinct from "set to the default", so a request only mutates the
// criteria dimensions it actually names.
type listQuery struct {
	page int

	search    string
	hasSearch bool

	sortField string
	sortOrder string
	hasSort   bool

	viewMode    string
	hasViewMode bool

	success     catalog.Tristate
	hasSuccess  bool
	upcoming    catalog.Tristate
	hasUpcoming bool
	year        int
	hasYear     bool
}

// parseListQuery reads the supported query parameters. Invalid page and year
// values fall back to their defaults rather than failing the request.
func parseListQuery(get func(string) string, has func(string) bool) listQuery {
	q := listQuery{page: 1}

	if page, err := strconv.Atoi(get("page")); err == nil {
		q.page = page
	}

	if has("search") {
		q.hasSearch = true
		q.search = get("search")
	}
	if has("sort") || has("order") {
		q.hasSort = true
		q.sortField = get("sort")
		q.sortOrder = get("order")
	}
	if has("view") {
		q.hasViewMode = true
		q.viewMode = get("view")
	}
	if has("success") {
		q.hasSuccess = true
		q.success = catalog.ParseTristate(get("success"))
	}
	if has("upcoming") {
		q.hasUpcoming = true
		q.upcoming = catalog.ParseTristate(get("upcoming"))
	}
	if has("year") {
		q.hasYear = true
		if year, err := strconv.Atoi(get("year")); err == nil {
			q.year = year
		}
	}

	return q
}
