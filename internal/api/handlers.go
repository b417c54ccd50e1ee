package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spacedex/spacedex/internal/catalog"
	"github.com/spacedex/spacedex/internal/spacex"
	"github.com/spacedex/spacedex/internal/store"
	"github.com/spacedex/spacedex/pkg/logger"
)

// Handler contains the dependencies needed for the API handlers
type Handler struct {
	Catalog   *catalog.Service
	Criteria  *catalog.CriteriaStore
	Session   *store.SessionStore
	Favorites *store.FavoritesStore
	UI        *store.UIStore
	Log       logger.Logger
}

func NewHandler(
	svc *catalog.Service,
	criteria *catalog.CriteriaStore,
	session *store.SessionStore,
	favorites *store.FavoritesStore,
	ui *store.UIStore,
	log logger.Logger,
) *Handler {
	return &Handler{
		Catalog:   svc,
		Criteria:  criteria,
		Session:   session,
		Favorites: favorites,
		UI:        ui,
		Log:       log,
	}
}

// RegisterRoutes registers all API routes with the provided http.ServeMux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Launch catalog
	mux.HandleFunc("GET /launches", h.HandleListLaunches)
	mux.HandleFunc("GET /launches/{id}", h.HandleLaunchDetail)
	mux.HandleFunc("GET /rockets/{id}", h.HandleGetRocket)

	// Session
	mux.HandleFunc("POST /login", h.HandleLogin)
	mux.HandleFunc("POST /logout", h.HandleLogout)
	mux.HandleFunc("GET /session", h.HandleSession)
	mux.HandleFunc("PUT /preferences", h.HandleUpdatePreferences)

	// Favorites
	mux.HandleFunc("GET /favorites", h.HandleListFavorites)
	mux.HandleFunc("PUT /favorites/launches/{id}", h.HandleAddFavoriteLaunch)
	mux.HandleFunc("DELETE /favorites/launches/{id}", h.HandleRemoveFavoriteLaunch)
	mux.HandleFunc("PUT /favorites/rockets/{id}", h.HandleAddFavoriteRocket)
	mux.HandleFunc("DELETE /favorites/rockets/{id}", h.HandleRemoveFavoriteRocket)

	// UI state
	mux.HandleFunc("GET /notifications", h.HandleListNotifications)
	mux.HandleFunc("DELETE /notifications/{id}", h.HandleRemoveNotification)
	mux.HandleFunc("POST /theme/toggle", h.HandleToggleTheme)

	// Health check endpoint
	mux.HandleFunc("GET /health", h.HandleHealth)
}

// HandleListLaunches handles the GET /launches endpoint
// @Summary List launches
// @Description Get one page of the filtered, sorted launch collection
// @Tags launches
// @Produce json
// @Param search query string false "Substring match on name or details"
// @Param sort query string false "Sort field ('date_utc', 'name', 'flight_number')"
// @Param order query string false "Sort order ('asc' or 'desc')"
// @Param success query string false "Success filter ('true' or 'false')"
// @Param upcoming query string false "Upcoming filter ('true' or 'false')"
// @Param year query int false "Launch year (UTC)"
// @Param page query int false "1-based page number"
// @Success 200 {object} catalog.Page "One page of launches"
// @Failure 502 {object} map[string]any "Remote source unavailable"
// @Router /launches [get]
func (h *Handler) HandleListLaunches(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := parseListQuery(values.Get, values.Has)

	// Query parameters present on the request update the shared criteria,
	// the same way the original interface synced its URL with filter state.
	if q.hasSearch {
		h.Criteria.SetSearchTerm(q.search)
	}
	if q.hasSort {
		h.Criteria.SetSort(q.sortField, q.sortOrder)
	}
	if q.hasViewMode {
		h.Criteria.SetViewMode(q.viewMode)
	}
	if q.hasSuccess {
		h.Criteria.SetSuccessFilter(q.success)
	}
	if q.hasUpcoming {
		h.Criteria.SetUpcomingFilter(q.upcoming)
	}
	if q.hasYear {
		h.Criteria.SetYearFilter(q.year)
	}

	page, err := h.Catalog.ListPage(r.Context(), h.Criteria.Snapshot(), q.page)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Could not load launches: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// HandleLaunchDetail handles the GET /launches/{id} endpoint
// @Summary Get launch detail
// @Description Retrieve a launch together with its rocket, launchpad, crew, payloads and gallery
// @Tags launches
// @Produce json
// @Param id path string true "Launch ID"
// @Success 200 {object} catalog.Detail "Composed launch detail"
// @Failure 404 {object} map[string]any "Launch not found"
// @Router /launches/{id} [get]
func (h *Handler) HandleLaunchDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing launch ID")
		return
	}

	detail, err := h.Catalog.Compose(r.Context(), id)
	if err != nil {
		var ferr *spacex.FetchError
		if errors.As(err, &ferr) && ferr.NotFound() {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Launch with ID %s not found", id))
			return
		}
		respondWithError(w, http.StatusBadGateway, "Could not load launch: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// HandleGetRocket handles the GET /rockets/{id} endpoint
// @Summary Get rocket by ID
// @Description Retrieve a single rocket spec sheet
// @Tags rockets
// @Produce json
// @Param id path string true "Rocket ID"
// @Success 200 {object} models.Rocket "Rocket"
// @Failure 404 {object} map[string]any "Rocket not found"
// @Router /rockets/{id} [get]
func (h *Handler) HandleGetRocket(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing rocket ID")
		return
	}

	rocket, err := h.Catalog.Rocket(r.Context(), id)
	if err != nil {
		var ferr *spacex.FetchError
		if errors.As(err, &ferr) && ferr.NotFound() {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Rocket with ID %s not found", id))
			return
		}
		respondWithError(w, http.StatusBadGateway, "Could not load rocket: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, rocket)
}

// HandleLogin handles the POST /login endpoint
// @Summary Log in
// @Description Establish a session with the mock credential rule
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]any "Session established"
// @Failure 401 {object} map[string]any "Invalid credentials"
// @Router /login [post]
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := validateLoginRequest(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid login request: "+err.Error())
		return
	}

	if !h.Session.Login(req.Username, req.Password, req.Remember) {
		respondWithError(w, http.StatusUnauthorized, h.Session.Err())
		return
	}

	h.UI.AddNotification(fmt.Sprintf("Welcome back, %s!", req.Username), store.SeveritySuccess, 0)
	respondWithJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"user":            h.Session.User(),
	})
}

// HandleLogout handles the POST /logout endpoint. The session is cleared;
// favorites are not.
// @Summary Log out
// @Tags session
// @Produce json
// @Success 204 "Session cleared"
// @Router /logout [post]
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// HandleSession handles the GET /session endpoint
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} map[string]any "Session state"
// @Router /session [get]
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": h.Session.IsAuthenticated(),
		"user":            h.Session.User(),
	})
}

// HandleUpdatePreferences handles the PUT /preferences endpoint
// @Summary Update profile preferences
// @Tags session
// @Accept json
// @Produce json
// @Param preferences body preferencesRequest true "Preferences"
// @Success 200 {object} map[string]any "Updated profile"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /preferences [put]
func (h *Handler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if req.FavoriteRockets == nil {
		req.FavoriteRockets = []string{}
	}
	h.Session.UpdatePreferences(prefsFromRequest(req))

	respondWithJSON(w, http.StatusOK, map[string]any{"user": h.Session.User()})
}

// HandleListFavorites handles the GET /favorites endpoint
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]any "Favorite launch and rocket IDs"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /favorites [get]
func (h *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"favoriteLaunches": h.Favorites.Launches(),
		"favoriteRockets":  h.Favorites.Rockets(),
	})
}

// HandleAddFavoriteLaunch handles the PUT /favorites/launches/{id} endpoint
// @Summary Favorite a launch
// @Tags favorites
// @Produce json
// @Param id path string true "Launch ID"
// @Success 200 {object} map[string]any "Updated favorite launches"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /favorites/launches/{id} [put]
func (h *Handler) HandleAddFavoriteLaunch(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	id := r.PathValue("id")
	h.Favorites.AddLaunch(id)
	h.UI.AddNotification(fmt.Sprintf("Launch %s added to favorites", id), store.SeveritySuccess, 0)

	respondWithJSON(w, http.StatusOK, map[string]any{"favoriteLaunches": h.Favorites.Launches()})
}

// HandleRemoveFavoriteLaunch handles the DELETE /favorites/launches/{id} endpoint
// @Summary Unfavorite a launch
// @Tags favorites
// @Produce json
// @Param id path string true "Launch ID"
// @Success 200 {object} map[string]any "Updated favorite launches"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /favorites/launches/{id} [delete]
func (h *Handler) HandleRemoveFavoriteLaunch(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	id := r.PathValue("id")
	h.Favorites.RemoveLaunch(id)
	h.UI.AddNotification(fmt.Sprintf("Launch %s removed from favorites", id), store.SeverityInfo, 0)

	respondWithJSON(w, http.StatusOK, map[string]any{"favoriteLaunches": h.Favorites.Launches()})
}

// HandleAddFavoriteRocket handles the PUT /favorites/rockets/{id} endpoint
// @Summary Favorite a rocket
// @Tags favorites
// @Produce json
// @Param id path string true "Rocket ID"
// @Success 200 {object} map[string]any "Updated favorite rockets"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /favorites/rockets/{id} [put]
func (h *Handler) HandleAddFavoriteRocket(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	id := r.PathValue("id")
	h.Favorites.AddRocket(id)
	h.UI.AddNotification(fmt.Sprintf("Rocket %s added to favorites", id), store.SeveritySuccess, 0)

	respondWithJSON(w, http.StatusOK, map[string]any{"favoriteRockets": h.Favorites.Rockets()})
}

// HandleRemoveFavoriteRocket handles the DELETE /favorites/rockets/{id} endpoint
// @Summary Unfavorite a rocket
// @Tags favorites
// @Produce json
// @Param id path string true "Rocket ID"
// @Success 200 {object} map[string]any "Updated favorite rockets"
// @Failure 401 {object} map[string]any "Not authenticated"
// @Router /favorites/rockets/{id} [delete]
func (h *Handler) HandleRemoveFavoriteRocket(w http.ResponseWriter, r *http.Request) {
	if !h.requireAuth(w) {
		return
	}

	id := r.PathValue("id")
	h.Favorites.RemoveRocket(id)
	h.UI.AddNotification(fmt.Sprintf("Rocket %s removed from favorites", id), store.SeverityInfo, 0)

	respondWithJSON(w, http.StatusOK, map[string]any{"favoriteRockets": h.Favorites.Rockets()})
}

// HandleListNotifications handles the GET /notifications endpoint
// @Summary List pending notifications
// @Tags ui
// @Produce json
// @Success 200 {array} store.Notification "Notifications in arrival order"
// @Router /notifications [get]
func (h *Handler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.UI.Notifications())
}

// HandleRemoveNotification handles the DELETE /notifications/{id} endpoint
// @Summary Dismiss a notification
// @Tags ui
// @Param id path string true "Notification ID"
// @Success 204 "Dismissed"
// @Router /notifications/{id} [delete]
func (h *Handler) HandleRemoveNotification(w http.ResponseWriter, r *http.Request) {
	h.UI.RemoveNotification(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggleTheme handles the POST /theme/toggle endpoint
// @Summary Toggle the color scheme
// @Tags ui
// @Produce json
// @Success 200 {object} map[string]string "Active color scheme"
// @Router /theme/toggle [post]
func (h *Handler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"colorScheme": h.UI.ToggleColorScheme(),
	})
}

// HandleHealth handles the GET /health endpoint for healthcheck
// @Summary Health check
// @Description Returns 200 OK when the service is healthy
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /health [get]
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// requireAuth rejects the request with 401 unless a session is active.
func (h *Handler) requireAuth(w http.ResponseWriter) bool {
	if !h.Session.IsAuthenticated() {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return false
	}
	return true
}

// Helper functions for HTTP responses

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
