package store

import (
	"slices"
	"sync"

	"github.com/spacedex/spacedex/pkg/logger"
)

// favoritesState is the persisted shape of the favorites-storage blob. The
// IDs are opaque and never validated against live resources: a favorite may
// reference a launch that no longer loads.
type favoritesState struct {
	FavoriteLaunches []string `json:"favoriteLaunches"`
	FavoriteRockets  []string `json:"favoriteRockets"`
}

// FavoritesStore holds the two favorite-ID sets. Adds are deduplicated:
// each set contains an ID at most once. The sets persist across restarts and
// survive logout.
type FavoritesStore struct {
	mu    sync.RWMutex
	blobs *BlobStore
	log   logger.Logger
	state favoritesState
}

// NewFavoritesStore creates the favorites store, restoring persisted sets.
func NewFavoritesStore(blobs *BlobStore, log logger.Logger) (*FavoritesStore, error) {
	s := &FavoritesStore{
		blobs: blobs,
		log:   log,
		state: favoritesState{
			FavoriteLaunches: []string{},
			FavoriteRockets:  []string{},
		},
	}
	if _, err := blobs.Load(FavoritesBlobName, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// AddLaunch marks a launch as favorite. Adding an already-favorited ID is a
// no-op.
func (s *FavoritesStore) AddLaunch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.state.FavoriteLaunches, id) {
		return
	}
	s.state.FavoriteLaunches = append(s.state.FavoriteLaunches, id)
	s.persist()
}

// RemoveLaunch unmarks a favorite launch.
func (s *FavoritesStore) RemoveLaunch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FavoriteLaunches = remove(s.state.FavoriteLaunches, id)
	s.persist()
}

// IsFavoriteLaunch reports whether the launch is favorited.
func (s *FavoritesStore) IsFavoriteLaunch(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.FavoriteLaunches, id)
}

// AddRocket marks a rocket as favorite. Adding an already-favorited ID is a
// no-op.
func (s *FavoritesStore) AddRocket(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.state.FavoriteRockets, id) {
		return
	}
	s.state.FavoriteRockets = append(s.state.FavoriteRockets, id)
	s.persist()
}

// RemoveRocket unmarks a favorite rocket.
func (s *FavoritesStore) RemoveRocket(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FavoriteRockets = remove(s.state.FavoriteRockets, id)
	s.persist()
}

// IsFavoriteRocket reports whether the rocket is favorited.
func (s *FavoritesStore) IsFavoriteRocket(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.state.FavoriteRockets, id)
}

// Launches returns a copy of the favorite launch IDs in insertion order.
func (s *FavoritesStore) Launches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.state.FavoriteLaunches...)
}

// Rockets returns a copy of the favorite rocket IDs in insertion order.
func (s *FavoritesStore) Rockets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.state.FavoriteRockets...)
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// persist writes the favorites blob; callers hold the lock.
func (s *FavoritesStore) persist() {
	if err := s.blobs.Save(FavoritesBlobName, s.state); err != nil {
		s.log.Error("Failed to persist favorites", "error", err)
	}
}
