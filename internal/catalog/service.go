package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/spacedex/spacedex/internal/models"
	"github.com/spacedex/spacedex/pkg/logger"
	"github.com/spacedex/spacedex/pkg/metrics"
)

// ResourceClient is the slice of the remote client the catalog depends on.
type ResourceClient interface {
	ListLaunches(ctx context.Context) ([]models.Launch, error)
	GetLaunch(ctx context.Context, id string) (*models.Launch, error)
	GetRocket(ctx context.Context, id string) (*models.Rocket, error)
	GetLaunchpad(ctx context.Context, id string) (*models.Launchpad, error)
	GetCrewMembers(ctx context.Context, ids []string) ([]models.Crew, error)
	GetPayloads(ctx context.Context, ids []string) ([]models.Payload, error)
}

// Service serves launch pages and detail views on top of the remote client,
// keeping the full launch collection in a short-lived in-memory cache.
type Service struct {
	client  ResourceClient
	log     logger.Logger
	metrics *metrics.Metrics // optional

	cacheTTL  time.Duration
	cacheMu   sync.RWMutex
	cached    []models.Launch
	fetchedAt time.Time
}

// DefaultCacheTTL mirrors how long a fetched launch collection is considered
// fresh before the next request goes back to the remote source.
const DefaultCacheTTL = 5 * time.Minute

// NewService creates a catalog service. A zero ttl falls back to
// DefaultCacheTTL; metrics may be nil.
func NewService(client ResourceClient, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		client:   client,
		log:      log,
		metrics:  m,
		cacheTTL: ttl,
	}
}

// Launches returns the full launch collection, served from cache while it is
// fresh. Entities are read-only projections and are never persisted locally.
func (s *Service) Launches(ctx context.Context) ([]models.Launch, error) {
	s.cacheMu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.cacheTTL {
		launches := s.cached
		s.cacheMu.RUnlock()
		if s.metrics != nil {
			s.metrics.CacheHits.Inc()
		}
		return launches, nil
	}
	s.cacheMu.RUnlock()

	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	launches, err := s.client.ListLaunches(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Launch collection refreshed", "count", len(launches))

	s.cacheMu.Lock()
	s.cached = launches
	s.fetchedAt = time.Now()
	s.cacheMu.Unlock()

	return launches, nil
}

// InvalidateCache drops the cached collection so the next call refetches.
func (s *Service) InvalidateCache() {
	s.cacheMu.Lock()
	s.cached = nil
	s.cacheMu.Unlock()
}

// Rocket fetches a single rocket. Rockets are not part of the cached launch
// collection, so this always goes to the remote source.
func (s *Service) Rocket(ctx context.Context, id string) (*models.Rocket, error) {
	return s.client.GetRocket(ctx, id)
}

// ListPage runs the derived list pipeline against the (cached) collection.
func (s *Service) ListPage(ctx context.Context, c Criteria, page int) (Page, error) {
	launches, err := s.Launches(ctx)
	if err != nil {
		return Page{}, err
	}

	start := time.Now()
	result := Run(launches, c, page)
	if s.metrics != nil {
		s.metrics.ListDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}
