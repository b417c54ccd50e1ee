// Package spacex is a typed read-only client for the SpaceX v4 REST API.
// Every call is a single attempt: no retry, no backoff beyond what the
// injected http.Client provides.
package spacex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/spacedex/spacedex/internal/models"
	"github.com/spacedex/spacedex/pkg/logger"
	"github.com/spacedex/spacedex/pkg/metrics"
)

// DefaultBaseURL is the public SpaceX v4 API endpoint.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

// Resource names used in errors and metrics labels.
const (
	ResourceLaunches  = "launches"
	ResourceLaunch    = "launch"
	ResourceRocket    = "rocket"
	ResourceLaunchpad = "launchpad"
	ResourceCrew      = "crew"
	ResourcePayload   = "payload"
)

// FetchError is returned for any failed remote fetch, whether the transport
// failed or the resource does not exist.
type FetchError struct {
	Resource   string
	ID         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("fetch %s %q: %s", e.Resource, e.ID, e.reason())
	}
	return fmt.Sprintf("fetch %s: %s", e.Resource, e.reason())
}

func (e *FetchError) reason() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFound reports whether the remote source answered 404 for this resource.
func (e *FetchError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// Client fetches SpaceX resources over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
	metrics    *metrics.Metrics // optional
}

// NewClient creates a client against the given base URL. A nil httpClient
// falls back to http.DefaultClient; metrics may be nil.
func NewClient(baseURL string, httpClient *http.Client, log logger.Logger, m *metrics.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
		metrics:    m,
	}
}

// ListLaunches retrieves the full unfiltered launch collection.
func (c *Client) ListLaunches(ctx context.Context) ([]models.Launch, error) {
	var launches []models.Launch
	if err := c.getJSON(ctx, ResourceLaunches, "/launches", "", &launches); err != nil {
		return nil, err
	}
	return launches, nil
}

// GetLaunch retrieves a single launch by id.
func (c *Client) GetLaunch(ctx context.Context, id string) (*models.Launch, error) {
	var launch models.Launch
	if err := c.getJSON(ctx, ResourceLaunch, "/launches/"+id, id, &launch); err != nil {
		return nil, err
	}
	return &launch, nil
}

// GetRocket retrieves a single rocket by id.
func (c *Client) GetRocket(ctx context.Context, id string) (*models.Rocket, error) {
	var rocket models.Rocket
	if err := c.getJSON(ctx, ResourceRocket, "/rockets/"+id, id, &rocket); err != nil {
		return nil, err
	}
	return &rocket, nil
}

// GetLaunchpad retrieves a single launchpad by id.
func (c *Client) GetLaunchpad(ctx context.Context, id string) (*models.Launchpad, error) {
	var pad models.Launchpad
	if err := c.getJSON(ctx, ResourceLaunchpad, "/launchpads/"+id, id, &pad); err != nil {
		return nil, err
	}
	return &pad, nil
}

// GetCrewMember retrieves a single crew member by id.
func (c *Client) GetCrewMember(ctx context.Context, id string) (*models.Crew, error) {
	var member models.Crew
	if err := c.getJSON(ctx, ResourceCrew, "/crew/"+id, id, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetPayload retrieves a single payload by id.
func (c *Client) GetPayload(ctx context.Context, id string) (*models.Payload, error) {
	var payload models.Payload
	if err := c.getJSON(ctx, ResourcePayload, "/payloads/"+id, id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetCrewMembers fetches all given crew members concurrently, preserving
// input order in the result. An empty id list returns an empty slice without
// any network call. If any single fetch fails the whole batch fails.
func (c *Client) GetCrewMembers(ctx context.Context, ids []string) ([]models.Crew, error) {
	if len(ids) == 0 {
		return []models.Crew{}, nil
	}

	results := make([]models.Crew, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			member, err := c.GetCrewMember(ctx, id)
			if err != nil {
				return err
			}
			results[i] = *member
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GetPayloads fetches all given payloads concurrently, preserving input order
// in the result. Same batch semantics as GetCrewMembers.
func (c *Client) GetPayloads(ctx context.Context, ids []string) ([]models.Payload, error) {
	if len(ids) == 0 {
		return []models.Payload{}, nil
	}

	results := make([]models.Payload, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			payload, err := c.GetPayload(ctx, id)
			if err != nil {
				return err
			}
			results[i] = *payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// getJSON performs a single GET against the API and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, resource, path, id string, out any) error {
	if c.metrics != nil {
		c.metrics.RemoteFetches.WithLabelValues(resource).Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return c.fail(&FetchError{Resource: resource, ID: id, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(&FetchError{Resource: resource, ID: id, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fail(&FetchError{Resource: resource, ID: id, StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(&FetchError{Resource: resource, ID: id, Err: err})
	}

	return nil
}

func (c *Client) fail(ferr *FetchError) error {
	if c.metrics != nil {
		c.metrics.FetchErrors.WithLabelValues(ferr.Resource).Inc()
	}
	c.log.Warn("Remote fetch failed",
		"resource", ferr.Resource,
		"id", ferr.ID,
		"error", ferr.Error())
	return ferr
}
