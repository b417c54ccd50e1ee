package catalog

import (
	"strings"
	"sync"
)

// Tristate is an explicit three-valued filter setting. The zero value is
// TristateAny, which filters nothing. Modeling this as a tagged enum keeps
// "unset" and "false" from ever being confused.
type Tristate int

const (
	TristateAny Tristate = iota
	TristateTrue
	TristateFalse
)

// ParseTristate maps a query-style string onto a Tristate. Anything other
// than "true" or "false" means no filter.
func ParseTristate(s string) Tristate {
	switch strings.ToLower(s) {
	case "true":
		return TristateTrue
	case "false":
		return TristateFalse
	default:
		return TristateAny
	}
}

// MatchesBool applies the filter to a plain boolean field.
func (t Tristate) MatchesBool(v bool) bool {
	switch t {
	case TristateTrue:
		return v
	case TristateFalse:
		return !v
	default:
		return true
	}
}

// MatchesOptionalBool applies the filter to a tri-state field. A nil value
// matches only TristateAny: filtering for false excludes unknown outcomes,
// because null and false are distinct states.
func (t Tristate) MatchesOptionalBool(v *bool) bool {
	if t == TristateAny {
		return true
	}
	if v == nil {
		return false
	}
	return t.MatchesBool(*v)
}

// ValidSortFields defines the allowed fields for sorting launches
var ValidSortFields = map[string]bool{
	"date_utc":      true,
	"name":          true,
	"flight_number": true,
}

// ValidOrders defines the allowed sort orders
var ValidOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// ValidViewModes defines the allowed list view modes
var ValidViewModes = map[string]bool{
	"table": true,
	"grid":  true,
}

type SortOptions struct {
	Field string
	Order string
}

func NewSortOptions() SortOptions {
	return SortOptions{
		Field: "date_utc",
		Order: "desc",
	}
}

// ParseSortOptions parses and validates sort and order parameters,
// falling back to defaults if invalid values are provided
func ParseSortOptions(sortField, order string) SortOptions {
	options := NewSortOptions()

	sortField = strings.ToLower(sortField)
	if sortField != "" && ValidSortFields[sortField] {
		options.Field = sortField
	}

	order = strings.ToLower(order)
	if order != "" && ValidOrders[order] {
		options.Order = order
	}

	return options
}

// Filters is the structured filter set applied to the launch collection.
// All dimensions are combined with logical AND. Year 0 filters nothing;
// the year of a launch is always taken from date_utc in UTC so the same
// collection filters identically in every environment.
type Filters struct {
	Success  Tristate
	Upcoming Tristate
	Year     int
}

// Criteria is the full query state for the launch list.
type Criteria struct {
	SearchTerm string
	Sort       SortOptions
	ViewMode   string
	Filters    Filters
}

// NewCriteria returns the default criteria: no search, newest first,
// table view, no filters.
func NewCriteria() Criteria {
	return Criteria{
		Sort:     NewSortOptions(),
		ViewMode: "table",
	}
}

// CriteriaStore holds the current list criteria behind a mutex so the HTTP
// surface and any background consumer can share it.
type CriteriaStore struct {
	mu       sync.RWMutex
	criteria Criteria
}

func NewCriteriaStore() *CriteriaStore {
	return &CriteriaStore{criteria: NewCriteria()}
}

// Snapshot returns a copy of the current criteria.
func (s *CriteriaStore) Snapshot() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *CriteriaStore) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.SearchTerm = term
}

func (s *CriteriaStore) SetSort(field, order string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Sort = ParseSortOptions(field, order)
}

func (s *CriteriaStore) SetViewMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ValidViewModes[strings.ToLower(mode)] {
		s.criteria.ViewMode = strings.ToLower(mode)
	}
}

func (s *CriteriaStore) SetSuccessFilter(t Tristate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Filters.Success = t
}

func (s *CriteriaStore) SetUpcomingFilter(t Tristate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Filters.Upcoming = t
}

func (s *CriteriaStore) SetYearFilter(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Filters.Year = year
}

// Reset restores the default search, sort and filters. The view mode is a
// display preference and survives a reset.
func (s *CriteriaStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	mode := s.criteria.ViewMode
	s.criteria = NewCriteria()
	s.criteria.ViewMode = mode
}
