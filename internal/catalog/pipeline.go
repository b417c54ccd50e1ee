package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spacedex/spacedex/internal/models"
)

// PageSize is the fixed number of launches per page.
const PageSize = 12

// Page is one slice of the filtered, sorted launch collection. Page numbers
// are 1-based; TotalPages is ceil(TotalFiltered / PageSize).
type Page struct {
	Items         []models.Launch `json:"items"`
	Number        int             `json:"page"`
	TotalFiltered int             `json:"totalFiltered"`
	TotalPages    int             `json:"totalPages"`
}

// Filter returns the launches matching the criteria's search term and filter
// set. All dimensions are ANDed. The input slice is not modified and empty
// results are valid, never an error.
func Filter(launches []models.Launch, c Criteria) []models.Launch {
	filtered := make([]models.Launch, 0, len(launches))
	term := strings.ToLower(c.SearchTerm)

	for _, launch := range launches {
		if term != "" && !matchesSearch(&launch, term) {
			continue
		}
		if !c.Filters.Success.MatchesOptionalBool(launch.Success) {
			continue
		}
		if !c.Filters.Upcoming.MatchesBool(launch.Upcoming) {
			continue
		}
		// Year is pinned to UTC so the filter is reproducible across
		// environments.
		if c.Filters.Year != 0 && launch.DateUTC.UTC().Year() != c.Filters.Year {
			continue
		}
		filtered = append(filtered, launch)
	}

	return filtered
}

// matchesSearch reports whether the lowercased term is a substring of the
// launch name or details. A launch without details can only match on name.
func matchesSearch(launch *models.Launch, term string) bool {
	if strings.Contains(strings.ToLower(launch.Name), term) {
		return true
	}
	return launch.Details != nil && strings.Contains(strings.ToLower(*launch.Details), term)
}

// Sort orders launches in place by the given options. The sort is stable so
// repeated application yields identical order; ties keep their relative
// position. Name comparison is locale-aware.
func Sort(launches []models.Launch, options SortOptions) {
	var cmp func(a, b *models.Launch) int

	switch options.Field {
	case "name":
		collator := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b *models.Launch) int {
			return collator.CompareString(a.Name, b.Name)
		}
	case "flight_number":
		cmp = func(a, b *models.Launch) int {
			return a.FlightNumber - b.FlightNumber
		}
	default: // date_utc
		cmp = func(a, b *models.Launch) int {
			return a.DateUTC.Compare(b.DateUTC)
		}
	}

	desc := options.Order == "desc"
	sort.SliceStable(launches, func(i, j int) bool {
		c := cmp(&launches[i], &launches[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// Paginate slices one 1-based page out of an already filtered and sorted
// collection. A page number outside the valid range yields an empty slice
// with the totals intact, never an error.
func Paginate(filtered []models.Launch, page int) Page {
	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	result := Page{
		Items:         []models.Launch{},
		Number:        page,
		TotalFiltered: total,
		TotalPages:    totalPages,
	}

	if page < 1 || page > totalPages {
		return result
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	result.Items = append(result.Items, filtered[start:end]...)

	return result
}

// Run applies the full pipeline: filter, stable sort, then paginate.
func Run(launches []models.Launch, c Criteria, page int) Page {
	filtered := Filter(launches, c)
	Sort(filtered, c.Sort)
	return Paginate(filtered, page)
}
