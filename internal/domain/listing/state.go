// Package listing holds the paging, search and filter state of a list screen
// and the rules for turning it into a backend list request.
package listing

import (
	"maps"
	"net/url"
	"slices"
	"strconv"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

// PageSizes are the page sizes the table offers.
var PageSizes = []int{10, 20, 50, 100}

const DefaultPageSize = 20

// MaxPage bounds the page index taken from a URL.
const MaxPage = 1_000_000

// State is the list screen state. Page is 0-based.
type State struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

func NewState(pageSize int) State {
	if !slices.Contains(PageSizes, pageSize) {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize, Filters: map[string]string{}}
}

func (s State) WithPage(page int) State {
	s.Page = min(max(page, 0), MaxPage)
	return s
}

// WithPageSize changes the page size and goes back to the first page.
func (s State) WithPageSize(size int) State {
	if !slices.Contains(PageSizes, size) {
		return s
	}
	s.PageSize = size
	s.Page = 0
	return s
}

// WithSearch changes the search text and goes back to the first page.
func (s State) WithSearch(search string) State {
	s.Search = search
	s.Page = 0
	return s
}

// WithFilter changes one filter and goes back to the first page.
// An empty value removes the filter.
func (s State) WithFilter(key, value string) State {
	filters := maps.Clone(s.Filters)
	if filters == nil {
		filters = map[string]string{}
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	s.Filters = filters
	s.Page = 0
	return s
}

// Query builds the backend request: pages are 1-indexed there.
func (s State) Query(searchParam string) entity.ListQuery {
	return entity.ListQuery{
		Page:        s.Page + 1,
		Limit:       s.PageSize,
		Search:      s.Search,
		SearchParam: searchParam,
		Filters:     maps.Clone(s.Filters),
	}
}

// Values encodes the state for links. The page is omitted on the first page.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Page > 0 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	v.Set("size", strconv.Itoa(s.PageSize))
	if s.Search != "" {
		v.Set("search", s.Search)
	}
	for _, k := range slices.Sorted(maps.Keys(s.Filters)) {
		if s.Filters[k] != "" {
			v.Set(k, s.Filters[k])
		}
	}
	return v
}

// FromValues decodes a state from a request URL. Only the given filter keys are read.
// A request that carries no "page" (e.g. a submitted filter form) lands on the first page.
func FromValues(v url.Values, filterKeys []string, defaultSize int) State {
	s := NewState(defaultSize)
	if size, err := strconv.Atoi(v.Get("size")); err == nil {
		s = s.WithPageSize(size)
	}
	s.Search = v.Get("search")
	for _, k := range filterKeys {
		if val := v.Get(k); val != "" {
			s.Filters[k] = val
		}
	}
	if page, err := strconv.Atoi(v.Get("page")); err == nil {
		s = s.WithPage(page)
	}
	return s
}

// Window returns the bounds of the current page within a slice of total items.
func (s State) Window(total int) (from, to int) {
	return s.Query("").Window(total)
}
