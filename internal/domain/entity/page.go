package entity

import (
	"net/url"
	"sort"
	"strconv"
)

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type Page struct {
	Items []Record
	Total int
}

// ListQuery is what a list endpoint receives. Page is 1-indexed, as the backend expects.
type ListQuery struct {
	Page        int
	Limit       int
	Search      string
	SearchParam string
	Filters     map[string]string
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		param := q.SearchParam
		if param == "" {
			param = "search"
		}
		v.Set(param, q.Search)
	}

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if q.Filters[k] != "" {
			v.Set(k, q.Filters[k])
		}
	}
	return v
}

// Window returns the bounds of the requested page within total items.
// Pages past the end yield an empty window.
func (q ListQuery) Window(total int) (from, to int) {
	if q.Limit <= 0 {
		return 0, total
	}
	skip := max(q.Page-1, 0)
	if skip > total/q.Limit {
		return total, total
	}
	from = min(skip*q.Limit, total)
	to = min(from+q.Limit, total)
	return from, to
}
