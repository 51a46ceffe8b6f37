// Package resource describes the console's list screens as data: one Descriptor per
// backend collection, holding its columns, filters, form schema, row actions and the
// API calls behind them.
package resource

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
)

type (
	ListFunc   func(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	GetFunc    func(ctx context.Context, id string) (entity.Record, error)
	CreateFunc func(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateFunc func(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteFunc func(ctx context.Context, id string) error
	ActionFunc func(ctx context.Context, id string, input entity.Record) error
)

// Endpoints binds a descriptor to API calls. A nil endpoint disables the matching capability.
type Endpoints struct {
	List   ListFunc
	Get    GetFunc
	Create CreateFunc
	Update UpdateFunc
	Delete DeleteFunc
}

type Option struct {
	Value string
	Label string
}

type Filter struct {
	Param   string
	Label   string
	Options []Option
}

type Column struct {
	Key   string
	Label string
	// Format names a formatter from Formatters; empty means "text".
	Format string
	Badge  bool
}

// Action is a row operation other than edit and delete (approve, reject, toggle...).
type Action struct {
	Name  string
	Label string
	// Confirm is the question shown before the action runs.
	Confirm string
	// Fields are collected in the confirm dialog and passed to Do.
	Fields []Field
	// RowParams are row values carried through the confirm dialog into Do's input.
	RowParams []string
	Success   string
	Failure   string
	Visible   func(row entity.Record) bool
	Do        ActionFunc
}

func (a Action) VisibleFor(row entity.Record) bool {
	return a.Visible == nil || a.Visible(row)
}

type Descriptor struct {
	// Name is the URL path of the screen without the leading slash ("content/banners").
	Name     string
	Section  string
	Title    string
	Singular string

	Searchable  bool
	SearchParam string
	SearchHint  string
	Filters     []Filter
	Columns     []Column

	Form    []Field
	Actions []Action

	DefaultPageSize int
	Endpoints       Endpoints
}

func (d Descriptor) Path() string { return "/" + d.Name }

func (d Descriptor) CanCreate() bool { return d.Endpoints.Create != nil && len(d.Form) > 0 }

func (d Descriptor) CanEdit() bool { return d.Endpoints.Update != nil && len(d.Form) > 0 }

func (d Descriptor) CanDelete() bool { return d.Endpoints.Delete != nil }

func (d Descriptor) CanView() bool { return d.Endpoints.Get != nil }

func (d Descriptor) PageSize() int {
	if slices.Contains(listing.PageSizes, d.DefaultPageSize) {
		return d.DefaultPageSize
	}
	return listing.DefaultPageSize
}

func (d Descriptor) FilterKeys() []string {
	keys := make([]string, 0, len(d.Filters))
	for _, f := range d.Filters {
		keys = append(keys, f.Param)
	}
	return keys
}

func (d Descriptor) Action(name string) (Action, bool) {
	i := slices.IndexFunc(d.Actions, func(a Action) bool { return a.Name == name })
	if i < 0 {
		return Action{}, false
	}
	return d.Actions[i], true
}

// Succeeded and Failed build the notification for a finished operation,
// e.g. "Plan created successfully", "Failed to delete user".
func (d Descriptor) Succeeded(verb string) string {
	return fmt.Sprintf("%s %s successfully", d.Singular, verb)
}

func (d Descriptor) Failed(verb string) string {
	return fmt.Sprintf("Failed to %s %s", verb, strings.ToLower(d.Singular))
}
