package view

import (
	"encoding/json"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/dustin/go-humanize"
)

type Link struct {
	Label string
	URL   string
	Class string
}

type Cell struct {
	Text  string
	Badge bool
	Class string
}

type Row struct {
	ID    string
	Cells []Cell
	Links []Link
}

type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

type FilterControl struct {
	Param   string
	Label   string
	Options []FilterOption
}

type SizeLink struct {
	Size    int
	URL     string
	Current bool
}

type Pager struct {
	Number int
	Pages  int
	From   int
	To     int
	Prev   string
	Next   string
	Sizes  []SizeLink
}

type ListPage struct {
	Descriptor resource.Descriptor
	State      listing.State
	Filters    []FilterControl
	Rows       []Row
	Total      int
	Pager      Pager
	HasActions bool
	Colspan    int
	NewURL     string
	Stale      bool
	OtherQuery bool
	Error      string
}

// ReturnValue encodes a list state for the hidden "return" field and links back to it.
func ReturnValue(st listing.State) string {
	return st.Values().Encode()
}

// ListURL is the address of a list screen in the given state.
func ListURL(d resource.Descriptor, st listing.State) string {
	return d.Path() + "?" + st.Values().Encode()
}

func withReturn(path string, st listing.State, extra url.Values) string {
	v := url.Values{}
	for k, vals := range extra {
		v[k] = vals
	}
	v.Set("return", ReturnValue(st))
	return path + "?" + v.Encode()
}

func NewListPage(d resource.Descriptor, v listing.View, errMsg string) ListPage {
	p := ListPage{
		Descriptor: d,
		State:      v.State,
		Total:      v.Total,
		Stale:      v.Stale,
		OtherQuery: v.OtherQuery,
		Error:      errMsg,
		Rows:       make([]Row, 0, len(v.Items)),
		HasActions: d.CanEdit() || d.CanDelete() || d.CanView() || len(d.Actions) > 0,
	}
	if d.CanCreate() {
		p.NewURL = withReturn(d.Path()+"/new", v.State, nil)
	}

	p.Colspan = len(d.Columns)
	if p.HasActions {
		p.Colspan++
	}

	for _, f := range d.Filters {
		fc := FilterControl{Param: f.Param, Label: f.Label}
		for _, o := range f.Options {
			fc.Options = append(fc.Options, FilterOption{
				Value:    o.Value,
				Label:    o.Label,
				Selected: v.State.Filters[f.Param] == o.Value,
			})
		}
		p.Filters = append(p.Filters, fc)
	}

	for _, item := range v.Items {
		p.Rows = append(p.Rows, newRow(d, v.State, item, v.Items))
	}

	p.Pager = newPager(d, v.State, v.Total)
	return p
}

func newRow(d resource.Descriptor, st listing.State, item entity.Record, page []entity.Record) Row {
	row := Row{ID: item.ID()}
	for _, col := range d.Columns {
		text := resource.FormatCell(col, item, page)
		cell := Cell{Text: text, Badge: col.Badge}
		if col.Badge {
			cell.Class = "badge-" + strings.ReplaceAll(strings.ToLower(text), " ", "-")
		}
		row.Cells = append(row.Cells, cell)
	}

	if row.ID == "" {
		return row
	}
	base := d.Path() + "/" + url.PathEscape(row.ID)

	if d.CanView() {
		row.Links = append(row.Links, Link{Label: "View", URL: withReturn(base, st, nil)})
	}
	if d.CanEdit() {
		row.Links = append(row.Links, Link{Label: "Edit", URL: withReturn(base+"/edit", st, nil)})
	}
	for _, a := range d.Actions {
		if !a.VisibleFor(item) {
			continue
		}
		params := url.Values{}
		for _, p := range a.RowParams {
			params.Set(p, item.String(p))
		}
		row.Links = append(row.Links, Link{
			Label: a.Label,
			URL:   withReturn(base+"/actions/"+a.Name, st, params),
			Class: "action-" + a.Name,
		})
	}
	if d.CanDelete() {
		row.Links = append(row.Links, Link{Label: "Delete", URL: withReturn(base+"/delete", st, nil), Class: "danger"})
	}
	return row
}

func newPager(d resource.Descriptor, st listing.State, total int) Pager {
	pages := 1
	if st.PageSize > 0 && total > 0 {
		pages = (total + st.PageSize - 1) / st.PageSize
	}
	from, to := st.Window(total)

	p := Pager{Number: st.Page + 1, Pages: pages, To: to}
	if to > from {
		p.From = from + 1
	}
	if st.Page > 0 {
		p.Prev = ListURL(d, st.WithPage(st.Page-1))
	}
	if st.Page+1 < pages {
		p.Next = ListURL(d, st.WithPage(st.Page+1))
	}
	for _, size := range listing.PageSizes {
		p.Sizes = append(p.Sizes, SizeLink{
			Size:    size,
			URL:     ListURL(d, st.WithPageSize(size)),
			Current: size == st.PageSize,
		})
	}
	return p
}

type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

type FormField struct {
	Name     string
	Label    string
	Kind     string
	Value    string
	Checked  bool
	Required bool
	Help     string
	Error    string
	Options  []SelectOption
}

// NewFormFields pairs each field with its current value, error and select options.
func NewFormFields(fields []resource.Field, values map[string]string, errs resource.FieldErrors, options map[string][]resource.Option) []FormField {
	out := make([]FormField, 0, len(fields))
	for _, f := range fields {
		ff := FormField{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     string(f.Kind),
			Value:    values[f.Name],
			Required: strings.Contains(f.Rules, "required"),
			Help:     f.Help,
			Error:    errs[f.Name],
		}
		if f.Kind == resource.KindBool {
			ff.Checked = entity.Truthy(ff.Value)
		}

		opts := f.Options
		if f.OptionsFrom != "" {
			opts = options[f.Name]
		}
		for _, o := range opts {
			ff.Options = append(ff.Options, SelectOption{Value: o.Value, Label: o.Label, Selected: o.Value == ff.Value})
		}
		out = append(out, ff)
	}
	return out
}

type FormPage struct {
	Heading string
	Action  string
	Submit  string
	Cancel  string
	Return  string
	Error   string
	Fields  []FormField
}

type Hidden struct {
	Name  string
	Value string
}

type ConfirmPage struct {
	Heading string
	Message string
	Action  string
	Confirm string
	Cancel  string
	Danger  bool
	Hidden  []Hidden
	Fields  []FormField
	Error   string
}

type DetailRow struct {
	Key   string
	Value string
}

type DetailPage struct {
	Heading string
	Back    string
	Edit    string
	Rows    []DetailRow
}

// NewDetailRows flattens a record into sorted dotted keys.
func NewDetailRows(rec entity.Record) []DetailRow {
	flat := map[string]string{}
	flatten("", map[string]any(rec), flat)

	rows := make([]DetailRow, 0, len(flat))
	for _, k := range slices.Sorted(maps.Keys(flat)) {
		rows = append(rows, DetailRow{Key: k, Value: flat[k]})
	}
	return rows
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case entity.Record:
			flatten(key, t, out)
		default:
			out[key] = entity.Stringify(v)
		}
	}
}

type Card struct {
	Label string
	Value string
}

type SeriesRow struct {
	Month string
	Value string
}

type ActivityRow struct {
	Description string
	Date        string
	Type        string
	Primary     bool
}

// recentActivities is how many backend activities the dashboard lists.
const recentActivities = 5

type DashboardPage struct {
	Cards      []Card
	Activities []ActivityRow
	UserGrowth []SeriesRow
	Revenue    []SeriesRow
	Error      string
}

func NewDashboardPage(d entity.Dashboard) DashboardPage {
	money := resource.Formatters["money"]
	p := DashboardPage{
		Cards: []Card{
			{Label: "Total Users", Value: count(d.Stats.TotalUsers)},
			{Label: "Active Subscriptions", Value: count(d.Stats.ActiveSubscriptions)},
			{Label: "Total Advertisements", Value: count(d.Stats.TotalAdvertisements)},
			{Label: "Total Revenue", Value: money(d.Stats.TotalRevenue, nil, nil)},
		},
	}
	if d.PendingAdvertisements != nil {
		p.Cards = append(p.Cards, Card{Label: "Pending Advertisements", Value: humanize.Comma(int64(*d.PendingAdvertisements))})
	}
	date := resource.Formatters["date"]
	for _, a := range d.RecentActivities[:min(len(d.RecentActivities), recentActivities)] {
		p.Activities = append(p.Activities, ActivityRow{
			Description: a.Description,
			Date:        date(a.CreatedAt, nil, nil),
			Type:        a.Type,
			Primary:     a.Type == "user_registration",
		})
	}
	for _, g := range d.Charts.UserGrowth {
		p.UserGrowth = append(p.UserGrowth, SeriesRow{Month: g.Month, Value: count(g.Count)})
	}
	for _, rt := range d.Charts.RevenueTrends {
		p.Revenue = append(p.Revenue, SeriesRow{Month: rt.Month, Value: money(rt.Revenue, nil, nil)})
	}
	return p
}

func count(n json.Number) string {
	if n == "" {
		return "0"
	}
	i, err := n.Int64()
	if err != nil {
		f, err := n.Float64()
		if err != nil {
			return n.String()
		}
		return humanize.Commaf(f)
	}
	return humanize.Comma(i)
}

type SettingField struct {
	Key         string
	Name        string
	KindName    string
	Group       string
	Description string
	Kind        string
	Value       string
	Checked     bool
	Error       string
}

type SettingsPage struct {
	Settings []SettingField
	Error    string
}

// NewSettingsPage builds the settings form. posted holds submitted values by key after a failed save.
func NewSettingsPage(settings []entity.Setting, posted url.Values, errs resource.FieldErrors) SettingsPage {
	p := SettingsPage{Settings: make([]SettingField, 0, len(settings))}
	for _, s := range settings {
		name := entity.SettingValuePrefix + s.Key
		f := SettingField{
			Key:         s.Key,
			Name:        name,
			KindName:    entity.SettingKindPrefix + s.Key,
			Group:       s.Group,
			Description: s.Description,
			Kind:        entity.SettingKind(s.Value),
			Value:       entity.Stringify(s.Value),
			Error:       errs[name],
		}
		if posted != nil {
			f.Value = posted.Get(name)
		}
		if f.Kind == entity.SettingBool {
			f.Checked = entity.Truthy(f.Value)
		}
		p.Settings = append(p.Settings, f)
	}
	return p
}

type LoginPage struct {
	Email string
	Next  string
	Error string
}

type ErrorPage struct {
	Status  int
	Message string
	Back    string
}
