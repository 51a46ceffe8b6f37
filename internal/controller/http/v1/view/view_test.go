package view

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordsDescriptor() resource.Descriptor {
	noop := func(context.Context, string) error { return nil }
	return resource.Descriptor{
		Name:       "moderation/words",
		Section:    "Moderation",
		Title:      "Moderation Words",
		Singular:   "Word",
		Searchable: true,
		Filters: []resource.Filter{
			{Param: "severity", Label: "Severity", Options: []resource.Option{{Value: "high", Label: "High"}, {Value: "low", Label: "Low"}}},
		},
		Columns: []resource.Column{
			{Key: "word", Label: "Word"},
			{Key: "is_active", Label: "Status", Format: "status", Badge: true},
		},
		Form: []resource.Field{{Name: "word", Label: "Word", Kind: resource.KindText, Rules: "required"}},
		Actions: []resource.Action{{
			Name:      "toggle",
			Label:     "Toggle",
			RowParams: []string{"is_active"},
			Visible:   func(row entity.Record) bool { return row.String("word") != "hidden" },
			Do:        func(context.Context, string, entity.Record) error { return nil },
		}},
		Endpoints: resource.Endpoints{
			List:   func(context.Context, entity.ListQuery) (entity.Page, error) { return entity.Page{}, nil },
			Create: func(_ context.Context, r entity.Record) (entity.Record, error) { return r, nil },
			Update: func(_ context.Context, _ string, r entity.Record) (entity.Record, error) { return r, nil },
			Delete: noop,
		},
	}
}

func TestNewListPage(t *testing.T) {
	d := wordsDescriptor()
	st := listing.NewState(20).WithSearch("spam").WithPage(1)

	page := NewListPage(d, listing.View{
		State: st,
		Items: []entity.Record{
			{"id": json.Number("7"), "word": "spam", "is_active": true},
			{"id": json.Number("8"), "word": "hidden", "is_active": false},
		},
		Total: 45,
	}, "")

	require.Len(t, page.Rows, 2)
	assert.Equal(t, "7", page.Rows[0].ID)
	assert.Equal(t, []Cell{{Text: "spam"}, {Text: "active", Badge: true, Class: "badge-active"}}, page.Rows[0].Cells)
	assert.Equal(t, 3, page.Colspan)
	assert.True(t, page.HasActions)

	labels := func(r Row) []string {
		var out []string
		for _, l := range r.Links {
			out = append(out, l.Label)
		}
		return out
	}
	assert.Equal(t, []string{"Edit", "Toggle", "Delete"}, labels(page.Rows[0]))
	assert.Equal(t, []string{"Edit", "Delete"}, labels(page.Rows[1]))

	toggle, err := url.Parse(page.Rows[0].Links[1].URL)
	require.NoError(t, err)
	assert.Equal(t, "/moderation/words/7/actions/toggle", toggle.Path)
	assert.Equal(t, "true", toggle.Query().Get("is_active"))
	assert.Equal(t, "page=1&search=spam&size=20", toggle.Query().Get("return"))

	assert.Equal(t, Pager{
		Number: 2,
		Pages:  3,
		From:   21,
		To:     40,
		Prev:   "/moderation/words?search=spam&size=20",
		Next:   "/moderation/words?page=2&search=spam&size=20",
		Sizes:  page.Pager.Sizes,
	}, page.Pager)
	assert.Equal(t, "/moderation/words?search=spam&size=50", page.Pager.Sizes[2].URL)
	assert.True(t, page.Pager.Sizes[1].Current)
}

func TestNewListPage_filterSelection(t *testing.T) {
	st := listing.NewState(10).WithFilter("severity", "low")
	page := NewListPage(wordsDescriptor(), listing.View{State: st}, "")

	require.Len(t, page.Filters, 1)
	assert.False(t, page.Filters[0].Options[0].Selected)
	assert.True(t, page.Filters[0].Options[1].Selected)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 1, page.Pager.Pages)
	assert.Empty(t, page.Pager.Next)
}

func TestNewFormFields(t *testing.T) {
	fields := []resource.Field{
		{Name: "name", Label: "Name", Kind: resource.KindText, Rules: "required"},
		{Name: "is_active", Label: "Active", Kind: resource.KindBool},
		{Name: "currency_code", Label: "Currency", Kind: resource.KindSelect, OptionsFrom: "settings/currencies"},
	}
	out := NewFormFields(fields,
		map[string]string{"name": "", "is_active": "true", "currency_code": "EUR"},
		resource.FieldErrors{"name": "Name is required"},
		map[string][]resource.Option{"currency_code": {{Value: "USD", Label: "Dollar"}, {Value: "EUR", Label: "Euro"}}},
	)

	require.Len(t, out, 3)
	assert.True(t, out[0].Required)
	assert.Equal(t, "Name is required", out[0].Error)
	assert.True(t, out[1].Checked)
	assert.Equal(t, []SelectOption{{Value: "USD", Label: "Dollar"}, {Value: "EUR", Label: "Euro", Selected: true}}, out[2].Options)
}

func TestNewDetailRows(t *testing.T) {
	rows := NewDetailRows(entity.Record{
		"id":   json.Number("3"),
		"user": map[string]any{"email": "a@b.c", "full_name": "Ann"},
	})
	assert.Equal(t, []DetailRow{
		{Key: "id", Value: "3"},
		{Key: "user.email", Value: "a@b.c"},
		{Key: "user.full_name", Value: "Ann"},
	}, rows)
}

func TestNewDashboardPage(t *testing.T) {
	var d entity.Dashboard
	d.Stats.TotalUsers = "12500"
	d.Stats.TotalRevenue = "1234.5"
	pending := 4
	d.PendingAdvertisements = &pending
	for i := range 7 {
		d.RecentActivities = append(d.RecentActivities, entity.Activity{
			Type:        "advertisement",
			Description: fmt.Sprintf("Ad %d posted", i+1),
			CreatedAt:   "2024-03-0" + strconv.Itoa(i+1) + "T10:00:00Z",
		})
	}
	d.RecentActivities[0].Type = "user_registration"

	page := NewDashboardPage(d)
	require.Len(t, page.Cards, 5)
	assert.Equal(t, "12,500", page.Cards[0].Value)
	assert.Equal(t, "0", page.Cards[1].Value)
	assert.Equal(t, "₹1,234.50", page.Cards[3].Value)
	assert.Equal(t, "4", page.Cards[4].Value)

	require.Len(t, page.Activities, 5)
	assert.Equal(t, ActivityRow{Description: "Ad 1 posted", Date: "01 Mar 2024", Type: "user_registration", Primary: true}, page.Activities[0])
	assert.Equal(t, "Ad 5 posted", page.Activities[4].Description)
	assert.False(t, page.Activities[4].Primary)
}

func TestNewSettingsPage(t *testing.T) {
	settings := []entity.Setting{
		{Key: "site_name", Value: "RoundBuy"},
		{Key: "maintenance", Value: false},
	}

	page := NewSettingsPage(settings, nil, nil)
	require.Len(t, page.Settings, 2)
	assert.Equal(t, "setting.site_name", page.Settings[0].Name)
	assert.Equal(t, "kind.maintenance", page.Settings[1].KindName)
	assert.Equal(t, "bool", page.Settings[1].Kind)
	assert.False(t, page.Settings[1].Checked)

	posted := url.Values{"setting.site_name": {""}, "setting.maintenance": {"true"}}
	page = NewSettingsPage(settings, posted, resource.FieldErrors{"setting.site_name": "required"})
	assert.Equal(t, "", page.Settings[0].Value)
	assert.Equal(t, "required", page.Settings[0].Error)
	assert.True(t, page.Settings[1].Checked)
}

func TestRenderer_Render(t *testing.T) {
	d := wordsDescriptor()
	registry, err := resource.NewRegistry(d)
	require.NoError(t, err)

	rd, err := New(registry.Sections())
	require.NoError(t, err)

	t.Run("list with session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/moderation/words", nil)
		r = r.WithContext(entity.ContextWithSession(r.Context(), entity.Session{ID: "s1", Email: "admin@roundbuy.com"}))
		w := httptest.NewRecorder()

		rd.Render(w, r, http.StatusOK, PageList, Page{
			Title:   d.Title,
			Current: d.Name,
			Flash:   &Flash{Kind: FlashSuccess, Message: "Word deleted successfully"},
			Data:    NewListPage(d, listing.View{State: listing.NewState(20)}, ""),
		})

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "No Records Found")
		assert.Contains(t, body, "Word deleted successfully")
		assert.Contains(t, body, "admin@roundbuy.com")
		assert.Contains(t, body, `class="current">Moderation Words`)
		assert.NotContains(t, body, `class="pager"`)
	})

	t.Run("stale rows from another page", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/moderation/words?page=2", nil)
		w := httptest.NewRecorder()

		v := listing.View{
			State:      listing.NewState(20).WithPage(2),
			Items:      []entity.Record{{"id": json.Number("7"), "word": "spam", "is_active": true}},
			Total:      45,
			Stale:      true,
			OtherQuery: true,
		}
		rd.Render(w, r, http.StatusBadGateway, PageList, Page{Title: d.Title, Current: d.Name, Data: NewListPage(d, v, "Failed to load words")})

		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Showing the last loaded rows, which belong to a different page or filter.")
	})

	t.Run("login without session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		w := httptest.NewRecorder()

		rd.Render(w, r, http.StatusUnauthorized, PageLogin, Page{Data: LoginPage{Error: "Invalid credentials", Next: "/users"}})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Invalid credentials")
		assert.Contains(t, body, `value="/users"`)
		assert.False(t, strings.Contains(body, "Sign out"))
	})

	t.Run("unknown page", func(t *testing.T) {
		w := httptest.NewRecorder()
		rd.Render(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope", Page{})
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestStatic(t *testing.T) {
	w := httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin.css", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".sidebar")
}
