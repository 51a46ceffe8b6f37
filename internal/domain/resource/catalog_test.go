package resource_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/adapter/api/roundbuy"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/demo"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, baseURL string) *resource.Registry {
	t.Helper()

	demoAds, err := demo.NewStore()
	require.NoError(t, err)

	reg, err := resource.NewRegistry(resource.Catalog(roundbuy.NewClient(baseURL, time.Second, nil), demoAds)...)
	require.NoError(t, err)
	return reg
}

func TestCatalog_consistent(t *testing.T) {
	reg := newRegistry(t, "http://127.0.0.1:1")

	for _, d := range reg.All() {
		require.NotEmpty(t, d.Title, d.Name)
		require.NotEmpty(t, d.Singular, d.Name)
		require.NotEmpty(t, d.Columns, d.Name)
		require.Contains(t, listing.PageSizes, d.PageSize(), d.Name)

		for _, f := range d.Form {
			if f.OptionsFrom != "" {
				_, ok := reg.Get(f.OptionsFrom)
				require.True(t, ok, "%s.%s options from unknown %q", d.Name, f.Name, f.OptionsFrom)
			}
			if f.SlugFrom != "" {
				require.True(t, slices.ContainsFunc(d.Form, func(o resource.Field) bool { return o.Name == f.SlugFrom }))
			}
		}
		for _, a := range d.Actions {
			require.NotNil(t, a.Do, "%s/%s", d.Name, a.Name)
		}
	}

	logs, ok := reg.Get("/api/logs")
	require.True(t, ok)
	require.Equal(t, "endpoint", logs.SearchParam)
	require.Equal(t, 50, logs.PageSize())
	require.True(t, logs.CanView())
	require.False(t, logs.CanCreate())

	users, ok := reg.Get("users")
	require.True(t, ok)
	require.False(t, users.CanCreate())
	require.True(t, users.CanEdit())
	require.True(t, users.CanDelete())
	require.Equal(t, []string{"role", "status"}, users.FilterKeys())
	require.Equal(t, "Failed to delete user", users.Failed("delete"))

	plans, _ := reg.Get("plans/subscriptions")
	require.Equal(t, "Plan created successfully", plans.Succeeded("created"))
}

func TestRegistry_Sections(t *testing.T) {
	reg := newRegistry(t, "http://127.0.0.1:1")

	var names []string
	for _, s := range reg.Sections() {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"", "Plans", "Content", "Translations", "Settings", "Moderation", "API"}, names)
}

func TestNewRegistry_duplicate(t *testing.T) {
	list := func(context.Context, entity.ListQuery) (entity.Page, error) { return entity.Page{}, nil }

	_, err := resource.NewRegistry(
		resource.Descriptor{Name: "users", Endpoints: resource.Endpoints{List: list}},
		resource.Descriptor{Name: "/users", Endpoints: resource.Endpoints{List: list}},
	)
	require.Error(t, err)

	_, err = resource.NewRegistry(resource.Descriptor{Name: "users"})
	require.Error(t, err)
}

func TestCatalog_toggleUserStatus(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /admin/users/7/status", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	users, _ := newRegistry(t, ts.URL).Get("users")
	toggle, ok := users.Action("toggle-status")
	require.True(t, ok)
	require.Equal(t, []string{"is_active"}, toggle.RowParams)

	require.NoError(t, toggle.Do(context.Background(), "7", entity.Record{"is_active": "true"}))
	require.Equal(t, map[string]any{"is_active": false}, got)
}

func TestCatalog_actionVisibility(t *testing.T) {
	reg := newRegistry(t, "http://127.0.0.1:1")
	ads, _ := reg.Get("content/advertisements")

	approve, ok := ads.Action("approve")
	require.True(t, ok)
	require.True(t, approve.VisibleFor(entity.Record{"status": "pending"}))
	require.False(t, approve.VisibleFor(entity.Record{"status": "published"}))

	reject, _ := ads.Action("reject")
	require.Equal(t, "Advertisement rejected successfully", reject.Success)
	require.Len(t, reject.Fields, 1)

	_, ok = ads.Action("archive")
	require.False(t, ok)
}
