package roundbuy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withToken(token string) context.Context {
	return entity.ContextWithSession(context.Background(), entity.Session{ID: "s1", AccessToken: token})
}

func newTestClient(t *testing.T, mux *http.ServeMux) (*Client, *Metrics) {
	t.Helper()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	m := NewMetrics()
	return NewClient(ts.URL+"/api/", 5*time.Second, m), m
}

func TestClient_ListUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "bob", r.URL.Query().Get("search"))
		assert.Equal(t, "true", r.URL.Query().Get("is_active"))

		_, _ = io.WriteString(w, `{"success":true,"data":{"users":[{"id":41,"email":"bob@example.com"}],"pagination":{"total":41,"page":3,"limit":20}}}`)
	})
	c, m := newTestClient(t, mux)

	page, err := c.ListUsers(withToken("tok"), entity.ListQuery{
		Page: 3, Limit: 20, Search: "bob", Filters: map[string]string{"is_active": "true"},
	})
	require.NoError(t, err)
	require.Equal(t, 41, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "41", page.Items[0].ID())
	require.Equal(t, "bob@example.com", page.Items[0].String("email"))

	require.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("list users", http.MethodGet, "200")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `roundbuy_admin_api_requests_total{code="200",endpoint="list users",method="GET"} 1`)
}

func TestClient_list_unpaginated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		items := make([]map[string]any, 0, 25)
		for i := 1; i <= 25; i++ {
			items = append(items, map[string]any{"id": i, "name": fmt.Sprintf("Category %d", i)})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": items})
	})
	c, _ := newTestClient(t, mux)

	page, err := c.ListCategories(withToken("tok"), entity.ListQuery{Page: 2, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, 25, page.Total)
	require.Len(t, page.Items, 5)
	require.Equal(t, "21", page.Items[0].ID())

	page, err = c.ListCategories(withToken("tok"), entity.ListQuery{Page: 1, Limit: 100})
	require.NoError(t, err)
	require.Len(t, page.Items, 25)

	page, err = c.ListCategories(withToken("tok"), entity.ListQuery{Page: 999999999999999999, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 25, page.Total)
	require.Empty(t, page.Items)
}

func TestClient_errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"success":false,"message":"Token expired"}`,
			wantCode: errors.ErrUnauthorized,
			wantMsg:  "delete user: Token expired",
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			body:     `{"error":"Admin access required"}`,
			wantCode: errors.ErrForbidden,
			wantMsg:  "delete user: Admin access required",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     ``,
			wantCode: errors.ErrNoDataFound,
			wantMsg:  "delete user: Not Found",
		},
		{
			name:     "validation",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":{"message":"Cannot delete the last admin"}}`,
			wantCode: errors.ErrValidation,
			wantMsg:  "delete user: Cannot delete the last admin",
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			wantCode: errors.ErrUpstream,
			wantMsg:  "delete user: Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("DELETE /api/admin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			c, _ := newTestClient(t, mux)

			err := c.DeleteUser(withToken("tok"), "7")
			require.Error(t, err)
			require.Equal(t, tt.wantCode, errors.Code(err))
			require.Equal(t, tt.wantMsg, errors.Message(err))
		})
	}
}

func TestClient_transportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewClient(url, time.Second, nil)
	_, err := c.ListUsers(withToken("tok"), entity.ListQuery{Page: 1, Limit: 20})
	require.Equal(t, errors.ErrUpstream, errors.Code(err))
}

func TestClient_DashboardStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":{"stats":{"totalUsers":12},"recentActivities":[{"type":"user_registration","description":"New user registered","created_at":"2024-03-01T10:00:00Z"}],"charts":{"userGrowth":[{"month":"2024-03","count":4}]}}}`)
	})
	c, _ := newTestClient(t, mux)

	stats, err := c.DashboardStats(withToken("tok"))
	require.NoError(t, err)
	require.Equal(t, json.Number("12"), stats.Stats.TotalUsers)
	require.Equal(t, []entity.Activity{{Type: "user_registration", Description: "New user registered", CreatedAt: "2024-03-01T10:00:00Z"}}, stats.RecentActivities)
	require.Len(t, stats.Charts.UserGrowth, 1)
}

func TestClient_RejectAdvertisement(t *testing.T) {
	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/admin/advertisements/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12", r.PathValue("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = io.WriteString(w, `{"success":true,"message":"Advertisement rejected"}`)
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.RejectAdvertisement(withToken("tok"), "12", "Prohibited item"))
	require.Equal(t, map[string]any{"rejection_reason": "Prohibited item"}, gotBody)
}

func TestClient_SetUserStatus(t *testing.T) {
	var gotBody string
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/admin/users/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, mux)

	require.NoError(t, c.SetUserStatus(withToken("tok"), "3", false))
	require.JSONEq(t, `{"is_active":false}`, gotBody)
}

func TestClient_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		var dto entity.LoginDTO
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		if dto.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"success":false,"message":"Invalid credentials"}`)
			return
		}
		_, _ = io.WriteString(w, `{"success":true,"data":{"token":"abc","user":{"email":"admin@roundbuy.com","full_name":"Admin","role":"admin"}}}`)
	})
	c, _ := newTestClient(t, mux)

	res, err := c.Login(context.Background(), entity.LoginDTO{Email: "admin@roundbuy.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "abc", res.BearerToken())
	require.Equal(t, "Admin", res.User.FullName)

	_, err = c.Login(context.Background(), entity.LoginDTO{Email: "admin@roundbuy.com", Password: "wrong"})
	require.Equal(t, errors.ErrUnauthorized, errors.Code(err))
}

func TestClient_settings(t *testing.T) {
	var bulk string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"setting_key":"site_name","setting_value":"RoundBuy"},{"setting_key":"max_images","setting_value":8}]}`)
	})
	mux.HandleFunc("POST /api/admin/settings/bulk", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bulk = string(b)
	})
	c, _ := newTestClient(t, mux)

	settings, err := c.ListSettings(withToken("tok"), "")
	require.NoError(t, err)
	require.Len(t, settings, 2)
	require.Equal(t, "site_name", settings[0].Key)
	require.Equal(t, json.Number("8"), settings[1].Value)

	settings[0].Value = "RoundBuy Admin"
	require.NoError(t, c.BulkUpdateSettings(withToken("tok"), settings))
	require.JSONEq(t, `{"settings":[{"setting_key":"site_name","setting_value":"RoundBuy Admin"},{"setting_key":"max_images","setting_value":8}]}`, bulk)
}

func Test_decodePage(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		itemsKey      string
		wantIDs       []string
		wantTotal     int
		wantPaginated bool
	}{
		{
			name:          "items key",
			raw:           `{"logs":[{"id":1},{"id":2}],"pagination":{"total":90}}`,
			itemsKey:      "logs",
			wantIDs:       []string{"1", "2"},
			wantTotal:     90,
			wantPaginated: true,
		},
		{
			name:      "items fallback",
			raw:       `{"items":[{"id":"a"}]}`,
			itemsKey:  "plans",
			wantIDs:   []string{"a"},
			wantTotal: 1,
		},
		{
			name:      "first array",
			raw:       `{"count":2,"rows":[{"id":3},{"id":4}]}`,
			itemsKey:  "plans",
			wantIDs:   []string{"3", "4"},
			wantTotal: 2,
		},
		{
			name:      "bare array",
			raw:       `[{"id":5}]`,
			wantIDs:   []string{"5"},
			wantTotal: 1,
		},
		{
			name:      "null",
			raw:       `null`,
			wantIDs:   []string{},
			wantTotal: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, paginated, err := decodePage(json.RawMessage(tt.raw), tt.itemsKey)
			require.NoError(t, err)
			require.Equal(t, tt.wantTotal, page.Total)
			require.Equal(t, tt.wantPaginated, paginated)

			ids := make([]string, 0, len(page.Items))
			for _, it := range page.Items {
				ids = append(ids, it.ID())
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_decodeRecord_nested(t *testing.T) {
	rec, err := decodeRecord(json.RawMessage(`{"user":{"id":9,"email":"x@y.z"},"stats":{"ads":3}}`), "user")
	require.NoError(t, err)
	require.Equal(t, "9", rec.ID())

	rec, err = decodeRecord(json.RawMessage(`{"id":10}`), "user")
	require.NoError(t, err)
	require.Equal(t, "10", rec.ID())
}
