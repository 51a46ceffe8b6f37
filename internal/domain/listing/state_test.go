package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState_Query_pageIsOneIndexed(t *testing.T) {
	st := NewState(20).WithPage(2)

	q := st.Query("")

	require.Equal(t, 3, q.Page)
	require.Equal(t, 20, q.Limit)
	require.Equal(t, "limit=20&page=3", q.Values().Encode())
}

func TestState_resetsPage(t *testing.T) {
	tests := []struct {
		name   string
		change func(State) State
	}{
		{name: "search", change: func(s State) State { return s.WithSearch("bob") }},
		{name: "set filter", change: func(s State) State { return s.WithFilter("status", "pending") }},
		{name: "clear filter", change: func(s State) State { return s.WithFilter("role", "") }},
		{name: "page size", change: func(s State) State { return s.WithPageSize(50) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(20).WithFilter("role", "admin").WithPage(4)
			require.Equal(t, 4, st.Page)

			next := tt.change(st)

			require.Equal(t, 0, next.Page)
			require.Equal(t, 1, next.Query("").Page)
		})
	}
}

func TestState_WithFilter_doesNotShareMap(t *testing.T) {
	base := NewState(20).WithFilter("status", "pending")
	next := base.WithFilter("status", "approved")

	require.Equal(t, "pending", base.Filters["status"])
	require.Equal(t, "approved", next.Filters["status"])
}

func TestState_Query_searchParam(t *testing.T) {
	st := NewState(50).WithSearch("/admin/users").WithFilter("method", "GET")

	v := st.Query("endpoint").Values()

	require.Equal(t, "/admin/users", v.Get("endpoint"))
	require.Empty(t, v.Get("search"))
	require.Equal(t, "GET", v.Get("method"))
}

func TestFromValues(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   State
		wantQS string
	}{
		{
			name:   "defaults",
			query:  "",
			want:   State{Page: 0, PageSize: 20, Filters: map[string]string{}},
			wantQS: "size=20",
		},
		{
			name:   "page and size",
			query:  "page=2&size=50",
			want:   State{Page: 2, PageSize: 50, Filters: map[string]string{}},
			wantQS: "page=2&size=50",
		},
		{
			name:   "filter form without page lands on first page",
			query:  "size=20&search=iphone&status=pending&unknown=x",
			want:   State{Page: 0, PageSize: 20, Search: "iphone", Filters: map[string]string{"status": "pending"}},
			wantQS: "search=iphone&size=20&status=pending",
		},
		{
			name:   "unsupported size falls back",
			query:  "size=7&page=-3",
			want:   State{Page: 0, PageSize: 20, Filters: map[string]string{}},
			wantQS: "size=20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got := FromValues(v, []string{"status", "role"}, 20)

			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantQS, got.Values().Encode())
		})
	}
}

func TestState_Window(t *testing.T) {
	st := NewState(10).WithPage(1)

	from, to := st.Window(15)
	require.Equal(t, 10, from)
	require.Equal(t, 15, to)

	from, to = st.WithPage(5).Window(15)
	require.Equal(t, 15, from)
	require.Equal(t, 15, to)
}

func TestState_WithPage_extreme(t *testing.T) {
	st := FromValues(url.Values{"page": {"999999999999999999"}, "size": {"10"}}, nil, 20)

	require.Equal(t, MaxPage, st.Page)

	from, to := st.Window(15)
	require.Equal(t, 15, from)
	require.Equal(t, 15, to)
}
