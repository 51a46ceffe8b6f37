package listing

import (
	"context"
	"log/slog"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

// Fetch issues one list request.
type Fetch func(ctx context.Context, q entity.ListQuery) (entity.Page, error)

// Memory keeps the last good page of each screen so a failed reload can still show it.
type Memory interface {
	Recall(ctx context.Context, screen string) (entity.ScreenSnapshot, bool)
	Remember(ctx context.Context, screen string, snapshot entity.ScreenSnapshot) error
}

type View struct {
	State State
	Items []entity.Record
	Total int
	// Stale is set when the request failed and Items come from the previous load.
	Stale bool
	// OtherQuery marks stale Items that were loaded for another page, search or filter.
	OtherQuery bool
}

type Controller struct {
	Screen      string
	SearchParam string
	Fetch       Fetch
	Memory      Memory
}

// Load issues exactly one list request for st and replaces rows and total with the response.
// On failure the error is returned together with the previous rows, if any.
func (c Controller) Load(ctx context.Context, st State) (View, error) {
	q := st.Query(c.SearchParam)

	page, err := c.Fetch(ctx, q)
	if err != nil {
		view := View{State: st, Items: []entity.Record{}}
		if c.Memory != nil {
			if snap, ok := c.Memory.Recall(ctx, c.Screen); ok {
				view.Items = snap.Items
				view.Total = snap.Total
				view.Stale = true
				view.OtherQuery = snap.Query != q.Values().Encode()
			}
		}
		return view, err
	}

	if page.Items == nil {
		page.Items = []entity.Record{}
	}

	if c.Memory != nil {
		err := c.Memory.Remember(ctx, c.Screen, entity.ScreenSnapshot{
			Query:    q.Values().Encode(),
			Items:    page.Items,
			Total:    page.Total,
			LoadedAt: time.Now(),
		})
		if err != nil {
			slog.Error("error remembering list snapshot", "screen", c.Screen, "error", err)
		}
	}

	return View{State: st, Items: page.Items, Total: page.Total}, nil
}
