package service

import (
	"context"
	stdErrors "errors"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/listing"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/resource"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/stretchr/testify/require"
)

type wordsBackend struct {
	lists   atomic.Int32
	creates atomic.Int32
	failing bool
}

func (b *wordsBackend) descriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:     "moderation/words",
		Title:    "Moderation Words",
		Singular: "Word",
		Form: []resource.Field{
			{Name: "word", Label: "Word/Phrase", Kind: resource.KindText, Rules: "required", Message: "Word/phrase is required"},
			{Name: "severity", Label: "Severity", Kind: resource.KindSelect, Rules: "oneof=low medium high"},
		},
		Endpoints: resource.Endpoints{
			List: func(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
				b.lists.Add(1)
				if b.failing {
					return entity.Page{}, errors.NewDomainError(errors.ErrUpstream, "list moderation words: Bad Gateway")
				}
				return entity.Page{Items: []entity.Record{{"id": "1", "word": "scam"}, {"id": "2", "word": "fraud"}}, Total: 2}, nil
			},
			Create: func(ctx context.Context, rec entity.Record) (entity.Record, error) {
				b.creates.Add(1)
				return rec, nil
			},
		},
	}
}

func newResourceService(t *testing.T, descriptors ...resource.Descriptor) (*resourceService, context.Context) {
	t.Helper()

	reg, err := resource.NewRegistry(descriptors...)
	require.NoError(t, err)

	storage := newFakeStorage()
	session := entity.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, storage.CreateSession(context.Background(), session))

	return NewResourceService(reg, storage), entity.ContextWithSession(context.Background(), session)
}

func TestResourceService_Create_validation(t *testing.T) {
	backend := &wordsBackend{}
	d := backend.descriptor()
	service, ctx := newResourceService(t, d)

	_, err := service.Create(ctx, d, url.Values{"severity": {"extreme"}})
	require.Equal(t, errors.ErrValidation, errors.Code(err))

	var fieldErrs resource.FieldErrors
	require.True(t, stdErrors.As(err, &fieldErrs))
	require.Equal(t, "Word/phrase is required", fieldErrs["word"])
	require.Equal(t, "Severity has an unsupported value", fieldErrs["severity"])
	require.EqualValues(t, 0, backend.creates.Load())

	rec, err := service.Create(ctx, d, url.Values{"word": {"scam"}, "severity": {"high"}})
	require.NoError(t, err)
	require.Equal(t, "scam", rec.String("word"))
	require.EqualValues(t, 1, backend.creates.Load())
}

func TestResourceService_notAllowed(t *testing.T) {
	backend := &wordsBackend{}
	d := backend.descriptor()
	service, ctx := newResourceService(t, d)

	_, err := service.Update(ctx, d, "1", url.Values{"word": {"x"}})
	require.Equal(t, errors.ErrForbidden, errors.Code(err))

	err = service.Delete(ctx, d, "1")
	require.Equal(t, errors.ErrForbidden, errors.Code(err))
}

func TestResourceService_Get_fromSnapshot(t *testing.T) {
	backend := &wordsBackend{}
	d := backend.descriptor()
	service, ctx := newResourceService(t, d)

	_, err := service.Get(ctx, d, "2")
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))

	_, err = service.List(ctx, d, listing.NewState(20))
	require.NoError(t, err)

	// the snapshot is read from the session carried by the next request
	stored, err := service.memory.(sessionMemory).storage.GetSession(ctx, "s1")
	require.NoError(t, err)
	ctx = entity.ContextWithSession(context.Background(), stored)

	rec, err := service.Get(ctx, d, "2")
	require.NoError(t, err)
	require.Equal(t, "fraud", rec.String("word"))
}

func TestResourceService_List_keepsPreviousRowsOnFailure(t *testing.T) {
	backend := &wordsBackend{}
	d := backend.descriptor()
	service, ctx := newResourceService(t, d)

	_, err := service.List(ctx, d, listing.NewState(20))
	require.NoError(t, err)

	stored, err := service.memory.(sessionMemory).storage.GetSession(ctx, "s1")
	require.NoError(t, err)
	ctx = entity.ContextWithSession(context.Background(), stored)

	backend.failing = true
	view, err := service.List(ctx, d, listing.NewState(20).WithPage(1))
	require.Equal(t, errors.ErrUpstream, errors.Code(err))
	require.True(t, view.Stale)
	require.Len(t, view.Items, 2)
	require.EqualValues(t, 2, backend.lists.Load())
}

func TestResourceService_RunAction(t *testing.T) {
	backend := &wordsBackend{}
	service, ctx := newResourceService(t, backend.descriptor())

	var gotID string
	var gotInput entity.Record
	action := resource.Action{
		Name:      "reject",
		Label:     "Reject",
		Fields:    []resource.Field{{Name: "rejection_reason", Label: "Rejection Reason", Kind: resource.KindTextarea, Rules: "required"}},
		RowParams: []string{"status"},
		Do: func(ctx context.Context, id string, input entity.Record) error {
			gotID, gotInput = id, input
			return nil
		},
	}

	err := service.RunAction(ctx, action, "9", url.Values{"status": {"pending"}})
	require.Equal(t, errors.ErrValidation, errors.Code(err))
	require.Empty(t, gotID)

	require.NoError(t, service.RunAction(ctx, action, "9", url.Values{"status": {"pending"}, "rejection_reason": {"Spam"}}))
	require.Equal(t, "9", gotID)
	require.Equal(t, entity.Record{"rejection_reason": "Spam", "status": "pending"}, gotInput)
}

func TestResourceService_FormOptions(t *testing.T) {
	list := func(rows ...entity.Record) resource.ListFunc {
		return func(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
			if q.Limit != optionsLimit || q.Page != 1 {
				return entity.Page{}, errors.NewDomainError(errors.ErrValidation, "unexpected query %+v", q)
			}
			return entity.Page{Items: rows, Total: len(rows)}, nil
		}
	}
	categories := resource.Descriptor{Name: "content/categories", Endpoints: resource.Endpoints{List: list(
		entity.Record{"id": 1, "name": "Electronics"}, entity.Record{"id": 2, "name": "Fashion"},
	)}}
	currencies := resource.Descriptor{Name: "settings/currencies", Endpoints: resource.Endpoints{List: list(
		entity.Record{"id": 1, "code": "INR", "name": "Indian Rupee"},
	)}}
	broken := resource.Descriptor{Name: "content/ad-colors", Endpoints: resource.Endpoints{
		List: func(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
			return entity.Page{}, errors.NewDomainError(errors.ErrUpstream, "list ad colors: Bad Gateway")
		},
	}}
	service, ctx := newResourceService(t, categories, currencies, broken)

	fields := []resource.Field{
		{Name: "title", Kind: resource.KindText},
		{Name: "parent_id", Kind: resource.KindSelect, OptionsFrom: "content/categories"},
		{Name: "currency_code", Kind: resource.KindSelect, OptionsFrom: "settings/currencies", OptionValue: "code"},
	}
	opts, err := service.FormOptions(ctx, fields)
	require.NoError(t, err)
	require.Equal(t, map[string][]resource.Option{
		"parent_id":     {{Value: "1", Label: "Electronics"}, {Value: "2", Label: "Fashion"}},
		"currency_code": {{Value: "INR", Label: "Indian Rupee"}},
	}, opts)

	fields = append(fields, resource.Field{Name: "color_name", Kind: resource.KindSelect, OptionsFrom: "content/ad-colors"})
	opts, err = service.FormOptions(ctx, fields)
	require.Equal(t, errors.ErrUpstream, errors.Code(err))
	require.Len(t, opts, 2)
}
