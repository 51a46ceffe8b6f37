package resource

import (
	"net/url"
	"testing"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

var planFields = []Field{
	{Name: "name", Label: "Plan Name", Kind: KindText, Rules: "required,max=100"},
	{Name: "slug", Label: "Slug", Kind: KindText, Rules: "required,max=100", SlugFrom: "name"},
	{Name: "price", Label: "Price", Kind: KindDecimal, Rules: "required,gte=0"},
	{Name: "features.max_ads", Label: "Max Ads", Kind: KindNumber, Rules: "gte=-1"},
	{Name: "features.chat_enabled", Label: "Chat Enabled", Kind: KindBool},
	{Name: "parent_id", Label: "Parent", Kind: KindSelect, OptionsFrom: "content/categories"},
	activeField(),
}

func TestBind(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		want     entity.Record
		wantErrs FieldErrors
	}{
		{
			name: "slug generated, nested and typed values",
			form: url.Values{
				"name":                  {"Men's Jackets!!"},
				"price":                 {"499.5"},
				"features.max_ads":      {"-1"},
				"features.chat_enabled": {"on"},
				"is_active":             {"on"},
			},
			want: entity.Record{
				"name":  "Men's Jackets!!",
				"slug":  "men-s-jackets",
				"price": 499.5,
				"features": map[string]any{
					"max_ads":      int64(-1),
					"chat_enabled": true,
				},
				"parent_id": nil,
				"is_active": true,
			},
		},
		{
			name: "explicit slug and reference id",
			form: url.Values{
				"name":      {"Phones"},
				"slug":      {"mobile-phones"},
				"price":     {"0"},
				"parent_id": {"4"},
			},
			want: entity.Record{
				"name":      "Phones",
				"slug":      "mobile-phones",
				"price":     float64(0),
				"features":  map[string]any{"max_ads": nil, "chat_enabled": false},
				"parent_id": int64(4),
				"is_active": false,
			},
		},
		{
			name: "violations",
			form: url.Values{
				"name":             {"  "},
				"price":            {"-3"},
				"features.max_ads": {"many"},
			},
			wantErrs: FieldErrors{
				"name":             "Plan Name is required",
				"slug":             "Slug is required",
				"price":            "Price is too small",
				"features.max_ads": "Max Ads must be a number",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := Bind(planFields, tt.form)
			if tt.wantErrs != nil {
				require.Nil(t, got)
				require.Equal(t, tt.wantErrs, errs)
				return
			}
			require.Empty(t, errs)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBind_customMessage(t *testing.T) {
	fields := []Field{{Name: "word", Label: "Word/Phrase", Kind: KindText, Rules: "required", Message: "Word/phrase is required"}}

	_, errs := Bind(fields, url.Values{})
	require.Equal(t, "Word/phrase is required", errs["word"])
}

func TestBind_email(t *testing.T) {
	fields := []Field{{Name: "email", Label: "Email", Kind: KindEmail, Rules: "required,email"}}

	_, errs := Bind(fields, url.Values{"email": {"not-an-email"}})
	require.Equal(t, "Email must be a valid email", errs["email"])

	rec, errs := Bind(fields, url.Values{"email": {"admin@roundbuy.com"}})
	require.Empty(t, errs)
	require.Equal(t, "admin@roundbuy.com", rec["email"])
}

func TestFormValues(t *testing.T) {
	rec := entity.Record{
		"name":      "Gold",
		"price":     "999.00",
		"features":  map[string]any{"max_ads": -1, "chat_enabled": true},
		"is_active": false,
	}

	values := FormValues(planFields, rec)
	require.Equal(t, "Gold", values["name"])
	require.Equal(t, "", values["slug"])
	require.Equal(t, "999.00", values["price"])
	require.Equal(t, "-1", values["features.max_ads"])
	require.Equal(t, "true", values["features.chat_enabled"])
	require.Equal(t, "false", values["is_active"])

	defaults := DefaultValues(planFields)
	require.Equal(t, "true", defaults["is_active"])
}

func TestBind_selectByName(t *testing.T) {
	fields := []Field{
		{Name: "size_name", Label: "Size", Kind: KindSelect, OptionsFrom: "content/ad-sizes", OptionValue: "name"},
		{Name: "currency_code", Label: "Currency", Kind: KindSelect, OptionsFrom: "settings/currencies", OptionValue: "code"},
		{Name: "category_id", Label: "Category", Kind: KindSelect, OptionsFrom: "content/categories"},
	}

	rec, errs := Bind(fields, url.Values{"size_name": {"42"}, "currency_code": {"978"}, "category_id": {"7"}})
	require.Empty(t, errs)
	require.Equal(t, entity.Record{"size_name": "42", "currency_code": "978", "category_id": int64(7)}, rec)

	rec, errs = Bind(fields, url.Values{})
	require.Empty(t, errs)
	require.Equal(t, entity.Record{"size_name": "", "currency_code": "", "category_id": nil}, rec)
}

func TestField_OptionsOf(t *testing.T) {
	f := Field{Name: "currency_code", OptionsFrom: "settings/currencies", OptionValue: "code"}
	rows := []entity.Record{{"id": 1, "code": "INR", "name": "Indian Rupee"}}

	require.Equal(t, []Option{{Value: "INR", Label: "Indian Rupee"}}, f.OptionsOf(rows))
}
