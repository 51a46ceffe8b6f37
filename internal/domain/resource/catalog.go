package resource

import (
	"context"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/demo"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
)

// AdminAPI is the part of the admin API client the screens are built from.
type AdminAPI interface {
	ListUsers(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	GetUser(ctx context.Context, id string) (entity.Record, error)
	UpdateUser(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	SetUserStatus(ctx context.Context, id string, active bool) error
	DeleteUser(ctx context.Context, id string) error

	ListSubscriptionPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateSubscriptionPlan(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateSubscriptionPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteSubscriptionPlan(ctx context.Context, id string) error
	ListAdvertisementPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdvertisementPlan(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdvertisementPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdvertisementPlan(ctx context.Context, id string) error
	ListBannerPlans(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateBannerPlan(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateBannerPlan(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteBannerPlan(ctx context.Context, id string) error

	ListAdvertisements(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	GetAdvertisement(ctx context.Context, id string) (entity.Record, error)
	UpdateAdvertisement(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	ApproveAdvertisement(ctx context.Context, id string) error
	RejectAdvertisement(ctx context.Context, id, reason string) error
	DeleteAdvertisement(ctx context.Context, id string) error
	ListBanners(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	ApproveBanner(ctx context.Context, id string) error
	RejectBanner(ctx context.Context, id, reason string) error
	DeleteBanner(ctx context.Context, id string) error
	ListSubscriptions(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	UpdateSubscription(ctx context.Context, id string, rec entity.Record) (entity.Record, error)

	ListCategories(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateCategory(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateCategory(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteCategory(ctx context.Context, id string) error
	ListAdActivities(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdActivity(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdActivity(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdActivity(ctx context.Context, id string) error
	ListAdConditions(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdCondition(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdCondition(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdCondition(ctx context.Context, id string) error
	ListAdAges(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdAge(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdAge(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdAge(ctx context.Context, id string) error
	ListAdGenders(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdGender(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdGender(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdGender(ctx context.Context, id string) error
	ListAdSizes(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdSize(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdSize(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdSize(ctx context.Context, id string) error
	ListAdColors(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateAdColor(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateAdColor(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteAdColor(ctx context.Context, id string) error
	ListCountries(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateCountry(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateCountry(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteCountry(ctx context.Context, id string) error
	ListCurrencies(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateCurrency(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateCurrency(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteCurrency(ctx context.Context, id string) error

	ListLanguages(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateLanguage(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateLanguage(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteLanguage(ctx context.Context, id string) error
	ListTranslationKeys(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateTranslationKey(ctx context.Context, rec entity.Record) (entity.Record, error)
	ListTranslations(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	UpdateTranslation(ctx context.Context, id string, rec entity.Record) (entity.Record, error)

	ListModerationWords(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	CreateModerationWord(ctx context.Context, rec entity.Record) (entity.Record, error)
	UpdateModerationWord(ctx context.Context, id string, rec entity.Record) (entity.Record, error)
	DeleteModerationWord(ctx context.Context, id string) error
	ListModerationQueue(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	ReviewModerationItem(ctx context.Context, id string, review entity.Record) error

	ListAPILogs(ctx context.Context, q entity.ListQuery) (entity.Page, error)
	GetAPILog(ctx context.Context, id string) (entity.Record, error)
}

func options(values ...string) []Option {
	opts := make([]Option, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		opts = append(opts, Option{Value: values[i], Label: values[i+1]})
	}
	return opts
}

func same(values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

var (
	roleOptions          = options("subscriber", "Subscriber", "editor", "Editor", "admin", "Admin")
	adStatusOptions      = options("draft", "Draft", "pending", "Pending", "approved", "Approved", "published", "Published", "expired", "Expired", "rejected", "Rejected")
	placementOptions     = options("home_top", "Home top", "home_middle", "Home middle", "sidebar", "Sidebar", "category_top", "Category top", "search_results", "Search results")
	supportOptions       = options("standard", "Standard", "priority", "Priority", "dedicated", "Dedicated")
	wordCategoryOptions  = options("profanity", "Profanity", "spam", "Spam", "hate-speech", "Hate speech", "scam", "Scam", "inappropriate", "Inappropriate", "other", "Other")
	severityOptions      = options("low", "Low", "medium", "Medium", "high", "High")
	reviewOptions        = options("approved", "Approve", "rejected", "Reject")
	subscriptionStatuses = options("active", "Active", "expired", "Expired", "cancelled", "Cancelled")
)

func activeField() Field {
	return Field{Name: "is_active", Label: "Active", Kind: KindBool, Default: true}
}

func notStatus(statuses ...string) func(entity.Record) bool {
	return func(row entity.Record) bool {
		s := row.String("status")
		for _, st := range statuses {
			if s == st {
				return false
			}
		}
		return true
	}
}

func approveAction(singular string, do func(ctx context.Context, id string) error) Action {
	lower := strings.ToLower(singular)
	return Action{
		Name:    "approve",
		Label:   "Approve",
		Confirm: "Approve this " + lower + "?",
		Success: singular + " approved successfully",
		Failure: "Failed to approve " + lower,
		Visible: notStatus("approved", "published", "active"),
		Do: func(ctx context.Context, id string, _ entity.Record) error {
			return do(ctx, id)
		},
	}
}

func rejectAction(singular string, do func(ctx context.Context, id, reason string) error) Action {
	lower := strings.ToLower(singular)
	return Action{
		Name:    "reject",
		Label:   "Reject",
		Confirm: "Reject this " + lower + "?",
		Fields: []Field{{
			Name: "rejection_reason", Label: "Rejection Reason", Kind: KindTextarea,
			Rules: "required,max=500", Message: "Rejection reason is required",
		}},
		Success: singular + " rejected successfully",
		Failure: "Failed to reject " + lower,
		Visible: notStatus("rejected"),
		Do: func(ctx context.Context, id string, input entity.Record) error {
			return do(ctx, id, input.String("rejection_reason"))
		},
	}
}

// attribute builds the screen of a simple ad attribute lookup (name, slug, order, active).
func attribute(name, title, singular string, ep Endpoints, extraColumns []Column, extraFields ...Field) Descriptor {
	columns := []Column{
		{Key: "name", Label: "Name"},
		{Key: "slug", Label: "Slug"},
	}
	columns = append(columns, extraColumns...)
	columns = append(columns,
		Column{Key: "sort_order", Label: "Sort Order"},
		Column{Key: "is_active", Label: "Status", Format: "status", Badge: true},
		Column{Key: "created_at", Label: "Created", Format: "date"},
	)

	form := []Field{
		{Name: "name", Label: "Name", Kind: KindText, Rules: "required,max=100"},
		{Name: "slug", Label: "Slug", Kind: KindText, Rules: "required,max=100", SlugFrom: "name", Help: "Left empty, generated from the name"},
	}
	form = append(form, extraFields...)
	form = append(form,
		Field{Name: "sort_order", Label: "Sort Order", Kind: KindNumber, Rules: "gte=0", Default: 0},
		activeField(),
	)

	return Descriptor{
		Name:            name,
		Section:         "Content",
		Title:           title,
		Singular:        singular,
		Columns:         columns,
		Form:            form,
		DefaultPageSize: 50,
		Endpoints:       ep,
	}
}

func planForm(extra ...Field) []Field {
	form := []Field{
		{Name: "name", Label: "Plan Name", Kind: KindText, Rules: "required,max=100"},
		{Name: "slug", Label: "Slug", Kind: KindText, Rules: "required,max=100", SlugFrom: "name"},
		{Name: "description", Label: "Description", Kind: KindTextarea, Rules: "max=1000"},
		{Name: "price", Label: "Price (₹)", Kind: KindDecimal, Rules: "required,gte=0", Default: 0},
		{Name: "duration_days", Label: "Duration (days)", Kind: KindNumber, Rules: "required,gt=0", Default: 30},
	}
	form = append(form, extra...)
	return append(form, activeField())
}

// Catalog returns every list screen of the console.
func Catalog(api AdminAPI, demoAds *demo.Store) []Descriptor {
	return []Descriptor{
		{
			Name:       "users",
			Title:      "Users",
			Singular:   "User",
			Searchable: true,
			SearchHint: "Search by name, email or phone",
			Filters: []Filter{
				{Param: "role", Label: "Role", Options: roleOptions},
				{Param: "status", Label: "Status", Options: options("active", "Active", "inactive", "Inactive")},
			},
			Columns: []Column{
				{Key: "full_name", Label: "Name"},
				{Key: "email", Label: "Email"},
				{Key: "phone", Label: "Phone"},
				{Key: "role", Label: "Role", Badge: true},
				{Key: "subscription_name", Label: "Subscription", Format: "none"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
				{Key: "created_at", Label: "Joined", Format: "date"},
			},
			Form: []Field{
				{Name: "full_name", Label: "Full Name", Kind: KindText, Rules: "required,max=100"},
				{Name: "email", Label: "Email", Kind: KindEmail, Rules: "required,email"},
				{Name: "phone", Label: "Phone", Kind: KindText, Rules: "max=20"},
				{Name: "role", Label: "Role", Kind: KindSelect, Rules: "required,oneof=subscriber editor admin", Options: roleOptions, Default: "subscriber"},
			},
			Actions: []Action{{
				Name:    "toggle-status",
				Label:   "Toggle Status",
				Confirm: "Change the status of this user?",
				// the current flag comes from the row, so one PATCH flips it
				RowParams: []string{"is_active"},
				Success:   "User status updated successfully",
				Failure:   "Failed to update user status",
				Do: func(ctx context.Context, id string, input entity.Record) error {
					return api.SetUserStatus(ctx, id, !entity.Truthy(input["is_active"]))
				},
			}},
			Endpoints: Endpoints{List: api.ListUsers, Get: api.GetUser, Update: api.UpdateUser, Delete: api.DeleteUser},
		},
		{
			Name:     "plans/subscriptions",
			Section:  "Plans",
			Title:    "Subscription Plans",
			Singular: "Plan",
			Columns: []Column{
				{Key: "name", Label: "Plan Name"},
				{Key: "slug", Label: "Slug"},
				{Key: "price", Label: "Price", Format: "money"},
				{Key: "duration_days", Label: "Duration", Format: "days"},
				{Key: "features.max_ads", Label: "Max Ads", Format: "unlimited"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
				{Key: "sort_order", Label: "Order"},
			},
			Form: planForm(
				Field{Name: "sort_order", Label: "Sort Order", Kind: KindNumber, Rules: "gte=0", Default: 0},
				Field{Name: "features.max_ads", Label: "Max Ads (-1 for unlimited)", Kind: KindNumber, Rules: "gte=-1", Default: 0},
				Field{Name: "features.max_banners", Label: "Max Banners", Kind: KindNumber, Rules: "gte=0", Default: 0},
				Field{Name: "features.featured_ads", Label: "Featured Ads", Kind: KindNumber, Rules: "gte=0", Default: 0},
				Field{Name: "features.support_priority", Label: "Support Priority", Kind: KindSelect, Options: supportOptions, Default: "standard"},
				Field{Name: "features.chat_enabled", Label: "Chat Enabled", Kind: KindBool, Default: true},
				Field{Name: "features.analytics", Label: "Analytics", Kind: KindBool},
				Field{Name: "features.verification_badge", Label: "Verification Badge", Kind: KindBool},
				Field{Name: "features.api_access", Label: "API Access", Kind: KindBool},
				Field{Name: "features.bulk_upload", Label: "Bulk Upload", Kind: KindBool},
			),
			Endpoints: Endpoints{
				List:   api.ListSubscriptionPlans,
				Create: api.CreateSubscriptionPlan,
				Update: api.UpdateSubscriptionPlan,
				Delete: api.DeleteSubscriptionPlan,
			},
		},
		{
			Name:     "plans/advertisements",
			Section:  "Plans",
			Title:    "Advertisement Plans",
			Singular: "Plan",
			Columns: []Column{
				{Key: "name", Label: "Plan Name"},
				{Key: "slug", Label: "Slug"},
				{Key: "price", Label: "Price", Format: "money"},
				{Key: "duration_days", Label: "Duration", Format: "days"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
			},
			Form: planForm(),
			Endpoints: Endpoints{
				List:   api.ListAdvertisementPlans,
				Create: api.CreateAdvertisementPlan,
				Update: api.UpdateAdvertisementPlan,
				Delete: api.DeleteAdvertisementPlan,
			},
		},
		{
			Name:     "plans/banners",
			Section:  "Plans",
			Title:    "Banner Plans",
			Singular: "Plan",
			Columns: []Column{
				{Key: "name", Label: "Plan Name"},
				{Key: "placement", Label: "Placement"},
				{Key: "price", Label: "Price", Format: "money"},
				{Key: "duration_days", Label: "Duration", Format: "days"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
			},
			Form: planForm(
				Field{Name: "placement", Label: "Placement", Kind: KindSelect, Rules: "required", Options: placementOptions, Default: "home_top"},
			),
			Endpoints: Endpoints{
				List:   api.ListBannerPlans,
				Create: api.CreateBannerPlan,
				Update: api.UpdateBannerPlan,
				Delete: api.DeleteBannerPlan,
			},
		},
		{
			Name:       "content/advertisements",
			Section:    "Content",
			Title:      "Advertisements",
			Singular:   "Advertisement",
			Searchable: true,
			SearchHint: "Search advertisements",
			Filters:    []Filter{{Param: "status", Label: "Status", Options: adStatusOptions}},
			Columns: []Column{
				{Key: "title", Label: "Title"},
				{Key: "user_name", Label: "User"},
				{Key: "category_name", Label: "Category"},
				{Key: "price", Label: "Price", Format: "money"},
				{Key: "status", Label: "Status", Format: "status", Badge: true},
				{Key: "views_count", Label: "Views", Format: "count"},
				{Key: "created_at", Label: "Created", Format: "date"},
			},
			Form: []Field{
				{Name: "title", Label: "Title", Kind: KindText, Rules: "required,max=200"},
				{Name: "description", Label: "Description", Kind: KindTextarea, Rules: "max=5000"},
				{Name: "price", Label: "Price (₹)", Kind: KindDecimal, Rules: "gte=0"},
				{Name: "status", Label: "Status", Kind: KindSelect, Rules: "required", Options: adStatusOptions},
			},
			Actions: []Action{
				approveAction("Advertisement", api.ApproveAdvertisement),
				rejectAction("Advertisement", api.RejectAdvertisement),
			},
			Endpoints: Endpoints{
				List:   api.ListAdvertisements,
				Get:    api.GetAdvertisement,
				Update: api.UpdateAdvertisement,
				Delete: api.DeleteAdvertisement,
			},
		},
		{
			Name:       "content/banners",
			Section:    "Content",
			Title:      "Banners",
			Singular:   "Banner",
			Searchable: true,
			SearchHint: "Search banners",
			Filters: []Filter{{Param: "status", Label: "Status", Options: options(
				"pending", "Pending", "approved", "Approved", "active", "Active", "rejected", "Rejected", "expired", "Expired",
			)}},
			Columns: []Column{
				{Key: "title", Label: "Title"},
				{Key: "user_name", Label: "User"},
				{Key: "placement", Label: "Placement"},
				{Key: "status", Label: "Status", Format: "status", Badge: true},
				{Key: "impressions_count", Label: "Impressions", Format: "count"},
				{Key: "clicks_count", Label: "Clicks", Format: "count"},
			},
			Actions: []Action{
				approveAction("Banner", api.ApproveBanner),
				rejectAction("Banner", api.RejectBanner),
			},
			Endpoints: Endpoints{List: api.ListBanners, Delete: api.DeleteBanner},
		},
		{
			Name:       "content/demo-advertisements",
			Section:    "Content",
			Title:      "Demo Advertisements",
			Singular:   "Advertisement",
			Searchable: true,
			SearchHint: "Search title, description or user",
			Filters: []Filter{
				{Param: "city", Label: "City", Options: same(demo.Cities...)},
				{Param: "status", Label: "Status", Options: adStatusOptions},
			},
			Columns: []Column{
				{Key: "title", Label: "Title"},
				{Key: "city", Label: "Location"},
				{Key: "category_name", Label: "Category"},
				{Key: "activity_name", Label: "Activity"},
				{Key: "price", Label: "Price", Format: "money"},
				{Key: "status", Label: "Status", Format: "status", Badge: true},
				{Key: "views_count", Label: "Views", Format: "count"},
				{Key: "user_name", Label: "User"},
			},
			Form: []Field{
				{Name: "title", Label: "Title", Kind: KindText, Rules: "required,max=200"},
				{Name: "price", Label: "Price", Kind: KindDecimal, Rules: "required,gte=0"},
				{Name: "description", Label: "Description", Kind: KindTextarea},
				{Name: "city", Label: "City", Kind: KindSelect, Rules: "required", Options: same(demo.Cities...)},
				{Name: "address", Label: "Address", Kind: KindText},
				{Name: "category_name", Label: "Category", Kind: KindSelect, OptionsFrom: "content/categories", OptionValue: "name"},
				{Name: "activity_name", Label: "Activity", Kind: KindSelect, OptionsFrom: "content/ad-activities", OptionValue: "name"},
				{Name: "condition_name", Label: "Condition", Kind: KindSelect, OptionsFrom: "content/ad-conditions", OptionValue: "name"},
				{Name: "age_name", Label: "Age", Kind: KindSelect, OptionsFrom: "content/ad-ages", OptionValue: "name"},
				{Name: "gender_name", Label: "Gender", Kind: KindSelect, OptionsFrom: "content/ad-genders", OptionValue: "name"},
				{Name: "size_name", Label: "Size", Kind: KindSelect, OptionsFrom: "content/ad-sizes", OptionValue: "name"},
				{Name: "color_name", Label: "Color", Kind: KindSelect, OptionsFrom: "content/ad-colors", OptionValue: "name"},
				{Name: "status", Label: "Status", Kind: KindSelect, Rules: "required", Options: adStatusOptions, Default: "draft"},
			},
			Endpoints: Endpoints{
				List:   demoAds.List,
				Get:    demoAds.Get,
				Create: demoAds.Create,
				Update: demoAds.Update,
				Delete: demoAds.Delete,
			},
		},
		{
			Name:     "content/categories",
			Section:  "Content",
			Title:    "Categories",
			Singular: "Category",
			Columns: []Column{
				{Key: "name", Label: "Name"},
				{Key: "slug", Label: "Slug"},
				{Key: "parent_id", Label: "Parent", Format: "parent"},
				{Key: "sort_order", Label: "Sort Order"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
				{Key: "created_at", Label: "Created", Format: "date"},
			},
			Form: []Field{
				{Name: "name", Label: "Name", Kind: KindText, Rules: "required,max=100"},
				{Name: "slug", Label: "Slug", Kind: KindText, Rules: "required,max=100", SlugFrom: "name", Help: "Left empty, generated from the name"},
				{Name: "parent_id", Label: "Parent Category", Kind: KindSelect, OptionsFrom: "content/categories"},
				{Name: "sort_order", Label: "Sort Order", Kind: KindNumber, Rules: "gte=0", Default: 0},
				{Name: "icon", Label: "Icon", Kind: KindText, Rules: "max=50"},
				{Name: "description", Label: "Description", Kind: KindTextarea, Rules: "max=1000"},
				activeField(),
			},
			// parents are resolved within the page, so show them all at once
			DefaultPageSize: 100,
			Endpoints: Endpoints{
				List:   api.ListCategories,
				Create: api.CreateCategory,
				Update: api.UpdateCategory,
				Delete: api.DeleteCategory,
			},
		},
		attribute("content/ad-activities", "Ad Activities", "Ad activity", Endpoints{
			List: api.ListAdActivities, Create: api.CreateAdActivity, Update: api.UpdateAdActivity, Delete: api.DeleteAdActivity,
		}, nil),
		attribute("content/ad-conditions", "Ad Conditions", "Ad condition", Endpoints{
			List: api.ListAdConditions, Create: api.CreateAdCondition, Update: api.UpdateAdCondition, Delete: api.DeleteAdCondition,
		}, nil),
		attribute("content/ad-ages", "Ad Ages", "Ad age", Endpoints{
			List: api.ListAdAges, Create: api.CreateAdAge, Update: api.UpdateAdAge, Delete: api.DeleteAdAge,
		}, nil),
		attribute("content/ad-genders", "Ad Genders", "Ad gender", Endpoints{
			List: api.ListAdGenders, Create: api.CreateAdGender, Update: api.UpdateAdGender, Delete: api.DeleteAdGender,
		}, nil),
		attribute("content/ad-sizes", "Ad Sizes", "Ad size", Endpoints{
			List: api.ListAdSizes, Create: api.CreateAdSize, Update: api.UpdateAdSize, Delete: api.DeleteAdSize,
		}, nil),
		attribute("content/ad-colors", "Ad Colors", "Ad color", Endpoints{
			List: api.ListAdColors, Create: api.CreateAdColor, Update: api.UpdateAdColor, Delete: api.DeleteAdColor,
		},
			[]Column{{Key: "hex_code", Label: "Color"}},
			Field{Name: "hex_code", Label: "Hex Color Code", Kind: KindColor, Rules: "hexcolor", Message: "Hex color code must look like #1A2B3C"},
		),
		{
			Name:       "subscriptions",
			Title:      "Subscriptions",
			Singular:   "Subscription",
			Searchable: true,
			SearchHint: "Search by user or plan",
			Filters:    []Filter{{Param: "status", Label: "Status", Options: subscriptionStatuses}},
			Columns: []Column{
				{Key: "user_name", Label: "User"},
				{Key: "user_email", Label: "Email"},
				{Key: "plan_name", Label: "Plan"},
				{Key: "start_date", Label: "Start Date", Format: "date"},
				{Key: "end_date", Label: "End Date", Format: "date"},
				{Key: "status", Label: "Status", Format: "status", Badge: true},
				{Key: "amount_paid", Label: "Amount", Format: "money"},
			},
			Form: []Field{
				{Name: "status", Label: "Status", Kind: KindSelect, Rules: "required", Options: subscriptionStatuses},
				{Name: "end_date", Label: "End Date", Kind: KindText, Rules: "datetime=2006-01-02", Help: "YYYY-MM-DD"},
			},
			Endpoints: Endpoints{List: api.ListSubscriptions, Update: api.UpdateSubscription},
		},
		{
			Name:     "languages",
			Section:  "Translations",
			Title:    "Languages",
			Singular: "Language",
			Columns: []Column{
				{Key: "name", Label: "Language"},
				{Key: "code", Label: "Code"},
				{Key: "is_default", Label: "Default", Format: "default"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
				{Key: "created_at", Label: "Created", Format: "date"},
			},
			Form: []Field{
				{Name: "name", Label: "Language", Kind: KindText, Rules: "required,max=50"},
				{Name: "code", Label: "Code", Kind: KindText, Rules: "required,min=2,max=10"},
				{Name: "native_name", Label: "Native Name", Kind: KindText, Rules: "max=50"},
				{Name: "is_default", Label: "Set as Default", Kind: KindBool},
				activeField(),
			},
			Endpoints: Endpoints{
				List:   api.ListLanguages,
				Create: api.CreateLanguage,
				Update: api.UpdateLanguage,
				Delete: api.DeleteLanguage,
			},
		},
		{
			Name:       "i18n/translation-keys",
			Section:    "Translations",
			Title:      "Translation Keys",
			Singular:   "Translation key",
			Searchable: true,
			SearchHint: "Search keys",
			Columns: []Column{
				{Key: "key_name", Label: "Key"},
				{Key: "category", Label: "Category", Format: "none"},
				{Key: "description", Label: "Description"},
				{Key: "created_at", Label: "Created", Format: "date"},
			},
			Form: []Field{
				{Name: "key_name", Label: "Key", Kind: KindText, Rules: "required,max=255"},
				{Name: "category", Label: "Category", Kind: KindText, Rules: "max=50"},
				{Name: "description", Label: "Description", Kind: KindTextarea},
			},
			DefaultPageSize: 50,
			Endpoints:       Endpoints{List: api.ListTranslationKeys, Create: api.CreateTranslationKey},
		},
		{
			Name:       "i18n/translations",
			Section:    "Translations",
			Title:      "Translations",
			Singular:   "Translation",
			Searchable: true,
			SearchHint: "Search keys or text",
			Filters:    []Filter{{Param: "language_code", Label: "Language", Options: same("en", "hi", "fr", "es", "de", "ja")}},
			Columns: []Column{
				{Key: "key_name", Label: "Key"},
				{Key: "language_code", Label: "Language"},
				{Key: "translated_text", Label: "Text"},
				{Key: "updated_at", Label: "Updated", Format: "ago"},
			},
			Form: []Field{
				{Name: "translated_text", Label: "Text", Kind: KindTextarea, Rules: "required"},
			},
			DefaultPageSize: 50,
			Endpoints:       Endpoints{List: api.ListTranslations, Update: api.UpdateTranslation},
		},
		{
			Name:     "settings/currencies",
			Section:  "Settings",
			Title:    "Currencies",
			Singular: "Currency",
			Columns: []Column{
				{Key: "code", Label: "Code"},
				{Key: "name", Label: "Currency Name"},
				{Key: "symbol", Label: "Symbol"},
				{Key: "exchange_rate", Label: "Exchange Rate"},
				{Key: "is_default", Label: "Default", Format: "default"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
			},
			Form: []Field{
				{Name: "code", Label: "Currency Code", Kind: KindText, Rules: "required,len=3,uppercase", Message: "Currency code must be 3 upper-case letters"},
				{Name: "symbol", Label: "Symbol", Kind: KindText, Rules: "required,max=5"},
				{Name: "name", Label: "Currency Name", Kind: KindText, Rules: "required,max=100"},
				{Name: "exchange_rate", Label: "Exchange Rate", Kind: KindDecimal, Rules: "required,gt=0", Default: 1.0},
				activeField(),
				{Name: "is_default", Label: "Set as Default", Kind: KindBool},
			},
			Endpoints: Endpoints{
				List:   api.ListCurrencies,
				Create: api.CreateCurrency,
				Update: api.UpdateCurrency,
				Delete: api.DeleteCurrency,
			},
		},
		{
			Name:     "settings/countries",
			Section:  "Settings",
			Title:    "Countries",
			Singular: "Country",
			Columns: []Column{
				{Key: "flag_emoji", Label: "Flag"},
				{Key: "name", Label: "Country Name"},
				{Key: "code", Label: "Code"},
				{Key: "iso_code", Label: "ISO Code"},
				{Key: "phone_code", Label: "Phone"},
				{Key: "currency_code", Label: "Currency"},
				{Key: "is_default", Label: "Default", Format: "default"},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
			},
			Form: []Field{
				{Name: "name", Label: "Country Name", Kind: KindText, Rules: "required,max=100"},
				{Name: "code", Label: "Country Code", Kind: KindText, Rules: "required,max=3"},
				{Name: "iso_code", Label: "ISO Code", Kind: KindText, Rules: "max=3"},
				{Name: "phone_code", Label: "Phone Code", Kind: KindText, Rules: "max=6"},
				{Name: "currency_code", Label: "Default Currency", Kind: KindSelect, OptionsFrom: "settings/currencies", OptionValue: "code"},
				{Name: "flag_emoji", Label: "Flag Emoji", Kind: KindText, Rules: "max=8"},
				activeField(),
				{Name: "is_default", Label: "Set as Default", Kind: KindBool},
			},
			Endpoints: Endpoints{
				List:   api.ListCountries,
				Create: api.CreateCountry,
				Update: api.UpdateCountry,
				Delete: api.DeleteCountry,
			},
		},
		{
			Name:       "moderation/words",
			Section:    "Moderation",
			Title:      "Moderation Words",
			Singular:   "Word",
			Searchable: true,
			SearchHint: "Search words",
			Filters: []Filter{
				{Param: "category", Label: "Category", Options: wordCategoryOptions},
				{Param: "severity", Label: "Severity", Options: severityOptions},
			},
			Columns: []Column{
				{Key: "word", Label: "Word/Phrase"},
				{Key: "category", Label: "Category"},
				{Key: "severity", Label: "Severity", Badge: true},
				{Key: "is_active", Label: "Status", Format: "status", Badge: true},
				{Key: "created_at", Label: "Created", Format: "date"},
			},
			Form: []Field{
				{Name: "word", Label: "Word/Phrase", Kind: KindText, Rules: "required,max=255", Message: "Word/phrase is required"},
				{Name: "category", Label: "Category", Kind: KindSelect, Rules: "required", Options: wordCategoryOptions, Default: "profanity"},
				{Name: "severity", Label: "Severity", Kind: KindSelect, Rules: "required,oneof=low medium high", Options: severityOptions, Default: "medium"},
				activeField(),
			},
			Endpoints: Endpoints{
				List:   api.ListModerationWords,
				Create: api.CreateModerationWord,
				Update: api.UpdateModerationWord,
				Delete: api.DeleteModerationWord,
			},
		},
		{
			Name:     "moderation/queue",
			Section:  "Moderation",
			Title:    "Moderation Queue",
			Singular: "Item",
			Filters: []Filter{{Param: "status", Label: "Status", Options: options(
				"pending", "Pending", "approved", "Approved", "rejected", "Rejected",
			)}},
			Columns: []Column{
				{Key: "content_type", Label: "Type"},
				{Key: "content_preview", Label: "Content"},
				{Key: "matched_words", Label: "Matched"},
				{Key: "status", Label: "Status", Format: "status", Badge: true},
				{Key: "created_at", Label: "Flagged", Format: "ago"},
			},
			Actions: []Action{{
				Name:    "review",
				Label:   "Review",
				Confirm: "Record a decision for this item",
				Fields: []Field{
					{Name: "status", Label: "Decision", Kind: KindSelect, Rules: "required,oneof=approved rejected", Options: reviewOptions},
					{Name: "notes", Label: "Notes", Kind: KindTextarea, Rules: "max=1000"},
				},
				Success: "Item reviewed successfully",
				Failure: "Failed to review item",
				Visible: notStatus("approved", "rejected"),
				Do:      api.ReviewModerationItem,
			}},
			Endpoints: Endpoints{List: api.ListModerationQueue},
		},
		{
			Name:        "api/logs",
			Section:     "API",
			Title:       "API Logs",
			Singular:    "API log",
			Searchable:  true,
			SearchParam: "endpoint",
			SearchHint:  "Search by endpoint",
			Filters: []Filter{
				{Param: "method", Label: "Method", Options: same("GET", "POST", "PUT", "DELETE", "PATCH")},
				{Param: "status_code", Label: "Status Code", Options: same("200", "201", "400", "401", "404", "500")},
			},
			Columns: []Column{
				{Key: "endpoint", Label: "Endpoint"},
				{Key: "method", Label: "Method", Badge: true},
				{Key: "status_code", Label: "Status"},
				{Key: "response_time_ms", Label: "Time (ms)", Format: "ms"},
				{Key: "ip_address", Label: "IP Address"},
				{Key: "created_at", Label: "Timestamp", Format: "datetime"},
			},
			DefaultPageSize: 50,
			Endpoints:       Endpoints{List: api.ListAPILogs, Get: api.GetAPILog},
		},
	}
}
