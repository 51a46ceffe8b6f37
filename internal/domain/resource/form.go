package resource

import (
	stdErrors "errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/slug"
	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindDecimal  Kind = "decimal"
	KindBool     Kind = "bool"
	KindSelect   Kind = "select"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindColor    Kind = "color"
)

// Field is one input of a form dialog. Name may be a dotted path ("features.max_ads").
type Field struct {
	Name  string
	Label string
	Kind  Kind
	// Rules is a validator tag ("required,max=100") checked before any request is sent.
	Rules string
	// Message replaces the generated text when Rules fail.
	Message string
	Help    string
	Default any

	Options []Option
	// OptionsFrom names the descriptor whose rows fill the select.
	OptionsFrom string
	OptionValue string
	OptionLabel string

	// SlugFrom fills an empty field with the slug of another field.
	SlugFrom string
}

func (f Field) optionKeys() (value, label string) {
	value, label = f.OptionValue, f.OptionLabel
	if value == "" {
		value = "id"
	}
	if label == "" {
		label = "name"
	}
	return value, label
}

// referencesID reports whether the select submits row ids rather than names or codes.
func (f Field) referencesID() bool {
	value, _ := f.optionKeys()
	return f.Kind == KindSelect && f.OptionsFrom != "" && value == "id"
}

// OptionsOf turns rows of the OptionsFrom resource into select options.
func (f Field) OptionsOf(rows []entity.Record) []Option {
	valueKey, labelKey := f.optionKeys()
	opts := make([]Option, 0, len(rows))
	for _, r := range rows {
		opts = append(opts, Option{Value: r.String(valueKey), Label: r.String(labelKey)})
	}
	return opts
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, msg := range e {
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Bind converts a submitted form into the record sent to the API.
// Nothing is returned for sending when the errors are non-empty.
func Bind(fields []Field, form url.Values) (entity.Record, FieldErrors) {
	rec := entity.Record{}
	errs := FieldErrors{}

	for _, f := range fields {
		if f.Kind == KindBool {
			rec.Set(f.Name, entity.Truthy(form.Get(f.Name)))
			continue
		}

		raw := strings.TrimSpace(form.Get(f.Name))
		if raw == "" && f.SlugFrom != "" {
			raw = slug.Slugify(form.Get(f.SlugFrom))
		}

		if raw == "" {
			if hasRule(f.Rules, "required") {
				errs[f.Name] = f.message("required")
				continue
			}
			rec.Set(f.Name, f.empty())
			continue
		}

		value, err := f.convert(raw)
		if err != nil {
			errs[f.Name] = fmt.Sprintf("%s must be a number", f.Label)
			continue
		}

		// required is settled by raw being non-empty; a zero number is a real value
		if rules := withoutRule(f.Rules, "required"); rules != "" {
			if err := validate.Var(value, rules); err != nil {
				errs[f.Name] = f.message(failedTag(err))
				continue
			}
		}
		rec.Set(f.Name, value)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}

func (f Field) convert(raw string) (any, error) {
	switch f.Kind {
	case KindNumber:
		return strconv.ParseInt(raw, 10, 64)
	case KindDecimal:
		return strconv.ParseFloat(raw, 64)
	case KindSelect:
		if f.referencesID() {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return n, nil
			}
		}
	}
	return raw, nil
}

// empty is what an unfilled optional field is sent as: references and numbers become null.
func (f Field) empty() any {
	switch {
	case f.Kind == KindNumber, f.Kind == KindDecimal:
		return nil
	case f.referencesID():
		return nil
	}
	return ""
}

func (f Field) message(tag string) string {
	if f.Message != "" {
		return f.Message
	}
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", f.Label)
	case "email":
		return fmt.Sprintf("%s must be a valid email", f.Label)
	case "min", "gte", "gt":
		return fmt.Sprintf("%s is too small", f.Label)
	case "max", "lte", "lt":
		return fmt.Sprintf("%s is too large", f.Label)
	case "oneof":
		return fmt.Sprintf("%s has an unsupported value", f.Label)
	}
	return fmt.Sprintf("%s is invalid", f.Label)
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if stdErrors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

func hasRule(rules, name string) bool {
	return slices.Contains(strings.Split(rules, ","), name)
}

func withoutRule(rules, name string) string {
	parts := slices.DeleteFunc(strings.Split(rules, ","), func(r string) bool { return r == name || r == "" })
	return strings.Join(parts, ",")
}

// FormValues renders a record into the string values a form displays.
func FormValues(fields []Field, rec entity.Record) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, ok := rec.Lookup(f.Name)
		if !ok {
			v = f.Default
		}
		if f.Kind == KindBool {
			values[f.Name] = strconv.FormatBool(entity.Truthy(v))
			continue
		}
		values[f.Name] = entity.Stringify(v)
	}
	return values
}

// DefaultValues are the values of an empty create form.
func DefaultValues(fields []Field) map[string]string {
	return FormValues(fields, entity.Record{})
}

// PostedValues echoes a submitted form back into the dialog after a failure.
func PostedValues(fields []Field, form url.Values) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Kind == KindBool {
			values[f.Name] = strconv.FormatBool(entity.Truthy(form.Get(f.Name)))
			continue
		}
		values[f.Name] = form.Get(f.Name)
	}
	return values
}
