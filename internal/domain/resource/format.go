package resource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/dustin/go-humanize"
)

// Formatter renders one cell. page is the list page the row belongs to.
type Formatter func(v any, row entity.Record, page []entity.Record) string

var Formatters = map[string]Formatter{
	"text":      formatText,
	"money":     formatMoney,
	"date":      formatTime("02 Jan 2006"),
	"datetime":  formatTime("02 Jan 2006 15:04"),
	"ago":       formatAgo,
	"bool":      formatBool,
	"status":    formatStatus,
	"count":     formatCount,
	"days":      formatDays,
	"default":   formatDefault,
	"none":      formatNone,
	"parent":    formatParent,
	"unlimited": formatUnlimited,
	"ms":        formatMillis,
}

// FormatCell renders row[col.Key] with the column's formatter.
func FormatCell(col Column, row entity.Record, page []entity.Record) string {
	f, ok := Formatters[col.Format]
	if !ok {
		f = formatText
	}
	v, _ := row.Lookup(col.Key)
	return f(v, row, page)
}

func formatText(v any, _ entity.Record, _ []entity.Record) string {
	return entity.Stringify(v)
}

func number(v any) (float64, bool) {
	s := strings.TrimSpace(entity.Stringify(v))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func formatMoney(v any, _ entity.Record, _ []entity.Record) string {
	f, ok := number(v)
	if !ok {
		return entity.Stringify(v)
	}
	return "₹" + humanize.FormatFloat("#,###.##", f)
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

func parseTime(v any) (time.Time, bool) {
	s := entity.Stringify(v)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatTime(layout string) Formatter {
	return func(v any, _ entity.Record, _ []entity.Record) string {
		t, ok := parseTime(v)
		if !ok {
			return entity.Stringify(v)
		}
		return t.Format(layout)
	}
}

func formatAgo(v any, _ entity.Record, _ []entity.Record) string {
	t, ok := parseTime(v)
	if !ok {
		return entity.Stringify(v)
	}
	return humanize.Time(t)
}

func formatBool(v any, _ entity.Record, _ []entity.Record) string {
	if entity.Truthy(v) {
		return "Yes"
	}
	return "No"
}

// formatStatus accepts either an active flag or a status string.
func formatStatus(v any, _ entity.Record, _ []entity.Record) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "active"
		}
		return "inactive"
	case nil:
		return "inactive"
	case string:
		return t
	}
	if entity.Truthy(v) {
		return "active"
	}
	return "inactive"
}

func formatCount(v any, _ entity.Record, _ []entity.Record) string {
	f, ok := number(v)
	if !ok {
		return "0"
	}
	return humanize.Comma(int64(f))
}

func formatDays(v any, _ entity.Record, _ []entity.Record) string {
	f, ok := number(v)
	if !ok {
		return entity.Stringify(v)
	}
	if f == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%s days", humanize.Comma(int64(f)))
}

func formatDefault(v any, _ entity.Record, _ []entity.Record) string {
	if entity.Truthy(v) {
		return "★ Default"
	}
	return ""
}

func formatNone(v any, _ entity.Record, _ []entity.Record) string {
	if s := entity.Stringify(v); s != "" {
		return s
	}
	return "None"
}

// formatParent resolves a parent id against the rows of the same page.
func formatParent(v any, _ entity.Record, page []entity.Record) string {
	id := entity.Stringify(v)
	if id == "" {
		return "Root"
	}
	for _, r := range page {
		if r.ID() == id {
			return r.String("name")
		}
	}
	return "Unknown"
}

func formatUnlimited(v any, _ entity.Record, _ []entity.Record) string {
	f, ok := number(v)
	if !ok {
		return entity.Stringify(v)
	}
	if f < 0 {
		return "Unlimited"
	}
	return humanize.Comma(int64(f))
}

func formatMillis(v any, _ entity.Record, _ []entity.Record) string {
	f, ok := number(v)
	if !ok {
		return entity.Stringify(v)
	}
	return fmt.Sprintf("%s ms", humanize.Comma(int64(f)))
}
