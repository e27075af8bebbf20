package render

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

// badgeClass styles the clickable badge spans emitted by the link filters.
const badgeClass = "inline-flex items-center rounded-md bg-gray-100 px-2 py-1 " +
	"text-xs font-medium text-gray-600 cursor-pointer hover:bg-gray-200 transition-colors"

// Type tokens carried in the data-field-type attribute. string_choice is
// emitted as "select"; the bridge maps the token back.
const (
	TokenSelect = "select"
	TokenTags   = "tags"
	TokenUser   = "user"
)

// registerFilters attaches the fixed filter catalog. Called once from New;
// the catalog never changes afterwards.
func (e *Engine) registerFilters() {
	e.liquid.RegisterFilter("date", filterDate)
	e.liquid.RegisterFilter("datetime", filterDatetime)
	e.liquid.RegisterFilter("relative_time", filterRelativeTime)
	e.liquid.RegisterFilter("user", filterUser)
	e.liquid.RegisterFilter("user_link", filterUserLink)
	e.liquid.RegisterFilter("select_link", filterSelectLink)
	e.liquid.RegisterFilter("tag_link", filterTagLink)
	e.liquid.RegisterFilter("tags_links", filterTagsLinks)
	e.liquid.RegisterFilter("field_value", filterFieldValue)
	e.liquid.RegisterFilter("field_label", filterFieldLabel)
	e.liquid.RegisterFilter("json", filterJSON)
	e.liquid.RegisterFilter("default", filterDefault)
	e.liquid.RegisterFilter("markdown", e.filterMarkdown)
	e.liquid.RegisterFilter("image_url", filterImageURL)
}

func filterDate(v any) string {
	t, ok := asTimeValue(v)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

func filterDatetime(v any) string {
	t, ok := asTimeValue(v)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02 15:04 MST")
}

func filterRelativeTime(v any) string {
	t, ok := asTimeValue(v)
	if !ok {
		return ""
	}
	return humanize.Time(t)
}

// filterUser resolves a user id against the users context list and renders
// the display label. Unresolvable ids fall back to the raw id.
func filterUser(v, users any) string {
	id := stringValue(v)
	if id == "" {
		return ""
	}
	if name, ok := lookupUsername(users, id); ok {
		return "👤" + name
	}
	return "👤" + id
}

// filterUserLink renders a clickable username span carrying the
// data-field-* contract. Unresolvable ids render as Unknown without a
// trigger element.
func filterUserLink(v, fieldID, users any) string {
	id, field := stringValue(v), stringValue(fieldID)
	if id == "" || field == "" {
		return ""
	}
	name, ok := lookupUsername(users, id)
	if !ok {
		return "👤Unknown"
	}
	return fmt.Sprintf(
		`<span class="cursor-pointer hover:underline" data-field-id=%q data-field-type=%q data-field-value=%q>👤%s</span>`,
		html.EscapeString(field), TokenUser, html.EscapeString(name), html.EscapeString(name),
	)
}

func filterSelectLink(v, fieldID any) string {
	value, field := stringValue(v), stringValue(fieldID)
	if value == "" || field == "" {
		return ""
	}
	return badge(field, TokenSelect, value)
}

func filterTagLink(v, fieldID any) string {
	tag, field := stringValue(v), stringValue(fieldID)
	if tag == "" || field == "" {
		return ""
	}
	return badge(field, TokenTags, tag)
}

func filterTagsLinks(v, fieldID any) string {
	field := stringValue(fieldID)
	tags, err := types.StringSlice(v)
	if err != nil || len(tags) == 0 || field == "" {
		return ""
	}
	spans := make([]string, 0, len(tags))
	for _, tag := range tags {
		spans = append(spans, badge(field, TokenTags, tag))
	}
	return strings.Join(spans, " ")
}

func badge(fieldID, fieldType, value string) string {
	return fmt.Sprintf(
		`<span class=%q data-field-id=%q data-field-type=%q data-field-value=%q>%s</span>`,
		badgeClass, html.EscapeString(fieldID), fieldType,
		html.EscapeString(value), html.EscapeString(value),
	)
}

// filterFieldValue is the generic type-aware stringification fallback. It
// uses the codec's display form, not its wire form.
func filterFieldValue(v, fieldType any) string {
	if v == nil {
		return ""
	}
	t := stringValue(fieldType)
	switch t {
	case TokenSelect:
		t = types.FieldStringChoice
	case "":
		return fmt.Sprint(v)
	}
	return rawvalue.Display(t, v)
}

// filterFieldLabel resolves a field id to its display label. Fields carry no
// separate label today, so the id itself is the label; the lookup keeps the
// template contract stable if labels are added.
func filterFieldLabel(v, fields any) string {
	id := stringValue(v)
	if id == "" {
		return ""
	}
	for _, f := range anySlice(fields) {
		if m, ok := f.(map[string]any); ok && stringValue(m["id"]) == id {
			return id
		}
	}
	return id
}

func filterJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// filterDefault null-coalesces: missing values and empty strings yield the
// fallback.
func filterDefault(v, fallback any) any {
	if v == nil {
		return fallback
	}
	if s, ok := v.(string); ok && s == "" {
		return fallback
	}
	return v
}

func filterImageURL(v, spaceSlug, noteNumber any) string {
	field, slug := stringValue(v), stringValue(spaceSlug)
	number := stringValue(noteNumber)
	if field == "" || slug == "" || number == "" || number == "0" {
		return ""
	}
	return fmt.Sprintf("/api/v1/spaces/%s/notes/%s/images/%s", slug, number, field)
}

func asTimeValue(v any) (time.Time, bool) {
	switch vv := v.(type) {
	case time.Time:
		return vv, true
	case *time.Time:
		if vv == nil {
			return time.Time{}, false
		}
		return *vv, true
	case string:
		if vv == "" {
			return time.Time{}, false
		}
		t, err := types.ParseTimestamp(vv)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

func stringValue(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case int:
		return fmt.Sprintf("%d", vv)
	case int64:
		return fmt.Sprintf("%d", vv)
	case float64:
		if vv == float64(int64(vv)) {
			return fmt.Sprintf("%d", int64(vv))
		}
		return fmt.Sprint(vv)
	default:
		return fmt.Sprint(vv)
	}
}

// lookupUsername finds a user's display name in the users context list,
// which reaches filters as the binding value built by usersBindings.
func lookupUsername(users any, id string) (string, bool) {
	for _, u := range anySlice(users) {
		m, ok := u.(map[string]any)
		if !ok {
			continue
		}
		if stringValue(m["id"]) == id {
			return stringValue(m["username"]), true
		}
	}
	return "", false
}

func anySlice(v any) []any {
	switch vv := v.(type) {
	case []any:
		return vv
	case []map[string]any:
		out := make([]any, len(vv))
		for i := range vv {
			out[i] = vv[i]
		}
		return out
	default:
		return nil
	}
}
