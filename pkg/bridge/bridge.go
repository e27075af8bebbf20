// Package bridge turns clicks on rendered template output back into filter
// queries. It reads only the documented data-field-id / data-field-type /
// data-field-value attribute contract emitted by the render package's link
// filters, closing the schema → render → query loop.
package bridge

import (
	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/render"
	"github.com/plainfield/notespace/pkg/types"
)

// Attribute names of the clickable element contract. An element carrying
// AttrFieldID is a filter trigger; an element without it is plain content
// and the click must fall through to default link handling. Callers must
// also leave modifier-key clicks and external links to the default handler
// before consulting this package.
const (
	AttrFieldID    = "data-field-id"
	AttrFieldType  = "data-field-type"
	AttrFieldValue = "data-field-value"
)

// Click is the decoded payload of a filter-trigger element.
type Click struct {
	FieldID   string
	FieldType string
	Value     string
}

// FromElement reads the attribute contract from an element's attribute map.
// The second return is false when the element is not a filter trigger.
func FromElement(attrs map[string]string) (Click, bool) {
	id, ok := attrs[AttrFieldID]
	if !ok || id == "" {
		return Click{}, false
	}
	return Click{
		FieldID:   id,
		FieldType: attrs[AttrFieldType],
		Value:     attrs[AttrFieldValue],
	}, true
}

// FromClick builds a one-condition filter query for a clicked field value.
// The second return is false for unfilterable field types; the caller
// silently ignores the click and lets navigation proceed.
func FromClick(fieldID, fieldType, value string) (string, bool) {
	return query.Build(fieldID, canonicalType(fieldType), value)
}

// Query is FromClick for an already-decoded element.
func (c Click) Query() (string, bool) {
	return FromClick(c.FieldID, c.FieldType, c.Value)
}

// canonicalType maps the type tokens emitted in data-field-type back to
// registry field types. Canonical names pass through so programmatic
// callers can use either.
func canonicalType(token string) string {
	switch token {
	case render.TokenSelect:
		return types.FieldStringChoice
	case render.TokenTags:
		return types.FieldTags
	case render.TokenUser:
		return types.FieldUser
	default:
		return token
	}
}
