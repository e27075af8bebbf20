package types

import "time"

// FilterCondition is one field:operator:value predicate. Value is a string
// for scalar operators, a []string for collection operators, and an int64 or
// float64 when a comparison operator carries a numeric operand.
type FilterCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// SortField is one entry of a saved filter's sort order.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// Filter is a saved view: a named set of AND-combined conditions plus
// display preferences. Conditions are ephemeral everywhere else; only here
// are they persisted.
type Filter struct {
	FilterID    string            `json:"id"` // UUID v7, generated on creation.
	Space       string            `json:"space"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Conditions  []FilterCondition `json:"conditions"`
	Sort        []SortField       `json:"sort,omitempty"`
	ListFields  []string          `json:"list_fields,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
