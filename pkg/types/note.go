package types

import "time"

// Note is one record in a space. Fields holds typed values keyed by field
// id; it only contains keys that were present in the space schema at write
// time. Keys no longer in the schema are preserved as-is, never migrated.
type Note struct {
	Number    int            `json:"number"` // Per-space sequence, starting at 1.
	Fields    map[string]any `json:"fields"`
	Author    string         `json:"author"` // User id of the creator.
	CreatedAt time.Time      `json:"created_at"`
	EditedAt  *time.Time     `json:"edited_at,omitempty"`
}

// FieldValues returns a copy of the note's field map.
func (n *Note) FieldValues() map[string]any {
	out := make(map[string]any, len(n.Fields))
	for k, v := range n.Fields {
		out[k] = v
	}
	return out
}
