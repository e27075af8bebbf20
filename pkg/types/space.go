package types

import "fmt"

// Templates holds the workspace-authored Liquid template strings. An empty
// string means "use the default structured view".
type Templates struct {
	NoteList   string `json:"note_list,omitempty"`
	NoteDetail string `json:"note_detail,omitempty"`
}

// Space is a workspace: it owns a record schema, display templates, and
// saved filters. Notes belong to exactly one space.
type Space struct {
	Slug        string       `json:"slug"` // URL-safe unique identifier.
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Fields      []SpaceField `json:"fields"`
	Templates   Templates    `json:"templates"`
	ListFields  []string     `json:"list_fields,omitempty"` // Ordered field ids for summary display.
}

// Field returns the schema field with the given id.
func (s *Space) Field(id string) (SpaceField, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return SpaceField{}, false
}

// Validate checks the space definition: non-empty slug and title, every
// field valid against the registry, no duplicate field ids.
func (s *Space) Validate() error {
	if s.Slug == "" {
		return fmt.Errorf("space must have a slug: %w", ErrInvalidData)
	}
	if s.Title == "" {
		return fmt.Errorf("space must have a title: %w", ErrInvalidData)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate field id %q: %w", f.ID, ErrInvalidData)
		}
		seen[f.ID] = true
	}
	return nil
}
