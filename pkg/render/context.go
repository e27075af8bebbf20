package render

import (
	"time"

	"github.com/osteele/liquid"

	"github.com/plainfield/notespace/pkg/types"
)

// DetailContext is the input for single-note templates.
type DetailContext struct {
	Note  *types.Note
	Space *types.Space
	Users []types.User
}

// ListContext is the input for note-list templates.
type ListContext struct {
	Notes []*types.Note
	Space *types.Space
	Users []types.User
}

func (c DetailContext) bindings() liquid.Bindings {
	return liquid.Bindings{
		"note":  noteBindings(c.Note, c.Space),
		"space": spaceBindings(c.Space),
		"users": usersBindings(c.Users),
	}
}

func (c ListContext) bindings() liquid.Bindings {
	notes := make([]map[string]any, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, noteBindings(n, c.Space))
	}
	return liquid.Bindings{
		"notes": notes,
		"space": spaceBindings(c.Space),
		"users": usersBindings(c.Users),
	}
}

// Note keys that schema fields must never shadow when flattened.
var reservedNoteKeys = map[string]bool{
	"number":     true,
	"author":     true,
	"created_at": true,
	"edited_at":  true,
	"fields":     true,
}

// noteBindings flattens the schema's fields onto the top-level note map
// under their ids, so templates write note.status instead of
// note.fields.status, while preserving the nested fields map for templates
// that prefer it.
func noteBindings(n *types.Note, space *types.Space) map[string]any {
	fields := make(map[string]any, len(n.Fields))
	for k, v := range n.Fields {
		fields[k] = v
	}

	m := map[string]any{
		"number":     n.Number,
		"author":     n.Author,
		"created_at": n.CreatedAt.UTC().Format(time.RFC3339),
		"fields":     fields,
	}
	if n.EditedAt != nil {
		m["edited_at"] = n.EditedAt.UTC().Format(time.RFC3339)
	}

	for _, f := range space.Fields {
		if reservedNoteKeys[f.ID] {
			continue
		}
		if v, ok := fields[f.ID]; ok {
			m[f.ID] = v
		}
	}
	return m
}

func spaceBindings(s *types.Space) map[string]any {
	fields := make([]map[string]any, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, map[string]any{
			"id":       f.ID,
			"type":     f.Type,
			"required": f.Required,
		})
	}
	return map[string]any{
		"slug":        s.Slug,
		"title":       s.Title,
		"description": s.Description,
		"fields":      fields,
		"list_fields": s.ListFields,
	}
}

func usersBindings(users []types.User) []map[string]any {
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]any{
			"id":       u.UserID,
			"username": u.Username,
		})
	}
	return out
}
