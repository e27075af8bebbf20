package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

// NotesTable accesses notes. All writes go through the raw-value boundary:
// callers submit raw form strings, and this table resolves sentinels, decodes
// per the space schema, and enforces required fields before anything is
// persisted.
type NotesTable struct {
	backend *Backend
}

// Create inserts a note into a space from raw form values. Fields absent
// from raw fall back to the schema defaults; raw keys not in the schema are
// rejected with ErrUnknownField. The note number is the next value of the
// space's sequence.
func (nt *NotesTable) Create(space *types.Space, raw map[string]string, author string, rctx rawvalue.Context) (*types.Note, error) {
	if space == nil {
		return nil, types.ErrInvalidData
	}
	for id := range raw {
		if _, ok := space.Field(id); !ok {
			return nil, fmt.Errorf("field %q: %w", id, types.ErrUnknownField)
		}
	}

	// Overlay submitted values on the schema defaults, then resolve
	// sentinels exactly once, at this boundary.
	merged := rawvalue.DefaultValues(space.Fields)
	for id, v := range raw {
		merged[id] = v
	}
	merged = rctx.ResolveRawFields(space.Fields, merged)

	fields, err := decodeRawFields(space, merged)
	if err != nil {
		return nil, err
	}
	if err := checkRequired(space, fields); err != nil {
		return nil, err
	}

	nt.backend.mu.Lock()
	defer nt.backend.mu.Unlock()

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshaling note fields: %w", err)
	}

	tx, err := nt.backend.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var number int
	err = tx.QueryRow("SELECT COALESCE(MAX(number), 0) + 1 FROM notes WHERE space_slug = ?", space.Slug).Scan(&number)
	if err != nil {
		return nil, fmt.Errorf("allocating note number: %w", err)
	}

	createdAt := rctx.Now.UTC()
	_, err = tx.Exec(
		"INSERT INTO notes (space_slug, number, fields, author, created_at) VALUES (?, ?, ?, ?, ?)",
		space.Slug, number, string(fieldsJSON), author, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting note: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing note: %w", err)
	}

	return &types.Note{
		Number:    number,
		Fields:    fields,
		Author:    author,
		CreatedAt: createdAt,
	}, nil
}

// Update applies a partial edit: only the raw keys present are decoded and
// merged over the stored fields. Stored keys the caller did not touch,
// including keys no longer in the schema, survive unchanged. Sets EditedAt.
func (nt *NotesTable) Update(space *types.Space, number int, raw map[string]string, rctx rawvalue.Context) (*types.Note, error) {
	if space == nil {
		return nil, types.ErrInvalidData
	}
	for id := range raw {
		if _, ok := space.Field(id); !ok {
			return nil, fmt.Errorf("field %q: %w", id, types.ErrUnknownField)
		}
	}

	resolved := rctx.ResolveRawFields(space.Fields, raw)
	changes, err := decodeRawFields(space, resolved)
	if err != nil {
		return nil, err
	}

	nt.backend.mu.Lock()
	defer nt.backend.mu.Unlock()

	note, err := nt.hydrateByNumber(space.Slug, number)
	if err != nil {
		return nil, err
	}

	for id, v := range changes {
		note.Fields[id] = v
	}
	if err := checkRequired(space, note.Fields); err != nil {
		return nil, err
	}

	fieldsJSON, err := json.Marshal(note.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshaling note fields: %w", err)
	}
	editedAt := rctx.Now.UTC()

	_, err = nt.backend.db.Exec(
		"UPDATE notes SET fields = ?, edited_at = ? WHERE space_slug = ? AND number = ?",
		string(fieldsJSON), editedAt.Format(time.RFC3339), space.Slug, number,
	)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	note.EditedAt = &editedAt
	return note, nil
}

// Get retrieves one note by space and number.
func (nt *NotesTable) Get(spaceSlug string, number int) (*types.Note, error) {
	if spaceSlug == "" {
		return nil, types.ErrInvalidID
	}

	nt.backend.mu.RLock()
	defer nt.backend.mu.RUnlock()

	return nt.hydrateByNumber(spaceSlug, number)
}

// List returns all notes of a space ordered by number.
func (nt *NotesTable) List(spaceSlug string) ([]*types.Note, error) {
	if spaceSlug == "" {
		return nil, types.ErrInvalidID
	}

	nt.backend.mu.RLock()
	defer nt.backend.mu.RUnlock()

	rows, err := nt.backend.db.Query(
		"SELECT number, fields, author, created_at, edited_at FROM notes WHERE space_slug = ? ORDER BY number",
		spaceSlug,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := []*types.Note{}
	for rows.Next() {
		note, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// ListFiltered returns the notes of a space matching every condition.
// Conditions are evaluated against hydrated field values, so types decoded
// from storage (JSON numbers, arrays) compare the same as freshly written
// ones.
func (nt *NotesTable) ListFiltered(spaceSlug string, conds []types.FilterCondition) ([]*types.Note, error) {
	notes, err := nt.List(spaceSlug)
	if err != nil {
		return nil, err
	}
	if len(conds) == 0 {
		return notes, nil
	}

	matched := []*types.Note{}
	for _, note := range notes {
		if query.Match(conds, note.Fields) {
			matched = append(matched, note)
		}
	}
	return matched, nil
}

// Delete removes a note.
func (nt *NotesTable) Delete(spaceSlug string, number int) error {
	if spaceSlug == "" {
		return types.ErrInvalidID
	}

	nt.backend.mu.Lock()
	defer nt.backend.mu.Unlock()

	res, err := nt.backend.db.Exec("DELETE FROM notes WHERE space_slug = ? AND number = ?", spaceSlug, number)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("note %s/%d: %w", spaceSlug, number, types.ErrNotFound)
	}
	return nil
}

// hydrateByNumber expects the caller to hold the backend lock.
func (nt *NotesTable) hydrateByNumber(spaceSlug string, number int) (*types.Note, error) {
	row := nt.backend.db.QueryRow(
		"SELECT number, fields, author, created_at, edited_at FROM notes WHERE space_slug = ? AND number = ?",
		spaceSlug, number,
	)
	note, err := hydrateNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %s/%d: %w", spaceSlug, number, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting note %s/%d: %w", spaceSlug, number, err)
	}
	return note, nil
}

func hydrateNote(row scannable) (*types.Note, error) {
	var note types.Note
	var fieldsJSON, createdAt string
	var editedAt sql.NullString

	if err := row.Scan(&note.Number, &fieldsJSON, &note.Author, &createdAt, &editedAt); err != nil {
		return nil, err
	}
	if fieldsJSON != "" {
		if err := json.Unmarshal([]byte(fieldsJSON), &note.Fields); err != nil {
			return nil, fmt.Errorf("unmarshaling note fields: %w", err)
		}
	}
	if note.Fields == nil {
		note.Fields = map[string]any{}
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	note.CreatedAt = ts

	if editedAt.Valid && editedAt.String != "" {
		ts, err := time.Parse(time.RFC3339, editedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing edited_at: %w", err)
		}
		note.EditedAt = &ts
	}
	return &note, nil
}

// decodeRawFields decodes a raw payload through the space schema. Empty
// strings on optional scalar fields decode to nil so they read as unset.
func decodeRawFields(space *types.Space, raw map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for id, rawVal := range raw {
		field, ok := space.Field(id)
		if !ok {
			continue
		}
		if rawVal == "" && field.Type != types.FieldTags {
			out[id] = nil
			continue
		}
		v, err := rawvalue.DecodeField(field, rawVal)
		if err != nil {
			return nil, err
		}
		out[id] = v
	}
	return out, nil
}

func checkRequired(space *types.Space, fields map[string]any) error {
	for _, f := range space.Fields {
		if !f.Required {
			continue
		}
		v, ok := fields[f.ID]
		if !ok || v == nil {
			return fmt.Errorf("field %q: %w", f.ID, types.ErrRequiredField)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return fmt.Errorf("field %q: %w", f.ID, types.ErrRequiredField)
		}
		if f.Type == types.FieldTags {
			if tags, err := types.StringSlice(v); err == nil && len(tags) == 0 {
				return fmt.Errorf("field %q: %w", f.ID, types.ErrRequiredField)
			}
		}
	}
	return nil
}
