package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/plainfield/notespace/pkg/types"
)

// SpacesTable accesses workspace definitions: slug, title, field schema,
// templates, and list-field preferences.
type SpacesTable struct {
	backend *Backend
}

// Create persists a new space. The space is validated against the field
// registry first; a duplicate slug returns ErrSpaceExists.
func (st *SpacesTable) Create(space *types.Space) error {
	if space == nil {
		return types.ErrInvalidData
	}
	if err := space.Validate(); err != nil {
		return err
	}

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()

	var exists int
	err := st.backend.db.QueryRow("SELECT 1 FROM spaces WHERE slug = ?", space.Slug).Scan(&exists)
	if err == nil {
		return fmt.Errorf("space %q: %w", space.Slug, types.ErrSpaceExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking space existence: %w", err)
	}

	fieldsJSON, templatesJSON, listFieldsJSON, err := dehydrateSpace(space)
	if err != nil {
		return err
	}

	_, err = st.backend.db.Exec(
		"INSERT INTO spaces (slug, title, description, fields, templates, list_fields, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		space.Slug, space.Title, space.Description, fieldsJSON, templatesJSON, listFieldsJSON,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("persisting space: %w", err)
	}
	return nil
}

// Get retrieves a space by slug.
func (st *SpacesTable) Get(slug string) (*types.Space, error) {
	if slug == "" {
		return nil, types.ErrInvalidID
	}

	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()

	row := st.backend.db.QueryRow(
		"SELECT slug, title, description, fields, templates, list_fields FROM spaces WHERE slug = ?", slug,
	)
	space, err := hydrateSpace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("space %q: %w", slug, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting space %q: %w", slug, err)
	}
	return space, nil
}

// List returns all spaces ordered by slug.
func (st *SpacesTable) List() ([]*types.Space, error) {
	st.backend.mu.RLock()
	defer st.backend.mu.RUnlock()

	rows, err := st.backend.db.Query(
		"SELECT slug, title, description, fields, templates, list_fields FROM spaces ORDER BY slug",
	)
	if err != nil {
		return nil, fmt.Errorf("listing spaces: %w", err)
	}
	defer rows.Close()

	spaces := []*types.Space{}
	for rows.Next() {
		space, err := hydrateSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating space: %w", err)
		}
		spaces = append(spaces, space)
	}
	return spaces, rows.Err()
}

// Update replaces a space definition. The schema is re-validated; notes
// written under the old schema are not migrated.
func (st *SpacesTable) Update(space *types.Space) error {
	if space == nil {
		return types.ErrInvalidData
	}
	if err := space.Validate(); err != nil {
		return err
	}

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()

	fieldsJSON, templatesJSON, listFieldsJSON, err := dehydrateSpace(space)
	if err != nil {
		return err
	}

	res, err := st.backend.db.Exec(
		"UPDATE spaces SET title = ?, description = ?, fields = ?, templates = ?, list_fields = ? WHERE slug = ?",
		space.Title, space.Description, fieldsJSON, templatesJSON, listFieldsJSON, space.Slug,
	)
	if err != nil {
		return fmt.Errorf("updating space: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("space %q: %w", space.Slug, types.ErrNotFound)
	}
	return nil
}

// Delete removes a space and cascades to its notes and filters.
func (st *SpacesTable) Delete(slug string) error {
	if slug == "" {
		return types.ErrInvalidID
	}

	st.backend.mu.Lock()
	defer st.backend.mu.Unlock()

	tx, err := st.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM notes WHERE space_slug = ?", slug); err != nil {
		return fmt.Errorf("deleting notes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM filters WHERE space_slug = ?", slug); err != nil {
		return fmt.Errorf("deleting filters: %w", err)
	}
	res, err := tx.Exec("DELETE FROM spaces WHERE slug = ?", slug)
	if err != nil {
		return fmt.Errorf("deleting space: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("space %q: %w", slug, types.ErrNotFound)
	}
	return tx.Commit()
}

func dehydrateSpace(space *types.Space) (fields, templates, listFields string, err error) {
	f, err := json.Marshal(space.Fields)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling fields: %w", err)
	}
	t, err := json.Marshal(space.Templates)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling templates: %w", err)
	}
	l, err := json.Marshal(space.ListFields)
	if err != nil {
		return "", "", "", fmt.Errorf("marshaling list fields: %w", err)
	}
	return string(f), string(t), string(l), nil
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func hydrateSpace(row scannable) (*types.Space, error) {
	var space types.Space
	var description, fieldsJSON, templatesJSON sql.NullString
	var listFieldsJSON sql.NullString

	if err := row.Scan(&space.Slug, &space.Title, &description, &fieldsJSON, &templatesJSON, &listFieldsJSON); err != nil {
		return nil, err
	}
	space.Description = description.String

	if fieldsJSON.Valid && fieldsJSON.String != "" {
		if err := json.Unmarshal([]byte(fieldsJSON.String), &space.Fields); err != nil {
			return nil, fmt.Errorf("unmarshaling fields: %w", err)
		}
	}
	if templatesJSON.Valid && templatesJSON.String != "" {
		if err := json.Unmarshal([]byte(templatesJSON.String), &space.Templates); err != nil {
			return nil, fmt.Errorf("unmarshaling templates: %w", err)
		}
	}
	if listFieldsJSON.Valid && listFieldsJSON.String != "" && listFieldsJSON.String != "null" {
		if err := json.Unmarshal([]byte(listFieldsJSON.String), &space.ListFields); err != nil {
			return nil, fmt.Errorf("unmarshaling list fields: %w", err)
		}
	}
	return &space, nil
}
