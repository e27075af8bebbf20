package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plainfield/notespace/pkg/types"
)

// FiltersTable accesses saved filters. This is the only place conditions are
// persisted; everywhere else they travel as serialized query strings.
type FiltersTable struct {
	backend *Backend
}

// Create persists a saved filter and returns it with its generated ID. The
// target space must exist.
func (ft *FiltersTable) Create(filter *types.Filter) (*types.Filter, error) {
	if filter == nil {
		return nil, types.ErrInvalidData
	}
	if filter.Space == "" || filter.Title == "" {
		return nil, fmt.Errorf("filter must have a space and a title: %w", types.ErrInvalidData)
	}

	ft.backend.mu.Lock()
	defer ft.backend.mu.Unlock()

	row := ft.backend.db.QueryRow(
		"SELECT slug, title, description, fields, templates, list_fields FROM spaces WHERE slug = ?", filter.Space,
	)
	space, err := hydrateSpace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("space %q: %w", filter.Space, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting space %q: %w", filter.Space, err)
	}

	// Conditions on fields still in the schema must carry an operator their
	// type accepts. Fields since removed from the schema are saved as-is.
	for _, c := range filter.Conditions {
		f, ok := space.Field(c.Field)
		if !ok {
			continue
		}
		valid, err := types.IsValidOperator(f.Type, c.Operator)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, fmt.Errorf("condition on %q: %q: %w", c.Field, c.Operator, types.ErrInvalidOperator)
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating filter ID: %w", err)
	}

	stored := *filter
	stored.FilterID = id.String()
	stored.CreatedAt = time.Now().UTC()

	conditionsJSON, err := json.Marshal(stored.Conditions)
	if err != nil {
		return nil, fmt.Errorf("marshaling conditions: %w", err)
	}
	sortJSON, err := json.Marshal(stored.Sort)
	if err != nil {
		return nil, fmt.Errorf("marshaling sort: %w", err)
	}
	listFieldsJSON, err := json.Marshal(stored.ListFields)
	if err != nil {
		return nil, fmt.Errorf("marshaling list fields: %w", err)
	}

	_, err = ft.backend.db.Exec(
		"INSERT INTO filters (filter_id, space_slug, title, description, conditions, sort, list_fields, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		stored.FilterID, stored.Space, stored.Title, stored.Description,
		string(conditionsJSON), string(sortJSON), string(listFieldsJSON),
		stored.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting filter: %w", err)
	}
	return &stored, nil
}

// Get retrieves a saved filter by ID.
func (ft *FiltersTable) Get(filterID string) (*types.Filter, error) {
	if filterID == "" {
		return nil, types.ErrInvalidID
	}

	ft.backend.mu.RLock()
	defer ft.backend.mu.RUnlock()

	row := ft.backend.db.QueryRow(
		"SELECT filter_id, space_slug, title, description, conditions, sort, list_fields, created_at FROM filters WHERE filter_id = ?",
		filterID,
	)
	filter, err := hydrateFilter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("filter %q: %w", filterID, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting filter %q: %w", filterID, err)
	}
	return filter, nil
}

// List returns a space's saved filters ordered by title.
func (ft *FiltersTable) List(spaceSlug string) ([]*types.Filter, error) {
	if spaceSlug == "" {
		return nil, types.ErrInvalidID
	}

	ft.backend.mu.RLock()
	defer ft.backend.mu.RUnlock()

	rows, err := ft.backend.db.Query(
		"SELECT filter_id, space_slug, title, description, conditions, sort, list_fields, created_at FROM filters WHERE space_slug = ? ORDER BY title",
		spaceSlug,
	)
	if err != nil {
		return nil, fmt.Errorf("listing filters: %w", err)
	}
	defer rows.Close()

	filters := []*types.Filter{}
	for rows.Next() {
		filter, err := hydrateFilter(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating filter: %w", err)
		}
		filters = append(filters, filter)
	}
	return filters, rows.Err()
}

// Delete removes a saved filter.
func (ft *FiltersTable) Delete(filterID string) error {
	if filterID == "" {
		return types.ErrInvalidID
	}

	ft.backend.mu.Lock()
	defer ft.backend.mu.Unlock()

	res, err := ft.backend.db.Exec("DELETE FROM filters WHERE filter_id = ?", filterID)
	if err != nil {
		return fmt.Errorf("deleting filter: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("filter %q: %w", filterID, types.ErrNotFound)
	}
	return nil
}

func hydrateFilter(row scannable) (*types.Filter, error) {
	var filter types.Filter
	var description, conditionsJSON, sortJSON, listFieldsJSON sql.NullString
	var createdAt string

	err := row.Scan(&filter.FilterID, &filter.Space, &filter.Title, &description,
		&conditionsJSON, &sortJSON, &listFieldsJSON, &createdAt)
	if err != nil {
		return nil, err
	}
	filter.Description = description.String

	if conditionsJSON.Valid && conditionsJSON.String != "" && conditionsJSON.String != "null" {
		if err := json.Unmarshal([]byte(conditionsJSON.String), &filter.Conditions); err != nil {
			return nil, fmt.Errorf("unmarshaling conditions: %w", err)
		}
	}
	if sortJSON.Valid && sortJSON.String != "" && sortJSON.String != "null" {
		if err := json.Unmarshal([]byte(sortJSON.String), &filter.Sort); err != nil {
			return nil, fmt.Errorf("unmarshaling sort: %w", err)
		}
	}
	if listFieldsJSON.Valid && listFieldsJSON.String != "" && listFieldsJSON.String != "null" {
		if err := json.Unmarshal([]byte(listFieldsJSON.String), &filter.ListFields); err != nil {
			return nil, fmt.Errorf("unmarshaling list fields: %w", err)
		}
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	filter.CreatedAt = ts
	return &filter, nil
}
