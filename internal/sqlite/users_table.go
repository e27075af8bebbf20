package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plainfield/notespace/pkg/types"
)

// UsersTable accesses the user directory backing the user field type.
type UsersTable struct {
	backend *Backend
}

// Create registers a user and returns the record with its generated ID.
func (ut *UsersTable) Create(username string) (*types.User, error) {
	if username == "" {
		return nil, types.ErrInvalidData
	}

	ut.backend.mu.Lock()
	defer ut.backend.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating user ID: %w", err)
	}
	user := &types.User{
		UserID:    id.String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	_, err = ut.backend.db.Exec(
		"INSERT INTO users (user_id, username, created_at) VALUES (?, ?, ?)",
		user.UserID, user.Username, user.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("persisting user: %w", err)
	}
	return user, nil
}

// Get retrieves a user by ID.
func (ut *UsersTable) Get(userID string) (*types.User, error) {
	if userID == "" {
		return nil, types.ErrInvalidID
	}

	ut.backend.mu.RLock()
	defer ut.backend.mu.RUnlock()

	return ut.hydrateOne(ut.backend.db.QueryRow(
		"SELECT user_id, username, created_at FROM users WHERE user_id = ?", userID,
	), userID)
}

// GetByUsername retrieves a user by username.
func (ut *UsersTable) GetByUsername(username string) (*types.User, error) {
	if username == "" {
		return nil, types.ErrInvalidID
	}

	ut.backend.mu.RLock()
	defer ut.backend.mu.RUnlock()

	return ut.hydrateOne(ut.backend.db.QueryRow(
		"SELECT user_id, username, created_at FROM users WHERE username = ?", username,
	), username)
}

// List returns all users ordered by username.
func (ut *UsersTable) List() ([]*types.User, error) {
	ut.backend.mu.RLock()
	defer ut.backend.mu.RUnlock()

	rows, err := ut.backend.db.Query("SELECT user_id, username, created_at FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []*types.User{}
	for rows.Next() {
		user, err := hydrateUser(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (ut *UsersTable) hydrateOne(row *sql.Row, key string) (*types.User, error) {
	user, err := hydrateUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", key, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting user %q: %w", key, err)
	}
	return user, nil
}

func hydrateUser(row scannable) (*types.User, error) {
	var user types.User
	var createdAt string
	if err := row.Scan(&user.UserID, &user.Username, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	user.CreatedAt = ts
	return &user, nil
}
