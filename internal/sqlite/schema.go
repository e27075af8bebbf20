package sqlite

// Schema DDL. JSON-shaped configuration (field schemas, templates, note
// field maps, filter conditions) lives in TEXT columns; relational columns
// carry only what listings and lookups key on.
const (
	createSpaces = `CREATE TABLE IF NOT EXISTS spaces (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    fields TEXT NOT NULL,
    templates TEXT NOT NULL,
    list_fields TEXT,
    created_at TEXT NOT NULL
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    space_slug TEXT NOT NULL,
    number INTEGER NOT NULL,
    fields TEXT NOT NULL,
    author TEXT NOT NULL,
    created_at TEXT NOT NULL,
    edited_at TEXT,
    PRIMARY KEY (space_slug, number),
    FOREIGN KEY (space_slug) REFERENCES spaces(slug)
);`

	createFilters = `CREATE TABLE IF NOT EXISTS filters (
    filter_id TEXT PRIMARY KEY,
    space_slug TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    conditions TEXT NOT NULL,
    sort TEXT,
    list_fields TEXT,
    created_at TEXT NOT NULL,
    FOREIGN KEY (space_slug) REFERENCES spaces(slug)
);`

	idxNotesSpace   = `CREATE INDEX IF NOT EXISTS idx_notes_space ON notes(space_slug);`
	idxFiltersSpace = `CREATE INDEX IF NOT EXISTS idx_filters_space ON filters(space_slug);`
)

// schemaStatements is executed in order on attach.
var schemaStatements = []string{
	createSpaces,
	createUsers,
	createNotes,
	createFilters,
	idxNotesSpace,
	idxFiltersSpace,
}
