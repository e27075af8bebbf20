package types

// Recognized backend names.
const (
	BackendSQLite = "sqlite"
)

// Config selects and configures a storage backend.
type Config struct {
	Backend string // Backend name; currently only "sqlite".
	DataDir string // Directory for database files; "" means current directory.
}

// Validate checks the configuration before a backend attach.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if c.Backend != BackendSQLite {
		return ErrBackendUnknown
	}
	return nil
}
