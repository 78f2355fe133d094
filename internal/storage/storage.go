package storage

import (
	"net/url"
	"strings"

	"github.com/julianstephens/zenfocus/internal/storage/postgres"
	"github.com/julianstephens/zenfocus/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a SQLite database at path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Both URL and DSN forms are checked.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return true
		}
	}
	return false
}
