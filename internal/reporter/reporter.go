// Package reporter asks a relational database for its version string.
package reporter

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	// DriverPgx is the database/sql driver name registered by pgx.
	DriverPgx = "pgx"
	// VersionQuery asks PostgreSQL for its self reported version.
	VersionQuery = "SELECT version();"
)

// Config represents the configuration for a Reporter.
type Config struct {
	// DatabaseURL is the connection string handed to the driver untouched.
	// It may be empty, in which case the PG* environment variables and the
	// libpq defaults apply. Without an sslmode the connection tries TLS
	// first and falls back to plaintext (sslmode=prefer).
	DatabaseURL string
	// Driver is the database/sql driver name, defaults to DriverPgx.
	Driver string
	// Query is the single row, single column query returning the version,
	// defaults to VersionQuery.
	Query string
}

// Reporter reports the version of the configured database. It holds no
// connection between calls and is safe for concurrent use.
type Reporter struct {
	databaseURL string
	driver      string
	query       string
}

// NewReporter creates a new Reporter.
func NewReporter(config Config) *Reporter {
	if config.Driver == "" {
		config.Driver = DriverPgx
	}
	if config.Query == "" {
		config.Query = VersionQuery
	}

	return &Reporter{
		databaseURL: config.DatabaseURL,
		driver:      config.Driver,
		query:       config.Query,
	}
}

// Report opens one connection, reads the version and closes the connection
// again. Every failure is returned as a failed Result, never as an error.
func (rp *Reporter) Report(ctx context.Context) Result {
	version, err := rp.fetchVersion(ctx)
	if err != nil {
		return Failure(err)
	}
	return Success(version)
}

// fetchVersion returns the driver errors as they are so their message
// reaches the client unchanged.
func (rp *Reporter) fetchVersion(ctx context.Context) (string, error) {
	db, err := sql.Open(rp.driver, rp.databaseURL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	var version string
	if err := conn.QueryRowContext(ctx, rp.query).Scan(&version); err != nil {
		return "", err
	}

	return version, nil
}
