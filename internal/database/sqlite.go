package database

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

const (
	// DefaultSQLitePath is the schedule manager's database file.
	DefaultSQLitePath = "flight_schedules.db"

	// SQLiteLowerFunc lowercases text with Unicode rules. The built-in LOWER
	// only folds ASCII letters.
	SQLiteLowerFunc = "unicode_lower"
)

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(SQLiteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// OpenSQLite opens a single-connection SQLite handle. The manager keeps one
// connection for its whole run.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}
