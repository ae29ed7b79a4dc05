// log_storage.go implements SQLite-based persistent history logging.
//
// Separated from log.go to isolate database concerns. The main log.go
// provides the fluent API for building log entries, while this file handles
// persistence. Using SQLite enables structured queries over past searches
// (the history command) that plain text logs cannot provide. The host field
// uses a hash of the machine name to enable aggregation while preserving
// privacy when log databases are shared.
//
// Design: Errors during logging are silently ignored (best-effort). A
// search should succeed even if we can't record it in the history log.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes history log entries to a SQLite database.
type Logger struct {
	db   *sql.DB
	host string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, host, source, action, query, count, total,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.host, e.Source, e.Action,
		nilIfEmpty(e.Query), nilIfZero(e.Count), nilIfZero(e.Total),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort logging: don't break the search, but report failure
		_, _ = fmt.Fprintf(os.Stderr, "evsearch: history log write failed: %v\n", err)
	}
}

// recent reads the newest n entries, newest first.
func (l *Logger) recent(n int) ([]Entry, error) {
	rows, err := l.db.Query(`
		SELECT start, end, source, action, query, count, total, success, error
		FROM log ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var query, errMsg sql.NullString
		var count, total sql.NullInt64
		var success int
		if err := rows.Scan(&e.Start, &e.End, &e.Source, &e.Action,
			&query, &count, &total, &success, &errMsg); err != nil {
			return nil, err
		}
		e.Query = query.String
		e.Count = int(count.Int64)
		e.Total = int(total.Int64)
		e.Success = success == 1
		e.Error = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows logging to work in unusual environments (containers,
		// etc.) rather than silently failing.
		return filepath.Join(".evsearch", "log", "evsearch-log.db")
	}
	return filepath.Join(home, ".evsearch", "log", "evsearch-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a host identifier from the machine name, enabling
// aggregation while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			host    TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			query   TEXT,
			count   INTEGER,
			total   INTEGER,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_host ON log(host);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nilIfZero returns nil for zero values, indicating "no count" in queries.
func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
