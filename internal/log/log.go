// Package log provides centralised search history logging for evsearch.
// Entries are stored in ~/.evsearch/log/evsearch-log.db and track CLI
// commands and MCP tool invocations.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:search", "search").
//		Query(q).
//		Results(len(set.Results), int(set.Total)).
//		Write(err)
//
//	log.Event("mcp:everything_status", "status").
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools. Examples: "cli:recent",
// "mcp:everything_search_ext".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "cli:search", "mcp:everything_recent"
	Action string // verb: search, status, config

	// Query and result counts for search operations.
	Query string
	Count int // rows materialised
	Total int // total matches the index reported

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "cli:{command}" (e.g., "cli:search", "cli:recent")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:everything_search")
//
// The action describes what operation was performed: "search", "status",
// "config", "history".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Query sets the built query text sent to the engine.
func (b *Builder) Query(query string) *Builder {
	b.entry.Query = query
	return b
}

// Results records how many rows materialised and the total match count
// the index reported.
func (b *Builder) Results(count, total int) *Builder {
	b.entry.Count = count
	b.entry.Total = total
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// flags, category names, day ranges. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. If err is nil the entry is logged as successful; otherwise as
// failed with the error message. This is the standard way to complete a
// log entry after an operation.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	host, _ := os.Hostname()
	global = &Logger{db: db, host: hash(host)}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns the most recent n entries, newest first. Returns an
// empty slice when the logger is not initialised.
func Recent(n int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(n)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
