// engine.go owns the native call sequence: configure, query, decode.
//
// The SDK holds one shared search state (text, flags, result cursor), so
// every configure+query+decode sequence runs as one critical section under
// the engine's lock. Concurrent callers serialise; throughput is bounded by
// single-query latency.

package everything

import (
	"errors"
	"fmt"
	"sync"
)

// Result caps accepted by the engine. Out-of-range values are clamped,
// not rejected.
const (
	MinResults = 1
	MaxResults = 500
)

var (
	// ErrUnavailable reports that the Everything SDK could not be loaded.
	// The load failure is cached for the life of the engine; every later
	// call sees the same error and the load is never retried.
	ErrUnavailable = errors.New("search engine unavailable")

	// ErrInvalidQuery reports query text that cannot cross the native
	// boundary, such as an interior NUL.
	ErrInvalidQuery = errors.New("invalid query text")
)

// QueryError reports a failed native query with the engine's error code.
// The usual cause is the Everything service not running.
type QueryError struct {
	Code uint32
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("Query failed (%d). Is Everything running?", e.Code)
}

// Options configure a single search. The zero value searches
// case-insensitively with the result cap clamped up to MinResults.
type Options struct {
	Max       uint32
	MatchCase bool
	WholeWord bool
	Regex     bool
	MatchPath bool
}

// Result is one matched filesystem entry.
type Result struct {
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

// ResultSet holds the rows materialised by one query. Total counts every
// match the index found and may exceed len(Results). Ordering is exactly
// as the index returned it; the engine never re-sorts.
type ResultSet struct {
	Total   uint32   `json:"total"`
	Results []Result `json:"results"`
}

// Status reports engine readiness and version.
type Status struct {
	Ready    bool   `json:"ready"`
	Major    uint32 `json:"major"`
	Minor    uint32 `json:"minor"`
	Revision uint32 `json:"revision"`
	Build    uint32 `json:"build"`
}

// String formats the status as a single line for tool output.
func (s Status) String() string {
	if !s.Ready {
		return "Not available"
	}
	return fmt.Sprintf("v%d.%d.%d.%d Ready", s.Major, s.Minor, s.Revision, s.Build)
}

// Engine wraps the Everything SDK behind a single lock. Construct one
// engine at process start and hand it to both front ends; the SDK itself
// loads lazily on first use.
type Engine struct {
	load func() (SDK, error)

	once    sync.Once
	sdk     SDK
	loadErr error

	mu sync.Mutex
}

// New returns an engine backed by the Everything SDK DLL. library
// optionally names an explicit DLL path to try before the defaults.
func New(library string) *Engine {
	return NewWithSDK(func() (SDK, error) { return loadSDK(library) })
}

// NewWithSDK returns an engine backed by a custom SDK loader. Tests use
// this to substitute an in-memory SDK.
func NewWithSDK(load func() (SDK, error)) *Engine {
	return &Engine{load: load}
}

// ensure loads the SDK on first use. The outcome, success or failure, is
// cached and never retried.
func (e *Engine) ensure() (SDK, error) {
	e.once.Do(func() {
		e.sdk, e.loadErr = e.load()
	})
	if e.loadErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, e.loadErr)
	}
	return e.sdk, nil
}

// Search runs query against the index and decodes up to opts.Max rows.
// Zero materialised rows is a valid result set, not an error.
func (e *Engine) Search(query string, opts Options) (ResultSet, error) {
	sdk, err := e.ensure()
	if err != nil {
		return ResultSet{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := sdk.SetSearch(query); err != nil {
		return ResultSet{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	sdk.SetMax(clampMax(opts.Max))
	sdk.SetMatchCase(opts.MatchCase)
	sdk.SetMatchWholeWord(opts.WholeWord)
	sdk.SetRegex(opts.Regex)
	sdk.SetMatchPath(opts.MatchPath)
	sdk.SetRequestFlags(defaultRequestFlags)

	if !sdk.Query() {
		return ResultSet{}, &QueryError{Code: sdk.LastError()}
	}

	n := sdk.NumResults()
	set := ResultSet{Total: sdk.TotResults(), Results: make([]Result, 0, n)}
	for i := uint32(0); i < n; i++ {
		set.Results = append(set.Results, Result{
			Path:  sdk.ResultPath(i),
			IsDir: sdk.ResultAttributes(i)&attrDirectory != 0,
		})
	}
	return set, nil
}

// Status reports whether the engine can answer queries and its version.
func (e *Engine) Status() (Status, error) {
	sdk, err := e.ensure()
	if err != nil {
		return Status{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := Status{Ready: sdk.IsDBLoaded()}
	s.Major, s.Minor, s.Revision, s.Build = sdk.Version()
	return s, nil
}

// clampMax bounds the result cap to [MinResults, MaxResults]. Clamping is
// silent; callers asking for 0 or 10000 rows get 1 or 500.
func clampMax(n uint32) uint32 {
	if n < MinResults {
		return MinResults
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}
