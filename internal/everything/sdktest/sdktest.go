// Package sdktest provides an in-memory Everything SDK double. It
// fabricates result rows without the native DLL so the query, engine, and
// front-end layers can be tested on any platform.
//
// The double also checks the engine's serialisation contract: the real SDK
// holds one shared search state, so two callers interleaving their
// configure+query+decode sequences would corrupt each other's results.
// Every method records a violation when entered concurrently.
package sdktest

import (
	"sync/atomic"
	"time"

	"github.com/jpl-au/evsearch/internal/everything"
)

var _ everything.SDK = (*SDK)(nil)

// Row is one fabricated result.
type Row struct {
	Path string
	Attr uint32
}

// SDK is a configurable in-memory Everything SDK. Configure the response
// fields before use; the captured fields record what the engine set on the
// last call sequence.
type SDK struct {
	// Response configuration.
	Rows      []Row
	Total     uint32
	FailCode  uint32 // when non-zero, Query fails and LastError returns it
	SearchErr error  // returned by SetSearch when non-nil
	DBLoaded  bool
	Ver       [4]uint32

	// QueryFunc, when set, fabricates Rows and Total from the configured
	// search text at query time. Used by concurrency tests to tie each
	// result to the query that produced it.
	QueryFunc func(search string) ([]Row, uint32)

	// Captured configuration from the last call sequence.
	Search    string
	Max       uint32
	MatchCase bool
	WholeWord bool
	Regex     bool
	MatchPath bool
	Flags     uint32

	inflight   int32
	violations int32
}

// Violations reports how many calls entered while another call was in
// flight. Zero means the engine serialised every sequence.
func (s *SDK) Violations() int {
	return int(atomic.LoadInt32(&s.violations))
}

func (s *SDK) enter() {
	if atomic.AddInt32(&s.inflight, 1) != 1 {
		atomic.AddInt32(&s.violations, 1)
	}
}

func (s *SDK) exit() {
	atomic.AddInt32(&s.inflight, -1)
}

func (s *SDK) SetSearch(query string) error {
	s.enter()
	defer s.exit()
	if s.SearchErr != nil {
		return s.SearchErr
	}
	s.Search = query
	return nil
}

func (s *SDK) SetMax(n uint32) {
	s.enter()
	defer s.exit()
	s.Max = n
}

func (s *SDK) SetMatchCase(on bool) {
	s.enter()
	defer s.exit()
	s.MatchCase = on
}

func (s *SDK) SetMatchWholeWord(on bool) {
	s.enter()
	defer s.exit()
	s.WholeWord = on
}

func (s *SDK) SetRegex(on bool) {
	s.enter()
	defer s.exit()
	s.Regex = on
}

func (s *SDK) SetMatchPath(on bool) {
	s.enter()
	defer s.exit()
	s.MatchPath = on
}

func (s *SDK) SetRequestFlags(flags uint32) {
	s.enter()
	defer s.exit()
	s.Flags = flags
}

// Query fabricates the result set from the configuration set since the
// last call. The brief sleep widens the window for catching callers that
// bypass the engine's lock.
func (s *SDK) Query() bool {
	s.enter()
	defer s.exit()
	time.Sleep(time.Millisecond)
	if s.FailCode != 0 {
		return false
	}
	if s.QueryFunc != nil {
		s.Rows, s.Total = s.QueryFunc(s.Search)
	}
	return true
}

func (s *SDK) NumResults() uint32 {
	s.enter()
	defer s.exit()
	n := uint32(len(s.Rows))
	if n > s.Max {
		n = s.Max
	}
	return n
}

func (s *SDK) TotResults() uint32 {
	s.enter()
	defer s.exit()
	return s.Total
}

func (s *SDK) ResultPath(i uint32) string {
	s.enter()
	defer s.exit()
	return s.Rows[i].Path
}

func (s *SDK) ResultAttributes(i uint32) uint32 {
	s.enter()
	defer s.exit()
	return s.Rows[i].Attr
}

func (s *SDK) LastError() uint32 {
	s.enter()
	defer s.exit()
	return s.FailCode
}

func (s *SDK) IsDBLoaded() bool {
	s.enter()
	defer s.exit()
	return s.DBLoaded
}

func (s *SDK) Version() (major, minor, revision, build uint32) {
	s.enter()
	defer s.exit()
	return s.Ver[0], s.Ver[1], s.Ver[2], s.Ver[3]
}

// Engine returns an engine whose loader hands out this double.
func (s *SDK) Engine() *everything.Engine {
	return everything.NewWithSDK(func() (everything.SDK, error) { return s, nil })
}
