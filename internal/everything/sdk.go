// Package everything binds the voidtools Everything search engine through
// its SDK DLL. It owns query construction in Everything's search syntax,
// the native call sequence, and result decoding; matching, ranking, and the
// filesystem index itself live entirely in the external Everything service.
package everything

// Constants from the Everything SDK headers (Everything.h). These are
// stable ABI - the SDK guarantees the values across releases.
const (
	// Request flags select which fields the engine materialises per result.
	requestFileName        = 0x00000001 // EVERYTHING_REQUEST_FILE_NAME
	requestPath            = 0x00000002 // EVERYTHING_REQUEST_PATH
	requestFullPath        = 0x00000010 // EVERYTHING_REQUEST_FULL_PATH_AND_FILE_NAME
	requestAttributes      = 0x00000100 // EVERYTHING_REQUEST_ATTRIBUTES
	defaultRequestFlags    = requestFileName | requestPath | requestFullPath | requestAttributes
	attrDirectory          = 0x10  // FILE_ATTRIBUTE_DIRECTORY
	resultPathBufferLength = 32768 // UTF-16 code units; paths are not pre-measured
)

// SDK is the capability surface of the Everything SDK: one method per native
// entry point, taking and returning owned value types only. The real
// implementation marshals across the DLL boundary (sdk_windows.go); tests
// substitute an in-memory double so everything above this interface runs
// without the native engine.
//
// Implementations are not safe for concurrent use. The SDK holds one shared
// search state (text, flags, result cursor), so Engine serialises every
// configure+query+decode sequence behind its own lock.
type SDK interface {
	// SetSearch sets the search text for the next query. It returns an
	// error when the text cannot be represented in UTF-16 for the native
	// call (for example an interior NUL).
	SetSearch(query string) error

	// SetMax bounds how many results the next query materialises.
	SetMax(n uint32)

	// Match-mode toggles for the next query.
	SetMatchCase(on bool)
	SetMatchWholeWord(on bool)
	SetRegex(on bool)
	SetMatchPath(on bool)

	// SetRequestFlags selects the per-result fields to materialise.
	SetRequestFlags(flags uint32)

	// Query runs the configured search synchronously. It reports false on
	// failure; LastError then holds the engine's error code.
	Query() bool

	// NumResults is the materialised result count of the last query,
	// bounded by SetMax. TotResults is the full match count, which may be
	// larger.
	NumResults() uint32
	TotResults() uint32

	// ResultPath returns the full path of result i, decoded from the
	// engine's UTF-16 form. Invalid sequences are replaced, never fatal.
	ResultPath(i uint32) string

	// ResultAttributes returns the Windows attribute bitmask of result i.
	ResultAttributes(i uint32) uint32

	// LastError returns the engine's last error code.
	LastError() uint32

	// IsDBLoaded reports whether the Everything service has its database
	// loaded and can answer queries.
	IsDBLoaded() bool

	// Version returns the running engine's version components.
	Version() (major, minor, revision, build uint32)
}
