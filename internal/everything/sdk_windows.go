//go:build windows

// sdk_windows.go implements SDK against the Everything SDK DLL.
//
// The DLL exports plain stdcall entry points, so the binding goes through
// golang.org/x/sys/windows rather than cgo: load the library, resolve every
// entry point by exported name, and marshal UTF-16 at the boundary. A
// resolved handle is pinned for the life of the process - the proc addresses
// borrowed from it must stay valid for as long as any call may occur.

package everything

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// dllPaths are the load candidates, in order: the default DLL search path
// first, then the stock install location.
var dllPaths = []string{
	"Everything64.dll",
	`C:\Program Files\Everything\Everything64.dll`,
}

var _ SDK = (*dllSDK)(nil)

type dllSDK struct {
	setSearch        *windows.Proc
	setMax           *windows.Proc
	setMatchCase     *windows.Proc
	setMatchWord     *windows.Proc
	setRegex         *windows.Proc
	setMatchPath     *windows.Proc
	setRequestFlags  *windows.Proc
	query            *windows.Proc
	numResults       *windows.Proc
	totResults       *windows.Proc
	resultPath       *windows.Proc
	resultAttributes *windows.Proc
	lastError        *windows.Proc
	isDBLoaded       *windows.Proc
	majorVersion     *windows.Proc
	minorVersion     *windows.Proc
	revision         *windows.Proc
	buildNumber      *windows.Proc

	// search holds the widened search text between SetSearch and Query so
	// the buffer outlives any native read of it.
	search *uint16

	// buf receives result paths; reused across rows. Safe because Engine
	// serialises all SDK access.
	buf []uint16
}

// loadSDK loads the Everything DLL and resolves every entry point. library
// optionally names an explicit path to try before the defaults. A single
// missing symbol fails the whole load: a partially resolved handle is never
// returned.
func loadSDK(library string) (SDK, error) {
	candidates := dllPaths
	if library != "" {
		candidates = append([]string{library}, candidates...)
	}

	var lib *windows.DLL
	var err error
	for _, path := range candidates {
		lib, err = windows.LoadDLL(path)
		if err == nil {
			break
		}
	}
	if lib == nil {
		return nil, fmt.Errorf("Everything64.dll not found: %w", err)
	}

	d := &dllSDK{buf: make([]uint16, resultPathBufferLength)}
	for _, sym := range []struct {
		name string
		proc **windows.Proc
	}{
		{"Everything_SetSearchW", &d.setSearch},
		{"Everything_SetMax", &d.setMax},
		{"Everything_SetMatchCase", &d.setMatchCase},
		{"Everything_SetMatchWholeWord", &d.setMatchWord},
		{"Everything_SetRegex", &d.setRegex},
		{"Everything_SetMatchPath", &d.setMatchPath},
		{"Everything_SetRequestFlags", &d.setRequestFlags},
		{"Everything_QueryW", &d.query},
		{"Everything_GetNumResults", &d.numResults},
		{"Everything_GetTotResults", &d.totResults},
		{"Everything_GetResultFullPathNameW", &d.resultPath},
		{"Everything_GetResultAttributes", &d.resultAttributes},
		{"Everything_GetLastError", &d.lastError},
		{"Everything_IsDBLoaded", &d.isDBLoaded},
		{"Everything_GetMajorVersion", &d.majorVersion},
		{"Everything_GetMinorVersion", &d.minorVersion},
		{"Everything_GetRevision", &d.revision},
		{"Everything_GetBuildNumber", &d.buildNumber},
	} {
		p, err := lib.FindProc(sym.name)
		if err != nil {
			return nil, fmt.Errorf("symbol not found: %s", sym.name)
		}
		*sym.proc = p
	}
	return d, nil
}

func (d *dllSDK) SetSearch(query string) error {
	p, err := windows.UTF16PtrFromString(query)
	if err != nil {
		return fmt.Errorf("search text: %w", err)
	}
	d.search = p
	d.setSearch.Call(uintptr(unsafe.Pointer(d.search)))
	return nil
}

func (d *dllSDK) SetMax(n uint32) {
	d.setMax.Call(uintptr(n))
}

func (d *dllSDK) SetMatchCase(on bool) {
	d.setMatchCase.Call(boolArg(on))
}

func (d *dllSDK) SetMatchWholeWord(on bool) {
	d.setMatchWord.Call(boolArg(on))
}

func (d *dllSDK) SetRegex(on bool) {
	d.setRegex.Call(boolArg(on))
}

func (d *dllSDK) SetMatchPath(on bool) {
	d.setMatchPath.Call(boolArg(on))
}

func (d *dllSDK) SetRequestFlags(flags uint32) {
	d.setRequestFlags.Call(uintptr(flags))
}

// Query runs the configured search. The argument selects synchronous mode:
// the call blocks until the engine has the full result set.
func (d *dllSDK) Query() bool {
	r, _, _ := d.query.Call(1)
	return r != 0
}

func (d *dllSDK) NumResults() uint32 {
	return d.callU32(d.numResults)
}

func (d *dllSDK) TotResults() uint32 {
	return d.callU32(d.totResults)
}

// ResultPath copies result i's full path into the shared buffer and decodes
// it up to the NUL terminator. Invalid UTF-16 sequences decode to the
// replacement rune rather than failing the row.
func (d *dllSDK) ResultPath(i uint32) string {
	d.resultPath.Call(uintptr(i), uintptr(unsafe.Pointer(&d.buf[0])), uintptr(len(d.buf)))
	return windows.UTF16ToString(d.buf)
}

func (d *dllSDK) ResultAttributes(i uint32) uint32 {
	r, _, _ := d.resultAttributes.Call(uintptr(i))
	return uint32(r)
}

func (d *dllSDK) LastError() uint32 {
	return d.callU32(d.lastError)
}

func (d *dllSDK) IsDBLoaded() bool {
	return d.callU32(d.isDBLoaded) != 0
}

func (d *dllSDK) Version() (major, minor, revision, build uint32) {
	return d.callU32(d.majorVersion), d.callU32(d.minorVersion),
		d.callU32(d.revision), d.callU32(d.buildNumber)
}

func (d *dllSDK) callU32(p *windows.Proc) uint32 {
	r, _, _ := p.Call()
	return uint32(r)
}

func boolArg(on bool) uintptr {
	if on {
		return 1
	}
	return 0
}
