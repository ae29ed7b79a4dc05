//go:build !windows

package everything

import (
	"fmt"
	"runtime"
)

// loadSDK always fails off Windows: the Everything SDK ships as a Windows
// DLL only. Everything above the SDK interface still builds and tests on
// any platform; consumers just see the standard engine-unavailable error.
func loadSDK(string) (SDK, error) {
	return nil, fmt.Errorf("Everything64.dll is only available on windows (running on %s)", runtime.GOOS)
}
