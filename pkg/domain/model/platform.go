package model

import (
	"runtime"

	"github.com/m-mizutani/goerr/v2"
)

// Platform identifies the host OS a release is packaged for. The values
// match the platform names the deploy endpoint expects.
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "win32"
)

// CurrentPlatform maps runtime.GOOS to a release platform. Running the
// publisher on any other OS is a configuration error, not a skip.
func CurrentPlatform() (Platform, error) {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin, nil
	case "windows":
		return PlatformWindows, nil
	default:
		return "", goerr.New("unsupported host platform", goerr.V("os", runtime.GOOS))
	}
}
