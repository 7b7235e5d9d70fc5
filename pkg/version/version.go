package version

import (
	"runtime/debug"
	"sync"
)

// Fallback is the sentinel used when no version metadata is available, e.g.
// when running from raw source without an installed build.
const Fallback = "0.0.0"

const modulePath = "github.com/macropower/greeter"

// Version can be set at build time:
//
//	-ldflags="-X github.com/macropower/greeter/pkg/version.Version=1.2.3"
//
// It takes precedence over the version recorded in build info.
var Version = ""

var get = sync.OnceValue(resolve)

// Get returns the resolved version string. Resolution happens on the first
// call and the result is cached for the remainder of the process.
func Get() string {
	return get()
}

// resolve looks up the version recorded for this module, checking the
// build-time override first, then the embedded build info. It never fails;
// when no metadata can be found it returns [Fallback].
func resolve() string {
	if Version != "" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Fallback
	}

	if info.Main.Path == modulePath {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}

		return Fallback
	}

	// Used as a library, so look ourselves up in the consumer's dependencies.
	for _, dep := range info.Deps {
		if dep.Path == modulePath && dep.Version != "" {
			return dep.Version
		}
	}

	return Fallback
}
