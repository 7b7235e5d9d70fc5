// Package version provides version information for the application.
//
// The version is resolved once per process, preferring a build-time override
// and falling back to the version recorded in the embedded Go build info.
package version
