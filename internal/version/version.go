// Package version carries the build version, set with
// -ldflags "-X readstats/internal/version.Version=...".
package version

var Version = "dev"
