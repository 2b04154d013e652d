// Package version reports the build version of coalprint.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is stamped at build time:
//
//	go build -ldflags "-X github.com/rshade/coalprint/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via -ldflags.
var version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// IsRelease reports whether v is a semantic version without a prerelease tag.
// Development builds ("dev", commit hashes, "-rc" tags) are not releases.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}

// Format marks v as a development build unless it is a release.
func Format(v string) string {
	if IsRelease(v) {
		return v
	}
	return v + " (development build)"
}
