package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// NormalizeVersion ensures a version has the 'v' prefix for semver compatibility.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// IsAheadOfIndex reports whether the declared version is strictly newer than
// the latest one the index knows about. A pin ahead of the index usually
// means a pre-release pin or a scraping artifact, so callers surface it as a
// warning. Versions that are not valid semver after normalization report
// false.
func IsAheadOfIndex(declared, latest string) bool {
	declaredNorm := NormalizeVersion(declared)
	latestNorm := NormalizeVersion(latest)

	if !semver.IsValid(declaredNorm) || !semver.IsValid(latestNorm) {
		return false
	}
	return semver.Compare(declaredNorm, latestNorm) > 0
}
