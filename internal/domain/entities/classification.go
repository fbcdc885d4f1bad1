package entities

import "strings"

// Classification is the semantic-version magnitude of the difference between
// a declared version and the latest one available on the index.
type Classification string

const (
	ClassificationMatch Classification = "match"
	ClassificationMajor Classification = "major"
	ClassificationMinor Classification = "minor"
	ClassificationPatch Classification = "patch"
	ClassificationNA    Classification = "n/a"
)

// VersionUnknown is the sentinel recorded when a version could not be
// resolved from the index or extracted from the manifest.
const VersionUnknown = "n/a"

// componentLabels maps the index of the first differing dot component to its
// magnitude: 0 is major, 1 is minor, 2 is patch.
var componentLabels = [...]Classification{
	ClassificationMajor,
	ClassificationMinor,
	ClassificationPatch,
}

// Classify compares a declared version against the latest available one.
//
// Either side being the unknown sentinel yields n/a, equal strings yield
// match, and otherwise the position of the first differing dot component
// decides the magnitude. Components are compared as opaque strings, so
// non-numeric segments still participate. Two deliberate n/a cases remain:
// versions whose compared prefix is equal but whose precision differs
// ("1.2" vs "1.2.0"), and differences appearing past the patch position
// ("1.2.3.4" vs "1.2.3.5").
func Classify(declared, latest string) Classification {
	if declared == VersionUnknown || latest == VersionUnknown {
		return ClassificationNA
	}
	if declared == latest {
		return ClassificationMatch
	}

	declaredParts := strings.Split(declared, ".")
	latestParts := strings.Split(latest, ".")
	limit := len(declaredParts)
	if len(latestParts) < limit {
		limit = len(latestParts)
	}

	for i := 0; i < limit; i++ {
		if declaredParts[i] == latestParts[i] {
			continue
		}
		if i < len(componentLabels) {
			return componentLabels[i]
		}
		return ClassificationNA
	}

	return ClassificationNA
}
