package entities

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	pinSeparator = "=="
	refSeparator = " @ "
)

// MalformedRequirementError reports a manifest line that matches none of the
// supported requirement shapes.
type MalformedRequirementError struct {
	Line string
}

func (e *MalformedRequirementError) Error() string {
	return fmt.Sprintf("malformed requirement line %q: expected %q or %q separator",
		e.Line, pinSeparator, refSeparator)
}

// Requirement is one parsed manifest line: a package name and the version
// (or best-effort identifier) declared for it.
type Requirement struct {
	Name            string
	DeclaredVersion string
}

// ParseRequirement parses a single manifest line. Two shapes are supported:
// "name==version" pins a version verbatim, and "name @ reference" points at
// a file path or URL. References carry their version inside the artifact
// name when it matches "<name>-<major>.<minor>.<patch>"; otherwise the
// trailing path segment of the reference stands in for the version.
func ParseRequirement(line string) (Requirement, error) {
	if strings.Contains(line, pinSeparator) {
		fields := strings.SplitN(line, pinSeparator, 2)
		if strings.TrimSpace(fields[0]) == "" {
			return Requirement{}, &MalformedRequirementError{Line: line}
		}
		return Requirement{Name: fields[0], DeclaredVersion: fields[1]}, nil
	}

	if strings.Contains(line, refSeparator) {
		fields := strings.SplitN(line, refSeparator, 2)
		if strings.TrimSpace(fields[0]) == "" {
			return Requirement{}, &MalformedRequirementError{Line: line}
		}
		return Requirement{
			Name:            fields[0],
			DeclaredVersion: referenceVersion(fields[0], fields[1]),
		}, nil
	}

	return Requirement{}, &MalformedRequirementError{Line: line}
}

// referenceVersion extracts the declared version from a file or URL
// reference. The trailing-segment fallback is a deliberate branch: when no
// version is embedded in the artifact name, the last path segment is still a
// usable identifier for the report.
func referenceVersion(name, reference string) string {
	if match := VersionPattern(name).FindStringSubmatch(reference); match != nil {
		return match[1]
	}
	segments := strings.Split(reference, "/")
	return segments[len(segments)-1]
}

// VersionPattern builds the case-insensitive pattern that locates
// "<name>-<major>.<minor>.<patch>" inside artifact names and installer
// output. Hyphens in the package name also match underscores because
// artifacts flip between the two spellings.
func VersionPattern(name string) *regexp.Regexp {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(parts, `[-_]`) + `-(\d+\.\d+\.\d+)`)
}
