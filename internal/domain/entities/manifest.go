package entities

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseManifest reads requirement lines from r in order. Blank lines and
// "#" comments are skipped; the first malformed line aborts the whole read
// so a partial report never masquerades as a complete one.
func ParseManifest(r io.Reader) ([]Requirement, error) {
	var requirements []Requirement

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		requirement, parseErr := ParseRequirement(line)
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, parseErr)
		}
		requirements = append(requirements, requirement)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", scanErr)
	}

	return requirements, nil
}

// LoadManifest reads and parses the manifest file at path.
func LoadManifest(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file %q: %w", path, err)
	}

	requirements, parseErr := ParseManifest(strings.NewReader(string(data)))
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse manifest file %q: %w", path, parseErr)
	}

	return requirements, nil
}
