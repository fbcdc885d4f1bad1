//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depcheck/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ComparisonResultBuilder helps create test comparison results with a fluent interface.
type ComparisonResultBuilder struct {
	*testkit.BaseBuilder
	name            string
	declaredVersion string
	latestVersion   string
	classification  entities.Classification
}

// NewComparisonResultBuilder creates a new comparison result builder with sensible defaults.
func NewComparisonResultBuilder() *ComparisonResultBuilder {
	return &ComparisonResultBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "test-package",
		declaredVersion: "1.0.0",
		latestVersion:   "1.0.0",
		classification:  entities.ClassificationMatch,
	}
}

// WithName sets the package name.
func (b *ComparisonResultBuilder) WithName(name string) *ComparisonResultBuilder {
	b.name = name
	return b
}

// WithDeclaredVersion sets the declared version.
func (b *ComparisonResultBuilder) WithDeclaredVersion(version string) *ComparisonResultBuilder {
	b.declaredVersion = version
	return b
}

// WithLatestVersion sets the latest version.
func (b *ComparisonResultBuilder) WithLatestVersion(version string) *ComparisonResultBuilder {
	b.latestVersion = version
	return b
}

// WithClassification sets the classification.
func (b *ComparisonResultBuilder) WithClassification(
	classification entities.Classification,
) *ComparisonResultBuilder {
	b.classification = classification
	return b
}

// Build creates the comparison result (satisfies testkit.Builder interface).
func (b *ComparisonResultBuilder) Build() interface{} {
	return b.BuildComparisonResult()
}

// BuildComparisonResult creates the comparison result with a concrete return type.
func (b *ComparisonResultBuilder) BuildComparisonResult() entities.ComparisonResult {
	return entities.ComparisonResult{
		Name:            b.name,
		DeclaredVersion: b.declaredVersion,
		LatestVersion:   b.latestVersion,
		Classification:  b.classification,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ComparisonResultBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.declaredVersion = "1.0.0"
	b.latestVersion = "1.0.0"
	b.classification = entities.ClassificationMatch
	return b
}

// Clone creates a deep copy of the ComparisonResultBuilder.
func (b *ComparisonResultBuilder) Clone() testkit.Builder {
	return &ComparisonResultBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		declaredVersion: b.declaredVersion,
		latestVersion:   b.latestVersion,
		classification:  b.classification,
	}
}
