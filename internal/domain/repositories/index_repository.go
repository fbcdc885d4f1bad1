package repositories

import (
	"context"
)

// IndexRepository abstracts a package-index lookup (PyPI JSON API, pip
// dry-run, etc.). Each implementation owns the full query cycle for one
// resolution strategy.
type IndexRepository interface {
	// Name returns the resolver identifier (e.g. "pypi", "pip").
	Name() string

	// LatestVersion returns the latest publicly available stable version of
	// the named package. Failures are returned as errors; callers decide how
	// to surface them.
	LatestVersion(ctx context.Context, name string) (string, error)
}
