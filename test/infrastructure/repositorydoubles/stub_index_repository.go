//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"
	"time"

	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// SpyIndexRepository implements repositories.IndexRepository as a configurable spy.
type SpyIndexRepository struct {
	// --- identity ---
	ResolverName string

	// --- LatestVersion ---
	Versions map[string]string
	Errors   map[string]error
	Delays   map[string]time.Duration

	mu        sync.Mutex
	requested []string
}

var _ repositories.IndexRepository = (*SpyIndexRepository)(nil)

func (r *SpyIndexRepository) Name() string {
	if r.ResolverName == "" {
		return "spy"
	}
	return r.ResolverName
}

func (r *SpyIndexRepository) LatestVersion(ctx context.Context, name string) (string, error) {
	r.mu.Lock()
	r.requested = append(r.requested, name)
	r.mu.Unlock()

	if delay, ok := r.Delays[name]; ok {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := r.Errors[name]; ok {
		return "", err
	}
	return r.Versions[name], nil
}

// RequestedNames returns the package names queried so far, in call order.
func (r *SpyIndexRepository) RequestedNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requested...)
}

// DummyIndexRepository is a no-op implementation of repositories.IndexRepository.
type DummyIndexRepository struct{}

var _ repositories.IndexRepository = (*DummyIndexRepository)(nil)

func (d *DummyIndexRepository) Name() string { return "dummy" }

func (d *DummyIndexRepository) LatestVersion(_ context.Context, _ string) (string, error) {
	return "", nil
}
