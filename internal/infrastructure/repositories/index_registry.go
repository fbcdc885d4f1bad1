package repositories

import (
	"errors"
	"fmt"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depcheck/internal/domain/repositories"
)

// ErrUnknownResolver is returned when no resolver is registered under the
// requested name.
var ErrUnknownResolver = errors.New("unknown resolver")

// IndexFactory is a constructor function that creates an IndexRepository
// configured from runtime settings.
type IndexFactory func(settings *entities.Settings) domainRepos.IndexRepository

// IndexRegistry manages all registered index resolver implementations.
type IndexRegistry struct {
	resolvers map[string]IndexFactory
}

// NewIndexRegistry creates an empty resolver registry.
func NewIndexRegistry() *IndexRegistry {
	return &IndexRegistry{
		resolvers: make(map[string]IndexFactory),
	}
}

// Register adds a resolver factory under the given name (e.g. "pypi").
func (r *IndexRegistry) Register(name string, factory IndexFactory) {
	r.resolvers[name] = factory
}

// Get returns a configured resolver instance for the given name.
func (r *IndexRegistry) Get(
	name string,
	settings *entities.Settings,
) (domainRepos.IndexRepository, error) {
	factory, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResolver, name)
	}
	return factory(settings), nil
}

// Names returns the list of registered resolver names.
func (r *IndexRegistry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	return names
}
