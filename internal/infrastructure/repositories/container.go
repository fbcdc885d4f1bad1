package repositories

import (
	pipRepo "github.com/rios0rios0/depcheck/internal/infrastructure/repositories/pip"
	pypiRepo "github.com/rios0rios0/depcheck/internal/infrastructure/repositories/pypi"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the resolver registry with all index resolver factories
	if err := container.Provide(func() *IndexRegistry {
		reg := NewIndexRegistry()
		reg.Register("pypi", pypiRepo.NewPyPIIndexRepository)
		reg.Register("pip", pipRepo.NewPipIndexRepository)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
