package controllers

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/infrastructure/repositories"
)

// ResolversController handles the "resolvers" subcommand.
type ResolversController struct {
	registry *repositories.IndexRegistry
}

// NewResolversController creates a new ResolversController.
func NewResolversController(registry *repositories.IndexRegistry) *ResolversController {
	return &ResolversController{registry: registry}
}

// GetBind returns the Cobra command metadata for the resolvers controller.
func (it *ResolversController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolvers",
		Short: "List the available index resolvers",
		Long: `List the resolvers that can answer which version of a package is the
latest, one per line. Select one with --resolver or the "resolver" key
in the settings file.`,
	}
}

// Execute prints the registered resolver names in stable order.
func (it *ResolversController) Execute(_ *cobra.Command, _ []string) error {
	names := it.registry.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
