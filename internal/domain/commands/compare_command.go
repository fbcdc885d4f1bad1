package commands

import (
	"context"
	"sync/atomic"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depcheck/internal/infrastructure/repositories"
)

// Compare is the interface for the compare command.
type Compare interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts CompareOptions,
	) (*entities.Report, error)
}

// CompareOptions holds runtime options for a comparison run.
type CompareOptions struct {
	ManifestPath string
}

// CompareCommand reads a requirements manifest, resolves the latest version
// of every package through the configured index resolver, and produces a
// report ordered like the manifest.
type CompareCommand struct {
	indexRegistry *infraRepos.IndexRegistry
}

// NewCompareCommand creates a new CompareCommand with the given resolver registry.
func NewCompareCommand(indexRegistry *infraRepos.IndexRegistry) *CompareCommand {
	return &CompareCommand{
		indexRegistry: indexRegistry,
	}
}

// Execute runs the comparison pass. Lookups fan out across a bounded worker
// pool; each result lands at its requirement's manifest index, so the report
// order never depends on completion order. A failed or timed-out lookup
// becomes an n/a row instead of failing the run.
func (it *CompareCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CompareOptions,
) (*entities.Report, error) {
	requirements, loadErr := entities.LoadManifest(opts.ManifestPath)
	if loadErr != nil {
		return nil, loadErr
	}

	resolver, resolverErr := it.indexRegistry.Get(settings.Resolver, settings)
	if resolverErr != nil {
		return nil, resolverErr
	}

	total := len(requirements)
	logger.Infof("Comparing %d packages from %s to latest on the %q index",
		total, opts.ManifestPath, resolver.Name())

	rows := make([]entities.ComparisonResult, total)
	var completed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(settings.Workers)

	for i, requirement := range requirements {
		group.Go(func() error {
			rows[i] = compareOne(groupCtx, resolver, requirement, settings.QueryTimeout())
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Infof("(%d/%d) Checked %s", completed.Add(1), total, requirement.Name)
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}

	return entities.NewReport(rows), nil
}

// compareOne resolves and classifies a single requirement under a per-query
// timeout. Resolution failure is non-fatal and degrades to the unknown
// sentinel.
func compareOne(
	ctx context.Context,
	resolver repositories.IndexRepository,
	requirement entities.Requirement,
	timeout time.Duration,
) entities.ComparisonResult {
	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	latest, err := resolver.LatestVersion(queryCtx, requirement.Name)
	if err != nil {
		logger.Warnf("Failed to resolve latest version for %q: %v", requirement.Name, err)
		latest = entities.VersionUnknown
	} else if entities.IsAheadOfIndex(requirement.DeclaredVersion, latest) {
		logger.Warnf("%q pins %s, which is ahead of the index's latest %s",
			requirement.Name, requirement.DeclaredVersion, latest)
	}

	return entities.ComparisonResult{
		Name:            requirement.Name,
		DeclaredVersion: requirement.DeclaredVersion,
		LatestVersion:   latest,
		Classification:  entities.Classify(requirement.DeclaredVersion, latest),
	}
}
