//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depcheck/internal/domain/commands"
	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depcheck/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/depcheck/test/infrastructure/repositorydoubles"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func registryWith(spy *doubles.SpyIndexRepository) *infraRepos.IndexRegistry {
	registry := infraRepos.NewIndexRegistry()
	registry.Register("spy", func(_ *entities.Settings) repositories.IndexRepository {
		return spy
	})
	return registry
}

func spySettings() *entities.Settings {
	return &entities.Settings{
		Resolver:            "spy",
		IndexURL:            "https://example.invalid",
		Workers:             4,
		QueryTimeoutSeconds: 30,
	}
}

func TestCompareCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should classify every requirement against the index latest", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, `alpha==1.0.0
beta==2.3.4

# dev dependencies
gamma @ file:///wheels/gamma-2.0.1-py3-none-any.whl
delta==1.2.3
`)
		spy := &doubles.SpyIndexRepository{
			Versions: map[string]string{
				"alpha": "1.0.0",
				"beta":  "3.0.0",
				"gamma": "2.1.0",
				"delta": "1.2.4",
			},
		}
		cmd := commands.NewCompareCommand(registryWith(spy))

		// when
		report, err := cmd.Execute(context.Background(), spySettings(),
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.ComparisonResult{
			{Name: "alpha", DeclaredVersion: "1.0.0", LatestVersion: "1.0.0",
				Classification: entities.ClassificationMatch},
			{Name: "beta", DeclaredVersion: "2.3.4", LatestVersion: "3.0.0",
				Classification: entities.ClassificationMajor},
			{Name: "gamma", DeclaredVersion: "2.0.1", LatestVersion: "2.1.0",
				Classification: entities.ClassificationMinor},
			{Name: "delta", DeclaredVersion: "1.2.3", LatestVersion: "1.2.4",
				Classification: entities.ClassificationPatch},
		}, report.Rows())
	})

	t.Run("should preserve manifest order when lookups finish out of order", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "first==1.0.0\nsecond==1.0.0\nthird==1.0.0\nfourth==1.0.0\n")
		spy := &doubles.SpyIndexRepository{
			Versions: map[string]string{
				"first":  "1.0.0",
				"second": "1.0.0",
				"third":  "1.0.0",
				"fourth": "1.0.0",
			},
			Delays: map[string]time.Duration{
				"first": 50 * time.Millisecond,
				"third": 20 * time.Millisecond,
			},
		}
		cmd := commands.NewCompareCommand(registryWith(spy))

		// when
		report, err := cmd.Execute(context.Background(), spySettings(),
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.NoError(t, err)
		names := make([]string, 0, report.Len())
		for _, row := range report.Rows() {
			names = append(names, row.Name)
		}
		assert.Equal(t, []string{"first", "second", "third", "fourth"}, names)
		assert.ElementsMatch(t, []string{"first", "second", "third", "fourth"}, spy.RequestedNames())
	})

	t.Run("should degrade to n/a when a lookup fails", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "alpha==1.0.0\nbroken==2.0.0\n")
		spy := &doubles.SpyIndexRepository{
			Versions: map[string]string{"alpha": "1.0.0"},
			Errors:   map[string]error{"broken": errors.New("index unreachable")},
		}
		cmd := commands.NewCompareCommand(registryWith(spy))

		// when
		report, err := cmd.Execute(context.Background(), spySettings(),
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.NoError(t, err)
		require.Equal(t, 2, report.Len())
		assert.Equal(t, entities.ComparisonResult{
			Name:            "broken",
			DeclaredVersion: "2.0.0",
			LatestVersion:   entities.VersionUnknown,
			Classification:  entities.ClassificationNA,
		}, report.Rows()[1])
	})

	t.Run("should degrade to n/a when a lookup exceeds the query timeout", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "slow==1.0.0\n")
		spy := &doubles.SpyIndexRepository{
			Versions: map[string]string{"slow": "2.0.0"},
			Delays:   map[string]time.Duration{"slow": 3 * time.Second},
		}
		settings := spySettings()
		settings.QueryTimeoutSeconds = 1
		cmd := commands.NewCompareCommand(registryWith(spy))

		// when
		report, err := cmd.Execute(context.Background(), settings,
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.NoError(t, err)
		require.Equal(t, 1, report.Len())
		assert.Equal(t, entities.VersionUnknown, report.Rows()[0].LatestVersion)
		assert.Equal(t, entities.ClassificationNA, report.Rows()[0].Classification)
	})

	t.Run("should fail when the manifest cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewCompareCommand(registryWith(&doubles.SpyIndexRepository{}))

		// when
		report, err := cmd.Execute(context.Background(), spySettings(),
			commands.CompareOptions{ManifestPath: filepath.Join(t.TempDir(), "missing.txt")})

		// then
		require.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("should fail when the manifest has a malformed line", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "alpha==1.0.0\njust-a-name\n")
		spy := &doubles.SpyIndexRepository{Versions: map[string]string{"alpha": "1.0.0"}}
		cmd := commands.NewCompareCommand(registryWith(spy))

		// when
		report, err := cmd.Execute(context.Background(), spySettings(),
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.Error(t, err)
		var malformedErr *entities.MalformedRequirementError
		assert.ErrorAs(t, err, &malformedErr)
		assert.Contains(t, err.Error(), "line 2")
		assert.Nil(t, report)
		assert.Empty(t, spy.RequestedNames())
	})

	t.Run("should fail for an unknown resolver", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "alpha==1.0.0\n")
		settings := spySettings()
		settings.Resolver = "npm"
		cmd := commands.NewCompareCommand(registryWith(&doubles.SpyIndexRepository{}))

		// when
		report, err := cmd.Execute(context.Background(), settings,
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, infraRepos.ErrUnknownResolver)
		assert.Nil(t, report)
	})

	t.Run("should stop when the context is already cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := writeManifest(t, "alpha==1.0.0\n")
		spy := &doubles.SpyIndexRepository{Versions: map[string]string{"alpha": "1.0.0"}}
		cmd := commands.NewCompareCommand(registryWith(spy))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		report, err := cmd.Execute(ctx, spySettings(),
			commands.CompareOptions{ManifestPath: manifest})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, report)
	})
}
