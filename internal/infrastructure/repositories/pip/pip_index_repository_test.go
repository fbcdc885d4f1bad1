//go:build unit

package pip_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/infrastructure/repositories/pip"
)

// fakePip writes an executable shell script that stands in for the pip binary.
func fakePip(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pip")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o700))
	return path
}

func pipSettings(binary string) *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Resolver = "pip"
	settings.PipBinary = binary
	return settings
}

func TestPipIndexRepositoryLatestVersion(t *testing.T) {
	t.Parallel()

	t.Run("should extract the version pip would install", func(t *testing.T) {
		t.Parallel()

		// given
		binary := fakePip(t, `echo "Collecting requests"
echo "Would install requests-2.32.3"`)
		resolver := pip.NewPipIndexRepository(pipSettings(binary))

		// when
		latest, err := resolver.LatestVersion(context.Background(), "requests")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.32.3", latest)
	})

	t.Run("should ignore stderr noise", func(t *testing.T) {
		t.Parallel()

		// given
		binary := fakePip(t, `echo "WARNING: requests-9.9.9 cached" >&2
echo "Would install requests-2.32.3"`)
		resolver := pip.NewPipIndexRepository(pipSettings(binary))

		// when
		latest, err := resolver.LatestVersion(context.Background(), "requests")

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.32.3", latest)
	})

	t.Run("should fail when pip exits non-zero", func(t *testing.T) {
		t.Parallel()

		// given
		binary := fakePip(t, `echo "ERROR: No matching distribution" >&2
exit 1`)
		resolver := pip.NewPipIndexRepository(pipSettings(binary))

		// when
		latest, err := resolver.LatestVersion(context.Background(), "no-such-package")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pip dry-run failed")
		assert.Empty(t, latest)
	})

	t.Run("should fail when the output carries no version", func(t *testing.T) {
		t.Parallel()

		// given
		binary := fakePip(t, `echo "Requirement already satisfied"`)
		resolver := pip.NewPipIndexRepository(pipSettings(binary))

		// when
		latest, err := resolver.LatestVersion(context.Background(), "requests")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no version found")
		assert.Empty(t, latest)
	})
}

func TestParseLatestFromOutput(t *testing.T) {
	t.Parallel()

	t.Run("should find the version in dry-run output", func(t *testing.T) {
		t.Parallel()

		// given
		output := `Collecting requests
  Downloading requests-2.32.3-py3-none-any.whl.metadata (4.6 kB)
Would install certifi-2024.7.4 requests-2.32.3`

		// when
		version, err := pip.ParseLatestFromOutput("requests", output)

		// then
		require.NoError(t, err)
		assert.Equal(t, "2.32.3", version)
	})

	t.Run("should match across hyphen and underscore spellings", func(t *testing.T) {
		t.Parallel()

		// given
		output := "Would install typing_extensions-4.12.2"

		// when
		version, err := pip.ParseLatestFromOutput("typing-extensions", output)

		// then
		require.NoError(t, err)
		assert.Equal(t, "4.12.2", version)
	})

	t.Run("should match case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		output := "Would install Django-5.0.6"

		// when
		version, err := pip.ParseLatestFromOutput("django", output)

		// then
		require.NoError(t, err)
		assert.Equal(t, "5.0.6", version)
	})

	t.Run("should fail when no version is present", func(t *testing.T) {
		t.Parallel()

		// given
		output := "Requirement already satisfied: requests"

		// when
		version, err := pip.ParseLatestFromOutput("requests", output)

		// then
		require.Error(t, err)
		assert.Empty(t, version)
	})
}

func TestFindPipBinary(t *testing.T) {
	t.Parallel()

	// The result depends on the host, so only the contract is asserted.
	path, err := pip.FindPipBinary()
	if err != nil {
		assert.Contains(t, err.Error(), "pip binary not found")
		return
	}
	assert.NotEmpty(t, path)
}

func TestPipIndexRepositoryName(t *testing.T) {
	t.Parallel()

	// given
	resolver := pip.NewPipIndexRepository(entities.DefaultSettings())

	// when
	name := resolver.Name()

	// then
	assert.Equal(t, "pip", name)
}
