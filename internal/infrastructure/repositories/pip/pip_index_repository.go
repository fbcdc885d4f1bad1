package pip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

const resolverName = "pip"

// installArgs make pip resolve the newest release without touching the
// environment: an eager dry-run upgrade prints the candidate it would
// install.
var installArgs = []string{
	"install",
	"--upgrade", "--upgrade-strategy", "eager",
	"--dry-run", "--no-cache-dir", "--force-reinstall",
}

// PipIndexRepository implements repositories.IndexRepository by scraping the
// output of a pip dry-run upgrade. It inherits pip's own index and proxy
// configuration, which makes it useful behind restrictive mirrors, at the
// cost of depending on a local pip installation.
type PipIndexRepository struct {
	binary string
}

// NewPipIndexRepository creates a resolver that shells out to pip. An empty
// pip binary in the settings means the binary is discovered on first use.
func NewPipIndexRepository(settings *entities.Settings) repositories.IndexRepository {
	return &PipIndexRepository{binary: settings.PipBinary}
}

func (r *PipIndexRepository) Name() string { return resolverName }

// LatestVersion runs the dry-run install and extracts the version pip would
// install for the package.
func (r *PipIndexRepository) LatestVersion(ctx context.Context, name string) (string, error) {
	binary := r.binary
	if binary == "" {
		found, findErr := findPipBinary()
		if findErr != nil {
			return "", findErr
		}
		binary = found
	}

	args := make([]string, 0, len(installArgs)+1)
	args = append(args, installArgs...)
	args = append(args, name)

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pip dry-run failed for %q: %w", name, err)
	}

	logger.Debugf("[pip] Dry-run for %q produced %d bytes of output", name, len(output))
	return parseLatestFromOutput(name, string(output))
}

// parseLatestFromOutput extracts the candidate version from pip's dry-run
// output using the same pattern the manifest parser uses for artifacts.
func parseLatestFromOutput(name, output string) (string, error) {
	if match := entities.VersionPattern(name).FindStringSubmatch(output); match != nil {
		return match[1], nil
	}
	return "", fmt.Errorf("no version found in pip output for %q", name)
}

// findPipBinary locates a pip executable on PATH or in common locations.
func findPipBinary() (string, error) {
	// Try pip first, then pip3
	for _, name := range []string{"pip", "pip3"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/bin/pip3",
		"/usr/local/bin/pip3",
		"/usr/bin/pip",
		"/usr/local/bin/pip",
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		commonPaths = append(commonPaths,
			filepath.Join(home, ".local", "bin", "pip3"),
			filepath.Join(home, ".local", "bin", "pip"),
		)
	}

	for _, p := range commonPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return p, nil
		}
	}

	return "", errors.New("pip binary not found in PATH or common locations")
}
