package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/domain/repositories"
)

const resolverName = "pypi"

// packageDocument mirrors the fields of the PyPI JSON API response that the
// resolver consumes.
type packageDocument struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	Releases map[string][]releaseFile `json:"releases"`
}

// releaseFile is one uploaded artifact of a release.
type releaseFile struct {
	Yanked bool `json:"yanked"`
}

// PyPIIndexRepository implements repositories.IndexRepository against the
// PyPI JSON API. It asks the index directly instead of shelling out to an
// installer, so results do not depend on the local environment.
type PyPIIndexRepository struct {
	baseURL string
	client  *http.Client
}

// NewPyPIIndexRepository creates a resolver that queries the configured
// index URL.
func NewPyPIIndexRepository(settings *entities.Settings) repositories.IndexRepository {
	return &PyPIIndexRepository{
		baseURL: strings.TrimSuffix(settings.IndexURL, "/"),
		client:  &http.Client{Timeout: settings.QueryTimeout()},
	}
}

func (r *PyPIIndexRepository) Name() string { return resolverName }

// LatestVersion fetches the package document and picks the newest stable
// release, falling back to the index's own headline version when no release
// key parses as semver.
func (r *PyPIIndexRepository) LatestVersion(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/pypi/%s/json", r.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query index for %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code for %q: %d", name, resp.StatusCode)
	}

	var document packageDocument
	if decodeErr := json.NewDecoder(resp.Body).Decode(&document); decodeErr != nil {
		return "", fmt.Errorf("failed to parse index response for %q: %w", name, decodeErr)
	}

	if version := pickLatestStable(document.Releases); version != "" {
		return version, nil
	}
	if document.Info.Version != "" {
		logger.Debugf("[pypi] No parseable stable release for %q, using headline version", name)
		return document.Info.Version, nil
	}

	return "", fmt.Errorf("no usable version in index response for %q", name)
}

// pickLatestStable returns the highest installable non-prerelease version
// among the release keys, keeping the index's own spelling of the version.
// Returns "" when no key parses as semver.
func pickLatestStable(releases map[string][]releaseFile) string {
	var latest *semver.Version
	var raw string

	for key, files := range releases {
		if !installable(files) {
			continue
		}
		version, parseErr := semver.NewVersion(key)
		if parseErr != nil || version.Prerelease() != "" {
			continue
		}
		if latest == nil || version.GreaterThan(latest) {
			latest = version
			raw = key
		}
	}

	return raw
}

// installable reports whether a release still has at least one artifact that
// has not been yanked.
func installable(files []releaseFile) bool {
	for _, file := range files {
		if !file.Yanked {
			return true
		}
	}
	return false
}
