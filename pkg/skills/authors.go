package skills

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jingkaihe/skillsync/pkg/logger"
)

// AuthorLookup resolves the contributor for a skill document path. It is an
// injected capability so the git dependency can be swapped out in tests.
type AuthorLookup interface {
	// Lookup returns the contributor identity for the given path and
	// whether one could be determined.
	Lookup(ctx context.Context, path string) (string, bool)
}

// GitAuthorLookup consults git history for the most recent contributor to a
// path. It is best-effort: any failure (no git binary, not a repository,
// untracked file) reports not-found rather than an error.
type GitAuthorLookup struct{}

// Lookup implements AuthorLookup via `git log -1 --format=%an -- <path>`
func (GitAuthorLookup) Lookup(ctx context.Context, path string) (string, bool) {
	if path == "" {
		return "", false
	}

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%an", "--", filepath.Base(path))
	cmd.Dir = filepath.Dir(path)

	output, err := cmd.Output()
	if err != nil {
		logger.G(ctx).WithError(err).WithField("path", path).Debug("git author lookup failed")
		return "", false
	}

	author := strings.TrimSpace(string(output))
	if author == "" {
		return "", false
	}

	return author, true
}

// StaticAuthorLookup maps paths to fixed authors, for tests
type StaticAuthorLookup map[string]string

// Lookup implements AuthorLookup from the static map
func (s StaticAuthorLookup) Lookup(_ context.Context, path string) (string, bool) {
	author, ok := s[path]
	return author, ok
}

// NoAuthorLookup never resolves an author, forcing the placeholder fallback
type NoAuthorLookup struct{}

// Lookup implements AuthorLookup by always reporting not-found
func (NoAuthorLookup) Lookup(context.Context, string) (string, bool) {
	return "", false
}
