package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate lints every skill directory under the root and reports all
// problems at once. Unlike discovery, which papers over missing metadata
// with fallbacks, validation is the strict view used to gate contributions:
// a skill without a document, name, description, or author is an error.
func (d *Discovery) Validate(ctx context.Context) error {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return errors.Wrapf(err, "failed to read skills root %s", d.root)
	}

	var result *multierror.Error

	for _, entry := range entries {
		entryPath := filepath.Join(d.root, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		result = multierror.Append(result, d.validateSkillDir(ctx, entryPath, entry.Name()))
	}

	return result.ErrorOrNil()
}

func (d *Discovery) validateSkillDir(ctx context.Context, dir, dirName string) error {
	skillPath := filepath.Join(dir, d.skillFile)

	content, err := os.ReadFile(skillPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("%s: missing %s", dirName, d.skillFile)
		}
		return errors.Wrapf(err, "%s: failed to read %s", dirName, d.skillFile)
	}

	metaData := parseFrontmatter(ctx, content)

	var result *multierror.Error

	if name, ok := metaData["name"].(string); !ok || name == "" {
		result = multierror.Append(result, errors.Errorf("%s: frontmatter is missing 'name'", dirName))
	}
	if description, ok := metaData["description"].(string); !ok || CleanDescription(description) == "" {
		result = multierror.Append(result, errors.Errorf("%s: frontmatter is missing 'description'", dirName))
	}
	if nestedAuthor(metaData) == "" {
		result = multierror.Append(result, errors.Errorf("%s: frontmatter is missing 'metadata.author'", dirName))
	}

	return result.ErrorOrNil()
}
