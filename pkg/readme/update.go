package readme

import (
	"context"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/jingkaihe/skillsync/pkg/logger"
	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

// UpdateConfig describes a single splice-and-write operation. All paths are
// explicit; the package never reaches for ambient working-directory state.
type UpdateConfig struct {
	// TargetPath is the markdown document to update in place
	TargetPath string
	// Section is the heading text that opens the designated section
	Section string
	// Table is the rendered table fragment from RenderTable
	Table string
}

// UpdateResult reports what the update did
type UpdateResult struct {
	// Found is false when the section or table header was not located; the
	// document was left untouched
	Found bool
	// Changed is true when the document content actually changed
	Changed bool
}

// Update reads the target document, splices in the table, and atomically
// replaces the file when the content changed. An unchanged document is not
// rewritten, so repeated runs are byte-stable and cheap. A missing section
// is a warned no-op per the splice contract; only read/write failures are
// errors.
func Update(ctx context.Context, config UpdateConfig) (UpdateResult, error) {
	original, err := os.ReadFile(config.TargetPath)
	if err != nil {
		return UpdateResult{}, errors.Wrapf(err, "failed to read target document %s", config.TargetPath)
	}

	updated, found := Splice(string(original), config.Section, config.Table)
	if !found {
		logger.G(ctx).WithFields(map[string]interface{}{
			"target":  config.TargetPath,
			"section": config.Section,
		}).Warn("Section or table header not found, leaving document unmodified")
		return UpdateResult{Found: false}, nil
	}

	if updated == string(original) {
		return UpdateResult{Found: true, Changed: false}, nil
	}

	if err := atomic.WriteFile(config.TargetPath, strings.NewReader(updated)); err != nil {
		return UpdateResult{Found: true}, errors.Wrapf(err, "failed to write target document %s", config.TargetPath)
	}

	return UpdateResult{Found: true, Changed: true}, nil
}

// Diff returns a unified diff between the current and updated document
// content, for check mode output.
func Diff(targetPath, original, updated string) string {
	return udiff.Unified("a/"+targetPath, "b/"+targetPath, original, updated)
}
