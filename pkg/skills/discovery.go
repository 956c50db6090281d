package skills

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jingkaihe/skillsync/pkg/logger"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const (
	defaultSkillFileName = "SKILL.md"
	defaultRoot          = "community"
)

// TruncationMarker is appended to descriptions cut at the length limit
const TruncationMarker = "..."

// Discovery handles skill discovery from a community root directory
type Discovery struct {
	root      string
	skillFile string
	authors   AuthorLookup
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoot sets the community root directory to scan
func WithRoot(root string) Option {
	return func(d *Discovery) error {
		if root == "" {
			return errors.New("root directory must not be empty")
		}
		d.root = root
		return nil
	}
}

// WithSkillFile overrides the skill document filename convention
func WithSkillFile(name string) Option {
	return func(d *Discovery) error {
		if name == "" {
			return errors.New("skill file name must not be empty")
		}
		d.skillFile = name
		return nil
	}
}

// WithAuthorLookup sets the fallback author lookup capability
func WithAuthorLookup(lookup AuthorLookup) Option {
	return func(d *Discovery) error {
		d.authors = lookup
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance. Without options it
// scans the community directory relative to the working directory.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{
		root:      defaultRoot,
		skillFile: defaultSkillFileName,
		authors:   GitAuthorLookup{},
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DiscoverSkills scans the root directory and returns one Skill per
// subdirectory, ordered by directory name ascending. A subdirectory without
// a skill document still yields a Skill built from fallbacks. Unreadable
// documents are skipped with a warning so one broken contribution cannot
// block the rest of the run.
func (d *Discovery) DiscoverSkills(ctx context.Context) ([]*Skill, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skills root %s", d.root)
	}

	var skills []*Skill
	for _, entry := range entries {
		entryPath := filepath.Join(d.root, entry.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		skill, err := d.loadSkill(ctx, entryPath, entry.Name())
		if err != nil {
			logger.G(ctx).WithError(err).WithField("dir", entry.Name()).Warn("Skipping unreadable skill document")
			continue
		}

		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].DirName < skills[j].DirName
	})

	return skills, nil
}

// GetSkill returns a specific skill by directory name
func (d *Discovery) GetSkill(ctx context.Context, dirName string) (*Skill, error) {
	skills, err := d.DiscoverSkills(ctx)
	if err != nil {
		return nil, err
	}

	for _, skill := range skills {
		if skill.DirName == dirName {
			return skill, nil
		}
	}

	return nil, errors.Errorf("skill '%s' not found under %s", dirName, d.root)
}

// loadSkill builds a Skill for a single directory. Missing documents and
// missing frontmatter fields fall back per field; the only error path is a
// read failure on a document that exists.
func (d *Discovery) loadSkill(ctx context.Context, dir, dirName string) (*Skill, error) {
	skill := &Skill{
		Name:        dirName,
		Description: FallbackDescription,
		DirName:     dirName,
		Directory:   dir,
	}

	skillPath := filepath.Join(dir, d.skillFile)
	content, err := os.ReadFile(skillPath)
	if err != nil {
		if os.IsNotExist(err) {
			skill.Author = d.resolveAuthor(ctx, "", dir)
			return skill, nil
		}
		return nil, errors.Wrapf(err, "failed to read skill file %s", skillPath)
	}

	metaData := parseFrontmatter(ctx, content)

	if name, ok := metaData["name"].(string); ok && strings.TrimSpace(name) != "" {
		skill.Name = strings.TrimSpace(name)
	}

	if description, ok := metaData["description"].(string); ok {
		if cleaned := CleanDescription(description); cleaned != "" {
			skill.Description = cleaned
		}
	}

	skill.Author = d.resolveAuthor(ctx, nestedAuthor(metaData), skillPath)

	return skill, nil
}

// resolveAuthor applies the author fallback chain: frontmatter value, then
// version-control history, then the fixed placeholder.
func (d *Discovery) resolveAuthor(ctx context.Context, fromMeta, path string) string {
	if fromMeta != "" {
		return fromMeta
	}
	if d.authors != nil {
		if author, ok := d.authors.Lookup(ctx, path); ok {
			return author
		}
	}
	return FallbackAuthor
}

// parseFrontmatter extracts the YAML frontmatter from a skill document.
// Malformed or absent frontmatter yields an empty map, never an error.
func parseFrontmatter(ctx context.Context, content []byte) map[string]interface{} {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		logger.G(ctx).WithError(err).Debug("Failed to parse skill frontmatter")
		return map[string]interface{}{}
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return map[string]interface{}{}
	}

	return metaData
}

// nestedAuthor digs the author out of the frontmatter's metadata sub-block.
// The YAML decoder may hand back either map flavour depending on nesting.
func nestedAuthor(metaData map[string]interface{}) string {
	switch mm := metaData["metadata"].(type) {
	case map[string]interface{}:
		if author, ok := mm["author"].(string); ok {
			return strings.TrimSpace(author)
		}
	case map[interface{}]interface{}:
		if author, ok := mm["author"].(string); ok {
			return strings.TrimSpace(author)
		}
	}
	return ""
}

// CleanDescription collapses all whitespace runs to single spaces (folded
// YAML blocks arrive with embedded newlines) and strips a trailing
// "Trigger: ..." clause, which marks the trigger condition contributors
// embed for the assistant but which must not appear in the README summary.
func CleanDescription(description string) string {
	description = strings.Join(strings.Fields(description), " ")

	if idx := strings.Index(description, "Trigger:"); idx != -1 {
		description = strings.TrimSpace(description[:idx])
	}

	return description
}

// Truncate cuts a description to at most max runes, ending with the
// truncation marker when cut. Descriptions at or under the limit are
// returned verbatim. Counting runes rather than bytes keeps multi-byte
// sequences intact.
func Truncate(description string, max int) string {
	if max <= 0 || utf8.RuneCountInString(description) <= max {
		return description
	}

	runes := []rune(description)
	keep := max - len(TruncationMarker)
	if keep < 0 {
		keep = 0
	}

	return string(runes[:keep]) + TruncationMarker
}
