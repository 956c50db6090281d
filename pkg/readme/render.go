// Package readme renders the skill table and splices it into the target
// markdown document. Splicing preserves every byte outside the table so the
// surrounding document can evolve freely; when the designated section has
// drifted beyond recognition the splice degrades to a no-op rather than
// corrupting the document.
package readme

import (
	"path"
	"strings"

	"github.com/jingkaihe/skillsync/pkg/skills"
)

const (
	tableHeader    = "| Skill | Description | Author |"
	tableSeparator = "|-------|-------------|--------|"
	placeholderRow = "| Coming soon... | | |"

	defaultMaxDescription = 80
)

// RenderOptions controls table rendering
type RenderOptions struct {
	// LinkBase is the path prefix for skill links, e.g. "community"
	LinkBase string
	// MaxDescription is the description length limit in runes; zero means
	// the default of 80
	MaxDescription int
}

// RenderTable produces the markdown table for the given skills. Input order
// is preserved, so callers get deterministic output for free from the
// sorted discovery result. Zero skills render a single placeholder row
// instead of an empty table.
func RenderTable(skillList []*skills.Skill, opts RenderOptions) string {
	maxDescription := opts.MaxDescription
	if maxDescription <= 0 {
		maxDescription = defaultMaxDescription
	}

	var sb strings.Builder
	sb.WriteString(tableHeader)
	sb.WriteString("\n")
	sb.WriteString(tableSeparator)
	sb.WriteString("\n")

	if len(skillList) == 0 {
		sb.WriteString(placeholderRow)
		sb.WriteString("\n")
		return sb.String()
	}

	for _, skill := range skillList {
		link := path.Join(opts.LinkBase, skill.DirName)
		description := skills.Truncate(skill.Description, maxDescription)

		sb.WriteString("| [")
		sb.WriteString(escapeCell(skill.Name))
		sb.WriteString("](")
		sb.WriteString(link)
		sb.WriteString(") | ")
		sb.WriteString(escapeCell(description))
		sb.WriteString(" | @")
		sb.WriteString(escapeCell(skill.Author))
		sb.WriteString(" |\n")
	}

	return sb.String()
}

// escapeCell escapes pipes so cell content cannot break the table. Applied
// after truncation so the limit never cuts an escape sequence in half.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
