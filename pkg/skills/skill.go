// Package skills discovers community-submitted skills. Each skill is a
// directory containing a SKILL.md file with YAML frontmatter describing the
// skill's name, description, and author. Extraction never fails: every
// missing or malformed field degrades to a documented fallback so that a
// half-written contribution can never break the README pipeline.
package skills

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string // Display name from frontmatter, or the directory name
	Description string // One-line summary with any trigger clause stripped
	Author      string // Frontmatter author, git history, or "Community"
	DirName     string // Directory name under the community root
	Directory   string // Full path to the skill directory
}

const (
	// FallbackDescription is used when a skill document has no description
	FallbackDescription = "Community contributed skill"

	// FallbackAuthor is used when neither the frontmatter nor the git
	// history names a contributor
	FallbackAuthor = "Community"
)
