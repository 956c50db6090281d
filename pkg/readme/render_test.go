package readme

import (
	"strings"
	"testing"

	"github.com/jingkaihe/skillsync/pkg/skills"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	skillList := []*skills.Skill{
		{Name: "Alpha Skill", Description: "Does alpha things.", Author: "alice", DirName: "alpha"},
		{Name: "beta", Description: skills.FallbackDescription, Author: skills.FallbackAuthor, DirName: "beta"},
	}

	table := RenderTable(skillList, RenderOptions{LinkBase: "community"})

	expected := "| Skill | Description | Author |\n" +
		"|-------|-------------|--------|\n" +
		"| [Alpha Skill](community/alpha) | Does alpha things. | @alice |\n" +
		"| [beta](community/beta) | Community contributed skill | @Community |\n"
	assert.Equal(t, expected, table)
}

func TestRenderTableEmpty(t *testing.T) {
	table := RenderTable(nil, RenderOptions{LinkBase: "community"})

	expected := "| Skill | Description | Author |\n" +
		"|-------|-------------|--------|\n" +
		"| Coming soon... | | |\n"
	assert.Equal(t, expected, table)
}

func TestRenderTableDeterministic(t *testing.T) {
	skillList := []*skills.Skill{
		{Name: "A", Description: "a", Author: "x", DirName: "a"},
		{Name: "B", Description: "b", Author: "y", DirName: "b"},
	}

	first := RenderTable(skillList, RenderOptions{LinkBase: "community"})
	second := RenderTable(skillList, RenderOptions{LinkBase: "community"})
	assert.Equal(t, first, second)
}

func TestRenderTableTruncation(t *testing.T) {
	long := strings.Repeat("x", 100)
	skillList := []*skills.Skill{
		{Name: "Long", Description: long, Author: "alice", DirName: "long"},
	}

	table := RenderTable(skillList, RenderOptions{LinkBase: "community", MaxDescription: 80})

	rows := strings.Split(strings.TrimRight(table, "\n"), "\n")
	cells := strings.Split(rows[2], " | ")
	description := cells[1]

	assert.Len(t, []rune(description), 80)
	assert.True(t, strings.HasSuffix(description, "..."))
}

func TestRenderTableEscapesPipes(t *testing.T) {
	skillList := []*skills.Skill{
		{Name: "Pipes | Everywhere", Description: "a | b", Author: "eve|l", DirName: "pipes"},
	}

	table := RenderTable(skillList, RenderOptions{LinkBase: "community"})

	assert.Contains(t, table, `[Pipes \| Everywhere](community/pipes)`)
	assert.Contains(t, table, `a \| b`)
	assert.Contains(t, table, `@eve\|l`)
}

func TestRenderTableLinkBase(t *testing.T) {
	skillList := []*skills.Skill{
		{Name: "S", Description: "d", Author: "a", DirName: "s"},
	}

	t.Run("custom base", func(t *testing.T) {
		table := RenderTable(skillList, RenderOptions{LinkBase: "skills/community"})
		assert.Contains(t, table, "](skills/community/s)")
	})

	t.Run("empty base links directly to the directory", func(t *testing.T) {
		table := RenderTable(skillList, RenderOptions{})
		assert.Contains(t, table, "](s)")
	})
}
