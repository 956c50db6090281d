package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillsync/pkg/presenter"
	"github.com/jingkaihe/skillsync/pkg/readme"
	"github.com/jingkaihe/skillsync/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type SyncConfig struct {
	Root           string
	Target         string
	Section        string
	SkillFile      string
	LinkBase       string
	MaxDescription int
	Check          bool
	Strict         bool
}

func NewSyncConfig() *SyncConfig {
	config := &SyncConfig{
		Root:           viper.GetString("root"),
		Target:         viper.GetString("target"),
		Section:        viper.GetString("section"),
		SkillFile:      viper.GetString("skill_file"),
		LinkBase:       viper.GetString("link_base"),
		MaxDescription: viper.GetInt("max_description"),
	}
	if config.LinkBase == "" {
		config.LinkBase = config.Root
	}
	return config
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate the skill table in the README",
	Long: `Scan the skills root directory, extract metadata from each SKILL.md, and
splice the regenerated table into the target document.

The table replaces only the existing table under the configured section
heading; every other byte of the document is preserved. If the section or
table header cannot be found the document is left unmodified and a warning
is printed (use --strict to turn that into a failure for CI).

Examples:
  skillsync sync
  skillsync sync --check
  skillsync sync --root community --target README.md --strict`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getSyncConfigFromFlags(cmd)
		syncReadme(cmd, config)
	},
}

func init() {
	syncCmd.Flags().Bool("check", false, "Print a diff and exit 1 if the target is out of date, without writing")
	syncCmd.Flags().Bool("strict", false, "Exit 1 when the section or table header is not found")
	rootCmd.AddCommand(syncCmd)
}

func getSyncConfigFromFlags(cmd *cobra.Command) *SyncConfig {
	config := NewSyncConfig()
	if check, err := cmd.Flags().GetBool("check"); err == nil {
		config.Check = check
	}
	if strict, err := cmd.Flags().GetBool("strict"); err == nil {
		config.Strict = strict
	}
	return config
}

func syncReadme(cmd *cobra.Command, config *SyncConfig) {
	ctx := cmd.Context()

	discovery, err := skills.NewDiscovery(
		skills.WithRoot(config.Root),
		skills.WithSkillFile(config.SkillFile),
	)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills(ctx)
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	table := readme.RenderTable(allSkills, readme.RenderOptions{
		LinkBase:       config.LinkBase,
		MaxDescription: config.MaxDescription,
	})

	if config.Check {
		original, err := os.ReadFile(config.Target)
		if err != nil {
			presenter.Error(err, "Failed to read target document")
			os.Exit(1)
		}

		updated, found := readme.Splice(string(original), config.Section, table)
		if !found {
			warnSectionNotFound(config)
			return
		}

		if updated == string(original) {
			presenter.Success(fmt.Sprintf("%s is up to date", config.Target))
			return
		}

		fmt.Print(readme.Diff(config.Target, string(original), updated))
		os.Exit(1)
	}

	result, err := readme.Update(ctx, readme.UpdateConfig{
		TargetPath: config.Target,
		Section:    config.Section,
		Table:      table,
	})
	if err != nil {
		presenter.Error(err, "Failed to update target document")
		os.Exit(1)
	}

	if !result.Found {
		warnSectionNotFound(config)
		return
	}

	if !result.Changed {
		presenter.Info(fmt.Sprintf("%s already up to date (%d skills)", config.Target, len(allSkills)))
		return
	}

	presenter.Success(fmt.Sprintf("Updated %s with %d skill(s)", config.Target, len(allSkills)))
}

func warnSectionNotFound(config *SyncConfig) {
	presenter.Warning(fmt.Sprintf("Section '%s' with a skill table not found in %s, document left unmodified", config.Section, config.Target))
	if config.Strict {
		os.Exit(1)
	}
}
