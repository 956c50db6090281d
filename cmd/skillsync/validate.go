package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillsync/pkg/presenter"
	"github.com/jingkaihe/skillsync/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Lint all skill directories",
	Long: `Check every skill directory for a SKILL.md with complete frontmatter
(name, description, metadata.author). All problems are reported at once.

The sync command tolerates incomplete metadata via fallbacks; validate is
the strict view for gating contributions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		discovery, err := skills.NewDiscovery(
			skills.WithRoot(viper.GetString("root")),
			skills.WithSkillFile(viper.GetString("skill_file")),
		)
		if err != nil {
			presenter.Error(err, "Failed to initialize skill discovery")
			os.Exit(1)
		}

		if err := discovery.Validate(cmd.Context()); err != nil {
			presenter.Error(err, "Validation failed")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("All skills under %s are valid", viper.GetString("root")))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
