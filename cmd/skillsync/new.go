package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillsync/pkg/presenter"
	"github.com/jingkaihe/skillsync/pkg/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type NewSkillConfig struct {
	Description string
	Author      string
}

func NewNewSkillConfig() *NewSkillConfig {
	return &NewSkillConfig{
		Description: "",
		Author:      "",
	}
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new skill directory",
	Long: `Create a new skill directory under the skills root with a templated
SKILL.md so the frontmatter starts out well-formed.

Examples:
  skillsync new angular-forms
  skillsync new angular-forms --description "Reactive forms conventions" --author alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getNewSkillConfigFromFlags(cmd)

		skillPath, err := scaffold.Create(cmd.Context(), scaffold.Config{
			Root:        viper.GetString("root"),
			Name:        args[0],
			Description: config.Description,
			Author:      config.Author,
		})
		if err != nil {
			presenter.Error(err, "Failed to scaffold skill")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Created %s", skillPath))
		presenter.Info("Fill in the description and guidelines, then run 'skillsync sync'")
	},
}

func init() {
	defaults := NewNewSkillConfig()
	newCmd.Flags().StringP("description", "d", defaults.Description, "Skill description for the frontmatter")
	newCmd.Flags().StringP("author", "a", defaults.Author, "Author for the frontmatter metadata block")
	rootCmd.AddCommand(newCmd)
}

func getNewSkillConfigFromFlags(cmd *cobra.Command) *NewSkillConfig {
	config := NewNewSkillConfig()
	if description, err := cmd.Flags().GetString("description"); err == nil {
		config.Description = description
	}
	if author, err := cmd.Flags().GetString("author"); err == nil {
		config.Author = author
	}
	return config
}
