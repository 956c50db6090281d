package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jingkaihe/skillsync/pkg/presenter"
	"github.com/jingkaihe/skillsync/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Long:  `List all discovered skills with their names, directories, and descriptions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		listSkillsCmd(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkillsCmd(cmd *cobra.Command) {
	discovery, err := skills.NewDiscovery(
		skills.WithRoot(viper.GetString("root")),
		skills.WithSkillFile(viper.GetString("skill_file")),
	)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills(cmd.Context())
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills found")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAUTHOR\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t-----------")

	for _, skill := range allSkills {
		fmt.Fprintf(tw, "%s\t@%s\t%s\n", skill.Name, skill.Author, skills.Truncate(skill.Description, 60))
	}
	tw.Flush()
}
