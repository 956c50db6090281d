package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillsync/pkg/logger"
	"github.com/jingkaihe/skillsync/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "skillsync",
	Short: "Keep the community skills README in sync",
	Long: `skillsync scans a directory of community-submitted skills (one SKILL.md
per directory) and regenerates the skill table inside the README, leaving
everything around the table untouched.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if level, err := cmd.Flags().GetString("log-level"); err == nil {
			if err := logger.SetLogLevel(level); err != nil {
				presenter.Warning(fmt.Sprintf("Invalid log level '%s', using default", level))
			}
		}
		if format, err := cmd.Flags().GetString("log-format"); err == nil {
			logger.SetLogFormat(format)
		}
		if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLSYNC")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("skillsync-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("root", "community")
	viper.SetDefault("target", "README.md")
	viper.SetDefault("section", "## Skills")
	viper.SetDefault("skill_file", "SKILL.md")
	viper.SetDefault("max_description", 80)
}

func main() {
	rootCmd.PersistentFlags().String("root", "", "Skills root directory (overrides config)")
	rootCmd.PersistentFlags().String("target", "", "Target markdown document (overrides config)")
	rootCmd.PersistentFlags().String("section", "", "Section heading containing the skill table (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
	viper.BindPFlag("section", rootCmd.PersistentFlags().Lookup("section"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
