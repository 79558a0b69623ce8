package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates the top-level "worksim" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	root := &cobra.Command{
		Use:           "worksim",
		Short:         "Deterministic project-management dataset generator",
		Long: `Worksim generates a synthetic but internally consistent project-management
workspace: one organization with teams, users, projects, sections, tasks,
subtasks, comments, tags, attachments and custom fields, written to a
SQLite database. Runs are reproducible: the same seed and configuration
always produce the same dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func initConfig() {
	viper.SetEnvPrefix("WORKSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
