package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time via -ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the worksim version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "worksim %s\n", version)
		},
	}
}
