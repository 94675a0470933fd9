package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/testprune/internal/exec"
)

// describeChangesCmd prints the packages owning the changed files.
var describeChangesCmd = &cobra.Command{
	Use:   "changes [changed-files...]",
	Short: "List the packages that own the changed files",
	Long:  "This command maps changed file paths to package names, honoring the configured packages directory and exclude patterns.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return e.NewDescribeChangesExec(&cliConfig).Execute(cmd.Context(), describeArgs(cmd, args))
	},
}

func init() {
	describeCmd.AddCommand(describeChangesCmd)
}
