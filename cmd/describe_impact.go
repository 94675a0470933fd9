package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/testprune/internal/exec"
	"github.com/cloudposse/testprune/pkg/schema"
)

type describeImpactExecCreator func(config *schema.Configuration) *e.DescribeImpactExec

// describeImpactCmd prints the impact set of the changed files.
var describeImpactCmd = &cobra.Command{
	Use:     "impact [changed-files...]",
	Short:   "List the packages that changed or depend on a changed package",
	Long:    "This command resolves the impact set of the changed files against the package dependency graph and prints it sorted by package name.",
	Example: "testprune describe impact --root-directory . --root-package App Packages/Core/Sources/Core/File.swift --format yaml",
	RunE:    getRunnableDescribeImpactCmd(e.NewDescribeImpactExec),
}

func getRunnableDescribeImpactCmd(newExec describeImpactExecCreator) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return newExec(&cliConfig).Execute(cmd.Context(), describeArgs(cmd, args))
	}
}

func init() {
	describeImpactCmd.Flags().Bool("skip-generate", false, "Reuse the existing dependency graph file instead of running the dependency command")

	describeCmd.AddCommand(describeImpactCmd)
}
