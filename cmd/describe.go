package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/testprune/internal/exec"
	cfg "github.com/cloudposse/testprune/pkg/config"
)

// describeCmd groups the read-only commands that show what a prune would act on.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the packages affected by a change",
	Long:  `Display the changed packages and the impact set computed from the changed files.`,
}

func describeArgs(cmd *cobra.Command, args []string) *e.DescribeCmdArgs {
	format, _ := cmd.Flags().GetString("format")
	file, _ := cmd.Flags().GetString("file")
	baseRef, _ := cmd.Flags().GetString("base-ref")
	return &e.DescribeCmdArgs{
		ChangedFiles: args,
		BaseRef:      baseRef,
		Format:       format,
		File:         file,
	}
}

func init() {
	describeCmd.PersistentFlags().String("format", cfg.DefaultOutputFormat, "Specify the output format: json|yaml")
	describeCmd.PersistentFlags().String("file", "", "Write the result to file instead of stdout")
	describeCmd.PersistentFlags().String("base-ref", "", "Compute the changed files with git, from the merge base of this ref and HEAD, when none are given")

	RootCmd.AddCommand(describeCmd)
}
