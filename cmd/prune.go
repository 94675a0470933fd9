package cmd

import (
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/testprune/errors"
	e "github.com/cloudposse/testprune/internal/exec"
	cfg "github.com/cloudposse/testprune/pkg/config"
	"github.com/cloudposse/testprune/pkg/schema"
)

const prunePositionalArgs = 3

// cmdFlagKeys maps command specific flags to configuration keys, by command name.
var cmdFlagKeys = map[string]map[string]string{
	"prune": {
		"test-plan":     cfg.TestPlanKey,
		"skip-generate": cfg.SkipGenerateKey,
	},
	"impact": {
		"skip-generate": cfg.SkipGenerateKey,
	},
}

type pruneExecCreator func(config *schema.Configuration) *e.PruneExec

// pruneCmd removes the test targets of unaffected packages from a test plan.
var pruneCmd = &cobra.Command{
	Use:   "prune [root-directory root-package test-plan] [changed-files...]",
	Short: "Remove the test targets of packages not affected by the changed files",
	Long: `This command loads the package dependency graph, finds every package that changed or depends on a
changed package, and rewrites the test plan so only those packages' test targets remain.

The root directory, root package and test plan may be given as the first three arguments when they are
not set by flags, environment variables or testprune.yaml.`,
	Example: `testprune prune /path/to/project App UnitTests Packages/Core/Sources/Core/File.swift
testprune prune --root-directory . --root-package App --test-plan UnitTests --base-ref origin/main`,
	RunE: getRunnablePruneCmd(e.NewPruneExec),
}

func getRunnablePruneCmd(newPruneExec pruneExecCreator) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		changedFiles, err := applyPositionalArgs(&cliConfig, args)
		if err != nil {
			return err
		}

		baseRef, _ := cmd.Flags().GetString("base-ref")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		diff, _ := cmd.Flags().GetBool("diff")

		_, err = newPruneExec(&cliConfig).Execute(cmd.Context(), &e.PruneCmdArgs{
			ChangedFiles: changedFiles,
			BaseRef:      baseRef,
			DryRun:       dryRun,
			Diff:         diff,
		})
		return err
	}
}

// applyPositionalArgs consumes `root-directory root-package test-plan` from the front of args when
// any of those settings is still unset, and returns the remaining changed files.
// Settings that are already configured keep their value.
func applyPositionalArgs(config *schema.Configuration, args []string) ([]string, error) {
	if config.RootDirectory != "" && config.RootPackage != "" && config.TestPlan != "" {
		return args, nil
	}
	if len(args) < prunePositionalArgs {
		return nil, errUtils.Build(errUtils.ErrInvalidArguments).
			WithHint("usage: testprune prune <root-directory> <root-package> <test-plan> [changed-files...]").
			WithHint("or set root_directory, root_package and test_plan in testprune.yaml").
			WithContext("args", len(args)).
			WithExitCode(2).
			Err()
	}

	if config.RootDirectory == "" {
		rootDirectory, err := cfg.NormalizeRootDirectory(args[0])
		if err != nil {
			return nil, err
		}
		config.RootDirectory = rootDirectory
	}
	if config.RootPackage == "" {
		config.RootPackage = args[1]
	}
	if config.TestPlan == "" {
		config.TestPlan = args[2]
	}
	return args[prunePositionalArgs:], nil
}

func init() {
	pruneCmd.Flags().String("test-plan", "", "Test plan name or path, relative to the root directory. The .xctestplan extension is optional")
	pruneCmd.Flags().String("base-ref", "", "Compute the changed files with git, from the merge base of this ref and HEAD, when none are given")
	pruneCmd.Flags().Bool("dry-run", false, "Print the pruned test plan instead of writing it")
	pruneCmd.Flags().Bool("diff", false, "With --dry-run, print a unified diff of the test plan instead of the pruned plan")
	pruneCmd.Flags().Bool("skip-generate", false, "Reuse the existing dependency graph file instead of running the dependency command")

	RootCmd.AddCommand(pruneCmd)
}
