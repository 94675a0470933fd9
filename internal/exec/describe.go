package exec

import (
	"context"
	"io"
	"os"

	cfg "github.com/cloudposse/testprune/pkg/config"
	"github.com/cloudposse/testprune/pkg/schema"
	u "github.com/cloudposse/testprune/pkg/utils"
)

// DescribeCmdArgs holds the arguments shared by the `describe` subcommands.
type DescribeCmdArgs struct {
	ChangedFiles []string
	BaseRef      string
	Format       string
	File         string
}

type printOrWriteFunc func(w io.Writer, format string, file string, data any) error

// DescribeImpactExec prints the packages impacted by a change.
type DescribeImpactExec struct {
	pipeline           *impactPipeline
	printOrWriteToFile printOrWriteFunc
	stdout             io.Writer
}

// NewDescribeImpactExec creates a new `describe impact` executor.
func NewDescribeImpactExec(config *schema.Configuration) *DescribeImpactExec {
	return &DescribeImpactExec{
		pipeline: &impactPipeline{
			config:       config,
			loader:       NewDependencyLoader(config),
			changedFiles: gitChangedFiles,
		},
		printOrWriteToFile: u.PrintOrWriteToFile,
		stdout:             os.Stdout,
	}
}

// Execute resolves the impact set and prints it sorted by name.
func (d *DescribeImpactExec) Execute(ctx context.Context, args *DescribeCmdArgs) error {
	if err := u.ValidateFormat(args.Format); err != nil {
		return err
	}
	if err := cfg.ValidateForPrune(d.pipeline.config, false); err != nil {
		return err
	}

	report, err := d.pipeline.run(ctx, args.ChangedFiles, args.BaseRef)
	if err != nil {
		return err
	}

	return d.printOrWriteToFile(d.stdout, args.Format, args.File, report.Impact.Sorted())
}

// DescribeChangesExec prints the packages that own the changed files. It needs no dependency graph.
type DescribeChangesExec struct {
	config             *schema.Configuration
	changedFiles       changedFilesFunc
	printOrWriteToFile printOrWriteFunc
	stdout             io.Writer
}

// NewDescribeChangesExec creates a new `describe changes` executor.
func NewDescribeChangesExec(config *schema.Configuration) *DescribeChangesExec {
	return &DescribeChangesExec{
		config:             config,
		changedFiles:       gitChangedFiles,
		printOrWriteToFile: u.PrintOrWriteToFile,
		stdout:             os.Stdout,
	}
}

func (d *DescribeChangesExec) Execute(_ context.Context, args *DescribeCmdArgs) error {
	if err := u.ValidateFormat(args.Format); err != nil {
		return err
	}

	files, err := resolveChangedFiles(d.config, args.ChangedFiles, args.BaseRef, d.changedFiles)
	if err != nil {
		return err
	}
	names, err := changedPackages(d.config, files)
	if err != nil {
		return err
	}

	return d.printOrWriteToFile(d.stdout, args.Format, args.File, names)
}
