package exec

import (
	"context"
	"io"
	"os"
	"path/filepath"

	errUtils "github.com/cloudposse/testprune/errors"
	cfg "github.com/cloudposse/testprune/pkg/config"
	"github.com/cloudposse/testprune/pkg/dependency"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
	"github.com/cloudposse/testprune/pkg/testplan"
	u "github.com/cloudposse/testprune/pkg/utils"
)

// PruneCmdArgs holds the arguments of `testprune prune`.
type PruneCmdArgs struct {
	ChangedFiles []string
	BaseRef      string
	DryRun       bool
	// Diff prints a unified diff of the test plan instead of the whole pruned plan. Only used with DryRun.
	Diff bool
}

// PruneResult describes what a prune run did.
type PruneResult struct {
	TestPlan        string                  `json:"test_plan" yaml:"test_plan"`
	ChangedPackages []string                `json:"changed_packages" yaml:"changed_packages"`
	Impact          []dependency.Dependency `json:"impact" yaml:"impact"`
	Kept            int                     `json:"kept" yaml:"kept"`
	Removed         []string                `json:"removed" yaml:"removed"`
}

// PruneExec removes the test targets of packages not affected by a change from a test plan.
type PruneExec struct {
	pipeline *impactPipeline
	stdout   io.Writer
}

// NewPruneExec creates a new `prune` executor.
func NewPruneExec(config *schema.Configuration) *PruneExec {
	return &PruneExec{
		pipeline: &impactPipeline{
			config:       config,
			loader:       NewDependencyLoader(config),
			changedFiles: gitChangedFiles,
		},
		stdout: os.Stdout,
	}
}

// Execute runs the prune. With DryRun set the pruned plan is printed instead of written back.
func (p *PruneExec) Execute(ctx context.Context, args *PruneCmdArgs) (*PruneResult, error) {
	config := p.pipeline.config
	if err := cfg.ValidateForPrune(config, true); err != nil {
		return nil, err
	}

	report, err := p.pipeline.run(ctx, args.ChangedFiles, args.BaseRef)
	if err != nil {
		return nil, err
	}
	if len(report.Changed) == 0 {
		log.Warn("No changed packages, every test target will be removed")
	}

	path := cfg.TestPlanPath(config)
	result := &PruneResult{
		TestPlan:        path,
		ChangedPackages: report.Changed,
		Impact:          report.Impact.Sorted(),
	}

	prune := func(doc *testplan.Document) (*testplan.Document, error) {
		pruned, filtered := testplan.Filter(doc, report.Impact, config.ContainerPrefix)
		result.Kept = filtered.Kept
		result.Removed = filtered.Removed
		return pruned, nil
	}

	if args.DryRun {
		if err := p.printPruned(path, args.Diff, prune); err != nil {
			return nil, err
		}
	} else if err := testplan.Update(path, cfg.DefaultTestPlanFileMode, prune); err != nil {
		return nil, err
	}

	for _, removed := range result.Removed {
		log.Debug("Removed test target", "container", removed)
	}
	log.Info("Pruned test plan", "file", path, "kept", result.Kept, "removed", len(result.Removed), "dry_run", args.DryRun)

	return result, nil
}

func (p *PruneExec) printPruned(path string, diff bool, prune func(*testplan.Document) (*testplan.Document, error)) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return errUtils.Build(errUtils.Wrap(errUtils.ErrReadTestPlan, err, "path=%s", path)).
			WithContext("path", path).
			Err()
	}
	doc, err := testplan.Parse(original)
	if err != nil {
		return errUtils.Build(err).WithContext("path", path).Err()
	}
	pruned, err := prune(doc)
	if err != nil {
		return err
	}
	data, err := pruned.Marshal()
	if err != nil {
		return errUtils.Wrap(errUtils.ErrWriteOutput, err, "encoding %s", path)
	}

	if diff {
		data = []byte(u.UnifiedDiff(filepath.Base(path), string(original), string(data)))
	}
	if _, err := p.stdout.Write(data); err != nil {
		return errUtils.Wrap(errUtils.ErrWriteOutput, err, "stdout")
	}
	return nil
}
