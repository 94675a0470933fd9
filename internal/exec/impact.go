package exec

import (
	"context"

	"github.com/samber/lo"

	cfg "github.com/cloudposse/testprune/pkg/config"
	"github.com/cloudposse/testprune/pkg/dependency"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
)

// impactPipeline is the part shared by `prune` and `describe impact`:
// changed files -> changed packages -> impact set.
type impactPipeline struct {
	config       *schema.Configuration
	loader       DependencyLoader
	changedFiles changedFilesFunc
}

type impactReport struct {
	Changed []string
	// Unknown lists the changed packages that do not appear in the dependency graph.
	Unknown []string
	Impact  dependency.ImpactSet
}

func (p *impactPipeline) run(ctx context.Context, files []string, baseRef string) (*impactReport, error) {
	files, err := resolveChangedFiles(p.config, files, baseRef, p.changedFiles)
	if err != nil {
		return nil, err
	}

	names, err := changedPackages(p.config, files)
	if err != nil {
		return nil, err
	}

	root, err := p.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	unknown := lo.Filter(names, func(name string, _ int) bool { return root.Find(name) == nil })
	if len(unknown) > 0 {
		log.Debug("Changed packages not in the dependency graph", "packages", unknown)
	}

	impact := dependency.ResolveImpact(root, names, cfg.RootPrefix(p.config))
	log.Debug("Resolved impact", "changed", len(names), "impacted", impact.Len(), "packages", impact.Names())
	for _, d := range impact.Sorted() {
		log.Trace("Impacted package", "name", d.Name, "path", d.Path)
	}

	return &impactReport{Changed: names, Unknown: unknown, Impact: impact}, nil
}
