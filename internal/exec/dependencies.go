package exec

import (
	"context"
	"os"

	"github.com/google/renameio/v2"

	errUtils "github.com/cloudposse/testprune/errors"
	cfg "github.com/cloudposse/testprune/pkg/config"
	"github.com/cloudposse/testprune/pkg/dependency"
	log "github.com/cloudposse/testprune/pkg/logger"
	"github.com/cloudposse/testprune/pkg/schema"
)

const dependencyCommandName = "dependencies.command"

// DependencyLoader produces the package dependency graph of the project.
//
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type DependencyLoader interface {
	Load(ctx context.Context) (*dependency.Node, error)
}

type shellDependencyLoader struct {
	config *schema.Configuration
	run    func(ctx context.Context, command string, name string, dir string, env []string) ([]byte, error)
}

// NewDependencyLoader returns a loader that runs `dependencies.command` and stores its output in `dependencies.file`.
func NewDependencyLoader(config *schema.Configuration) DependencyLoader {
	return &shellDependencyLoader{
		config: config,
		run:    ExecuteShellAndReturnOutput,
	}
}

// Load generates the graph (unless skipped) and decodes it.
func (l *shellDependencyLoader) Load(ctx context.Context) (*dependency.Node, error) {
	file := cfg.DependencyFilePath(l.config)

	if l.config.Dependencies.SkipGenerate {
		log.Debug("Reusing existing dependency graph", "file", file)
	} else if err := l.generate(ctx, file); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errUtils.Build(errUtils.Wrap(errUtils.ErrReadDependencyGraph, err, "file=%s", file)).
			WithHint("unset dependencies.skip_generate to regenerate the graph").
			WithContext("file", file).
			Err()
	}

	root, err := dependency.Decode(data)
	if err != nil {
		return nil, errUtils.Build(err).WithContext("file", file).Err()
	}

	log.Debug("Loaded dependency graph", "root", root.Name, "nodes", root.Size())
	return root, nil
}

func (l *shellDependencyLoader) generate(ctx context.Context, file string) error {
	command := l.config.Dependencies.Command
	env := []string{
		cfg.PackagePathEnvVar + "=" + cfg.PackagePath(l.config),
		cfg.RootDirectoryEnvVar + "=" + l.config.RootDirectory,
	}

	out, err := l.run(ctx, command, dependencyCommandName, l.config.RootDirectory, env)
	if err != nil {
		return errUtils.Build(errUtils.Wrap(errUtils.ErrDependencyCommand, err, "command failed")).
			WithHintf("run it by hand with %s=%s to see the full output", cfg.PackagePathEnvVar, cfg.PackagePath(l.config)).
			WithContext("command", command).
			WithContext("dir", l.config.RootDirectory).
			Err()
	}

	if err := renameio.WriteFile(file, out, cfg.DefaultDependencyFileMode); err != nil {
		return errUtils.Wrap(errUtils.ErrWriteDependencyGraph, err, "file=%s", file)
	}

	log.Debug("Wrote dependency graph", "file", file, "bytes", len(out))
	return nil
}
