package exec

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	log "github.com/cloudposse/testprune/pkg/logger"
)

// ExecuteShellAndReturnOutput runs a shell script and captures its standard output.
func ExecuteShellAndReturnOutput(ctx context.Context, command string, name string, dir string, env []string) ([]byte, error) {
	var b bytes.Buffer

	log.Debug("Executing", "command", command, "dir", dir)

	if err := shellRunner(ctx, command, name, dir, env, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// shellRunner uses mvdan.cc/sh/v3's parser and interpreter to run a shell script and divert its stdout.
// Stderr is passed through so the user sees the tool's own diagnostics.
func shellRunner(ctx context.Context, command string, name string, dir string, env []string, out io.Writer) error {
	parser, err := syntax.NewParser().Parse(strings.NewReader(command), name)
	if err != nil {
		return err
	}

	environ := append(os.Environ(), env...)
	listEnviron := expand.ListEnviron(environ...)
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(listEnviron),
		interp.StdIO(nil, out, os.Stderr),
	)
	if err != nil {
		return err
	}

	return runner.Run(ctx, parser)
}
