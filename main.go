package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudposse/testprune/cmd"
	errUtils "github.com/cloudposse/testprune/errors"
	log "github.com/cloudposse/testprune/pkg/logger"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		cmd.Cleanup()
		// 128 + signal number, as a shell reports it.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	log.Default().SetReportTimestamp(false)

	errUtils.OsExit(run())
}

// run executes the command tree and returns the process exit code.
// Keeping it separate from main lets the deferred cleanup run before os.Exit.
func run() int {
	defer cmd.Cleanup()

	err := cmd.Execute()
	if err != nil {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
