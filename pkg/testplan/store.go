package testplan

import (
	"os"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"

	errUtils "github.com/cloudposse/testprune/errors"
	log "github.com/cloudposse/testprune/pkg/logger"
)

const lockSuffix = ".lock"

// ReadFile loads and parses the test plan at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errUtils.Build(errUtils.Wrap(errUtils.ErrReadTestPlan, err, "path=%s", path)).
			WithHint("check the root directory and test plan name").
			WithContext("path", path).
			Err()
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errUtils.Build(err).WithContext("path", path).Err()
	}
	return doc, nil
}

// WriteFile atomically replaces the file at path with doc, keeping its permissions when it exists.
func WriteFile(path string, doc *Document, perm os.FileMode) error {
	data, err := doc.Marshal()
	if err != nil {
		return errUtils.Wrap(errUtils.ErrWriteTestPlan, err, "encoding %s", path)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	if err := renameio.WriteFile(path, data, perm); err != nil {
		return errUtils.Wrap(errUtils.ErrWriteTestPlan, err, "path=%s", path)
	}
	return nil
}

// Update runs fn on the test plan at path and writes the result back, holding an
// advisory lock on path+".lock" for the whole read-modify-write.
// The lock file is left in place: removing it would let a waiter holding the old inode
// and a newcomer creating a fresh file both own the lock.
func Update(path string, perm os.FileMode, fn func(*Document) (*Document, error)) error {
	lockPath := path + lockSuffix
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return errUtils.Wrap(errUtils.ErrLockTestPlan, err, "path=%s", lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("Failed to release test plan lock", "path", lockPath, "error", err)
		}
	}()

	doc, err := ReadFile(path)
	if err != nil {
		return err
	}

	updated, err := fn(doc)
	if err != nil {
		return err
	}

	return WriteFile(path, updated, perm)
}
