// Package filelock guards a flatten root against concurrent runs.
//
// Two flatten processes racing on the same root would double-count files
// in their summaries and fight over destination names, so the flatten
// root is protected with an advisory file lock for the duration of a run.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the name of the lock file created in the flatten root.
// It sits directly in the root, so it is never itself eligible for
// flattening.
const LockFileName = ".flatten.lock"

// RunLock is an exclusive advisory lock on a flatten root.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// NewRunLock creates a lock for the given root directory. The lock file
// is created inside the root itself.
func NewRunLock(root string) *RunLock {
	path := filepath.Join(root, LockFileName)
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Acquire takes the lock without blocking. It fails if another flatten
// run already holds the lock on this root.
func (rl *RunLock) Acquire() error {
	acquired, err := rl.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", rl.path, err)
	}
	if !acquired {
		return fmt.Errorf("another flatten is already running on %s", filepath.Dir(rl.path))
	}
	return nil
}

// Release unlocks and removes the lock file. Safe to call after a failed
// Acquire; errors removing the file are ignored since a stale lock file
// does not block future runs.
func (rl *RunLock) Release() error {
	if err := rl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock %s: %w", rl.path, err)
	}
	os.Remove(rl.path)
	return nil
}

// Path returns the lock file location.
func (rl *RunLock) Path() string {
	return rl.path
}
