package preflight

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrRefused reports that the operator declined the no-writers
// confirmation. No hashing or linking may happen after it.
var ErrRefused = errors.New("stop all writing programs before continuing")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given roots, destructive or
// not. It never short-circuits so the operator sees the full picture.
func RunAll(roots []string) []Result {
	results := make([]Result, 0, len(roots))
	for _, root := range roots {
		results = append(results, CheckDirectoryAccess("Root "+filepath.Base(root), root))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Lock guards against concurrent relink runs via a lock file under dir.
type Lock struct {
	flock *flock.Flock
}

// AcquireLock takes the run lock, failing immediately when another relink
// process holds it.
func AcquireLock(dir string) (*Lock, error) {
	lockPath := filepath.Join(dir, "relink.lock")
	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("another relink run holds %s", lockPath)
	}
	return &Lock{flock: fl}, nil
}

// Release drops the run lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil || l.flock == nil {
		return ""
	}
	return l.flock.Path()
}
