// Package lock implements the process-local dispatch lock that keeps a host
// from running two worker instances against the same coordinator.
//
// The lock is a marker file holding the owning PID. Acquire verifies the
// liveness of a recorded owner before failing, so a marker left behind by a
// crashed worker is reclaimed instead of blocking restarts forever.
package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/wb-go/wbf/zlog"
)

// ErrAlreadyRunning is returned when a live worker process already holds the
// lock on this host.
var ErrAlreadyRunning = errors.New("another worker instance is already running")

// Lock is a held dispatch lock. Release must be called at shutdown.
type Lock struct {
	path string
}

// Acquire takes the dispatch lock at path.
//
// If a marker exists and its recorded owner is still alive, Acquire fails
// with ErrAlreadyRunning. A marker whose owner is dead is treated as stale
// and reclaimed.
func Acquire(path string) (*Lock, error) {
	if err := checkExisting(path); err != nil {
		return nil, err
	}

	// O_EXCL closes the window between the staleness check and the create.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: lock file %s reappeared", ErrAlreadyRunning, path)
		}
		return nil, fmt.Errorf("create lock file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("write lock file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close lock file: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lock marker.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lock file: %w", err)
	}

	return nil
}

func checkExisting(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read lock file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		// Unparseable marker: treat as stale.
		zlog.Logger.Warn().Str("path", path).Msg("removing malformed lock file")
		return removeStale(path)
	}

	if processAlive(pid) {
		return fmt.Errorf("%w: pid %d holds %s", ErrAlreadyRunning, pid, path)
	}

	zlog.Logger.Warn().Int("pid", pid).Str("path", path).Msg("reclaiming stale lock file")
	return removeStale(path)
}

func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale lock file: %w", err)
	}

	return nil
}

// processAlive checks whether pid refers to a live process. Signal 0 performs
// the existence check without delivering anything; EPERM still means alive.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = proc.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
