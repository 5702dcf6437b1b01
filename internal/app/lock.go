package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	lockWaitTimeout = 10 * time.Second
	lockRetryDelay  = 100 * time.Millisecond
	lockStaleAfter  = 30 * time.Second
)

// FileLock guards the load-settle-save cycle of a mutating command. The lock
// file names its owner: pid and creation time in Unix nanoseconds, both read
// when the lock is taken.
type FileLock struct {
	path  string
	owner []byte
}

// acquireLock waits on clock for a held lock and breaks locks older than
// lockStaleAfter.
func acquireLock(clock clockwork.Clock, path string) (*FileLock, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	deadline := clock.Now().Add(lockWaitTimeout)
	for {
		owner := []byte(fmt.Sprintf("%d\n%d\n", os.Getpid(), clock.Now().UnixNano()))
		created, err := createLockFile(path, owner)
		if err != nil {
			return nil, err
		}
		if created {
			return &FileLock{path: path, owner: owner}, nil
		}

		broken, err := breakStaleLock(clock, path)
		if err != nil {
			return nil, err
		}
		if broken {
			continue
		}
		if clock.Now().After(deadline) {
			return nil, fmt.Errorf("timeout acquiring lock %s", path)
		}
		clock.Sleep(lockRetryDelay)
	}
}

func createLockFile(path string, owner []byte) (bool, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, writeErr := file.Write(owner)
	closeErr := file.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(path)
		return false, errors.Join(writeErr, closeErr)
	}
	return true, nil
}

// breakStaleLock moves an expired lock aside and deletes it only when the moved
// file is still the one judged expired. A lock re-created in the meantime is
// linked back into place. It reports true when the caller should retry at once.
func breakStaleLock(clock clockwork.Clock, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	seen, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if !lockExpired(clock, seen, info.ModTime()) {
		return false, nil
	}

	aside := fmt.Sprintf("%s.stale.%d.%d", path, os.Getpid(), clock.Now().UnixNano())
	if err := os.Rename(path, aside); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	defer func() {
		_ = os.Remove(aside)
	}()

	taken, err := os.ReadFile(aside)
	if err != nil || bytes.Equal(taken, seen) {
		return true, nil
	}
	// ErrExist means a third process already holds the lock.
	if err := os.Link(aside, path); err != nil && !errors.Is(err, os.ErrExist) {
		return false, err
	}
	return false, nil
}

// lockExpired reads the creation time from content. Content that does not
// parse may still be mid-write, so it falls back to the file's mtime.
func lockExpired(clock clockwork.Clock, content []byte, modTime time.Time) bool {
	fields := strings.Fields(string(content))
	if len(fields) >= 2 {
		if nanos, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			return clock.Since(time.Unix(0, nanos)) > lockStaleAfter
		}
	}
	return clock.Since(modTime) > lockStaleAfter
}

// Release removes the lock file unless another process has since taken it
// over as stale.
func (l *FileLock) Release() error {
	if l == nil {
		return nil
	}
	current, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(current, l.owner) {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
