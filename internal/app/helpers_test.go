package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"time-hedge/internal/logging"
)

type fakeEnv struct {
	home    string
	homeErr error
	exe     string
	exeErr  error
	vars    map[string]string
}

func (f fakeEnv) HomeDir() (string, error) {
	if f.homeErr != nil {
		return "", f.homeErr
	}
	return f.home, nil
}

func (f fakeEnv) Executable() (string, error) {
	if f.exeErr != nil {
		return "", f.exeErr
	}
	return f.exe, nil
}

func (f fakeEnv) Getenv(key string) string {
	return f.vars[key]
}

var errNoHome = errors.New("$HOME is not defined")

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, env fakeEnv) (*Service, *clockwork.FakeClock) {
	t.Helper()
	if env.home == "" && env.homeErr == nil {
		env.home = t.TempDir()
	}
	if env.exe == "" {
		env.exe = "/usr/local/bin/time-hedge"
	}
	clock := clockwork.NewFakeClockAt(testEpoch)
	svc, err := NewService(Options{Env: env, Clock: clock, Logger: logging.Nop()})
	require.NoError(t, err)
	return svc, clock
}

func testPaths(home string) Paths {
	data := filepath.Join(home, dataFileName)
	return Paths{Home: home, DataPath: data, LockPath: data + ".lock"}
}
