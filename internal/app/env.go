package app

import (
	"os"
	"path/filepath"
)

// Environment isolates process-wide lookups so paths can be faked in tests.
type Environment interface {
	HomeDir() (string, error)
	Executable() (string, error)
	Getenv(key string) string
}

type osEnvironment struct{}

func OSEnvironment() Environment {
	return osEnvironment{}
}

func (osEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (osEnvironment) Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Abs(exe)
}

func (osEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}
