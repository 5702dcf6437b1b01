package app

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	dataFileName   = ".time_hedge_data.json"
	configFileName = ".time_hedge.toml"

	EnvDataFile   = "TIME_HEDGE_DATA"
	EnvConfigFile = "TIME_HEDGE_CONFIG"
)

func resolveHome(env Environment) (string, error) {
	home, err := env.HomeDir()
	if err != nil {
		return "", err
	}
	home = strings.TrimSpace(home)
	if home == "" {
		return "", errors.New("home directory is not set")
	}
	return home, nil
}

// resolveConfigPath picks the config file: explicit flag, then environment,
// then the file beside the data file in the home directory.
func resolveConfigPath(env Environment, home string, explicit string) string {
	return resolvePathWithHome(firstNonEmpty(explicit, env.Getenv(EnvConfigFile), filepath.Join(home, configFileName)), home)
}

func resolvePaths(env Environment, home string, configPath string, cfg Config) Paths {
	data := resolvePathWithHome(firstNonEmpty(env.Getenv(EnvDataFile), cfg.DataFile, filepath.Join(home, dataFileName)), home)
	return Paths{
		Home:       home,
		DataPath:   data,
		LockPath:   data + ".lock",
		ConfigPath: configPath,
	}
}

func resolvePathWithHome(raw string, home string) string {
	if strings.HasPrefix(raw, "~/") {
		return filepath.Join(home, strings.TrimPrefix(raw, "~/"))
	}
	if strings.HasPrefix(raw, "~\\") {
		return filepath.Join(home, strings.TrimPrefix(raw, "~\\"))
	}
	if raw == "~" {
		return home
	}
	return filepath.Clean(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
