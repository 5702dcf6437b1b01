package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePathsDefaultsToHome(t *testing.T) {
	env := fakeEnv{home: "/tmp/home-default"}
	home, err := resolveHome(env)
	require.NoError(t, err)

	configPath := resolveConfigPath(env, home, "")
	paths := resolvePaths(env, home, configPath, DefaultConfig())

	require.Equal(t, "/tmp/home-default/.time_hedge_data.json", paths.DataPath)
	require.Equal(t, "/tmp/home-default/.time_hedge_data.json.lock", paths.LockPath)
	require.Equal(t, "/tmp/home-default/.time_hedge.toml", paths.ConfigPath)
}

func TestResolvePathsConfigDataFileExpandsTilde(t *testing.T) {
	env := fakeEnv{home: "/tmp/home-cfg"}
	cfg := DefaultConfig()
	cfg.DataFile = "~/sync/hedge.json"

	paths := resolvePaths(env, "/tmp/home-cfg", "", cfg)
	require.Equal(t, "/tmp/home-cfg/sync/hedge.json", paths.DataPath)
}

func TestResolvePathsEnvOverridesConfig(t *testing.T) {
	env := fakeEnv{home: "/tmp/home-env", vars: map[string]string{
		EnvDataFile:   "/tmp/elsewhere/state.json",
		EnvConfigFile: "~/cfg/hedge.toml",
	}}
	cfg := DefaultConfig()
	cfg.DataFile = "~/ignored.json"

	configPath := resolveConfigPath(env, "/tmp/home-env", "")
	paths := resolvePaths(env, "/tmp/home-env", configPath, cfg)

	require.Equal(t, "/tmp/elsewhere/state.json", paths.DataPath)
	require.Equal(t, "/tmp/home-env/cfg/hedge.toml", paths.ConfigPath)
}

func TestResolveConfigPathFlagWins(t *testing.T) {
	env := fakeEnv{vars: map[string]string{EnvConfigFile: "/tmp/from-env.toml"}}
	require.Equal(t, "/tmp/from-flag.toml", resolveConfigPath(env, "/tmp/h", "/tmp/from-flag.toml"))
}

func TestResolveHomeFailures(t *testing.T) {
	_, err := resolveHome(fakeEnv{homeErr: errNoHome})
	require.ErrorIs(t, err, errNoHome)

	_, err = resolveHome(fakeEnv{home: "   "})
	require.Error(t, err)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hedge.toml")
	content := "data_file = \"~/x.json\"\n\n[rates]\nresearch = -2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "~/x.json", cfg.DataFile)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, Rates{Work: 1.0, Research: -2.0}, cfg.Rates)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":        "rates = [",
		"work rate":     "[rates]\nwork = 0\n",
		"research rate": "[rates]\nresearch = 4\n",
		"log level":     "log_level = \"chatty\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hedge.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
			_, err := loadConfig(path)
			require.Error(t, err)
		})
	}
}
