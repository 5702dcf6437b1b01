package app

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"time-hedge/internal/logging"
)

type Service struct {
	env    Environment
	clock  clockwork.Clock
	log    *logging.Logger
	engine Engine
	paths  Paths
}

type Options struct {
	// ConfigPath overrides TIME_HEDGE_CONFIG and ~/.time_hedge.toml.
	ConfigPath string
	// LogLevel overrides log_level from the config file.
	LogLevel string

	Env    Environment
	Clock  clockwork.Clock
	Logger *logging.Logger
}

func NewService(opts Options) (*Service, error) {
	env := opts.Env
	if env == nil {
		env = OSEnvironment()
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	home, err := resolveHome(env)
	if err != nil {
		return nil, WrapExit(ExitEnvFailure, fmt.Errorf("resolve home directory: %w", err))
	}
	configPath := resolveConfigPath(env, home, opts.ConfigPath)
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, WrapExit(ExitUserError, err)
	}

	log := opts.Logger
	if log == nil {
		log, err = logging.New(firstNonEmpty(opts.LogLevel, cfg.LogLevel))
		if err != nil {
			return nil, WrapExit(ExitUserError, err)
		}
	}

	paths := resolvePaths(env, home, configPath, cfg)
	log.Debugw("paths resolved", "data", paths.DataPath, "config", paths.ConfigPath)

	return &Service{
		env:    env,
		clock:  clock,
		log:    log,
		engine: NewEngine(cfg.Rates),
		paths:  paths,
	}, nil
}

func (s *Service) Paths() Paths {
	return s.paths
}

func (s *Service) Logger() *logging.Logger {
	return s.log
}

// Status reads the persisted state and computes the live balance. It never
// writes.
func (s *Service) Status() StatusResult {
	state := loadState(s.paths, s.log)
	live := s.engine.LiveBalance(state, currentTime(s.clock))
	return StatusResult{
		Mode:        state.Mode,
		Balance:     state.Balance,
		LiveBalance: live,
		Formatted:   FormatDuration(live),
		StartTime:   state.StartTime,
		DataPath:    s.paths.DataPath,
	}
}

// Apply settles the stored balance, runs the transition named by raw and
// persists the result. Unknown commands are settled and saved unchanged.
func (s *Service) Apply(raw string) (State, error) {
	cmd := Command(raw)

	lock, err := acquireLock(s.clock, s.paths.LockPath)
	if err != nil {
		return State{}, WrapExit(ExitIOFailure, err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			s.log.WithError(err).Warnw("release lock", "path", s.paths.LockPath)
		}
	}()

	now := currentTime(s.clock)
	prev := loadState(s.paths, s.log)
	next := s.engine.Apply(prev, cmd, now)
	if !isKnownCommand(cmd) {
		s.log.Debugw("unknown command, settling only", "command", raw)
	}

	if err := saveState(s.paths, next); err != nil {
		return State{}, WrapExit(ExitIOFailure, err)
	}
	s.log.Debugw("state saved",
		"command", string(cmd),
		"from", prev.Mode.String(),
		"to", next.Mode.String(),
		"balance", next.Balance,
	)
	return next, nil
}

// Executable returns the absolute path of the running binary.
func (s *Service) Executable() (string, error) {
	exe, err := s.env.Executable()
	if err != nil {
		return "", WrapExit(ExitEnvFailure, fmt.Errorf("resolve executable path: %w", err))
	}
	return exe, nil
}

func isKnownCommand(cmd Command) bool {
	switch cmd {
	case CommandStop, CommandWork, CommandResearch, CommandReset:
		return true
	default:
		return false
	}
}
