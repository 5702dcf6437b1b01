package app

import (
	"errors"
	"fmt"

	"time-hedge/internal/logging"
)

var errIncompleteState = errors.New("state record is missing balance, mode or start_time")

// stateRecord is the on-disk shape. Every field must be present and non-null.
type stateRecord struct {
	Balance   *float64 `json:"balance"`
	Mode      *Mode    `json:"mode"`
	StartTime *float64 `json:"start_time"`
}

func (r stateRecord) state() (State, error) {
	if r.Balance == nil || r.Mode == nil || r.StartTime == nil {
		return State{}, errIncompleteState
	}
	return State{Balance: *r.Balance, Mode: *r.Mode, StartTime: *r.StartTime}, nil
}

// loadState never fails. A missing, unreadable or incomplete file yields the
// default state.
func loadState(paths Paths, log *logging.Logger) State {
	var record stateRecord
	err := readJSONFile(paths.DataPath, &record)
	if err == nil {
		var s State
		if s, err = record.state(); err == nil {
			return s
		}
	}
	log.WithError(err).Debugw("state unavailable, using defaults", "path", paths.DataPath)
	return DefaultState()
}

func saveState(paths Paths, state State) error {
	if err := writeJSONAtomic(paths.DataPath, state); err != nil {
		return fmt.Errorf("save state %s: %w", paths.DataPath, err)
	}
	return nil
}
