package app

type State struct {
	Balance   float64 `json:"balance"`
	Mode      Mode    `json:"mode"`
	StartTime float64 `json:"start_time"`
}

func DefaultState() State {
	return State{Balance: 0, Mode: ModeIdle, StartTime: 0}
}

type Paths struct {
	Home       string `json:"home"`
	DataPath   string `json:"dataPath"`
	LockPath   string `json:"lockPath"`
	ConfigPath string `json:"configPath"`
}

type StatusResult struct {
	Mode        Mode    `json:"mode"`
	Balance     float64 `json:"balance"`
	LiveBalance float64 `json:"liveBalance"`
	Formatted   string  `json:"formatted"`
	StartTime   float64 `json:"startTime,omitempty"`
	DataPath    string  `json:"dataPath"`
}
