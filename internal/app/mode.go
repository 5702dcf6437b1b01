package app

import "fmt"

type Mode int

const (
	ModeIdle Mode = iota
	ModeWork
	ModeResearch
)

var AllModes = []Mode{ModeIdle, ModeWork, ModeResearch}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeWork:
		return "WORK"
	case ModeResearch:
		return "RESEARCH"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts only the exact persisted spellings.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "IDLE":
		return ModeIdle, nil
	case "WORK":
		return ModeWork, nil
	case "RESEARCH":
		return ModeResearch, nil
	default:
		return ModeIdle, fmt.Errorf("unknown mode %q", raw)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeIdle, ModeWork, ModeResearch:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Rates holds the signed hourly accrual rate of each active mode. Idle never accrues.
type Rates struct {
	Work     float64 `toml:"work"`
	Research float64 `toml:"research"`
}

func DefaultRates() Rates {
	return Rates{Work: 1.0, Research: -4.0}
}

func (r Rates) For(mode Mode) float64 {
	switch mode {
	case ModeWork:
		return r.Work
	case ModeResearch:
		return r.Research
	default:
		return 0
	}
}

func (r Rates) validate() error {
	if r.Work <= 0 {
		return fmt.Errorf("rates.work must be positive, got %v", r.Work)
	}
	if r.Research >= 0 {
		return fmt.Errorf("rates.research must be negative, got %v", r.Research)
	}
	return nil
}
