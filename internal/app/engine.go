package app

import (
	"fmt"
	"math"
)

const secondsPerHour = 3600.0

type Command string

const (
	CommandStop     Command = "stop"
	CommandWork     Command = "work"
	CommandResearch Command = "research"
	CommandReset    Command = "reset"
)

// Engine computes balances and mode transitions. It holds no state of its own.
type Engine struct {
	Rates Rates
}

func NewEngine(rates Rates) Engine {
	return Engine{Rates: rates}
}

// LiveBalance folds the open interval since StartTime into the settled balance.
func (e Engine) LiveBalance(state State, now float64) float64 {
	if state.Mode == ModeIdle {
		return state.Balance
	}
	elapsedHours := (now - state.StartTime) / secondsPerHour
	return state.Balance + elapsedHours*e.Rates.For(state.Mode)
}

// Apply settles the balance under the previous mode and then switches. Commands
// match exactly; anything else only settles.
func (e Engine) Apply(state State, cmd Command, now float64) State {
	next := state
	next.Balance = e.LiveBalance(state, now)

	switch cmd {
	case CommandStop:
		next.Mode = ModeIdle
	case CommandWork:
		next.Mode = ModeWork
		next.StartTime = now
	case CommandResearch:
		next.Mode = ModeResearch
		next.StartTime = now
	case CommandReset:
		next.Balance = 0
		next.Mode = ModeIdle
	}
	return next
}

// FormatDuration renders hours as a signed H:MM:SS string. Every field is
// truncated, never rounded.
func FormatDuration(hours float64) string {
	sign := " "
	if hours < 0 {
		sign = "-"
	} else if hours > 0 {
		sign = "+"
	}

	abs := math.Abs(hours)
	whole := math.Floor(abs)
	frac := abs - whole
	if math.IsNaN(frac) {
		frac = 0
	}
	m := int64(math.Floor(frac * 60))
	s := int64(math.Floor(math.Mod(frac*secondsPerHour, 60)))

	return fmt.Sprintf("%s%02d:%02d:%02d", sign, saturateHours(whole), m, s)
}

// saturateHours caps the hour count at MaxInt64; NaN reads as zero.
func saturateHours(whole float64) int64 {
	if math.IsNaN(whole) {
		return 0
	}
	if whole >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(whole)
}
