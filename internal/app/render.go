package app

import (
	"fmt"
	"io"
)

const (
	colorCost    = "#ff453a"
	colorGain    = "#32d74b"
	colorDebt    = "#ff9f0a"
	colorDefault = "primary"
)

type menuAction struct {
	label   string
	command Command
	icon    string
}

var (
	activityActions = []menuAction{
		{label: "Start Research", command: CommandResearch, icon: "atom"},
		{label: "Start Work", command: CommandWork, icon: "keyboard"},
		{label: "Stop", command: CommandStop, icon: "pause.circle"},
	}
	resetAction = menuAction{label: "Clear Balance (Reset)", command: CommandReset, icon: "trash"}
)

// statusColor keys off the mode, not the balance. Idle only warns when in debt.
func statusColor(mode Mode, live float64) string {
	switch mode {
	case ModeResearch:
		return colorCost
	case ModeWork:
		return colorGain
	default:
		if live < 0 {
			return colorDebt
		}
		return colorDefault
	}
}

func modeIcon(mode Mode) string {
	switch mode {
	case ModeResearch:
		return "atom"
	case ModeWork:
		return "keyboard"
	default:
		return "pause.circle"
	}
}

func modeLabel(mode Mode) string {
	switch mode {
	case ModeResearch:
		return "Researching (4x Debt)"
	case ModeWork:
		return "Working (Payoff)"
	default:
		return "Idle"
	}
}

// RenderStatus writes the menu-bar plugin output for status. exe is the
// absolute path the host runs to apply a command.
func RenderStatus(w io.Writer, status StatusResult, exe string) error {
	color := statusColor(status.Mode, status.LiveBalance)
	icon := modeIcon(status.Mode)

	p := &printer{w: w}
	if color == colorDefault {
		p.printf("%s | sfimage=%s\n", status.Formatted, icon)
	} else {
		p.printf("%s | color=%s sfimage=%s\n", status.Formatted, color, icon)
	}
	p.printf("---\n")
	p.printf("current state: %s\n", modeLabel(status.Mode))
	p.printf("current balance: %s (%.4fh) | font=Menlo\n", status.Formatted, status.LiveBalance)
	p.printf("---\n")
	for _, action := range activityActions {
		p.action(action, exe)
	}
	p.printf("---\n")
	p.action(resetAction, exe)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) action(a menuAction, exe string) {
	p.printf("%s | bash='%s' param1='%s' terminal=false refresh=true sfimage=%s\n", a.label, exe, a.command, a.icon)
}
