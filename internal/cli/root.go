package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"time-hedge/internal/app"
)

// NewRootCommand builds the single-shot command the menu-bar host invokes.
// With no argument it prints the status; with one it applies a transition.
func NewRootCommand() *cobra.Command {
	return newRootCommand(app.Options{})
}

func newRootCommand(base app.Options) *cobra.Command {
	var configPath string
	var logLevel string
	var jsonOut bool

	root := &cobra.Command{
		Use:   "time-hedge [stop|work|research|reset]",
		Short: "Track a work/research time balance for the menu bar",
		Long: "Without arguments, print the current balance in menu-bar plugin format.\n" +
			"With one argument, settle the balance and switch mode: stop, work, research or reset.",
		Args:              cobra.MaximumNArgs(1),
		ValidArgs:         []string{"stop", "work", "research", "reset"},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := base
			opts.ConfigPath = strings.TrimSpace(configPath)
			opts.LogLevel = strings.TrimSpace(logLevel)

			svc, err := app.NewService(opts)
			if err != nil {
				return err
			}
			defer svc.Logger().Sync()

			if len(args) == 0 {
				return svc.WriteStatus(cmd.OutOrStdout(), jsonOut)
			}
			if jsonOut {
				return app.WrapExit(app.ExitUserError, fmt.Errorf("--json only applies to status output"))
			}
			_, err = svc.Apply(args[0])
			return err
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "Path to TOML config (default ~/.time_hedge.toml)")
	root.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().BoolVar(&jsonOut, "json", false, "Output status as JSON")
	return root
}
