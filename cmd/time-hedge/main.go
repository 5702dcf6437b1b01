package main

import (
	"fmt"
	"os"

	"time-hedge/internal/app"
	"time-hedge/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(app.ExitCode(err))
	}
}
