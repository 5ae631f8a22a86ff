// Command minitemplate renders {{name}} templates from files, stdin or the
// command line.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error(
			"run failed",
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
