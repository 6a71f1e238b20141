// Command dictbuild builds the offline dictionary artifacts: one SQLite
// store and one gzip JSON snapshot per language plus a manifest.
//
// Usage:
//
//	dictbuild [--sample] [--force] [--raw=<dir>] [--out=<dir>] [--languages=en-zh,ja-zh] [--config=<yaml>]
//	dictbuild version
//
// Exit codes: 0 = success (including per-language failures), 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}
