// Command formsctl runs offline maintenance against the forms catalog:
// schema migrations, starter seeding, trash cleanup and instructor tokens.
// It is intended to be invoked by operators or cron, not by the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/dojo-forms/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "formsctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
