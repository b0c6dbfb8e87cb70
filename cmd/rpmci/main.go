// Package main is the entry point for the rpmci workflow tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/cmd/rpmci/commands"
	"go.rpmci.dev/rpmci/internal/app"
	"go.rpmci.dev/rpmci/internal/core/domain"
	_ "go.rpmci.dev/rpmci/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*commands.CLI)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components)
	for _, opt := range opts {
		opt(cli)
	}

	// 3. Execution. The exit code mirrors the build command's own exit
	// code when one is known; any other failure exits 1.
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		code := domain.ExitCode(err)
		if code < 1 {
			code = 1
		}
		return code
	}
	return 0
}
