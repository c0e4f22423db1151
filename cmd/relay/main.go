package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"

	"relay-lab/codec"
	"relay-lab/internal"
	"relay-lab/observability"
	"relay-lab/runtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run replays a script through an in-process router and prints what every
// participant received. A handler error stops the replay; the summary is
// still printed before the error is returned.
func run() error {
	scriptPath := flag.String("script", "", "Path to the replay script, stdin when empty")
	flag.Parse()

	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	display, err := LoadDisplayConfig()
	if err != nil {
		return fmt.Errorf("display config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	scope, err := config.Scope()
	if err != nil {
		return err
	}

	// 2. Script
	var input io.Reader = os.Stdin
	if *scriptPath != "" {
		file, err := os.Open(*scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() { _ = file.Close() }()
		input = file
	}
	steps, err := ParseScript(input)
	if err != nil {
		return err
	}

	// 3. Router
	monitor := observability.NewMonitor(log, config.RecentFailures)
	router := runtime.NewRouter(log, codec.NewCodec(), monitor, scope)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Replay
	replayer := NewReplayer(log, router)
	replayErr := replayer.Run(ctx, steps)
	PrintSummary(os.Stdout, router, replayer.Timelines(), display)
	return replayErr
}
