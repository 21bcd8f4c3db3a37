package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/slip44"
	"github.com/specialistvlad/slip44/internal/app"
	"github.com/specialistvlad/slip44/internal/cli"
)

// main is the entrypoint for the slip44 lookup tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	lookupApp, err := app.NewApp(outW, errW, config)
	if err != nil {
		return err
	}

	err = lookupApp.Run(context.Background())
	if errors.Is(err, slip44.ErrNotFound) || errors.Is(err, slip44.ErrNoSymbol) {
		// A miss is an answer, not a failure of the tool.
		return &cli.ExitError{Code: 3, Message: err.Error()}
	}
	return err
}
