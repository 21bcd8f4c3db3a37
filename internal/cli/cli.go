package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/slip44/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("slip44", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
slip44 - Look up SLIP-0044 coin types by identifier, name or symbol.

Usage:
  slip44 [options] -id N | -name NAME | -symbol SYMBOL | -list | -export

Options:
`)
		flagSet.PrintDefaults()
	}

	idFlag := flagSet.String("id", "", "Look up a coin by coin type identifier.")
	nameFlag := flagSet.String("name", "", "Look up a coin by its exact name.")
	symbolFlag := flagSet.String("symbol", "", "Look up a coin by ticker symbol.")
	listFlag := flagSet.Bool("list", false, "List every coin.")
	exportFlag := flagSet.Bool("export", false, "Write the coin table as HCL.")
	tableFlag := flagSet.String("table", "", "Path to a .hcl coin table file or directory. Defaults to the embedded table.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	// Exactly one action may be chosen; flag.Visit only reports flags that were set.
	var (
		action app.Action
		query  string
		chosen []string
	)
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			action, query = app.ActionID, *idFlag
		case "name":
			action, query = app.ActionName, *nameFlag
		case "symbol":
			action, query = app.ActionSymbol, *symbolFlag
		case "list":
			if !*listFlag {
				return
			}
			action = app.ActionList
		case "export":
			if !*exportFlag {
				return
			}
			action = app.ActionExport
		default:
			return
		}
		chosen = append(chosen, "-"+f.Name)
	})

	if len(chosen) == 0 {
		slog.Debug("No action provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if len(chosen) > 1 {
		return nil, false, &ExitError{Code: 2, Message: "only one of " + strings.Join(chosen, ", ") + " may be given"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TablePath: *tableFlag,
		Action:    action,
		Query:     query,
		Output:    strings.ToLower(*outputFlag),
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
