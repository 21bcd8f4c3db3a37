package app

import (
	"errors"
	"fmt"
	"strconv"
)

// Action selects what a run does with the registry.
type Action string

const (
	ActionID     Action = "id"
	ActionName   Action = "name"
	ActionSymbol Action = "symbol"
	ActionList   Action = "list"
	ActionExport Action = "export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	TablePath string // .hcl file or directory, empty for the embedded table
	Action    Action
	Query     string

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Action {
	case ActionID:
		if _, err := strconv.ParseUint(cfg.Query, 10, 32); err != nil {
			return nil, fmt.Errorf("invalid coin type %q: must be a number between 0 and 4294967295", cfg.Query)
		}
	case ActionName, ActionSymbol:
		if cfg.Query == "" {
			return nil, fmt.Errorf("a %s query cannot be empty", cfg.Action)
		}
	case ActionList, ActionExport:
	case "":
		return nil, errors.New("an action is required")
	default:
		return nil, fmt.Errorf("unknown action %q", cfg.Action)
	}

	switch cfg.Output {
	case "":
		cfg.Output = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}

	return &cfg, nil
}
