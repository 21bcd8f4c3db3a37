package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/specialistvlad/slip44"
	"github.com/specialistvlad/slip44/internal/ctxlog"
	"github.com/specialistvlad/slip44/internal/table"
)

// Run executes the configured action and writes its result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "action", a.config.Action, "query", a.config.Query)

	switch a.config.Action {
	case ActionList:
		return a.renderList(a.registry.Coins())
	case ActionExport:
		return table.Write(a.outW, a.registry.Entries())
	}

	c, err := a.lookup()
	if err != nil {
		return err
	}
	logger.Debug("Coin found.", "id", c.ID(), "name", c.Name())
	return a.renderCoin(c)
}

func (a *App) lookup() (*slip44.Coin, error) {
	switch a.config.Action {
	case ActionID:
		id, err := strconv.ParseUint(a.config.Query, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid coin type %q: %w", a.config.Query, err)
		}
		return a.registry.ByID(uint32(id))
	case ActionName:
		return a.registry.ByName(a.config.Query)
	case ActionSymbol:
		sym, err := a.registry.ParseSymbol(a.config.Query)
		if err != nil {
			return nil, err
		}
		return a.registry.BySymbol(sym)
	default:
		return nil, fmt.Errorf("unknown action %q", a.config.Action)
	}
}
