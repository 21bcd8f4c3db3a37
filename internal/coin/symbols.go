package coin

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
)

// buildSymbolIndex claims symbols in ascending primary identifier order. The
// first claimant of a ticker wins; later coins must already carry that ticker
// as DuplicateSymbol. Problems are returned instead of being repaired.
func (r *Registry) buildSymbolIndex(logger *slog.Logger) []string {
	var problems []string

	ordered := slices.Clone(r.coins)
	slices.SortStableFunc(ordered, func(a, b *Coin) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	for _, c := range ordered {
		if c.symbol == "" {
			continue
		}
		if c.duplicateSymbol != "" && c.duplicateSymbol != string(c.symbol) {
			problems = append(problems, fmt.Sprintf("coin type %d (%q): symbol %q and duplicate_symbol %q disagree", c.ID(), c.name, c.symbol, c.duplicateSymbol))
			continue
		}

		owner, taken := r.symbols[c.symbol]
		if !taken {
			if c.duplicateSymbol != "" {
				problems = append(problems, fmt.Sprintf("coin type %d (%q): duplicate_symbol %q is set but no coin with a lower identifier claims it", c.ID(), c.name, c.duplicateSymbol))
				continue
			}
			r.symbols[c.symbol] = c
			r.claimed = append(r.claimed, c.symbol)
			continue
		}

		if c.duplicateSymbol == "" {
			problems = append(problems, fmt.Sprintf("coin type %d (%q): symbol %q is already claimed by %q (coin type %d), set duplicate_symbol instead", c.ID(), c.name, c.symbol, owner.name, owner.ID()))
			continue
		}

		logger.Debug("Symbol collision resolved.", "symbol", c.symbol, "claimant", owner.ID(), "duplicate", c.ID())
		c.symbol = ""
	}

	// A duplicate whose ticker ended up with a higher identifier inverts the
	// precedence rule.
	for _, c := range ordered {
		if c.duplicateSymbol == "" {
			continue
		}
		owner, ok := r.symbols[Symbol(c.duplicateSymbol)]
		if ok && owner.ID() > c.ID() {
			problems = append(problems, fmt.Sprintf("coin type %d (%q): duplicate_symbol %q is claimed by %q with higher coin type %d", c.ID(), c.name, c.duplicateSymbol, owner.name, owner.ID()))
		}
	}

	return problems
}

// BySymbol returns the coin that claimed sym. Tickers that only exist as
// DuplicateSymbol metadata are not found.
func (r *Registry) BySymbol(sym Symbol) (*Coin, error) {
	if c, ok := r.symbols[sym]; ok {
		return c, nil
	}
	return nil, notFound("symbol", sym)
}

// ParseSymbol resolves the text form of a ticker.
func (r *Registry) ParseSymbol(s string) (Symbol, error) {
	if !ValidSymbol(s) {
		return "", notFound("symbol", fmt.Sprintf("%q", s))
	}
	if _, err := r.BySymbol(Symbol(s)); err != nil {
		return "", err
	}
	return Symbol(s), nil
}

// SymbolOf returns the symbol bound to c. It fails with ErrNoSymbol if c has
// no ticker or lost its ticker to a coin with a lower identifier.
func (r *Registry) SymbolOf(c *Coin) (Symbol, error) {
	if c == nil {
		return "", notFound("coin", "<nil>")
	}
	if c.symbol != "" && r.symbols[c.symbol] == c {
		return c.symbol, nil
	}
	return "", noSymbol(c)
}

// SymbolByID returns the symbol of the coin owning id.
func (r *Registry) SymbolByID(id uint32) (Symbol, error) {
	c, err := r.ByID(id)
	if err != nil {
		return "", err
	}
	return r.SymbolOf(c)
}

// Symbols returns every claimed symbol in ascending order of its claimant's
// primary identifier.
func (r *Registry) Symbols() []Symbol {
	return slices.Clone(r.claimed)
}
